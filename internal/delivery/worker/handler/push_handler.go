package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"shopbot/config"
	deliverycontext "shopbot/internal/delivery/context"
	"shopbot/internal/domain/constants"
	domainerrors "shopbot/internal/domain/errors"
	"shopbot/internal/domain/service"
	"shopbot/internal/errors"
	"shopbot/internal/infra/pubsub"
	"shopbot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler runs order-ready side effects for Pub/Sub push deliveries.
type PushHandler struct {
	dispatcher usecase.EffectDispatcher
	logger     *slog.Logger
	// verify is nil when push requests are not authenticated.
	verify func(*http.Request) error
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Dispatcher usecase.EffectDispatcher
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		dispatcher: params.Dispatcher,
		logger:     params.Logger,
	}

	// Google signs push requests; local and develop setups post unsigned bodies.
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verify = verifyPubSubToken
	}

	return h
}

// HandlePush answers 503 when the event should be redelivered and 200 otherwise.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	event, err := pushMsg.DecodeEvent()
	if err != nil {
		// Redelivering a malformed event cannot succeed.
		h.logger.Error("[Worker] Dropping undecodable push message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order ready event",
		slog.String("order_id", event.OrderID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.dispatcher.Dispatch(ctx, event); err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to dispatch order effects",
			slog.String("order_id", event.OrderID),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// isRetryable reports store failures; nothing has been sent when the claim fails.
func isRetryable(err error) bool {
	var dbErr *domainerrors.DatabaseExecuteError

	return errors.As(err, &dbErr)
}

// extractRequestID prefers message attributes, then the event, then the incoming request.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.OrderReadyEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
