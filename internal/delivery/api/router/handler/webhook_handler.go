package handler

import (
	"context"
	"log/slog"
	"net/http"

	"shopbot/config"
	deliverycontext "shopbot/internal/delivery/context"
	"shopbot/internal/domain/constants"
	domainerrors "shopbot/internal/domain/errors"
	"shopbot/internal/errors"
	"shopbot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// WebhookEvent is the body of a Messenger webhook delivery.
type WebhookEvent struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

// WebhookEntry groups the messaging events of one page.
type WebhookEntry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

// MessagingEvent is a single event; only text messages are handled.
type MessagingEvent struct {
	Sender    Participant      `json:"sender"`
	Recipient Participant      `json:"recipient"`
	Timestamp int64            `json:"timestamp"`
	Message   *IncomingMessage `json:"message,omitempty"`
}

// Participant identifies a sender or recipient by page-scoped id.
type Participant struct {
	ID string `json:"id"`
}

// IncomingMessage carries the text and the platform message id.
type IncomingMessage struct {
	MID    string `json:"mid"`
	Text   string `json:"text"`
	IsEcho bool   `json:"is_echo,omitempty"`
}

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	Conversation usecase.ConversationUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// WebhookHandler receives Messenger deliveries.
type WebhookHandler struct {
	conversation usecase.ConversationUsecase
	verifyToken  string
	logger       *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler.
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	h := &WebhookHandler{
		conversation: params.Conversation,
		logger:       params.Logger,
	}
	if params.Config.Messenger != nil {
		h.verifyToken = params.Config.Messenger.VerifyToken
	}

	return h
}

// Verify answers the subscription handshake with the raw challenge.
func (h *WebhookHandler) Verify(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	if mode != constants.WebhookModeSubscribe || h.verifyToken == "" || token != h.verifyToken {
		logger.Warn("Rejected webhook verification", slog.String("mode", mode))

		return errors.WithStack(domainerrors.ErrWebhookVerification)
	}

	logger.Info("Webhook verified")

	return c.String(http.StatusOK, c.QueryParam("hub.challenge"))
}

// Receive handles a delivery. Each sender's turns run in order; senders run in parallel.
// A failed turn fails the delivery so the platform retries it.
func (h *WebhookHandler) Receive(c echo.Context) error {
	var event WebhookEvent
	if err := c.Bind(&event); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid webhook body"))
	}
	if event.Object != constants.WebhookObjectPage {
		return errors.WithStack(domainerrors.ErrUnsupportedObject)
	}

	ctx := c.Request().Context()
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	var g errgroup.Group
	for _, turns := range groupBySender(&event) {
		g.Go(func() error {
			return h.handleSender(ctx, requestID, turns)
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "failed to handle webhook delivery")
	}

	return c.String(http.StatusOK, constants.WebhookAcknowledged)
}

func (h *WebhookHandler) handleSender(ctx context.Context, requestID string, turns []usecase.TurnInput) error {
	for _, turn := range turns {
		turn.RequestID = requestID
		if _, err := h.conversation.HandleTurn(ctx, turn); err != nil {
			return errors.Wrapf(err, "turn %s", turn.PlatformMessageID)
		}
	}

	return nil
}

// groupBySender keeps the delivery order within each sender.
func groupBySender(event *WebhookEvent) [][]usecase.TurnInput {
	var order []string
	bySender := make(map[string][]usecase.TurnInput)
	for _, entry := range event.Entry {
		for _, messaging := range entry.Messaging {
			msg := messaging.Message
			if msg == nil || msg.IsEcho || msg.Text == "" || messaging.Sender.ID == "" {
				continue
			}

			sender := messaging.Sender.ID
			if _, ok := bySender[sender]; !ok {
				order = append(order, sender)
			}
			bySender[sender] = append(bySender[sender], usecase.TurnInput{
				UserID:            sender,
				Text:              msg.Text,
				PlatformMessageID: msg.MID,
			})
		}
	}

	groups := make([][]usecase.TurnInput, 0, len(order))
	for _, sender := range order {
		groups = append(groups, bySender[sender])
	}

	return groups
}
