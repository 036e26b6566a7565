package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "shopbot/internal/delivery/context"
	"shopbot/internal/domain/service"
	"shopbot/internal/errors"
)

const (
	localSubscription  = "projects/local/subscriptions/order-ready-push"
	localPushTimeout   = 30 * time.Second
	localPushAttempts  = 3
	localPushRetryStep = 200 * time.Millisecond
)

// localHTTPPublisher posts push envelopes straight to a local effect worker.
// A 503 from the worker is retried like a Pub/Sub redelivery.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	attempts   int
	retryStep  time.Duration
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
		attempts:   localPushAttempts,
		retryStep:  localPushRetryStep,
	}
}

func (p *localHTTPPublisher) PublishOrderReady(ctx context.Context, event *service.OrderReadyEvent) error {
	pushMsg, err := NewPushMessage(localSubscription, event)
	if err != nil {
		return err
	}
	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	logger := p.logger.With(slog.String("order_id", event.OrderID), slog.String("endpoint", p.endpoint))

	for attempt := 1; ; attempt++ {
		status, err := p.post(ctx, event.RequestID, body)
		switch {
		case err == nil && status >= 200 && status < 300:
			logger.Info("[LocalPubSub] Order ready event delivered", slog.Int("attempt", attempt))

			return nil
		case err == nil && status != http.StatusServiceUnavailable:
			return errors.Errorf("worker rejected order ready event: status %d", status)
		case attempt >= p.attempts:
			if err != nil {
				return err
			}

			return errors.Errorf("worker still unavailable after %d attempts", attempt)
		}

		logger.Warn("[LocalPubSub] Worker asked for redelivery",
			slog.Int("attempt", attempt),
			slog.Int("status", status),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "gave up redelivering order ready event")
		case <-time.After(p.retryStep * time.Duration(attempt)):
		}
	}
}

func (p *localHTTPPublisher) post(ctx context.Context, requestID string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "failed to reach effect worker")
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

// Close is a no-op; requests are bounded by their own context.
func (p *localHTTPPublisher) Close() error {
	return nil
}
