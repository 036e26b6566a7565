package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shopbot/internal/domain/service"
	"shopbot/internal/errors"
)

const (
	defaultInlineQueueSize = 64
	inlineHandleTimeout    = 30 * time.Second
)

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// EventHandler consumes order-ready events. The effect dispatcher implements it.
type EventHandler interface {
	Dispatch(ctx context.Context, event *service.OrderReadyEvent) error
}

// inlinePublisher runs the handler in-process on a background goroutine.
// Events queued before Close are drained before Close returns.
type inlinePublisher struct {
	handler EventHandler
	logger  *slog.Logger
	queue   chan *service.OrderReadyEvent

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewInlinePublisher starts the consumer goroutine.
func NewInlinePublisher(handler EventHandler, queueSize int, logger *slog.Logger) service.EventPublisher {
	if queueSize <= 0 {
		queueSize = defaultInlineQueueSize
	}

	p := &inlinePublisher{
		handler: handler,
		logger:  logger,
		queue:   make(chan *service.OrderReadyEvent, queueSize),
	}

	p.wg.Add(1)
	go p.consume()

	return p
}

// PublishOrderReady blocks until the event is queued or ctx is done.
func (p *inlinePublisher) PublishOrderReady(ctx context.Context, event *service.OrderReadyEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	select {
	case p.queue <- event:
		p.logger.Debug("[InlinePubSub] Event queued",
			slog.String("order_id", event.OrderID),
			slog.Int("queued", len(p.queue)),
		)

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "failed to queue order ready event")
	}
}

func (p *inlinePublisher) consume() {
	defer p.wg.Done()

	for event := range p.queue {
		p.handle(event)
	}
}

func (p *inlinePublisher) handle(event *service.OrderReadyEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), inlineHandleTimeout)
	defer cancel()

	logger := p.logger.With(
		slog.String("order_id", event.OrderID),
		slog.String("request_id", event.RequestID),
	)

	if err := p.handler.Dispatch(ctx, event); err != nil {
		logger.Error("[InlinePubSub] Failed to dispatch order effects", slog.Any("error", err))

		return
	}

	logger.Debug("[InlinePubSub] Event handled")
}

// Close stops accepting events and waits for the queue to drain.
func (p *inlinePublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()

	return nil
}
