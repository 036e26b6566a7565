package usecase

import (
	"context"

	"shopbot/internal/domain/service"
)

// EffectDispatcher performs the side effects of an order becoming ready.
type EffectDispatcher interface {
	// Dispatch tags the customer and sends payment instructions at most once per order.
	// Only a failure to claim the order is returned; notification failures are logged.
	Dispatch(ctx context.Context, event *service.OrderReadyEvent) error
}
