package usecase

import (
	"context"

	"shopbot/internal/domain/entity"
	"shopbot/internal/domain/repository"

	"github.com/google/uuid"
)

// ApplyTurnInput is one user turn as seen by the order state machine.
type ApplyTurnInput struct {
	User *entity.User // Locked by the caller for the duration of the transaction.
	Text string
}

// ApplyTurnOutput describes what the turn changed.
type ApplyTurnOutput struct {
	Order       *entity.Order // Active order after the turn, items loaded.
	Created     bool          // The turn opened the order.
	BecameReady bool          // The turn moved the order from pending to ready.
	Phone       string        // Phone found in the turn, empty when none.
	Address     string        // Address found in the turn, empty when none.
	AddedItems  []*entity.OrderItem
	ItemCount   int64
}

// ListOrdersInput filters the operator order listing.
type ListOrdersInput struct {
	Status entity.OrderStatus
	UserID string
	Limit  int
	Offset int
}

// OrderUsecase owns the order state machine.
type OrderUsecase interface {
	// ApplyTurn merges the turn's signals into the user's active order. It runs inside the
	// caller's transaction and must only use repositories from the given factory.
	ApplyTurn(ctx context.Context, repos repository.RepositoryFactory, input ApplyTurnInput) (*ApplyTurnOutput, error)

	// GetOrder returns an order with its items.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders returns orders newest first.
	ListOrders(ctx context.Context, input ListOrdersInput) ([]*entity.Order, error)
}
