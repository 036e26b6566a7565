package repository

import (
	"context"
	"errors"
	"time"

	"shopbot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows an order listing.
type OrderFilter struct {
	Status entity.OrderStatus // Empty matches every status.
	UserID string
	Limit  int
	Offset int
}

// OrderRepository persists orders and their items.
type OrderRepository interface {
	// FindActivePending returns the most recently created pending order of the user.
	FindActivePending(ctx context.Context, userID string) (*entity.Order, error)

	// FindByID returns the order with its items loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns orders newest first.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// Create persists a new pending order.
	Create(ctx context.Context, order *entity.Order) error

	// FillContact sets phone and address only where the order has none yet.
	// Empty arguments are ignored.
	FillContact(ctx context.Context, id uuid.UUID, phone, address string) error

	// MarkReady moves a pending order to ready. It reports false when the order was not pending.
	MarkReady(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)

	// ClaimEffects stamps a ready order as dispatched. It reports false when the stamp was already set.
	ClaimEffects(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)

	// CreateItem attaches an item to an order.
	CreateItem(ctx context.Context, item *entity.OrderItem) error

	// CountItems counts the items attached to an order.
	CountItems(ctx context.Context, orderID uuid.UUID) (int64, error)
}
