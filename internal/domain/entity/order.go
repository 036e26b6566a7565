package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order. Orders only move pending -> ready.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusReady   OrderStatus = "ready"
)

// Order is assembled across turns until it holds a phone, an address and at least one item.
type Order struct {
	ID                  uuid.UUID
	UserID              string
	Status              OrderStatus
	Phone               string
	Address             string
	Provenance          string     // Message body that opened the order.
	ReadyAt             *time.Time // Set by the pending -> ready transition.
	EffectsDispatchedAt *time.Time // Set once the ready side effects have been claimed.
	Items               []*OrderItem
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsFulfillable reports whether the order holds everything needed to ship, given its item count.
func (o *Order) IsFulfillable(itemCount int64) bool {
	return o.Phone != "" && o.Address != "" && itemCount > 0
}

// Total sums the line totals of the loaded items.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.LineTotal()
	}

	return total
}

// OrderItem is a product snapshot attached to an order.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uint
	Name      string // Product name at attach time.
	UnitPrice int64  // Price in tögrög at attach time.
	Quantity  int
	CreatedAt time.Time
}

// LineTotal is the unit price times the quantity.
func (i *OrderItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}
