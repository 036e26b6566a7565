package service

import (
	"context"
	"time"
)

// OrderReadyEvent is published once an order moves from pending to ready.
type OrderReadyEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Total     int64     `json:"total"`
	ReadyAt   time.Time `json:"ready_at"`
}

// EventPublisher hands order-ready events to the side-effect worker
type EventPublisher interface {
	// PublishOrderReady publishes an event for async processing
	PublishOrderReady(ctx context.Context, event *OrderReadyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
