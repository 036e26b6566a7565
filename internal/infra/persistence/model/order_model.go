package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
// The partial unique index keeps at most one pending order per user.
type OrderModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID              string    `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_orders_user_pending,where:status = 'pending'"`
	Status              string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	Phone               string    `gorm:"type:varchar(16);not null;default:''"`
	Address             string    `gorm:"type:text;not null;default:''"`
	Provenance          string    `gorm:"type:text"`
	ReadyAt             *time.Time
	EffectsDispatchedAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uint      `gorm:"not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	UnitPrice int64     `gorm:"not null"`
	Quantity  int       `gorm:"not null;default:1"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
