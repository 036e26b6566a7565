package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The primary key is the platform's page-scoped ID.
type UserModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Phone     string `gorm:"type:varchar(16);not null;default:''"`
	Address   string `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
