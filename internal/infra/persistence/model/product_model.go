package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. Insertion order (ID) is the catalog order.
type ProductModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Price       int64  `gorm:"not null"`
	Description string `gorm:"type:text"`
	Instruction string `gorm:"type:text"`
	Available   bool   `gorm:"not null;index"`
	// Lower-cased name, description and instruction for substring search.
	SearchText string `gorm:"type:text;not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeSave keeps SearchText in sync with the searchable columns.
func (p *ProductModel) BeforeSave(_ *gorm.DB) error {
	p.SearchText = strings.ToLower(strings.Join([]string{p.Name, p.Description, p.Instruction}, "\n"))

	return nil
}
