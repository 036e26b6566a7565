package entity

import "time"

// Product is a catalog entry. Prices are whole tögrög.
type Product struct {
	ID          uint
	Name        string
	Price       int64
	Description string
	Instruction string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
