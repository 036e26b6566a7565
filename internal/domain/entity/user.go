// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is a Messenger account that has written to the page.
// Contact defaults are filled once and never overwritten afterwards.
type User struct {
	ID        string    // Page-scoped user ID assigned by the platform.
	Phone     string    // Default contact phone, 8 digits. Empty until first seen.
	Address   string    // Default delivery address. Empty until first seen.
	CreatedAt time.Time // First contact.
	UpdatedAt time.Time
}

// HasContact reports whether both contact defaults are known.
func (u *User) HasContact() bool {
	return u.Phone != "" && u.Address != ""
}
