// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shopbot/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their platform ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Create persists a new user. Creating an existing ID is a no-op.
	Create(ctx context.Context, user *entity.User) error

	// LockByID retrieves the user and holds a row lock until the surrounding transaction ends.
	LockByID(ctx context.Context, id string) (*entity.User, error)

	// FillContactDefaults stores phone and address only where the stored value is still empty.
	// Empty arguments are ignored.
	FillContactDefaults(ctx context.Context, id, phone, address string) error
}
