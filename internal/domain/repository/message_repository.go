package repository

import (
	"context"
	"errors"

	"shopbot/internal/domain/entity"
)

// ErrDuplicateMessage is returned when a platform message ID has already been stored.
var ErrDuplicateMessage = errors.New("message already processed")

// MessageRepository stores the conversation history.
type MessageRepository interface {
	// Create persists a turn. Returns ErrDuplicateMessage for a known platform message ID.
	Create(ctx context.Context, message *entity.Message) error

	// ExistsByPlatformID reports whether a turn with the platform message ID is stored.
	ExistsByPlatformID(ctx context.Context, platformMessageID string) (bool, error)

	// ListRecent returns up to limit turns of the user, oldest first.
	ListRecent(ctx context.Context, userID string, limit int) ([]*entity.Message, error)
}
