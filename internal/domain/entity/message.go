package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageRole tells who authored a conversation turn.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Message is one immutable conversation turn.
type Message struct {
	ID                uuid.UUID
	UserID            string
	Role              MessageRole
	Body              string
	PlatformMessageID string            // Messenger "mid"; empty for assistant turns.
	Metadata          map[string]string // Signals extracted from the turn, kept for operators.
	CreatedAt         time.Time
}
