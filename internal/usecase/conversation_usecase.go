package usecase

import (
	"context"

	"shopbot/internal/domain/entity"
)

// TurnInput is one inbound text message.
type TurnInput struct {
	UserID            string
	Text              string
	PlatformMessageID string // Used to drop redelivered webhook events.
	RequestID         string
}

// TurnResult is the outcome of a processed turn.
type TurnResult struct {
	Duplicate   bool // The platform message was already processed; nothing else is set.
	Reply       string
	Delivered   bool // The reply reached the messaging platform.
	Order       *entity.Order
	BecameReady bool
	Match       *entity.MatchResult
}

// ConversationUsecase handles inbound turns end to end.
type ConversationUsecase interface {
	// HandleTurn updates the user's order, answers the message and delivers the answer.
	// Store failures are returned; delivery failures are not.
	HandleTurn(ctx context.Context, input TurnInput) (*TurnResult, error)
}
