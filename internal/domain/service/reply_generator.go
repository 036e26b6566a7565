package service

import (
	"context"

	"shopbot/internal/domain/entity"
)

// ReplyRequest carries everything the generator may use for one reply.
type ReplyRequest struct {
	Turn    string
	History []*entity.Message // Oldest first, excluding the current turn.
	Match   *entity.MatchResult
	Order   *entity.Order // Active order after the turn with items loaded, nil when none.

	// BecameReady is set on the turn that moved Order from pending to ready.
	BecameReady bool
}

// ReplyGenerator produces the assistant's reply text.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, req *ReplyRequest) (string, error)
}
