package service

import "context"

// MessengerService delivers outbound actions to the messaging platform.
type MessengerService interface {
	// SendText sends a plain text message to the recipient.
	SendText(ctx context.Context, recipientID, text string) error

	// TagAccount attaches the named labels to the recipient, creating missing labels first.
	TagAccount(ctx context.Context, recipientID string, labels []string) error
}
