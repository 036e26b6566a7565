package usecase

import (
	"context"
	"time"

	"shopbot/internal/domain/entity"
	"shopbot/internal/domain/service"

	"github.com/google/uuid"
)

// AdminLoginInput holds operator credentials.
type AdminLoginInput struct {
	Username string
	Password string
}

// AdminLoginOutput is an issued access token.
type AdminLoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
}

// PaymentQROutput is a rendered payment QR code.
type PaymentQROutput struct {
	PNG     []byte
	Payload *service.PaymentQRPayload
}

// AdminUsecase backs the operator API.
type AdminUsecase interface {
	Login(ctx context.Context, input AdminLoginInput) (*AdminLoginOutput, error)
	ListOrders(ctx context.Context, input ListOrdersInput) ([]*entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// PaymentQR renders the bank transfer QR for a ready order. The memo is the order phone.
	PaymentQR(ctx context.Context, id uuid.UUID) (*PaymentQROutput, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}
