package qrcode

import (
	"encoding/json"

	"shopbot/internal/domain/service"
	"shopbot/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	paymentQRType     = "payment"
	defaultQRSize     = 256
	maxPaymentMemoLen = 64
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// paymentQRData is the JSON document encoded in a payment QR code.
type paymentQRData struct {
	Type string `json:"type"`
	service.PaymentQRPayload
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultQRSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePaymentQR renders a bank transfer request as a PNG.
func (s *qrcodeService) GeneratePaymentQR(payload *service.PaymentQRPayload) ([]byte, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(paymentQRData{Type: paymentQRType, PaymentQRPayload: *payload})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePaymentQR decodes the JSON text scanned from a payment QR code.
func (s *qrcodeService) ParsePaymentQR(qrData string) (*service.PaymentQRPayload, error) {
	var data paymentQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != paymentQRType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if err := validatePayload(&data.PaymentQRPayload); err != nil {
		return nil, err
	}

	return &data.PaymentQRPayload, nil
}

func validatePayload(payload *service.PaymentQRPayload) error {
	switch {
	case payload == nil:
		return errors.New("payment payload is required")
	case payload.AccountNumber == "":
		return errors.New("account number is required")
	case payload.Amount <= 0:
		return errors.Errorf("amount must be positive, got %d", payload.Amount)
	case len(payload.Memo) > maxPaymentMemoLen:
		return errors.Errorf("memo exceeds %d bytes", maxPaymentMemoLen)
	}

	return nil
}
