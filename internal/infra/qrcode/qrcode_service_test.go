package qrcode

import (
	"encoding/json"
	"testing"

	"shopbot/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPayload() *service.PaymentQRPayload {
	return &service.PaymentQRPayload{
		BankName:      "Хаан банк",
		AccountNumber: "5000123456",
		AccountHolder: "Дэлгүүр ХХК",
		Amount:        91900,
		Memo:          "99110022",
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GeneratePaymentQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GeneratePaymentQR(newPayload())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GeneratePaymentQR_InvalidPayload(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name   string
		mutate func(p *service.PaymentQRPayload)
	}{
		{"missing account", func(p *service.PaymentQRPayload) { p.AccountNumber = "" }},
		{"zero amount", func(p *service.PaymentQRPayload) { p.Amount = 0 }},
		{"long memo", func(p *service.PaymentQRPayload) { p.Memo = string(make([]byte, 65)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := newPayload()
			tt.mutate(payload)

			_, err := svc.GeneratePaymentQR(payload)
			assert.Error(t, err)
		})
	}

	_, err := svc.GeneratePaymentQR(nil)
	assert.Error(t, err)
}

func TestQRCodeService_ParsePaymentQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	raw, err := json.Marshal(paymentQRData{Type: paymentQRType, PaymentQRPayload: *newPayload()})
	require.NoError(t, err)

	parsed, err := svc.ParsePaymentQR(string(raw))
	require.NoError(t, err)
	assert.Equal(t, newPayload(), parsed)

	_, err = svc.ParsePaymentQR(`{"type":"subscription","account_number":"1","amount":1}`)
	assert.Error(t, err)

	_, err = svc.ParsePaymentQR("not json")
	assert.Error(t, err)
}
