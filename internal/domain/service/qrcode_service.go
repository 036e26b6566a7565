package service

// PaymentQRPayload is encoded into a payment QR code
type PaymentQRPayload struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder,omitempty"`
	Amount        int64  `json:"amount"`
	Memo          string `json:"memo"`
}

// QRCodeService defines the interface for payment QR code generation and parsing
type QRCodeService interface {
	// GeneratePaymentQR renders the payload as a PNG
	GeneratePaymentQR(payload *PaymentQRPayload) ([]byte, error)

	// ParsePaymentQR decodes QR text back into a payload
	ParsePaymentQR(qrData string) (*PaymentQRPayload, error)
}
