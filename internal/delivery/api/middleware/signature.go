package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"strings"

	"shopbot/config"
	"shopbot/internal/delivery/api/response"
	deliverycontext "shopbot/internal/delivery/context"
	"shopbot/internal/domain/constants"
	domainerrors "shopbot/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const signaturePrefix = "sha256="

// SignatureMiddleware checks the platform's HMAC over the raw webhook body.
// Without an app secret every request passes.
type SignatureMiddleware struct {
	secret []byte
	logger *slog.Logger
}

// NewSignatureMiddleware creates the webhook signature check.
func NewSignatureMiddleware(cfg *config.Config, logger *slog.Logger) *SignatureMiddleware {
	m := &SignatureMiddleware{logger: logger}
	if cfg.Messenger != nil && cfg.Messenger.AppSecret != "" {
		m.secret = []byte(cfg.Messenger.AppSecret)
	}

	return m
}

// Verify rejects requests whose X-Hub-Signature-256 does not match the body.
// The body is restored for the handler.
func (m *SignatureMiddleware) Verify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if len(m.secret) == 0 {
			return next(c)
		}

		req := c.Request()
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return response.BadRequest(c, "INVALID_BODY", "Failed to read request body")
		}
		req.Body = io.NopCloser(bytes.NewReader(body))

		if !ValidSignature(m.secret, body, req.Header.Get(constants.HeaderHubSignature)) {
			deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Warn("Rejected webhook with invalid signature")

			return response.HandleAppError(c, domainerrors.ErrWebhookSignature)
		}

		return next(c)
	}
}

// ValidSignature compares header, formatted "sha256=<hex>", against the HMAC-SHA256 of body.
func ValidSignature(secret, body []byte, header string) bool {
	encoded, ok := strings.CutPrefix(header, signaturePrefix)
	if !ok {
		return false
	}
	got, err := hex.DecodeString(encoded)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(body)

	return hmac.Equal(got, mac.Sum(nil))
}

// Sign returns the header value the platform would send for body.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)

	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
