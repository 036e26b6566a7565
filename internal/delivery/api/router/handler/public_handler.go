package handler

import (
	"net/http"

	"shopbot/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// PrivacyPolicy is served to the platform's app review and to users.
const PrivacyPolicy = "Энэ бот таны илгээсэн мессежийг хариулт өгөх, захиалга бүртгэх зорилгоор боловсруулна. " +
	"Мессеж, утасны дугаар, хүргэлтийн хаяг нууцлалтай хадгалагдах ба гуравдагч этгээдэд дамжуулагдахгүй. " +
	"Та өөрийн мэдээллийг устгуулах хүсэлтийг хэзээ ч илгээж болно.\n\n" +
	"This bot processes the messages you send to answer questions and record orders. " +
	"Messages, phone numbers and delivery addresses are stored securely and never shared with third parties. " +
	"You can request deletion of your data at any time."

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Privacy returns the privacy policy as plain text.
func Privacy(c echo.Context) error {
	return c.String(http.StatusOK, PrivacyPolicy)
}
