package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"shopbot/config"
	"shopbot/internal/delivery/api/middleware"
	"shopbot/internal/delivery/api/router/handler"
	"shopbot/internal/delivery/api/validator"
	"shopbot/internal/domain/entity"
	domainerrors "shopbot/internal/domain/errors"
	"shopbot/internal/domain/service"
	mockSvc "shopbot/internal/mocks/service"
	mockUsecase "shopbot/internal/mocks/usecase"
	"shopbot/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testVerifyToken = "verify-me"
	testAppSecret   = "app-secret"
	testAccessToken = "access-token"
)

type routerFixture struct {
	e            *echo.Echo
	conversation *mockUsecase.MockConversationUsecase
	admin        *mockUsecase.MockAdminUsecase
	tokens       *mockSvc.MockTokenService
}

func newRouterFixture(t *testing.T, appSecret string) *routerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Messenger: &config.MessengerConfig{
			VerifyToken: testVerifyToken,
			AppSecret:   appSecret,
		},
	}

	f := &routerFixture{
		e:            echo.New(),
		conversation: mockUsecase.NewMockConversationUsecase(t),
		admin:        mockUsecase.NewMockAdminUsecase(t),
		tokens:       mockSvc.NewMockTokenService(t),
	}
	f.e.Validator = validator.New()
	f.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		WebhookHandler: handler.NewWebhookHandler(handler.WebhookHandlerParams{
			Conversation: f.conversation,
			Config:       cfg,
			Logger:       logger,
		}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			AdminUC: f.admin,
			Logger:  logger,
		}),
		AuthMiddleware:      middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: f.tokens}),
		SignatureMiddleware: middleware.NewSignatureMiddleware(cfg, logger),
	}).RegisterRoutes(f.e)

	return f
}

func (f *routerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func (f *routerFixture) authorize(roles ...string) {
	f.tokens.EXPECT().ValidateToken(testAccessToken).Return(&service.Claims{
		Roles:            roles,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "operator"},
	}, nil)
}

func adminRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testAccessToken)

	return req
}

func webhookRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newRouterFixture(t, "")

	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = f.do(httptest.NewRequest(http.MethodGet, "/privacy", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, handler.PrivacyPolicy, rec.Body.String())
}

func TestRouter_WebhookVerify(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid handshake echoes challenge",
			query:      "hub.mode=subscribe&hub.verify_token=" + testVerifyToken + "&hub.challenge=1158201444",
			wantStatus: http.StatusOK,
			wantBody:   "1158201444",
		},
		{
			name:       "wrong token",
			query:      "hub.mode=subscribe&hub.verify_token=nope&hub.challenge=1",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong mode",
			query:      "hub.mode=unsubscribe&hub.verify_token=" + testVerifyToken + "&hub.challenge=1",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t, "")

			rec := f.do(httptest.NewRequest(http.MethodGet, "/webhook?"+tt.query, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

const twoSenderDelivery = `{
  "object": "page",
  "entry": [
    {"id": "page-1", "time": 1700000000, "messaging": [
      {"sender": {"id": "psid-a"}, "recipient": {"id": "page-1"}, "message": {"mid": "m-a1", "text": "99110022"}},
      {"sender": {"id": "psid-b"}, "recipient": {"id": "page-1"}, "message": {"mid": "m-b1", "text": "олс байна уу"}},
      {"sender": {"id": "page-1"}, "recipient": {"id": "psid-a"}, "message": {"mid": "m-echo", "text": "reply", "is_echo": true}},
      {"sender": {"id": "psid-a"}, "recipient": {"id": "page-1"}}
    ]},
    {"id": "page-1", "time": 1700000001, "messaging": [
      {"sender": {"id": "psid-a"}, "recipient": {"id": "page-1"}, "message": {"mid": "m-a2", "text": "хаяг: Баянгол 3-р хороо"}}
    ]}
  ]
}`

func TestRouter_WebhookReceive(t *testing.T) {
	f := newRouterFixture(t, "")

	var (
		mu   sync.Mutex
		seen = map[string][]string{}
	)
	f.conversation.EXPECT().HandleTurn(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, input usecase.TurnInput) (*usecase.TurnResult, error) {
			mu.Lock()
			defer mu.Unlock()
			seen[input.UserID] = append(seen[input.UserID], input.PlatformMessageID)

			return &usecase.TurnResult{Delivered: true}, nil
		}).
		Times(3)

	rec := f.do(webhookRequest(twoSenderDelivery))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EVENT_RECEIVED", rec.Body.String())
	assert.Equal(t, []string{"m-a1", "m-a2"}, seen["psid-a"])
	assert.Equal(t, []string{"m-b1"}, seen["psid-b"])
}

func TestRouter_WebhookReceive_Failures(t *testing.T) {
	t.Run("non page object", func(t *testing.T) {
		f := newRouterFixture(t, "")

		rec := f.do(webhookRequest(`{"object": "instagram", "entry": []}`))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure asks for redelivery", func(t *testing.T) {
		f := newRouterFixture(t, "")
		f.conversation.EXPECT().HandleTurn(mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused"))

		rec := f.do(webhookRequest(`{"object": "page", "entry": [{"messaging": [
			{"sender": {"id": "psid-a"}, "message": {"mid": "m-1", "text": "99110022"}}
		]}]}`))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, rec))
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newRouterFixture(t, "")

		rec := f.do(webhookRequest(`{"object":`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_WebhookSignature(t *testing.T) {
	body := `{"object": "page", "entry": [{"messaging": [
		{"sender": {"id": "psid-a"}, "message": {"mid": "m-1", "text": "сайн уу"}}
	]}]}`

	tests := []struct {
		name       string
		signature  string
		wantStatus int
		wantTurn   bool
	}{
		{
			name:       "valid signature",
			signature:  middleware.Sign([]byte(testAppSecret), []byte(body)),
			wantStatus: http.StatusOK,
			wantTurn:   true,
		},
		{
			name:       "signed with another secret",
			signature:  middleware.Sign([]byte("other"), []byte(body)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t, testAppSecret)
			if tt.wantTurn {
				f.conversation.EXPECT().HandleTurn(mock.Anything, mock.Anything).
					Return(&usecase.TurnResult{}, nil).
					Once()
			}

			req := webhookRequest(body)
			if tt.signature != "" {
				req.Header.Set("X-Hub-Signature-256", tt.signature)
			}

			rec := f.do(req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_AdminLogin(t *testing.T) {
	expiresAt := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		setup      func(f *routerFixture)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"username": "operator", "password": "s3cret"}`,
			setup: func(f *routerFixture) {
				f.admin.EXPECT().Login(mock.Anything, usecase.AdminLoginInput{Username: "operator", Password: "s3cret"}).
					Return(&usecase.AdminLoginOutput{AccessToken: "jwt", ExpiresAt: expiresAt}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: `{"username": "operator", "password": "nope"}`,
			setup: func(f *routerFixture) {
				f.admin.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "missing password",
			body:       `{"username": "operator"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t, "")
			if tt.setup != nil {
				tt.setup(f)
			}

			req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := f.do(req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			} else {
				assert.Contains(t, rec.Body.String(), `"access_token":"jwt"`)
			}
		})
	}
}

func TestRouter_AdminAuth(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		f := newRouterFixture(t, "")

		rec := f.do(httptest.NewRequest(http.MethodGet, "/admin/orders", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newRouterFixture(t, "")
		f.tokens.EXPECT().ValidateToken(testAccessToken).Return(nil, errors.New("token is expired"))

		rec := f.do(adminRequest(http.MethodGet, "/admin/orders"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing role", func(t *testing.T) {
		f := newRouterFixture(t, "")
		f.authorize("viewer")

		rec := f.do(adminRequest(http.MethodGet, "/admin/products"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRouter_AdminOrders(t *testing.T) {
	orderID := uuid.New()
	readyAt := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	order := &entity.Order{
		ID:      orderID,
		UserID:  "psid-1",
		Status:  entity.OrderStatusReady,
		Phone:   "99110022",
		Address: "Сүхбаатар дүүрэг 1-р хороо",
		ReadyAt: &readyAt,
		Items: []*entity.OrderItem{
			{ID: uuid.New(), OrderID: orderID, ProductID: 1, Name: "Машины татлага олс", UnitPrice: 39900, Quantity: 2},
		},
	}

	t.Run("list with filter", func(t *testing.T) {
		f := newRouterFixture(t, "")
		f.authorize("admin")
		f.admin.EXPECT().ListOrders(mock.Anything, usecase.ListOrdersInput{Status: entity.OrderStatusReady, Limit: 50}).
			Return([]*entity.Order{order}, nil)

		rec := f.do(adminRequest(http.MethodGet, "/admin/orders?status=ready"))
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data []handler.OrderResponse `json:"data"`
			Meta struct {
				Count int `json:"count"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Data, 1)
		assert.Equal(t, 1, body.Meta.Count)
		assert.Equal(t, int64(79800), body.Data[0].Total)
		assert.Equal(t, int64(79800), body.Data[0].Items[0].LineTotal)
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newRouterFixture(t, "")
		f.authorize("admin")

		rec := f.do(adminRequest(http.MethodGet, "/admin/orders?status=shipped"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get by id", func(t *testing.T) {
		f := newRouterFixture(t, "")
		f.authorize("admin")
		f.admin.EXPECT().GetOrder(mock.Anything, orderID).Return(order, nil)

		rec := f.do(adminRequest(http.MethodGet, "/admin/orders/"+orderID.String()))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ready"`)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newRouterFixture(t, "")
		f.authorize("admin")
		f.admin.EXPECT().GetOrder(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrOrderNotFound)

		rec := f.do(adminRequest(http.MethodGet, "/admin/orders/"+uuid.NewString()))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ORDER_NOT_FOUND", errorCode(t, rec))
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newRouterFixture(t, "")
		f.authorize("admin")

		rec := f.do(adminRequest(http.MethodGet, "/admin/orders/42"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("payment qr", func(t *testing.T) {
		f := newRouterFixture(t, "")
		f.authorize("admin")
		png := []byte("\x89PNG\r\n\x1a\n")
		f.admin.EXPECT().PaymentQR(mock.Anything, orderID).Return(&usecase.PaymentQROutput{
			PNG:     png,
			Payload: &service.PaymentQRPayload{Amount: 79800, Memo: "99110022"},
		}, nil)

		rec := f.do(adminRequest(http.MethodGet, "/admin/orders/"+orderID.String()+"/payment-qr"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "79800", rec.Header().Get("X-Payment-Amount"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("payment qr for pending order", func(t *testing.T) {
		f := newRouterFixture(t, "")
		f.authorize("admin")
		f.admin.EXPECT().PaymentQR(mock.Anything, orderID).Return(nil, domainerrors.ErrOrderNotReady)

		rec := f.do(adminRequest(http.MethodGet, "/admin/orders/"+orderID.String()+"/payment-qr"))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRouter_AdminProducts(t *testing.T) {
	f := newRouterFixture(t, "")
	f.authorize("admin")
	f.admin.EXPECT().ListProducts(mock.Anything).Return([]*entity.Product{
		{ID: 1, Name: "Машины татлага олс", Price: 39900, Available: true},
		{ID: 3, Name: "Ухаалаг залгуур", Price: 25000},
	}, nil)

	rec := f.do(adminRequest(http.MethodGet, "/admin/products"))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []handler.ProductResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.False(t, body.Data[1].Available)
}

func TestRouter_AdminDisabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		WebhookHandler: handler.NewWebhookHandler(handler.WebhookHandlerParams{
			Conversation: mockUsecase.NewMockConversationUsecase(t),
			Config:       &config.Config{},
			Logger:       logger,
		}),
		AdminHandler:        handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: mockUsecase.NewMockAdminUsecase(t), Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{}),
		SignatureMiddleware: middleware.NewSignatureMiddleware(&config.Config{}, logger),
	}).RegisterRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, adminRequest(http.MethodGet, "/admin/orders"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
