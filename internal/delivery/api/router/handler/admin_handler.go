package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"shopbot/internal/delivery/api/response"
	"shopbot/internal/domain/entity"
	"shopbot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultOrderPageSize = 50

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the operator API.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// Login exchanges operator credentials for an access token.
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.adminUC.Login(c.Request().Context(), usecase.AdminLoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token": output.AccessToken,
		"token_type":   "Bearer",
		"expires_at":   output.ExpiresAt,
	})
}

// ListOrders lists orders newest first, optionally filtered by status or user.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	var req ListOrdersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order query")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}
	if req.Limit == 0 {
		req.Limit = defaultOrderPageSize
	}

	orders, err := h.adminUC.ListOrders(c.Request().Context(), usecase.ListOrdersInput{
		Status: entity.OrderStatus(req.Status),
		UserID: req.UserID,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, toOrderResponses(orders))
}

// GetOrder returns one order with its items.
func (h *AdminHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.adminUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// PaymentQR renders the transfer details of a ready order as a PNG.
func (h *AdminHandler) PaymentQR(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	output, err := h.adminUC.PaymentQR(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("X-Payment-Amount", strconv.FormatInt(output.Payload.Amount, 10))

	return c.Blob(http.StatusOK, "image/png", output.PNG)
}

// ListProducts returns the whole catalog, out-of-stock products included.
func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.adminUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, toProductResponses(products))
}
