package handler

import (
	"time"

	"shopbot/internal/domain/entity"
)

// LoginRequest is the body of POST /admin/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ListOrdersRequest holds the query of GET /admin/orders.
type ListOrdersRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=pending ready"`
	UserID string `query:"user_id"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

// OrderResponse is the admin view of an order.
type OrderResponse struct {
	ID                  string              `json:"id"`
	UserID              string              `json:"user_id"`
	Status              string              `json:"status"`
	Phone               string              `json:"phone,omitempty"`
	Address             string              `json:"address,omitempty"`
	Provenance          string              `json:"provenance,omitempty"`
	Total               int64               `json:"total"`
	Items               []OrderItemResponse `json:"items"`
	ReadyAt             *time.Time          `json:"ready_at,omitempty"`
	EffectsDispatchedAt *time.Time          `json:"effects_dispatched_at,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// OrderItemResponse is a product snapshot on an order.
type OrderItemResponse struct {
	ID        string `json:"id"`
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

// ProductResponse is a catalog entry.
type ProductResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description,omitempty"`
	Instruction string `json:"instruction,omitempty"`
	Available   bool   `json:"available"`
}

func toOrderResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}

	return OrderResponse{
		ID:                  order.ID.String(),
		UserID:              order.UserID,
		Status:              string(order.Status),
		Phone:               order.Phone,
		Address:             order.Address,
		Provenance:          order.Provenance,
		Total:               order.Total(),
		Items:               items,
		ReadyAt:             order.ReadyAt,
		EffectsDispatchedAt: order.EffectsDispatchedAt,
		CreatedAt:           order.CreatedAt,
		UpdatedAt:           order.UpdatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return out
}

func toProductResponses(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, ProductResponse{
			ID:          product.ID,
			Name:        product.Name,
			Price:       product.Price,
			Description: product.Description,
			Instruction: product.Instruction,
			Available:   product.Available,
		})
	}

	return out
}
