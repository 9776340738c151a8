package dto

import (
	"time"

	"github.com/carvasys/carvasys-api/internal/domain/order"
)

// OrderItemRequest representa uma linha na requisição de pedido
type OrderItemRequest struct {
	ProductUUID     string  `json:"product_uuid" binding:"required"`
	Quantity        int     `json:"quantity" binding:"required,min=1"`
	DiscountPercent float64 `json:"discount_percent" binding:"min=0,max=100"`
}

// OrderRequest representa a requisição de criação de pedido
type OrderRequest struct {
	Items   []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	FeeUUID string             `json:"fee_uuid"`
	Notes   string             `json:"notes"`
}

// OrderItemResponse representa uma linha na resposta de pedido
type OrderItemResponse struct {
	ID              int64   `json:"id"`
	UUID            string  `json:"uuid"`
	ProductID       int64   `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	TotalAmount     float64 `json:"total_amount"`
}

// OrderResponse representa a resposta de pedido
type OrderResponse struct {
	ID             int64               `json:"id"`
	UUID           string              `json:"uuid"`
	ClientID       int64               `json:"client_id"`
	Subtotal       float64             `json:"subtotal"`
	DiscountAmount float64             `json:"discount_amount"`
	FeeAmount      float64             `json:"fee_amount"`
	TotalAmount    float64             `json:"total_amount"`
	Status         string              `json:"status"`
	Notes          string              `json:"notes"`
	ConfirmedAt    *time.Time          `json:"confirmed_at,omitempty"`
	ShippedAt      *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time          `json:"delivered_at,omitempty"`
	CancelledAt    *time.Time          `json:"cancelled_at,omitempty"`
	Items          []OrderItemResponse `json:"items"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// OrderListResponse representa a resposta de lista de pedidos
type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}

// ToOrderItemResponse converte uma entidade Item para OrderItemResponse
func ToOrderItemResponse(item *order.Item) OrderItemResponse {
	return OrderItemResponse{
		ID:              item.ID,
		UUID:            item.UUID,
		ProductID:       item.ProductID,
		ProductName:     item.ProductName,
		Quantity:        item.Quantity,
		UnitPrice:       item.UnitPrice,
		DiscountPercent: item.DiscountPercent,
		DiscountAmount:  item.DiscountAmount,
		TotalAmount:     item.TotalAmount,
	}
}

// ToOrderResponse converte uma entidade Order para OrderResponse
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = ToOrderItemResponse(item)
	}

	return OrderResponse{
		ID:             o.ID,
		UUID:           o.UUID,
		ClientID:       o.ClientID,
		Subtotal:       o.Subtotal,
		DiscountAmount: o.DiscountAmount,
		FeeAmount:      o.FeeAmount,
		TotalAmount:    o.TotalAmount,
		Status:         string(o.Status),
		Notes:          o.Notes,
		ConfirmedAt:    o.ConfirmedAt,
		ShippedAt:      o.ShippedAt,
		DeliveredAt:    o.DeliveredAt,
		CancelledAt:    o.CancelledAt,
		Items:          items,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// ToOrderListResponse converte uma lista de pedidos para OrderListResponse
func ToOrderListResponse(orders []*order.Order, total, page, size int) OrderListResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToOrderResponse(o)
	}

	return OrderListResponse{
		Orders:     responses,
		Pagination: NewPagination(total, page, size),
	}
}
