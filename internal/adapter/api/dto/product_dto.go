package dto

import (
	"time"

	"github.com/carvasys/carvasys-api/internal/domain/product"
)

// ProductRequest representa a requisição de criação/atualização de produto
type ProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	CategoryID   *int64   `json:"category_id"`
	Amount       float64  `json:"amount" binding:"min=0"`
	Discounts    float64  `json:"discounts" binding:"min=0"`
	Quantity     int      `json:"quantity"`
	Image        string   `json:"image"`
	FavoredPrice *float64 `json:"favored_price"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID           int64     `json:"id"`
	UUID         string    `json:"uuid"`
	CategoryID   *int64    `json:"category_id,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
	Discounts    float64   `json:"discounts"`
	TotalAmount  float64   `json:"total_amount"`
	Quantity     int       `json:"quantity"`
	Image        string    `json:"image"`
	Active       bool      `json:"active"`
	IsForFavored bool      `json:"is_for_favored"`
	FavoredPrice *float64  `json:"favored_price,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination Pagination        `json:"pagination"`
}

// ToProductResponse converte uma entidade Product para ProductResponse
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		UUID:         p.UUID,
		CategoryID:   p.CategoryID,
		Name:         p.Name,
		Description:  p.Description,
		Amount:       p.Amount,
		Discounts:    p.Discounts,
		TotalAmount:  p.TotalAmount,
		Quantity:     p.Quantity,
		Image:        p.Image,
		Active:       p.Active,
		IsForFavored: p.IsForFavored,
		FavoredPrice: p.FavoredPrice,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos para ProductListResponse
func ToProductListResponse(products []*product.Product, total, page, size int) ProductListResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p)
	}

	return ProductListResponse{
		Products:   responses,
		Pagination: NewPagination(total, page, size),
	}
}
