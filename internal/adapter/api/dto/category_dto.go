package dto

import (
	"time"

	"github.com/carvasys/carvasys-api/internal/domain/category"
)

// CategoryRequest representa a requisição de criação/atualização de categoria
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse representa a resposta de categoria
type CategoryResponse struct {
	ID        int64     `json:"id"`
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse representa a resposta de lista de categorias
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converte uma entidade Category para CategoryResponse
func ToCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		UUID:      c.UUID,
		Name:      c.Name,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCategoryListResponse converte uma lista de categorias para CategoryListResponse
func ToCategoryListResponse(categories []*category.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(c)
	}

	return CategoryListResponse{Categories: responses}
}
