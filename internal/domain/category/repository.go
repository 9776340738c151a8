package category

import (
	"context"
)

// Repository define a interface para operações de repositório de categorias
type Repository interface {
	// Create cria uma nova categoria
	Create(ctx context.Context, c *Category) error

	// FindByUUID busca uma categoria pelo UUID dentro de uma empresa
	FindByUUID(ctx context.Context, companyID int64, uuid string) (*Category, error)

	// FindByID busca uma categoria pelo ID dentro de uma empresa
	FindByID(ctx context.Context, companyID, id int64) (*Category, error)

	// ListByCompany lista as categorias de uma empresa
	ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*Category, error)

	// Update atualiza uma categoria existente
	Update(ctx context.Context, c *Category) error

	// Delete remove uma categoria de uma empresa
	Delete(ctx context.Context, companyID, id int64) error
}
