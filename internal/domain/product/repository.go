package product

import (
	"context"
)

// Filter define os filtros de listagem de produtos dentro de uma empresa
type Filter struct {
	CategoryID *int64
	Name       string
	OnlyActive bool
	ForFavored *bool
}

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID dentro de uma empresa
	FindByID(ctx context.Context, companyID, id int64) (*Product, error)

	// FindByUUID busca um produto pelo UUID dentro de uma empresa
	FindByUUID(ctx context.Context, companyID int64, uuid string) (*Product, error)

	// ListByCompany lista os produtos de uma empresa aplicando filtros
	ListByCompany(ctx context.Context, companyID int64, filter Filter, limit, offset int) ([]*Product, error)

	// CountByCompany conta os produtos de uma empresa aplicando filtros
	CountByCompany(ctx context.Context, companyID int64, filter Filter) (int, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto de uma empresa
	Delete(ctx context.Context, companyID, id int64) error
}
