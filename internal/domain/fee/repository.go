package fee

import (
	"context"
)

// Repository define a interface para operações de repositório de taxas
type Repository interface {
	// Create cria uma nova taxa
	Create(ctx context.Context, f *Fee) error

	// FindByID busca uma taxa pelo ID dentro de uma empresa
	FindByID(ctx context.Context, companyID, id int64) (*Fee, error)

	// FindByUUID busca uma taxa pelo UUID dentro de uma empresa
	FindByUUID(ctx context.Context, companyID int64, uuid string) (*Fee, error)

	// ListByCompany lista as taxas de uma empresa
	ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*Fee, error)

	// Update atualiza uma taxa existente
	Update(ctx context.Context, f *Fee) error

	// Delete remove uma taxa de uma empresa
	Delete(ctx context.Context, companyID, id int64) error
}
