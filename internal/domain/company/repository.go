package company

import (
	"context"
)

// Repository define a interface para operações de repositório de empresas
type Repository interface {
	// Create cria uma nova empresa
	Create(ctx context.Context, c *Company) error

	// FindByID busca uma empresa pelo ID numérico
	FindByID(ctx context.Context, id int64) (*Company, error)

	// FindByUUID busca uma empresa pelo UUID
	FindByUUID(ctx context.Context, uuid string) (*Company, error)

	// FindByKey busca uma empresa aceitando UUID ou ID numérico
	FindByKey(ctx context.Context, key string) (*Company, error)

	// List lista as empresas com paginação
	List(ctx context.Context, limit, offset int) ([]*Company, error)

	// ListByClient lista as empresas às quais um cliente tem vínculo ativo
	ListByClient(ctx context.Context, clientID int64) ([]*Company, error)

	// Update atualiza os dados de uma empresa existente
	Update(ctx context.Context, c *Company) error

	// UpdateStatus atualiza o status de uma empresa
	UpdateStatus(ctx context.Context, id int64, status Status) error

	// Count conta quantas empresas existem
	Count(ctx context.Context) (int, error)

	// HasActiveMembership verifica se o cliente possui vínculo ativo com a empresa
	HasActiveMembership(ctx context.Context, companyID, clientID int64) (bool, error)
}
