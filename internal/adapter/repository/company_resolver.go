package repository

import (
	"context"
	"errors"

	"github.com/carvasys/carvasys-api/internal/domain/company"
	"github.com/carvasys/carvasys-api/pkg/tenant"
)

// CompanyResolver implementa tenant.Resolver sobre o repositório de empresas
type CompanyResolver struct {
	repository company.Repository
}

// NewCompanyResolver cria uma nova instância de CompanyResolver
func NewCompanyResolver(repository company.Repository) tenant.Resolver {
	return &CompanyResolver{
		repository: repository,
	}
}

// Resolve implementa tenant.Resolver.Resolve
func (r *CompanyResolver) Resolve(ctx context.Context, key string) (*company.Company, error) {
	c, err := r.repository.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			return nil, tenant.ErrCompanyNotFound
		}
		return nil, err
	}

	return c, nil
}

// CanAccess implementa tenant.Resolver.CanAccess
func (r *CompanyResolver) CanAccess(ctx context.Context, companyID, clientID int64) (bool, error) {
	return r.repository.HasActiveMembership(ctx, companyID, clientID)
}
