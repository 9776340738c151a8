package tenant

import (
	"context"

	"github.com/carvasys/carvasys-api/internal/domain/company"
)

type contextKey string

const companyKey contextKey = "current_company"

// SetCompanyContext vincula a empresa resolvida ao contexto da requisição.
// O vínculo vive apenas no contexto, nunca em estado global de processo,
// para que requisições concorrentes não vazem tenant umas nas outras.
func SetCompanyContext(ctx context.Context, c *company.Company) context.Context {
	return context.WithValue(ctx, companyKey, c)
}

// CompanyFromContext obtém a empresa vinculada ao contexto, se houver
func CompanyFromContext(ctx context.Context) (*company.Company, bool) {
	c, ok := ctx.Value(companyKey).(*company.Company)
	return c, ok
}

// CompanyID obtém o ID da empresa vinculada ao contexto, ou zero
func CompanyID(ctx context.Context) int64 {
	if c, ok := CompanyFromContext(ctx); ok {
		return c.ID
	}
	return 0
}
