package transaction

import (
	"context"
	"time"
)

// Filter define os filtros de listagem de transações dentro de uma empresa
type Filter struct {
	ClientID *int64
	DateFrom *time.Time
	DateTo   *time.Time
}

// Repository define a interface para operações de repositório de transações
type Repository interface {
	// Create cria um novo registro de venda
	Create(ctx context.Context, t *Transaction) error

	// FindByUUID busca uma transação pelo UUID dentro de uma empresa
	FindByUUID(ctx context.Context, companyID int64, uuid string) (*Transaction, error)

	// ListByCompany lista as transações de uma empresa aplicando filtros
	ListByCompany(ctx context.Context, companyID int64, filter Filter, limit, offset int) ([]*Transaction, error)

	// CountByCompany conta as transações de uma empresa aplicando filtros
	CountByCompany(ctx context.Context, companyID int64, filter Filter) (int, error)
}
