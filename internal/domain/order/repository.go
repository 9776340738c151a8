package order

import (
	"context"
	"time"
)

// Filter define os filtros de listagem de pedidos dentro de uma empresa
type Filter struct {
	ClientID *int64
	Status   *Status
	DateFrom *time.Time
	DateTo   *time.Time
}

// Repository define a interface para operações de repositório de pedidos
type Repository interface {
	// Create persiste o pedido e seus itens atomicamente
	Create(ctx context.Context, o *Order) error

	// FindByUUID busca um pedido (com itens) pelo UUID dentro de uma empresa
	FindByUUID(ctx context.Context, companyID int64, uuid string) (*Order, error)

	// ListByCompany lista os pedidos de uma empresa aplicando filtros
	ListByCompany(ctx context.Context, companyID int64, filter Filter, limit, offset int) ([]*Order, error)

	// CountByCompany conta os pedidos de uma empresa aplicando filtros
	CountByCompany(ctx context.Context, companyID int64, filter Filter) (int, error)

	// UpdateStatus persiste status e carimbos de transição do pedido
	UpdateStatus(ctx context.Context, o *Order) error

	// UpdateTotals persiste subtotal, descontos, taxas e total do pedido
	UpdateTotals(ctx context.Context, o *Order) error
}
