package favored

import (
	"context"
	"time"
)

// Filter define os filtros de listagem de lançamentos de fiado
type Filter struct {
	ClientID *int64
	OnlyOpen bool
	DateFrom *time.Time
	DateTo   *time.Time
}

// Repository define a interface para operações de repositório do livro de fiado
type Repository interface {
	// Create cria um novo lançamento
	Create(ctx context.Context, t *Transaction) error

	// FindByUUID busca um lançamento pelo UUID dentro de uma empresa
	FindByUUID(ctx context.Context, companyID int64, uuid string) (*Transaction, error)

	// ListByCompany lista os lançamentos de uma empresa aplicando filtros
	ListByCompany(ctx context.Context, companyID int64, filter Filter, limit, offset int) ([]*Transaction, error)

	// CountByCompany conta os lançamentos de uma empresa aplicando filtros
	CountByCompany(ctx context.Context, companyID int64, filter Filter) (int, error)

	// ListUpcoming lista lançamentos em aberto ordenados por vencimento
	ListUpcoming(ctx context.Context, companyID, clientID int64, limit int) ([]*Transaction, error)

	// Update atualiza um lançamento existente
	Update(ctx context.Context, t *Transaction) error

	// Delete remove um lançamento de uma empresa
	Delete(ctx context.Context, companyID, id int64) error

	// RegisterPayment incrementa o valor pago do lançamento dentro de uma
	// transação com bloqueio de linha, evitando perda de atualização entre
	// pagamentos concorrentes. Retorna o lançamento atualizado.
	RegisterPayment(ctx context.Context, companyID int64, uuid string, amount float64) (*Transaction, error)

	// SummaryByClient agrega dívida, pagamentos e saldo de um cliente
	SummaryByClient(ctx context.Context, companyID, clientID int64) (*Summary, error)

	// OverdueAmount soma o saldo vencido e não quitado de um cliente
	OverdueAmount(ctx context.Context, companyID, clientID int64, reference time.Time) (float64, error)

	// ClientsWithTransactions lista clientes da empresa com agregados do fiado
	ClientsWithTransactions(ctx context.Context, companyID int64) ([]*ClientAggregate, error)
}

// ClientAggregate representa a visão por cliente do livro de fiado
type ClientAggregate struct {
	ClientID         int64   `json:"client_id"`
	ClientUUID       string  `json:"client_uuid"`
	ClientName       string  `json:"client_name"`
	Document         string  `json:"document"`
	TransactionCount int     `json:"transaction_count"`
	TotalDebt        float64 `json:"total_debt"`
	PaidAmount       float64 `json:"paid_amount"`
}
