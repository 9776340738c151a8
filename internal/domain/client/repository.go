package client

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Client) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id int64) (*Client, error)

	// FindByUUID busca um cliente pelo UUID
	FindByUUID(ctx context.Context, uuid string) (*Client, error)

	// FindByDocument busca um cliente pelo documento (CPF/CNPJ)
	FindByDocument(ctx context.Context, document string) (*Client, error)

	// ListByCompany lista os clientes com vínculo ativo em uma empresa
	ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*Client, error)

	// CountByCompany conta os clientes com vínculo ativo em uma empresa
	CountByCompany(ctx context.Context, companyID int64) (int, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Client) error

	// AttachCompany cria (ou reativa) o vínculo do cliente com a empresa
	AttachCompany(ctx context.Context, clientID, companyID int64) error

	// DetachCompany desativa o vínculo do cliente com a empresa (soft-disable)
	DetachCompany(ctx context.Context, clientID, companyID int64) error
}
