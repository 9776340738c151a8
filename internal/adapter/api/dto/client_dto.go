package dto

import (
	"time"

	"github.com/carvasys/carvasys-api/internal/domain/client"
)

// ClientRequest representa a requisição de criação/atualização de cliente
type ClientRequest struct {
	Name         string `json:"name" binding:"required"`
	DocumentType string `json:"document_type" binding:"omitempty,oneof=cpf cnpj"`
	Document     string `json:"document" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
}

// ClientResponse representa a resposta de cliente
type ClientResponse struct {
	ID           int64     `json:"id"`
	UUID         string    `json:"uuid"`
	Name         string    `json:"name"`
	DocumentType string    `json:"document_type"`
	Document     string    `json:"document"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ClientListResponse representa a resposta de lista de clientes
type ClientListResponse struct {
	Clients    []ClientResponse `json:"clients"`
	Pagination Pagination       `json:"pagination"`
}

// ToClientResponse converte uma entidade Client para ClientResponse
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:           c.ID,
		UUID:         c.UUID,
		Name:         c.Name,
		DocumentType: string(c.DocumentType),
		Document:     c.Document,
		Email:        c.Email,
		Phone:        c.Phone,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ToClientListResponse converte uma lista de clientes para ClientListResponse
func ToClientListResponse(clients []*client.Client, total, page, size int) ClientListResponse {
	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = ToClientResponse(c)
	}

	return ClientListResponse{
		Clients:    responses,
		Pagination: NewPagination(total, page, size),
	}
}
