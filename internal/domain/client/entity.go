package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyDocument = errors.New("documento não pode ser vazio")
)

// DocumentType define o tipo de documento do cliente
type DocumentType string

const (
	DocumentCPF  DocumentType = "cpf"  // Pessoa Física
	DocumentCNPJ DocumentType = "cnpj" // Pessoa Jurídica
)

// Client representa o titular do crédito (fiado) no sistema.
// Um cliente pode estar vinculado a várias empresas via client_company;
// o desligamento é feito pelo flag is_active do vínculo, nunca por exclusão.
type Client struct {
	ID           int64        `json:"id"`
	UUID         string       `json:"uuid"`
	Name         string       `json:"name"`
	DocumentType DocumentType `json:"document_type"`
	Document     string       `json:"document"` // CPF/CNPJ
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Active       bool         `json:"active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Membership representa o vínculo N:N entre cliente e empresa
type Membership struct {
	ClientID  int64     `json:"client_id"`
	CompanyID int64     `json:"company_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewClient cria um novo cliente
func NewClient(name string, documentType DocumentType, document string) (*Client, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if document == "" {
		return nil, ErrEmptyDocument
	}

	if documentType == "" {
		documentType = DocumentCPF
	}

	now := time.Now()
	return &Client{
		UUID:         uuid.New().String(),
		Name:         name,
		DocumentType: documentType,
		Document:     document,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsActive verifica se o cliente está ativo
func (c *Client) IsActive() bool {
	return c.Active
}

// Deactivate desativa o cliente
func (c *Client) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
}

// Activate ativa o cliente
func (c *Client) Activate() {
	c.Active = true
	c.UpdatedAt = time.Now()
}

// Update atualiza os dados cadastrais do cliente
func (c *Client) Update(name, email, phone string) error {
	if name == "" {
		return ErrEmptyName
	}

	c.Name = name
	c.Email = email
	c.Phone = phone
	c.UpdatedAt = time.Now()

	return nil
}
