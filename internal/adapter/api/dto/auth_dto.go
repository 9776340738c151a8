package dto

import (
	"time"

	"github.com/carvasys/carvasys-api/internal/domain/clientuser"
)

// RegisterRequest representa a requisição de cadastro no portal do cliente
type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	DocumentType string `json:"document_type" binding:"omitempty,oneof=cpf cnpj"`
	Document     string `json:"document" binding:"required"`
	Phone        string `json:"phone"`
}

// LoginRequest representa a requisição de login no portal do cliente
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ClientUserResponse representa a resposta de usuário do portal
type ClientUserResponse struct {
	ID             int64      `json:"id"`
	UUID           string     `json:"uuid"`
	ClientID       int64      `json:"client_id"`
	Email          string     `json:"email"`
	DocumentType   string     `json:"document_type"`
	DocumentNumber string     `json:"document_number"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// LoginResponse representa a resposta de autenticação com token JWT
type LoginResponse struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
	User      ClientUserResponse `json:"user"`
}

// ToClientUserResponse converte uma entidade ClientUser para ClientUserResponse
func ToClientUserResponse(u *clientuser.ClientUser) ClientUserResponse {
	return ClientUserResponse{
		ID:             u.ID,
		UUID:           u.UUID,
		ClientID:       u.ClientID,
		Email:          u.Email,
		DocumentType:   u.DocumentType,
		DocumentNumber: u.DocumentNumber,
		LastLoginAt:    u.LastLoginAt,
		CreatedAt:      u.CreatedAt,
	}
}
