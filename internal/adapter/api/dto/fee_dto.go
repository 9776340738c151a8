package dto

import (
	"time"

	"github.com/carvasys/carvasys-api/internal/domain/fee"
)

// FeeRequest representa a requisição de criação/atualização de taxa
type FeeRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"min=0"`
	Type        string  `json:"type" binding:"required,oneof=percentage fixed"`
}

// FeeResponse representa a resposta de taxa
type FeeResponse struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FeeListResponse representa a resposta de lista de taxas
type FeeListResponse struct {
	Fees []FeeResponse `json:"fees"`
}

// ToFeeResponse converte uma entidade Fee para FeeResponse
func ToFeeResponse(f *fee.Fee) FeeResponse {
	return FeeResponse{
		ID:          f.ID,
		UUID:        f.UUID,
		Description: f.Description,
		Amount:      f.Amount,
		Type:        string(f.Type),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// ToFeeListResponse converte uma lista de taxas para FeeListResponse
func ToFeeListResponse(fees []*fee.Fee) FeeListResponse {
	responses := make([]FeeResponse, len(fees))
	for i, f := range fees {
		responses[i] = ToFeeResponse(f)
	}

	return FeeListResponse{Fees: responses}
}
