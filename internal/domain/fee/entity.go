package fee

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription = errors.New("descrição não pode ser vazia")
	ErrInvalidType      = errors.New("tipo de taxa inválido")
	ErrNegativeAmount   = errors.New("valor da taxa não pode ser negativo")
)

// Type define como a taxa é aplicada sobre um valor base
type Type string

const (
	TypePercentage Type = "percentage" // Percentual sobre o valor base
	TypeFixed      Type = "fixed"      // Valor fixo somado ao total
)

// Fee representa uma taxa cobrada por uma empresa
type Fee struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	CompanyID   int64     `json:"company_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        Type      `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewFee cria uma nova taxa
func NewFee(companyID int64, description string, amount float64, feeType Type) (*Fee, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}

	if amount < 0 {
		return nil, ErrNegativeAmount
	}

	if feeType != TypePercentage && feeType != TypeFixed {
		return nil, ErrInvalidType
	}

	now := time.Now()
	return &Fee{
		UUID:        uuid.New().String(),
		CompanyID:   companyID,
		Description: description,
		Amount:      amount,
		Type:        feeType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Apply calcula o valor da taxa sobre um valor base
func (f *Fee) Apply(base float64) float64 {
	if f.Type == TypePercentage {
		return base * (f.Amount / 100)
	}
	return f.Amount
}

// Update atualiza os dados da taxa
func (f *Fee) Update(description string, amount float64, feeType Type) error {
	if description == "" {
		return ErrEmptyDescription
	}

	if amount < 0 {
		return ErrNegativeAmount
	}

	if feeType != TypePercentage && feeType != TypeFixed {
		return ErrInvalidType
	}

	f.Description = description
	f.Amount = amount
	f.Type = feeType
	f.UpdatedAt = time.Now()

	return nil
}
