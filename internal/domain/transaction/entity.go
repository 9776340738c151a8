package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("nome não pode ser vazio")
	ErrInvalidQuantity = errors.New("quantidade deve ser maior que zero")
)

// Snapshot guarda cópias desnormalizadas de atributos de outras entidades
// no momento da venda. Alterações posteriores no produto ou no cliente
// NÃO devem alterar registros históricos de transação.
type Snapshot struct {
	CategoryName string `json:"category_name"`
	ClientName   string `json:"client_name"`
}

// Transaction representa um registro de venda no ponto de venda,
// combinando produto, taxa e cliente com o total desnormalizado.
// Imutável depois que os campos de snapshot são copiados na criação.
type Transaction struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	CompanyID   int64     `json:"company_id"`
	ProductID   *int64    `json:"product_id,omitempty"`
	FeeID       *int64    `json:"fee_id,omitempty"`
	ClientID    *int64    `json:"client_id,omitempty"`
	CategoryID  *int64    `json:"category_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Discounts   float64   `json:"discounts"`
	Fees        float64   `json:"fees"`
	TotalAmount float64   `json:"total_amount"`
	Quantity    int       `json:"quantity"`
	Snapshot    Snapshot  `json:"snapshot"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTransaction cria um novo registro de venda. O snapshot deve ser
// montado pelo chamador a partir do produto e cliente referenciados
// no momento da criação.
func NewTransaction(companyID int64, name string, amount, discounts, fees float64, quantity int, snapshot Snapshot) (*Transaction, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	total := amount - discounts + fees
	if total < 0 {
		total = 0
	}

	now := time.Now()
	return &Transaction{
		UUID:        uuid.New().String(),
		CompanyID:   companyID,
		Name:        name,
		Amount:      amount,
		Discounts:   discounts,
		Fees:        fees,
		TotalAmount: total,
		Quantity:    quantity,
		Snapshot:    snapshot,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
