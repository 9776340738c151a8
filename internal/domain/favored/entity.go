package favored

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("nome não pode ser vazio")
	ErrInvalidQuantity    = errors.New("quantidade deve ser maior que zero")
	ErrInvalidPayment     = errors.New("valor de pagamento deve ser maior que zero")
	ErrPaymentExceedsDebt = errors.New("valor de pagamento excede o saldo devedor")
)

// Snapshot guarda cópias desnormalizadas no momento da venda fiado.
// Não acompanham alterações posteriores no catálogo ou no cadastro.
type Snapshot struct {
	CategoryName string `json:"category_name"`
	ClientName   string `json:"client_name"`
}

// Transaction representa um lançamento no livro de fiado: mercadoria
// entregue contra promessa de pagamento futuro. FavoredTotal é o valor
// devido e FavoredPaidAmount o quanto já foi pago.
type Transaction struct {
	ID                int64      `json:"id"`
	UUID              string     `json:"uuid"`
	CompanyID         int64      `json:"company_id"`
	ClientID          int64      `json:"client_id"`
	ProductID         *int64     `json:"product_id,omitempty"`
	CategoryID        *int64     `json:"category_id,omitempty"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Amount            float64    `json:"amount"`
	Discounts         float64    `json:"discounts"`
	TotalAmount       float64    `json:"total_amount"`
	FavoredTotal      float64    `json:"favored_total"`
	FavoredPaidAmount float64    `json:"favored_paid_amount"`
	Quantity          int        `json:"quantity"`
	Image             string     `json:"image"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	Active            bool       `json:"active"`
	Snapshot          Snapshot   `json:"snapshot"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// NewTransaction cria um lançamento de fiado. Campos de valor omitidos
// assumem o valor do campo irmão presente: favored_total cai para
// total_amount, que cai para amount; tudo ausente resulta em zero.
// FavoredPaidAmount sempre inicia em zero (ou no valor informado).
func NewTransaction(companyID, clientID int64, name string, amount, totalAmount, favoredTotal, paidAmount float64, quantity int, snapshot Snapshot) (*Transaction, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if totalAmount == 0 {
		totalAmount = amount
	}
	if favoredTotal == 0 {
		favoredTotal = totalAmount
	}

	now := time.Now()
	return &Transaction{
		UUID:              uuid.New().String(),
		CompanyID:         companyID,
		ClientID:          clientID,
		Name:              name,
		Amount:            amount,
		TotalAmount:       totalAmount,
		FavoredTotal:      favoredTotal,
		FavoredPaidAmount: paidAmount,
		Quantity:          quantity,
		Active:            true,
		Snapshot:          snapshot,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// RemainingBalance retorna o saldo devedor do lançamento. Não há piso em
// zero: sobre-pagamento resulta legitimamente em saldo negativo.
func (t *Transaction) RemainingBalance() float64 {
	return t.FavoredTotal - t.FavoredPaidAmount
}

// IsFullyPaid verifica se o lançamento está quitado
func (t *Transaction) IsFullyPaid() bool {
	return t.FavoredPaidAmount >= t.FavoredTotal
}

// RegisterPayment registra um pagamento parcial ou total. Rejeita valores
// não positivos e valores que excedam o saldo devedor atual, sem mutação.
func (t *Transaction) RegisterPayment(amount float64) error {
	if amount <= 0 {
		return ErrInvalidPayment
	}

	if amount > t.RemainingBalance() {
		return ErrPaymentExceedsDebt
	}

	t.FavoredPaidAmount += amount
	t.UpdatedAt = time.Now()

	return nil
}

// SetDueDate define a data de vencimento do lançamento
func (t *Transaction) SetDueDate(dueDate *time.Time) {
	t.DueDate = dueDate
	t.UpdatedAt = time.Now()
}

// Update atualiza os dados do lançamento mantendo o defaulting de valores
func (t *Transaction) Update(name, description string, amount, favoredTotal float64, quantity int) error {
	if name == "" {
		return ErrEmptyName
	}

	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	t.Name = name
	t.Description = description
	t.Amount = amount
	t.TotalAmount = amount
	if favoredTotal != 0 {
		t.FavoredTotal = favoredTotal
	} else {
		t.FavoredTotal = amount
	}
	t.Quantity = quantity
	t.UpdatedAt = time.Now()

	return nil
}

// Summary agrega o livro de fiado de um cliente dentro de uma empresa.
// É uma redução pura do lado de leitura, recalculada a cada requisição.
type Summary struct {
	TotalDebt        float64 `json:"total_debt"`
	TotalPaid        float64 `json:"total_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
	TotalItems       int     `json:"total_items"`
	OpenEntries      int     `json:"open_entries"`
}
