package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrNegativeAmount = errors.New("valor não pode ser negativo")
)

// Product representa um item do catálogo de uma empresa.
// TotalAmount é derivado: sempre igual ao valor bruto menos os descontos,
// com piso em zero, recalculado a cada alteração de valor ou desconto.
type Product struct {
	ID           int64     `json:"id"`
	UUID         string    `json:"uuid"`
	CompanyID    int64     `json:"company_id"`
	CategoryID   *int64    `json:"category_id,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`    // Valor bruto
	Discounts    float64   `json:"discounts"` // Descontos aplicados
	TotalAmount  float64   `json:"total_amount"`
	Quantity     int       `json:"quantity"`
	Image        string    `json:"image"`
	Active       bool      `json:"active"`
	IsForFavored bool      `json:"is_for_favored"` // Disponível para venda fiado
	FavoredPrice *float64  `json:"favored_price,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(companyID int64, name string, amount, discounts float64, quantity int) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if amount < 0 || discounts < 0 {
		return nil, ErrNegativeAmount
	}

	now := time.Now()
	p := &Product{
		UUID:      uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		Amount:    amount,
		Discounts: discounts,
		Quantity:  quantity,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.recalculate()

	return p, nil
}

// recalculate mantém o invariante TotalAmount = max(0, Amount - Discounts)
func (p *Product) recalculate() {
	total := p.Amount - p.Discounts
	if total < 0 {
		total = 0
	}
	p.TotalAmount = total
}

// SetPricing altera valor bruto e descontos, recalculando o total
func (p *Product) SetPricing(amount, discounts float64) error {
	if amount < 0 || discounts < 0 {
		return ErrNegativeAmount
	}

	p.Amount = amount
	p.Discounts = discounts
	p.recalculate()
	p.UpdatedAt = time.Now()

	return nil
}

// SetFavoredPricing configura o produto para venda fiado com preço próprio
func (p *Product) SetFavoredPricing(price *float64) {
	p.IsForFavored = price != nil
	p.FavoredPrice = price
	p.UpdatedAt = time.Now()
}

// Update atualiza os dados cadastrais do produto
func (p *Product) Update(name, description, image string, categoryID *int64, quantity int) error {
	if name == "" {
		return ErrEmptyName
	}

	p.Name = name
	p.Description = description
	p.Image = image
	p.CategoryID = categoryID
	p.Quantity = quantity
	p.UpdatedAt = time.Now()

	return nil
}

// Deactivate desativa o produto
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}

// Activate ativa o produto
func (p *Product) Activate() {
	p.Active = true
	p.UpdatedAt = time.Now()
}
