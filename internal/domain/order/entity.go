package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("transição de status inválida para o pedido")
	ErrEmptyItems        = errors.New("pedido deve ter ao menos um item")
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior que zero")
	ErrInvalidDiscount   = errors.New("percentual de desconto deve estar entre 0 e 100")
)

// Status representa o estado do pedido no seu ciclo de vida
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Order representa um pedido multi-item de um cliente em uma empresa.
// Invariante: TotalAmount = Subtotal - DiscountAmount + FeeAmount,
// recalculado explicitamente após mutação dos itens.
type Order struct {
	ID             int64      `json:"id"`
	UUID           string     `json:"uuid"`
	CompanyID      int64      `json:"company_id"`
	ClientID       int64      `json:"client_id"`
	Subtotal       float64    `json:"subtotal"`
	DiscountAmount float64    `json:"discount_amount"`
	FeeAmount      float64    `json:"fee_amount"`
	TotalAmount    float64    `json:"total_amount"`
	Status         Status     `json:"status"`
	Notes          string     `json:"notes"`
	ConfirmedAt    *time.Time `json:"confirmed_at,omitempty"`
	ShippedAt      *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Items          []*Item    `json:"items,omitempty"`
}

// Item representa uma linha do pedido. ProductName é snapshot do produto
// no momento da compra e não acompanha alterações posteriores do catálogo.
// Invariantes: DiscountAmount = UnitPrice*Quantity*DiscountPercent/100 e
// TotalAmount = UnitPrice*Quantity - DiscountAmount.
type Item struct {
	ID              int64     `json:"id"`
	UUID            string    `json:"uuid"`
	OrderID         int64     `json:"order_id"`
	ProductID       int64     `json:"product_id"`
	ProductName     string    `json:"product_name"`
	Quantity        int       `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	DiscountPercent float64   `json:"discount_percent"`
	DiscountAmount  float64   `json:"discount_amount"`
	TotalAmount     float64   `json:"total_amount"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewOrder cria um novo pedido pendente
func NewOrder(companyID, clientID int64, notes string) *Order {
	now := time.Now()
	return &Order{
		UUID:      uuid.New().String(),
		CompanyID: companyID,
		ClientID:  clientID,
		Status:    StatusPending,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewItem cria uma linha de pedido a partir do preço unitário snapshotado
// do produto, calculando desconto e total
func NewItem(productID int64, productName string, quantity int, unitPrice, discountPercent float64) (*Item, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if discountPercent < 0 || discountPercent > 100 {
		return nil, ErrInvalidDiscount
	}

	now := time.Now()
	item := &Item{
		UUID:            uuid.New().String(),
		ProductID:       productID,
		ProductName:     productName,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		DiscountPercent: discountPercent,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	item.CalculateTotal()

	return item, nil
}

// CalculateTotal recalcula desconto e total da linha
func (i *Item) CalculateTotal() {
	gross := i.UnitPrice * float64(i.Quantity)
	i.DiscountAmount = gross * (i.DiscountPercent / 100)
	i.TotalAmount = gross - i.DiscountAmount
}

// CanBeApproved verifica se o pedido pode ser aprovado
func (o *Order) CanBeApproved() bool {
	return o.Status == StatusPending
}

// CanBeShipped verifica se o pedido pode ser enviado
func (o *Order) CanBeShipped() bool {
	return o.Status == StatusProcessing
}

// CanBeDelivered verifica se o pedido pode ser entregue
func (o *Order) CanBeDelivered() bool {
	return o.Status == StatusShipped
}

// CanBeCancelled verifica se o pedido pode ser cancelado
func (o *Order) CanBeCancelled() bool {
	return o.Status != StatusDelivered && o.Status != StatusCancelled
}

// Approve aprova o pedido (pending -> processing). Transições inválidas
// retornam ErrInvalidTransition e não alteram o estado.
func (o *Order) Approve() error {
	if !o.CanBeApproved() {
		return ErrInvalidTransition
	}

	now := time.Now()
	o.Status = StatusProcessing
	o.ConfirmedAt = &now
	o.UpdatedAt = now

	return nil
}

// Ship marca o pedido como enviado (processing -> shipped)
func (o *Order) Ship() error {
	if !o.CanBeShipped() {
		return ErrInvalidTransition
	}

	now := time.Now()
	o.Status = StatusShipped
	o.ShippedAt = &now
	o.UpdatedAt = now

	return nil
}

// Deliver marca o pedido como entregue (shipped -> delivered)
func (o *Order) Deliver() error {
	if !o.CanBeDelivered() {
		return ErrInvalidTransition
	}

	now := time.Now()
	o.Status = StatusDelivered
	o.DeliveredAt = &now
	o.UpdatedAt = now

	return nil
}

// Cancel cancela o pedido a partir de qualquer estado não terminal
func (o *Order) Cancel() error {
	if !o.CanBeCancelled() {
		return ErrInvalidTransition
	}

	now := time.Now()
	o.Status = StatusCancelled
	o.CancelledAt = &now
	o.UpdatedAt = now

	return nil
}

// RecalculateTotal soma os totais dos itens no subtotal e deriva o total
// do pedido. Deve ser invocado explicitamente após mutação dos itens.
func (o *Order) RecalculateTotal() {
	var subtotal float64
	for _, item := range o.Items {
		subtotal += item.TotalAmount
	}

	o.Subtotal = subtotal
	o.TotalAmount = subtotal - o.DiscountAmount + o.FeeAmount
	o.UpdatedAt = time.Now()
}

// AddItem adiciona uma linha ao pedido sem recalcular o total
func (o *Order) AddItem(item *Item) {
	o.Items = append(o.Items, item)
}
