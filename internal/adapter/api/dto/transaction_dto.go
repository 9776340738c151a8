package dto

import (
	"time"

	"github.com/carvasys/carvasys-api/internal/domain/transaction"
)

// TransactionRequest representa a requisição de registro de venda
type TransactionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	ProductUUID string  `json:"product_uuid"`
	FeeUUID     string  `json:"fee_uuid"`
	ClientUUID  string  `json:"client_uuid"`
	Amount      float64 `json:"amount" binding:"min=0"`
	Discounts   float64 `json:"discounts" binding:"min=0"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
}

// TransactionResponse representa a resposta de registro de venda
type TransactionResponse struct {
	ID           int64     `json:"id"`
	UUID         string    `json:"uuid"`
	ProductID    *int64    `json:"product_id,omitempty"`
	FeeID        *int64    `json:"fee_id,omitempty"`
	ClientID     *int64    `json:"client_id,omitempty"`
	CategoryID   *int64    `json:"category_id,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
	Discounts    float64   `json:"discounts"`
	Fees         float64   `json:"fees"`
	TotalAmount  float64   `json:"total_amount"`
	Quantity     int       `json:"quantity"`
	CategoryName string    `json:"category_name"`
	ClientName   string    `json:"client_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// TransactionListResponse representa a resposta de lista de vendas
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

// ToTransactionResponse converte uma entidade Transaction para TransactionResponse
func ToTransactionResponse(t *transaction.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		UUID:         t.UUID,
		ProductID:    t.ProductID,
		FeeID:        t.FeeID,
		ClientID:     t.ClientID,
		CategoryID:   t.CategoryID,
		Name:         t.Name,
		Description:  t.Description,
		Amount:       t.Amount,
		Discounts:    t.Discounts,
		Fees:         t.Fees,
		TotalAmount:  t.TotalAmount,
		Quantity:     t.Quantity,
		CategoryName: t.Snapshot.CategoryName,
		ClientName:   t.Snapshot.ClientName,
		CreatedAt:    t.CreatedAt,
	}
}

// ToTransactionListResponse converte uma lista de vendas para TransactionListResponse
func ToTransactionListResponse(transactions []*transaction.Transaction, total, page, size int) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}

	return TransactionListResponse{
		Transactions: responses,
		Pagination:   NewPagination(total, page, size),
	}
}
