package dto

import (
	"time"

	"github.com/carvasys/carvasys-api/internal/domain/favored"
)

// FavoredRequest representa a requisição de lançamento no livro de fiado
type FavoredRequest struct {
	ClientUUID   string     `json:"client_uuid" binding:"required"`
	ProductUUID  string     `json:"product_uuid"`
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	Amount       float64    `json:"amount" binding:"min=0"`
	TotalAmount  float64    `json:"total_amount" binding:"min=0"`
	FavoredTotal float64    `json:"favored_total" binding:"min=0"`
	PaidAmount   float64    `json:"paid_amount" binding:"min=0"`
	Quantity     int        `json:"quantity" binding:"required,min=1"`
	DueDate      *time.Time `json:"due_date"`
}

// FavoredUpdateRequest representa a requisição de atualização de lançamento
type FavoredUpdateRequest struct {
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	Amount       float64    `json:"amount" binding:"min=0"`
	FavoredTotal float64    `json:"favored_total" binding:"min=0"`
	Quantity     int        `json:"quantity" binding:"required,min=1"`
	DueDate      *time.Time `json:"due_date"`
}

// FavoredPaymentRequest representa a requisição de pagamento de fiado
type FavoredPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// FavoredResponse representa a resposta de lançamento de fiado
type FavoredResponse struct {
	ID                int64      `json:"id"`
	UUID              string     `json:"uuid"`
	ClientID          int64      `json:"client_id"`
	ProductID         *int64     `json:"product_id,omitempty"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Amount            float64    `json:"amount"`
	TotalAmount       float64    `json:"total_amount"`
	FavoredTotal      float64    `json:"favored_total"`
	FavoredPaidAmount float64    `json:"favored_paid_amount"`
	RemainingBalance  float64    `json:"remaining_balance"`
	IsFullyPaid       bool       `json:"is_fully_paid"`
	Quantity          int        `json:"quantity"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	CategoryName      string     `json:"category_name"`
	ClientName        string     `json:"client_name"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// FavoredListResponse representa a resposta de lista de lançamentos
type FavoredListResponse struct {
	Transactions []FavoredResponse `json:"transactions"`
	Pagination   Pagination        `json:"pagination"`
}

// FavoredSummaryResponse representa o resumo do fiado de um cliente
type FavoredSummaryResponse struct {
	TotalDebt        float64 `json:"total_debt"`
	TotalPaid        float64 `json:"total_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
	OverdueAmount    float64 `json:"overdue_amount"`
	TotalItems       int     `json:"total_items"`
	OpenEntries      int     `json:"open_entries"`
}

// FavoredClientResponse representa a visão por cliente do livro de fiado
type FavoredClientResponse struct {
	ClientID         int64   `json:"client_id"`
	ClientUUID       string  `json:"client_uuid"`
	ClientName       string  `json:"client_name"`
	Document         string  `json:"document"`
	TransactionCount int     `json:"transaction_count"`
	TotalDebt        float64 `json:"total_debt"`
	PaidAmount       float64 `json:"paid_amount"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// ToFavoredResponse converte uma entidade Transaction do fiado para FavoredResponse
func ToFavoredResponse(t *favored.Transaction) FavoredResponse {
	return FavoredResponse{
		ID:                t.ID,
		UUID:              t.UUID,
		ClientID:          t.ClientID,
		ProductID:         t.ProductID,
		Name:              t.Name,
		Description:       t.Description,
		Amount:            t.Amount,
		TotalAmount:       t.TotalAmount,
		FavoredTotal:      t.FavoredTotal,
		FavoredPaidAmount: t.FavoredPaidAmount,
		RemainingBalance:  t.RemainingBalance(),
		IsFullyPaid:       t.IsFullyPaid(),
		Quantity:          t.Quantity,
		DueDate:           t.DueDate,
		CategoryName:      t.Snapshot.CategoryName,
		ClientName:        t.Snapshot.ClientName,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// ToFavoredListResponse converte uma lista de lançamentos para FavoredListResponse
func ToFavoredListResponse(transactions []*favored.Transaction, total, page, size int) FavoredListResponse {
	responses := make([]FavoredResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToFavoredResponse(t)
	}

	return FavoredListResponse{
		Transactions: responses,
		Pagination:   NewPagination(total, page, size),
	}
}

// ToFavoredClientResponse converte um agregado por cliente para FavoredClientResponse
func ToFavoredClientResponse(a *favored.ClientAggregate) FavoredClientResponse {
	return FavoredClientResponse{
		ClientID:         a.ClientID,
		ClientUUID:       a.ClientUUID,
		ClientName:       a.ClientName,
		Document:         a.Document,
		TransactionCount: a.TransactionCount,
		TotalDebt:        a.TotalDebt,
		PaidAmount:       a.PaidAmount,
		RemainingBalance: a.TotalDebt - a.PaidAmount,
	}
}
