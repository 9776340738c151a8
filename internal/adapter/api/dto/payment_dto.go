package dto

// PaymentIntentRequest representa a requisição de criação de intenção de pagamento
type PaymentIntentRequest struct {
	FavoredUUID string  `json:"favored_uuid" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

// PaymentIntentResponse representa a resposta de intenção de pagamento
type PaymentIntentResponse struct {
	IntentID     string  `json:"intent_id"`
	ClientSecret string  `json:"client_secret"`
	Status       string  `json:"status"`
	Amount       float64 `json:"amount"`
}

// PaymentConfirmRequest representa a requisição de confirmação de pagamento
type PaymentConfirmRequest struct {
	IntentID    string `json:"intent_id" binding:"required"`
	FavoredUUID string `json:"favored_uuid" binding:"required"`
}
