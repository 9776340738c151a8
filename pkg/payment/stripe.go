package payment

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// Erros específicos
var (
	ErrMissingStripeKey = errors.New("chave secreta do Stripe não configurada")
	ErrIntentNotSucceed = errors.New("pagamento não foi concluído no Stripe")
)

// Intent é a visão estreita de um PaymentIntent usada pelo sistema
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       float64 // Em reais
}

// StripeService encapsula o contrato mínimo com o Stripe:
// criar e consultar intenções de pagamento. O restante do protocolo
// é responsabilidade do colaborador externo.
type StripeService struct{}

// NewStripeService cria o serviço configurando a chave da API
func NewStripeService() (*StripeService, error) {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return nil, ErrMissingStripeKey
	}

	stripe.Key = key
	return &StripeService{}, nil
}

// CreateIntent cria uma intenção de pagamento em BRL. O valor é recebido
// em reais e convertido para centavos na chamada.
func (s *StripeService) CreateIntent(amount float64, description string, metadata map[string]string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(math.Round(amount * 100))),
		Currency:    stripe.String(string(stripe.CurrencyBRL)),
		Description: stripe.String(description),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar intenção de pagamento: %w", err)
	}

	return fromStripe(pi), nil
}

// RetrieveIntent consulta uma intenção de pagamento existente
func (s *StripeService) RetrieveIntent(intentID string) (*Intent, error) {
	pi, err := paymentintent.Get(intentID, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar intenção de pagamento: %w", err)
	}

	return fromStripe(pi), nil
}

// Succeeded verifica se a intenção foi concluída com sucesso
func (i *Intent) Succeeded() bool {
	return i.Status == string(stripe.PaymentIntentStatusSucceeded)
}

func fromStripe(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       float64(pi.Amount) / 100,
	}
}
