package company

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrInvalidRating  = errors.New("avaliação deve estar entre 0 e 5")
	ErrCompanyInvalid = errors.New("empresa inválida")
)

// Status representa o estado da empresa no sistema
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// MarketplaceType define o segmento da empresa no marketplace
type MarketplaceType string

const (
	TypeGrocery    MarketplaceType = "grocery"    // Mercearia
	TypeButcher    MarketplaceType = "butcher"    // Açougue
	TypeBakery     MarketplaceType = "bakery"     // Padaria
	TypeRestaurant MarketplaceType = "restaurant" // Restaurante
	TypeOther      MarketplaceType = "other"      // Outros segmentos
)

// Company representa uma empresa (tenant) no sistema multi-tenant.
// Todo dado de catálogo, transação e fiado é particionado por ela.
type Company struct {
	ID              int64           `json:"id"`
	UUID            string          `json:"uuid"`
	Name            string          `json:"name"`
	Status          Status          `json:"status"`
	MarketplaceType MarketplaceType `json:"marketplace_type"`
	Rating          float64         `json:"rating"`
	LogoURL         string          `json:"logo_url"`
	FoundationDate  *time.Time      `json:"foundation_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewCompany cria uma nova empresa
func NewCompany(name string, marketplaceType MarketplaceType) (*Company, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if marketplaceType == "" {
		marketplaceType = TypeOther
	}

	now := time.Now()
	return &Company{
		UUID:            uuid.New().String(),
		Name:            name,
		Status:          StatusActive,
		MarketplaceType: marketplaceType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// IsActive verifica se a empresa está ativa
func (c *Company) IsActive() bool {
	return c.Status == StatusActive
}

// Activate ativa a empresa
func (c *Company) Activate() {
	c.Status = StatusActive
	c.UpdatedAt = time.Now()
}

// Deactivate desativa a empresa
func (c *Company) Deactivate() {
	c.Status = StatusInactive
	c.UpdatedAt = time.Now()
}

// UpdateRating atualiza a avaliação da empresa no marketplace
func (c *Company) UpdateRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return ErrInvalidRating
	}
	c.Rating = rating
	c.UpdatedAt = time.Now()
	return nil
}

// UpdateMetadata atualiza os metadados de marketplace da empresa
func (c *Company) UpdateMetadata(marketplaceType MarketplaceType, logoURL string) {
	if marketplaceType != "" {
		c.MarketplaceType = marketplaceType
	}
	c.LogoURL = logoURL
	c.UpdatedAt = time.Now()
}
