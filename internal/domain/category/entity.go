package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("nome não pode ser vazio")

// Category representa uma categoria de produtos de uma empresa
type Category struct {
	ID        int64     `json:"id"`
	UUID      string    `json:"uuid"`
	CompanyID int64     `json:"company_id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCategory cria uma nova categoria
func NewCategory(companyID int64, name string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Category{
		UUID:      uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename altera o nome da categoria
func (c *Category) Rename(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// Deactivate desativa a categoria
func (c *Category) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
}
