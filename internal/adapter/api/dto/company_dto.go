package dto

import (
	"time"

	"github.com/carvasys/carvasys-api/internal/domain/company"
)

// CompanyRequest representa a requisição de criação/atualização de empresa
type CompanyRequest struct {
	Name            string `json:"name" binding:"required"`
	MarketplaceType string `json:"marketplace_type"`
	LogoURL         string `json:"logo_url"`
}

// CompanyStatusRequest representa a requisição de mudança de status da empresa
type CompanyStatusRequest struct {
	Status company.Status `json:"status" binding:"required,oneof=active inactive"`
}

// CompanyResponse representa a resposta de empresa
type CompanyResponse struct {
	ID              int64      `json:"id"`
	UUID            string     `json:"uuid"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	MarketplaceType string     `json:"marketplace_type"`
	Rating          float64    `json:"rating"`
	LogoURL         string     `json:"logo_url"`
	FoundationDate  *time.Time `json:"foundation_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CompanyListResponse representa a resposta de lista de empresas
type CompanyListResponse struct {
	Companies  []CompanyResponse `json:"companies"`
	Pagination Pagination        `json:"pagination"`
}

// ToCompanyResponse converte uma entidade Company para CompanyResponse
func ToCompanyResponse(c *company.Company) CompanyResponse {
	return CompanyResponse{
		ID:              c.ID,
		UUID:            c.UUID,
		Name:            c.Name,
		Status:          string(c.Status),
		MarketplaceType: string(c.MarketplaceType),
		Rating:          c.Rating,
		LogoURL:         c.LogoURL,
		FoundationDate:  c.FoundationDate,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToCompanyListResponse converte uma lista de empresas para CompanyListResponse
func ToCompanyListResponse(companies []*company.Company, total, page, size int) CompanyListResponse {
	responses := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		responses[i] = ToCompanyResponse(c)
	}

	return CompanyListResponse{
		Companies:  responses,
		Pagination: NewPagination(total, page, size),
	}
}
