package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// RegisterCompanyRequest defines data for setting up a bookkeeping company.
type RegisterCompanyRequest struct {
	Name               string `json:"name" binding:"required"`
	OrganizationNumber string `json:"organizationNumber"`
	FirstFiscalYear    int    `json:"firstFiscalYear" binding:"required,min=1900,max=9999"`
	SeedChart          bool   `json:"seedChart"` // Create the default chart of accounts
}

// CompanyResponse defines data returned for a company.
type CompanyResponse struct {
	CompanyID          string    `json:"companyID"`
	Name               string    `json:"name"`
	OrganizationNumber string    `json:"organizationNumber"`
	CurrentFiscalYear  int       `json:"currentFiscalYear"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedBy          string    `json:"createdBy"`
}

// ToCompanyResponse converts domain.Company to DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:          c.CompanyID,
		Name:               c.Name,
		OrganizationNumber: c.OrganizationNumber,
		CurrentFiscalYear:  c.CurrentFiscalYear,
		CreatedAt:          c.CreatedAt,
		CreatedBy:          c.CreatedBy,
	}
}
