package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
)

// CompanySvcFacade defines operations on the company fiscal marker
type CompanySvcFacade interface {
	RegisterCompany(ctx context.Context, req dto.RegisterCompanyRequest) (*domain.Company, error)
	GetCompany(ctx context.Context, companyID string) (*domain.Company, error)
}
