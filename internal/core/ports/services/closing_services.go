package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// ClosingSvcFacade defines the year-end closing operations
type ClosingSvcFacade interface {
	YearEndSummary(ctx context.Context, companyID string, fiscalYear int) (*domain.YearEndSummary, error)
	CloseYear(ctx context.Context, companyID string, fiscalYear int) (*domain.CloseYearResult, error)
}

// TaxSvcFacade defines the read-only tax overview
type TaxSvcFacade interface {
	TaxCalculation(ctx context.Context, companyID string, fiscalYear int) (*domain.TaxCalculation, error)
}
