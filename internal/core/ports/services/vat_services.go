package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// VatSvcFacade defines VAT period reconciliation operations
type VatSvcFacade interface {
	VatSummary(ctx context.Context, companyID string, year int, periodType domain.VatPeriodType) (*domain.VatSummary, error)
	MarkVatPaid(ctx context.Context, companyID string, in domain.MarkVatPaidInput) (*domain.VatPeriod, error)
	UnmarkVatPaid(ctx context.Context, companyID string, year, period int, periodType domain.VatPeriodType) (bool, error)
}
