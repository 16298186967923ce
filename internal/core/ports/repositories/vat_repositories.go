package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// VatPeriodReader defines read operations for persisted VAT period records
type VatPeriodReader interface {
	FindVatPeriods(ctx context.Context, companyID string, year int, periodType domain.VatPeriodType) ([]domain.VatPeriod, error)
	FindVatPeriod(ctx context.Context, companyID string, year, period int, periodType domain.VatPeriodType) (*domain.VatPeriod, error)
}

// VatPeriodWriter defines write operations for persisted VAT period records
type VatPeriodWriter interface {
	// UpsertVatPeriod inserts or replaces the record keyed by company, year, period and type.
	UpsertVatPeriod(ctx context.Context, period domain.VatPeriod) error

	// ClearVatPayment resets the payment fields. Returns apperrors.ErrNotFound if no record exists.
	ClearVatPayment(ctx context.Context, companyID string, year, period int, periodType domain.VatPeriodType, userID string, now time.Time) error
}

// VatPeriodRepositoryFacade combines all VAT period repository interfaces
type VatPeriodRepositoryFacade interface {
	VatPeriodReader
	VatPeriodWriter
}

// VatDocumentReader reads VAT-relevant sales and purchase documents owned by
// the invoicing and expense services.
type VatDocumentReader interface {
	ListVatDocuments(ctx context.Context, companyID string, from, to time.Time) ([]domain.VatDocument, error)
}

// PayrollReader reads aggregated salary payments owned by the payroll service.
type PayrollReader interface {
	SumPayroll(ctx context.Context, companyID string, from, to time.Time) (domain.PayrollTotals, error)
}
