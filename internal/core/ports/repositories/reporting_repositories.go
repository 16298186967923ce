package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// AccountTotals sums debit and credit per account over vouchers dated within
	// [from, to]. A nil from means from the beginning of the ledger. Every account
	// of the company is returned, untouched ones with zero totals.
	AccountTotals(ctx context.Context, companyID string, from *time.Time, to time.Time) ([]domain.AccountTotals, error)
}
