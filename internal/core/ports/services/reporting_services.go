package services

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// ReportingSvcFacade defines operations for generating financial reports
type ReportingSvcFacade interface {
	// AccountBalances returns debit, credit and balance for every active account as of a date
	AccountBalances(ctx context.Context, companyID string, asOf time.Time) ([]domain.AccountBalance, error)

	// IncomeStatement generates the income statement for a date range
	IncomeStatement(ctx context.Context, companyID string, from, to time.Time) (*domain.IncomeStatement, error)

	// BalanceSheet generates a balance sheet as of a specific date
	BalanceSheet(ctx context.Context, companyID string, asOf time.Time) (*domain.BalanceSheet, error)
}
