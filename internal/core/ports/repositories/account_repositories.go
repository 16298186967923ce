package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account owned by the company.
	FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error)

	// FindAccountByNumber retrieves an account by its human-readable number.
	FindAccountByNumber(ctx context.Context, companyID string, number string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts ordered by number.
	ListAccounts(ctx context.Context, companyID string, includeInactive bool) ([]domain.Account, error)

	// AccountHasRows reports whether any voucher row references the account.
	AccountHasRows(ctx context.Context, companyID string, accountID string) (bool, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A number clash returns apperrors.ErrAccountNumberExists.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, companyID string, accountID string, userID string, now time.Time) error

	// DeleteAccount removes an unreferenced account. Returns apperrors.ErrAccountInUse
	// if a voucher row references it.
	DeleteAccount(ctx context.Context, companyID string, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
