package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// LockMode selects how strongly a company row is locked inside a unit of work.
type LockMode int

const (
	// LockShare blocks concurrent closing but lets postings for the same company proceed.
	LockShare LockMode = iota
	// LockUpdate excludes every other writer for the company.
	LockUpdate
)

// UnitOfWork runs fn inside a single storage transaction. If fn returns an error
// nothing fn wrote is persisted.
type UnitOfWork interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
}

// LedgerTx exposes the operations available inside a unit of work.
type LedgerTx interface {
	// LockCompany loads the company row and locks it for the rest of the transaction.
	LockCompany(ctx context.Context, companyID string, mode LockMode) (*domain.Company, error)
	// LockVoucherNumbering serializes voucher numbering for a company until commit.
	LockVoucherNumbering(ctx context.Context, companyID string) error
	UpdateFiscalYear(ctx context.Context, companyID string, year int, userID string, now time.Time) error
	SaveCompany(ctx context.Context, company domain.Company) error

	FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error)
	FindAccountByNumber(ctx context.Context, companyID string, number string) (*domain.Account, error)
	SaveAccount(ctx context.Context, account domain.Account) error
	ActivateAccount(ctx context.Context, companyID string, accountID string, userID string, now time.Time) error

	// MaxVoucherSequence returns the highest numeric voucher number persisted for the company.
	MaxVoucherSequence(ctx context.Context, companyID string) (int64, error)
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error
	FindVoucherByID(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error)
	DeleteVoucher(ctx context.Context, companyID string, voucherID string) error

	ReportingRepository
}
