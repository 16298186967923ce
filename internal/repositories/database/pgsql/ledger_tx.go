package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUnitOfWork runs ledger writes inside one READ COMMITTED transaction.
type PgxUnitOfWork struct {
	BaseRepository
}

func newPgxUnitOfWork(pool *pgxpool.Pool) *PgxUnitOfWork {
	return &PgxUnitOfWork{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitOfWork = (*PgxUnitOfWork)(nil)

// WithTx commits when fn succeeds and rolls back otherwise.
func (u *PgxUnitOfWork) WithTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Rollback(ctx, tx) // no-op after a successful commit

	if err := fn(ctx, &ledgerTx{tx: tx}); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}

type ledgerTx struct {
	tx pgx.Tx
}

var _ portsrepo.LedgerTx = (*ledgerTx)(nil)

func (t *ledgerTx) LockCompany(ctx context.Context, companyID string, mode portsrepo.LockMode) (*domain.Company, error) {
	return findCompany(ctx, t.tx, companyID, lockClauseFor(mode))
}

// LockVoucherNumbering takes a transaction-scoped advisory lock keyed on the company.
func (t *ledgerTx) LockVoucherNumbering(ctx context.Context, companyID string) error {
	_, err := t.tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('voucher_number:' || $1::text));`, companyID)
	return translatePgError(err, "lock voucher numbering")
}

func (t *ledgerTx) UpdateFiscalYear(ctx context.Context, companyID string, year int, userID string, now time.Time) error {
	return updateFiscalYear(ctx, t.tx, companyID, year, userID, now)
}

func (t *ledgerTx) SaveCompany(ctx context.Context, company domain.Company) error {
	return insertCompany(ctx, t.tx, company)
}

func (t *ledgerTx) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	return findAccountsByIDs(ctx, t.tx, companyID, accountIDs)
}

func (t *ledgerTx) FindAccountByNumber(ctx context.Context, companyID string, number string) (*domain.Account, error) {
	return findAccountByNumber(ctx, t.tx, companyID, number)
}

func (t *ledgerTx) SaveAccount(ctx context.Context, account domain.Account) error {
	return insertAccount(ctx, t.tx, account)
}

func (t *ledgerTx) ActivateAccount(ctx context.Context, companyID string, accountID string, userID string, now time.Time) error {
	return setAccountActive(ctx, t.tx, companyID, accountID, true, userID, now)
}

func (t *ledgerTx) MaxVoucherSequence(ctx context.Context, companyID string) (int64, error) {
	return maxVoucherSequence(ctx, t.tx, companyID)
}

func (t *ledgerTx) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	return insertVoucher(ctx, t.tx, voucher)
}

func (t *ledgerTx) FindVoucherByID(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error) {
	return findVoucher(ctx, t.tx, companyID, voucherID)
}

func (t *ledgerTx) DeleteVoucher(ctx context.Context, companyID string, voucherID string) error {
	return deleteVoucher(ctx, t.tx, companyID, voucherID)
}

func (t *ledgerTx) AccountTotals(ctx context.Context, companyID string, from *time.Time, to time.Time) ([]domain.AccountTotals, error) {
	return accountTotals(ctx, t.tx, companyID, from, to)
}
