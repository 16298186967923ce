package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, company_id, number, name, account_type, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND account_id = $2;`
	return queryOneAccount(ctx, r.Pool, query, "find account "+accountID, companyID, accountID)
}

func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, companyID string, number string) (*domain.Account, error) {
	return findAccountByNumber(ctx, r.Pool, companyID, number)
}

// ListAccounts retrieves the chart of accounts. Numeric numbers sort numerically.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, companyID string, includeInactive bool) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE company_id = $1 AND ($2 OR is_active)
		ORDER BY length(number), number;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

func (r *PgxAccountRepository) AccountHasRows(ctx context.Context, companyID string, accountID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM voucher_rows vr
			JOIN vouchers v ON v.voucher_id = vr.voucher_id
			WHERE v.company_id = $1 AND vr.account_id = $2
		);
	`
	var inUse bool
	if err := r.Pool.QueryRow(ctx, query, companyID, accountID).Scan(&inUse); err != nil {
		return false, translatePgError(err, "check account usage "+accountID)
	}
	return inUse, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return insertAccount(ctx, r.Pool, account)
}

func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, companyID string, accountID string, userID string, now time.Time) error {
	return setAccountActive(ctx, r.Pool, companyID, accountID, false, userID, now)
}

// DeleteAccount removes an account. The RESTRICT foreign key on voucher_rows
// turns a delete of a referenced account into apperrors.ErrAccountInUse.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, companyID string, accountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE company_id = $1 AND account_id = $2;`, companyID, accountID)
	if err != nil {
		if isPgCode(err, pgForeignKeyViolation) {
			return fmt.Errorf("delete account %s: %w", accountID, apperrors.ErrAccountInUse)
		}
		return translatePgError(err, "delete account "+accountID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func queryOneAccount(ctx context.Context, q querier, query, what string, args ...any) (*domain.Account, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err, what)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, translatePgError(err, what)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

func findAccountByNumber(ctx context.Context, q querier, companyID string, number string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND number = $2;`
	return queryOneAccount(ctx, q, query, "find account number "+number, companyID, number)
}

func findAccountsByIDs(ctx context.Context, q querier, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND account_id = ANY($2);`
	rows, err := q.Query(ctx, query, companyID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by id: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts by id: %w", err)
	}
	found := make(map[string]domain.Account, len(ms))
	for _, m := range ms {
		found[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return found, nil
}

func insertAccount(ctx context.Context, q querier, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := q.Exec(ctx, query,
		m.AccountID,
		m.CompanyID,
		m.Number,
		m.Name,
		m.AccountType,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if isPgCode(err, pgUniqueViolation) {
		return fmt.Errorf("account %s: %w", m.Number, apperrors.ErrAccountNumberExists)
	}
	if isPgCode(err, pgForeignKeyViolation) {
		return fmt.Errorf("company %s: %w", m.CompanyID, apperrors.ErrNotFound)
	}
	return translatePgError(err, "save account "+m.Number)
}

func setAccountActive(ctx context.Context, q querier, companyID, accountID string, active bool, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $1 AND account_id = $2;
	`
	tag, err := q.Exec(ctx, query, companyID, accountID, active, now, userID)
	if err != nil {
		return translatePgError(err, "update account "+accountID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
