package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) *reportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) AccountTotals(ctx context.Context, companyID string, from *time.Time, to time.Time) ([]domain.AccountTotals, error) {
	return accountTotals(ctx, r.Pool, companyID, from, to)
}

// accountTotals sums rows per account over vouchers dated within [from, to].
// The LEFT JOINs keep untouched accounts in the result with zero totals.
func accountTotals(ctx context.Context, q querier, companyID string, from *time.Time, to time.Time) ([]domain.AccountTotals, error) {
	query := `
		SELECT
			a.account_id,
			a.number,
			a.name,
			a.account_type,
			a.is_active,
			COALESCE(SUM(vr.debit) FILTER (WHERE v.voucher_id IS NOT NULL), 0) AS debit,
			COALESCE(SUM(vr.credit) FILTER (WHERE v.voucher_id IS NOT NULL), 0) AS credit
		FROM accounts a
		LEFT JOIN voucher_rows vr ON vr.account_id = a.account_id
		LEFT JOIN vouchers v ON v.voucher_id = vr.voucher_id
			AND v.company_id = a.company_id
			AND ($2::date IS NULL OR v.voucher_date >= $2::date)
			AND v.voucher_date <= $3::date
		WHERE a.company_id = $1
		GROUP BY a.account_id, a.number, a.name, a.account_type, a.is_active
		ORDER BY length(a.number), a.number;
	`

	var fromArg *time.Time
	if from != nil {
		d := domain.NormalizeDate(*from)
		fromArg = &d
	}

	rows, err := q.Query(ctx, query, companyID, fromArg, domain.NormalizeDate(to))
	if err != nil {
		return nil, fmt.Errorf("error querying account totals: %w", err)
	}

	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AccountTotals, error) {
		var t domain.AccountTotals
		var accountType string
		err := row.Scan(
			&t.AccountID,
			&t.Number,
			&t.Name,
			&accountType,
			&t.IsActive,
			&t.Debit,
			&t.Credit,
		)
		t.AccountType = domain.AccountType(accountType)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning account totals: %w", err)
	}
	return totals, nil
}
