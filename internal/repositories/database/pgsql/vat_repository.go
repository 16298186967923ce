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
	"github.com/shopspring/decimal"
)

const vatPeriodColumns = `company_id, year, period, period_type, start_date, end_date,
	output_vat, input_vat, vat_to_pay, is_paid, paid_at, paid_amount, payment_reference, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxVatRepository struct {
	BaseRepository
}

func newPgxVatRepository(pool *pgxpool.Pool) *PgxVatRepository {
	return &PgxVatRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.VatPeriodRepositoryFacade = (*PgxVatRepository)(nil)
	_ portsrepo.VatDocumentReader         = (*PgxVatRepository)(nil)
	_ portsrepo.PayrollReader             = (*PgxVatRepository)(nil)
)

func (r *PgxVatRepository) FindVatPeriods(ctx context.Context, companyID string, year int, periodType domain.VatPeriodType) ([]domain.VatPeriod, error) {
	query := `
		SELECT ` + vatPeriodColumns + `
		FROM vat_periods
		WHERE company_id = $1 AND year = $2 AND period_type = $3
		ORDER BY period;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, year, string(periodType))
	if err != nil {
		return nil, fmt.Errorf("failed to query VAT periods: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.VatPeriod])
	if err != nil {
		return nil, fmt.Errorf("failed to scan VAT periods: %w", err)
	}
	periods := make([]domain.VatPeriod, len(ms))
	for i, m := range ms {
		periods[i] = mapping.ToDomainVatPeriod(m)
	}
	return periods, nil
}

func (r *PgxVatRepository) FindVatPeriod(ctx context.Context, companyID string, year, period int, periodType domain.VatPeriodType) (*domain.VatPeriod, error) {
	query := `
		SELECT ` + vatPeriodColumns + `
		FROM vat_periods
		WHERE company_id = $1 AND year = $2 AND period = $3 AND period_type = $4;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, year, period, string(periodType))
	if err != nil {
		return nil, translatePgError(err, "query VAT period")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.VatPeriod])
	if err != nil {
		return nil, translatePgError(err, "find VAT period")
	}
	p := mapping.ToDomainVatPeriod(m)
	return &p, nil
}

// UpsertVatPeriod inserts the record or replaces everything but its creation audit.
func (r *PgxVatRepository) UpsertVatPeriod(ctx context.Context, period domain.VatPeriod) error {
	m := mapping.ToModelVatPeriod(period)
	query := `
		INSERT INTO vat_periods (` + vatPeriodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (company_id, year, period, period_type) DO UPDATE SET
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			output_vat = EXCLUDED.output_vat,
			input_vat = EXCLUDED.input_vat,
			vat_to_pay = EXCLUDED.vat_to_pay,
			is_paid = EXCLUDED.is_paid,
			paid_at = EXCLUDED.paid_at,
			paid_amount = EXCLUDED.paid_amount,
			payment_reference = EXCLUDED.payment_reference,
			notes = EXCLUDED.notes,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.Year,
		m.Period,
		m.PeriodType,
		m.StartDate,
		m.EndDate,
		m.OutputVat,
		m.InputVat,
		m.VatToPay,
		m.IsPaid,
		m.PaidAt,
		m.PaidAmount,
		m.PaymentReference,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translatePgError(err, "upsert VAT period")
}

func (r *PgxVatRepository) ClearVatPayment(ctx context.Context, companyID string, year, period int, periodType domain.VatPeriodType, userID string, now time.Time) error {
	query := `
		UPDATE vat_periods
		SET is_paid = FALSE, paid_at = NULL, paid_amount = NULL, payment_reference = NULL, notes = NULL,
			last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $1 AND year = $2 AND period = $3 AND period_type = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, companyID, year, period, string(periodType), now, userID)
	if err != nil {
		return translatePgError(err, "clear VAT payment")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListVatDocuments reads invoices as sales documents and expenses as purchase documents.
func (r *PgxVatRepository) ListVatDocuments(ctx context.Context, companyID string, from, to time.Time) ([]domain.VatDocument, error) {
	query := `
		SELECT invoice_id, company_id, 'SALES' AS kind, invoice_date, vat_amount, is_paid
		FROM invoices
		WHERE company_id = $1 AND invoice_date BETWEEN $2 AND $3
		UNION ALL
		SELECT expense_id, company_id, 'PURCHASE' AS kind, expense_date, vat_amount, is_paid
		FROM expenses
		WHERE company_id = $1 AND expense_date BETWEEN $2 AND $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, domain.NormalizeDate(from), domain.NormalizeDate(to))
	if err != nil {
		return nil, fmt.Errorf("failed to query VAT documents: %w", err)
	}
	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VatDocument, error) {
		var doc domain.VatDocument
		var kind string
		err := row.Scan(&doc.DocumentID, &doc.CompanyID, &kind, &doc.Date, &doc.VatAmount, &doc.IsPaid)
		doc.Kind = domain.VatDocumentKind(kind)
		return doc, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan VAT documents: %w", err)
	}
	return docs, nil
}

func (r *PgxVatRepository) SumPayroll(ctx context.Context, companyID string, from, to time.Time) (domain.PayrollTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(gross_salary), 0),
			COALESCE(SUM(employer_contribution), 0),
			COALESCE(SUM(tax_withheld), 0),
			COUNT(*)
		FROM salary_payments
		WHERE company_id = $1 AND payment_date BETWEEN $2 AND $3;
	`
	totals := domain.PayrollTotals{
		GrossSalaries:         decimal.Zero,
		EmployerContributions: decimal.Zero,
		TaxWithheld:           decimal.Zero,
	}
	err := r.Pool.QueryRow(ctx, query, companyID, domain.NormalizeDate(from), domain.NormalizeDate(to)).Scan(
		&totals.GrossSalaries,
		&totals.EmployerContributions,
		&totals.TaxWithheld,
		&totals.PaymentCount,
	)
	if err != nil {
		return domain.PayrollTotals{}, translatePgError(err, "sum payroll")
	}
	return totals, nil
}
