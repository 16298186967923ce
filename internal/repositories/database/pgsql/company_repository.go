package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const companyColumns = `company_id, name, organization_number, current_fiscal_year,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) *PgxCompanyRepository {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return findCompany(ctx, r.Pool, companyID, "")
}

// SaveCompany inserts a new company.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	return insertCompany(ctx, r.Pool, company)
}

func insertCompany(ctx context.Context, q querier, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := q.Exec(ctx, query,
		m.CompanyID,
		m.Name,
		m.OrganizationNumber,
		m.CurrentFiscalYear,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translatePgError(err, "save company "+m.CompanyID)
}

// findCompany loads a company row. lockClause is appended verbatim, e.g. "FOR SHARE".
func findCompany(ctx context.Context, q querier, companyID string, lockClause string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1 ` + lockClause
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, translatePgError(err, "query company "+companyID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Company])
	if err != nil {
		return nil, translatePgError(err, "find company "+companyID)
	}
	company := mapping.ToDomainCompany(m)
	return &company, nil
}

func lockClauseFor(mode portsrepo.LockMode) string {
	if mode == portsrepo.LockUpdate {
		return "FOR UPDATE"
	}
	return "FOR SHARE"
}

func updateFiscalYear(ctx context.Context, q querier, companyID string, year int, userID string, now time.Time) error {
	query := `
		UPDATE companies
		SET current_fiscal_year = $2, last_updated_at = $3, last_updated_by = $4
		WHERE company_id = $1;
	`
	tag, err := q.Exec(ctx, query, companyID, year, now, userID)
	if err != nil {
		return translatePgError(err, "update fiscal year for company "+companyID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
