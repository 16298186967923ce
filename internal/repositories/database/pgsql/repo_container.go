package pgsql

import (
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	vatRepo := newPgxVatRepository(dbPool)

	return &portsrepo.RepositoryProvider{
		UnitOfWork:      newPgxUnitOfWork(dbPool),
		CompanyRepo:     newPgxCompanyRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		VoucherRepo:     newPgxVoucherRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
		VatPeriodRepo:   vatRepo,
		VatDocumentRepo: vatRepo,
		PayrollRepo:     vatRepo,
	}
}
