package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UnitOfWork      UnitOfWork
	CompanyRepo     CompanyRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	VoucherRepo     VoucherRepositoryFacade
	ReportingRepo   ReportingRepository
	VatPeriodRepo   VatPeriodRepositoryFacade
	VatDocumentRepo VatDocumentReader
	PayrollRepo     PayrollReader
}
