package services

import (
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized dependencies.
// opts are applied to every service, closing takes its own configuration.
func NewContainer(repos *portsrepo.RepositoryProvider, closing ClosingConfig, opts ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, repos.CompanyRepo, opts...)
	container.Company = NewCompanyService(repos.UnitOfWork, repos.CompanyRepo, opts...)
	container.Voucher = NewVoucherService(repos.UnitOfWork, repos.VoucherRepo, repos.CompanyRepo, opts...)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.CompanyRepo, opts...)
	container.Vat = NewVatService(repos.VatPeriodRepo, repos.VatDocumentRepo, repos.CompanyRepo, opts...)
	container.Closing = NewClosingService(repos.UnitOfWork, repos.ReportingRepo, repos.CompanyRepo, closing, opts...)
	container.Tax = NewTaxService(container.Closing, container.Vat, repos.PayrollRepo, repos.CompanyRepo, opts...)

	return container
}
