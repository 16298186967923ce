package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers and the CLI.
type ServiceContainer struct {
	Company   CompanySvcFacade
	Account   AccountSvcFacade
	Voucher   VoucherSvcFacade
	Reporting ReportingSvcFacade
	Vat       VatSvcFacade
	Closing   ClosingSvcFacade
	Tax       TaxSvcFacade
}
