package domain

// Company carries the fiscal-year marker for a bookkeeping company.
// Every year before CurrentFiscalYear is closed.
type Company struct {
	CompanyID          string `json:"companyID"`
	Name               string `json:"name"`
	OrganizationNumber string `json:"organizationNumber"`
	CurrentFiscalYear  int    `json:"currentFiscalYear"`
	AuditFields
}

// IsYearClosed reports whether the given fiscal year has been closed.
func (c Company) IsYearClosed(year int) bool {
	return year < c.CurrentFiscalYear
}
