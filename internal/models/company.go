package models

// Company represents a row of the companies table.
type Company struct {
	CompanyID          string `db:"company_id"`
	Name               string `db:"name"`
	OrganizationNumber string `db:"organization_number"`
	CurrentFiscalYear  int    `db:"current_fiscal_year"`
	AuditFields
}
