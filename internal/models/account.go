package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset            AccountType = "ASSET"
	Liability        AccountType = "LIABILITY"
	Revenue          AccountType = "REVENUE"
	Expense          AccountType = "EXPENSE"
	FinancialIncome  AccountType = "FINANCIAL_INCOME"
	FinancialExpense AccountType = "FINANCIAL_EXPENSE"
)

// Account represents a row of the accounts table.
type Account struct {
	AccountID   string      `db:"account_id"`
	CompanyID   string      `db:"company_id"`
	Number      string      `db:"number"` // Unique per company
	Name        string      `db:"name"`
	AccountType AccountType `db:"account_type"`
	IsActive    bool        `db:"is_active"`
	AuditFields
}
