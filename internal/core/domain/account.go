package domain

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

// AccountTypes lists every account type in chart order.
var AccountTypes = []AccountType{Asset, Liability, Revenue, Expense, FinancialIncome, FinancialExpense}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Revenue, Expense, FinancialIncome, FinancialExpense:
		return true
	}
	return false
}

// IsIncomeStatement reports whether accounts of this type belong on the income statement.
func (t AccountType) IsIncomeStatement() bool {
	switch t {
	case Revenue, Expense, FinancialIncome, FinancialExpense:
		return true
	}
	return false
}

// IsIncome reports whether the type is on the income side of the income statement.
func (t AccountType) IsIncome() bool {
	return t == Revenue || t == FinancialIncome
}

// DisplaySign returns the multiplier that turns a raw debit-minus-credit figure
// into a positive-is-normal amount for the type.
func DisplaySign(t AccountType) int64 {
	switch t {
	case Liability, Revenue, FinancialIncome:
		return -1
	default:
		return 1
	}
}

// Account represents a ledger account within a company's chart of accounts.
type Account struct {
	AccountID   string      `json:"accountID"`
	CompanyID   string      `json:"companyID"`
	Number      string      `json:"number"` // Unique per company, e.g. "1930"
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}

// AccountRemoval describes what deactivateOrDelete did to an account.
type AccountRemoval string

const (
	AccountDeleted     AccountRemoval = "DELETED"
	AccountDeactivated AccountRemoval = "DEACTIVATED"
)
