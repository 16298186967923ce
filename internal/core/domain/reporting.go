package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountTotals is the raw debit and credit sum for one account over a date range.
// It is what repositories hand to the aggregation functions.
type AccountTotals struct {
	AccountID   string          `json:"accountID"`
	Number      string          `json:"number"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	IsActive    bool            `json:"isActive"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// AccountBalance is a point-in-time balance row. Balance is raw debit minus credit.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	Number      string          `json:"number"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// AccountAmount represents an account with its display amount on a statement.
type AccountAmount struct {
	AccountID   string          `json:"accountID"`
	Number      string          `json:"number"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Amount      decimal.Decimal `json:"amount"`
}

// IncomeStatement is the profit and loss report for a date range.
type IncomeStatement struct {
	From            time.Time       `json:"from"`
	To              time.Time       `json:"to"`
	RevenueAccounts []AccountAmount `json:"revenueAccounts"`
	ExpenseAccounts []AccountAmount `json:"expenseAccounts"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	NetIncome       decimal.Decimal `json:"netIncome"`
}

// BalanceSheet is the statement of financial position at a date.
type BalanceSheet struct {
	AsOf             time.Time       `json:"asOf"`
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	Equity           decimal.Decimal `json:"equity"`
}
