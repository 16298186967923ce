package dto

import (
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountBalanceRowResponse represents a row in the account balances report response
type AccountBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	Number      string          `json:"number"`
	Name        string          `json:"name"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// AccountBalancesResponse represents the account balances report response
type AccountBalancesResponse struct {
	AsOf   string                      `json:"asOf"`
	Rows   []AccountBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID string          `json:"accountID"`
	Number    string          `json:"number"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatementResponse represents the income statement report response
type IncomeStatementResponse struct {
	FromDate        string                  `json:"fromDate"`
	ToDate          string                  `json:"toDate"`
	RevenueAccounts []AccountAmountResponse `json:"revenueAccounts"`
	ExpenseAccounts []AccountAmountResponse `json:"expenseAccounts"`
	Summary         struct {
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetIncome     decimal.Decimal `json:"netIncome"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                  `json:"asOf"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		Equity           decimal.Decimal `json:"equity"`
	} `json:"summary"`
}

// ToAccountBalancesResponse converts domain balances to the response DTO
func ToAccountBalancesResponse(rows []domain.AccountBalance, asOf string) AccountBalancesResponse {
	resp := AccountBalancesResponse{
		AsOf: asOf,
		Rows: make([]AccountBalanceRowResponse, len(rows)),
	}
	resp.Totals.Debit = decimal.Zero
	resp.Totals.Credit = decimal.Zero

	for i, row := range rows {
		resp.Rows[i] = AccountBalanceRowResponse{
			AccountID:   row.AccountID,
			Number:      row.Number,
			Name:        row.Name,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
			Balance:     row.Balance,
		}
		resp.Totals.Debit = resp.Totals.Debit.Add(row.Debit)
		resp.Totals.Credit = resp.Totals.Credit.Add(row.Credit)
	}
	return resp
}

func toAccountAmountResponses(amounts []domain.AccountAmount) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(amounts))
	for i, a := range amounts {
		out[i] = AccountAmountResponse{
			AccountID: a.AccountID,
			Number:    a.Number,
			Name:      a.Name,
			Amount:    a.Amount,
		}
	}
	return out
}

// ToIncomeStatementResponse converts a domain.IncomeStatement to the response DTO
func ToIncomeStatementResponse(stmt *domain.IncomeStatement) IncomeStatementResponse {
	resp := IncomeStatementResponse{
		FromDate:        stmt.From.Format(domain.DateLayout),
		ToDate:          stmt.To.Format(domain.DateLayout),
		RevenueAccounts: toAccountAmountResponses(stmt.RevenueAccounts),
		ExpenseAccounts: toAccountAmountResponses(stmt.ExpenseAccounts),
	}
	resp.Summary.TotalRevenue = stmt.TotalRevenue
	resp.Summary.TotalExpenses = stmt.TotalExpenses
	resp.Summary.NetIncome = stmt.NetIncome
	return resp
}

// ToBalanceSheetResponse converts a domain.BalanceSheet to the response DTO
func ToBalanceSheetResponse(sheet *domain.BalanceSheet) BalanceSheetResponse {
	resp := BalanceSheetResponse{
		AsOf:        sheet.AsOf.Format(domain.DateLayout),
		Assets:      toAccountAmountResponses(sheet.Assets),
		Liabilities: toAccountAmountResponses(sheet.Liabilities),
	}
	resp.Summary.TotalAssets = sheet.TotalAssets
	resp.Summary.TotalLiabilities = sheet.TotalLiabilities
	resp.Summary.Equity = sheet.Equity
	return resp
}
