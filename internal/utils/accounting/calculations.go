package accounting

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DisplayAmount turns raw debit and credit totals into the positive-is-normal
// amount for the account type.
func DisplayAmount(accountType domain.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	return debit.Sub(credit).Mul(decimal.NewFromInt(domain.DisplaySign(accountType)))
}

// ValidateVoucherRows checks that a voucher has rows, non-negative amounts that
// fit the stored precision, and that total debit equals total credit exactly.
func ValidateVoucherRows(rows []domain.VoucherRow) error {
	if len(rows) == 0 {
		return apperrors.ErrEmptyVoucher
	}

	debit, credit := decimal.Zero, decimal.Zero
	for i, row := range rows {
		if row.Debit.IsNegative() || row.Credit.IsNegative() {
			return fmt.Errorf("row %d: amounts must not be negative: %w", i+1, apperrors.ErrValidation)
		}
		if !domain.AmountFitsStorage(row.Debit) || !domain.AmountFitsStorage(row.Credit) {
			return fmt.Errorf("row %d: amounts allow at most %d decimals and %d integer digits: %w",
				i+1, domain.AmountScale, domain.AmountIntegerDigits, apperrors.ErrValidation)
		}
		debit = debit.Add(row.Debit)
		credit = credit.Add(row.Credit)
	}

	if !debit.Equal(credit) {
		return fmt.Errorf("debit %s != credit %s: %w", debit.StringFixed(2), credit.StringFixed(2), apperrors.ErrUnbalancedVoucher)
	}
	return nil
}

// MaxVoucherSequence returns the highest numeric voucher number, ignoring non-numeric ones.
func MaxVoucherSequence(numbers []string) int64 {
	var max int64
	for _, n := range numbers {
		if v, ok := domain.ParseVoucherNumber(n); ok && v > max {
			max = v
		}
	}
	return max
}

// NextVoucherNumber formats the number following the current maximum.
func NextVoucherNumber(currentMax int64) string {
	return domain.FormatVoucherNumber(currentMax + 1)
}

// CompareAccountNumbers orders numeric account numbers numerically and falls back
// to lexical order otherwise.
func CompareAccountNumbers(a, b string) int {
	na, okA := domain.ParseVoucherNumber(a)
	nb, okB := domain.ParseVoucherNumber(b)
	if okA && okB && na != nb {
		if na < nb {
			return -1
		}
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func sortTotals(totals []domain.AccountTotals) []domain.AccountTotals {
	sorted := make([]domain.AccountTotals, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareAccountNumbers(sorted[i].Number, sorted[j].Number) < 0
	})
	return sorted
}

// BuildAccountBalances returns debit, credit and raw balance for every active account,
// ordered by account number.
func BuildAccountBalances(totals []domain.AccountTotals) []domain.AccountBalance {
	balances := make([]domain.AccountBalance, 0, len(totals))
	for _, t := range sortTotals(totals) {
		if !t.IsActive {
			continue
		}
		balances = append(balances, domain.AccountBalance{
			AccountID:   t.AccountID,
			Number:      t.Number,
			Name:        t.Name,
			AccountType: t.AccountType,
			Debit:       t.Debit,
			Credit:      t.Credit,
			Balance:     t.Debit.Sub(t.Credit),
		})
	}
	return balances
}

func toAccountAmount(t domain.AccountTotals, amount decimal.Decimal) domain.AccountAmount {
	return domain.AccountAmount{
		AccountID:   t.AccountID,
		Number:      t.Number,
		Name:        t.Name,
		AccountType: t.AccountType,
		Amount:      amount,
	}
}

// BuildIncomeStatement derives the income statement from period totals.
// Zero-amount accounts are left out.
func BuildIncomeStatement(from, to time.Time, totals []domain.AccountTotals) domain.IncomeStatement {
	stmt := domain.IncomeStatement{
		From:            from,
		To:              to,
		RevenueAccounts: []domain.AccountAmount{},
		ExpenseAccounts: []domain.AccountAmount{},
		TotalRevenue:    decimal.Zero,
		TotalExpenses:   decimal.Zero,
	}

	for _, t := range sortTotals(totals) {
		if !t.AccountType.IsIncomeStatement() {
			continue
		}
		amount := DisplayAmount(t.AccountType, t.Debit, t.Credit)
		if amount.IsZero() {
			continue
		}
		if t.AccountType.IsIncome() {
			stmt.RevenueAccounts = append(stmt.RevenueAccounts, toAccountAmount(t, amount))
			stmt.TotalRevenue = stmt.TotalRevenue.Add(amount)
		} else {
			stmt.ExpenseAccounts = append(stmt.ExpenseAccounts, toAccountAmount(t, amount))
			stmt.TotalExpenses = stmt.TotalExpenses.Add(amount)
		}
	}

	stmt.NetIncome = stmt.TotalRevenue.Sub(stmt.TotalExpenses)
	return stmt
}

// BuildBalanceSheet derives the balance sheet from cumulative totals up to asOf.
// Equity is the residual, so TotalLiabilities + Equity == TotalAssets.
func BuildBalanceSheet(asOf time.Time, totals []domain.AccountTotals) domain.BalanceSheet {
	sheet := domain.BalanceSheet{
		AsOf:             asOf,
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
	}

	for _, t := range sortTotals(totals) {
		amount := DisplayAmount(t.AccountType, t.Debit, t.Credit)
		if amount.IsZero() {
			continue
		}
		switch t.AccountType {
		case domain.Asset:
			sheet.Assets = append(sheet.Assets, toAccountAmount(t, amount))
			sheet.TotalAssets = sheet.TotalAssets.Add(amount)
		case domain.Liability:
			sheet.Liabilities = append(sheet.Liabilities, toAccountAmount(t, amount))
			sheet.TotalLiabilities = sheet.TotalLiabilities.Add(amount)
		}
	}

	sheet.Equity = sheet.TotalAssets.Sub(sheet.TotalLiabilities)
	return sheet
}

// CorporateTax applies the flat rate to a positive result, rounded to two decimals.
// Losses and break-even years pay no tax.
func CorporateTax(resultBeforeTax, rate decimal.Decimal) decimal.Decimal {
	if !resultBeforeTax.IsPositive() {
		return decimal.Zero
	}
	return resultBeforeTax.Mul(rate).Round(2)
}

// BuildYearEndSummary computes the fiscal-year result from the year's totals.
func BuildYearEndSummary(companyID string, fiscalYear int, totals []domain.AccountTotals, taxRate decimal.Decimal) domain.YearEndSummary {
	from, to := domain.YearRange(fiscalYear)
	s := domain.YearEndSummary{
		CompanyID:         companyID,
		FiscalYear:        fiscalYear,
		From:              from,
		To:                to,
		OperatingRevenue:  decimal.Zero,
		OperatingExpenses: decimal.Zero,
		FinancialIncome:   decimal.Zero,
		FinancialExpenses: decimal.Zero,
		TaxRate:           taxRate,
	}

	for _, t := range totals {
		amount := DisplayAmount(t.AccountType, t.Debit, t.Credit)
		switch t.AccountType {
		case domain.Revenue:
			s.OperatingRevenue = s.OperatingRevenue.Add(amount)
		case domain.Expense:
			s.OperatingExpenses = s.OperatingExpenses.Add(amount)
		case domain.FinancialIncome:
			s.FinancialIncome = s.FinancialIncome.Add(amount)
		case domain.FinancialExpense:
			s.FinancialExpenses = s.FinancialExpenses.Add(amount)
		}
	}

	s.OperatingResult = s.OperatingRevenue.Sub(s.OperatingExpenses)
	s.ResultBeforeTax = s.OperatingResult.Add(s.FinancialIncome).Sub(s.FinancialExpenses)
	s.CorporateTax = CorporateTax(s.ResultBeforeTax, taxRate)
	s.NetResult = s.ResultBeforeTax.Sub(s.CorporateTax)
	return s
}
