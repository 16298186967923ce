package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	IncomeStatementSheet = "Income Statement"
	BalanceSheetSheet    = "Balance Sheet"
)

// Statements bundles what goes into one workbook.
type Statements struct {
	Company         domain.Company
	IncomeStatement *domain.IncomeStatement
	BalanceSheet    *domain.BalanceSheet
}

// WriteStatementsXLSX renders the income statement and the balance sheet as two
// sheets of one workbook and writes it to w.
func WriteStatementsXLSX(w io.Writer, s Statements) error {
	if s.IncomeStatement == nil || s.BalanceSheet == nil {
		return fmt.Errorf("both statements are required")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", IncomeStatementSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(BalanceSheetSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	incomeRows := [][]any{
		{s.Company.Name},
		{"Period", fmt.Sprintf("%s to %s", s.IncomeStatement.From.Format(domain.DateLayout), s.IncomeStatement.To.Format(domain.DateLayout))},
		{},
		{"Account", "Name", "Amount"},
	}
	incomeRows = append(incomeRows, []any{"Revenue"})
	incomeRows = append(incomeRows, amountRows(s.IncomeStatement.RevenueAccounts)...)
	incomeRows = append(incomeRows, []any{"", "Total revenue", s.IncomeStatement.TotalRevenue})
	incomeRows = append(incomeRows, []any{"Expenses"})
	incomeRows = append(incomeRows, amountRows(s.IncomeStatement.ExpenseAccounts)...)
	incomeRows = append(incomeRows, []any{"", "Total expenses", s.IncomeStatement.TotalExpenses})
	incomeRows = append(incomeRows, []any{"", "Net income", s.IncomeStatement.NetIncome})
	if err := writeSheet(f, IncomeStatementSheet, incomeRows, styles); err != nil {
		return err
	}

	balanceRows := [][]any{
		{s.Company.Name},
		{"As of", s.BalanceSheet.AsOf.Format(domain.DateLayout)},
		{},
		{"Account", "Name", "Amount"},
	}
	balanceRows = append(balanceRows, []any{"Assets"})
	balanceRows = append(balanceRows, amountRows(s.BalanceSheet.Assets)...)
	balanceRows = append(balanceRows, []any{"", "Total assets", s.BalanceSheet.TotalAssets})
	balanceRows = append(balanceRows, []any{"Liabilities"})
	balanceRows = append(balanceRows, amountRows(s.BalanceSheet.Liabilities)...)
	balanceRows = append(balanceRows, []any{"", "Total liabilities", s.BalanceSheet.TotalLiabilities})
	balanceRows = append(balanceRows, []any{"", "Equity", s.BalanceSheet.Equity})
	if err := writeSheet(f, BalanceSheetSheet, balanceRows, styles); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type sheetStyles struct {
	header int
	amount int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("header style: %w", err)
	}
	numFmt := "#,##0.00"
	amount, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("amount style: %w", err)
	}
	return sheetStyles{header: header, amount: amount}, nil
}

func amountRows(amounts []domain.AccountAmount) [][]any {
	rows := make([][]any, len(amounts))
	for i, a := range amounts {
		rows[i] = []any{a.Number, a.Name, a.Amount}
	}
	return rows
}

func writeSheet(f *excelize.File, sheet string, rows [][]any, styles sheetStyles) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if d, ok := v.(decimal.Decimal); ok {
				// Stored as a number so the sheet can sum it; exact value is two decimals.
				if err := f.SetCellFloat(sheet, cell, d.Round(2).InexactFloat64(), -1, 64); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cell, cell, styles.amount); err != nil {
					return err
				}
				continue
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		if len(row) == 1 || r == 3 {
			first, _ := excelize.CoordinatesToCellName(1, r+1)
			last, _ := excelize.CoordinatesToCellName(3, r+1)
			if err := f.SetCellStyle(sheet, first, last, styles.header); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(sheet, "B", "B", 36)
}
