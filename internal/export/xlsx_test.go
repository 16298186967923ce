package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleStatements() Statements {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	return Statements{
		Company: domain.Company{Name: "Exempel AB"},
		IncomeStatement: &domain.IncomeStatement{
			From: from,
			To:   to,
			RevenueAccounts: []domain.AccountAmount{
				{Number: "3001", Name: "Försäljning 25%", Amount: d("1000")},
			},
			ExpenseAccounts: []domain.AccountAmount{
				{Number: "5010", Name: "Lokalhyra", Amount: d("250.50")},
			},
			TotalRevenue:  d("1000"),
			TotalExpenses: d("250.50"),
			NetIncome:     d("749.50"),
		},
		BalanceSheet: &domain.BalanceSheet{
			AsOf: to,
			Assets: []domain.AccountAmount{
				{Number: "1930", Name: "Företagskonto", Amount: d("749.50")},
			},
			Liabilities:      []domain.AccountAmount{},
			TotalAssets:      d("749.50"),
			TotalLiabilities: decimal.Zero,
			Equity:           d("749.50"),
		},
	}
}

func TestWriteStatementsXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStatementsXLSX(&buf, sampleStatements()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{IncomeStatementSheet, BalanceSheetSheet}, f.GetSheetList())

	cells := map[string]string{
		"A1": "Exempel AB",
		"B2": "2024-01-01 to 2024-12-31",
		"A6": "3001",
		"B6": "Försäljning 25%",
		"B11": "Net income",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue(IncomeStatementSheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}

	net, err := f.GetCellValue(IncomeStatementSheet, "C11", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "749.5", net)

	equityLabel, err := f.GetCellValue(BalanceSheetSheet, "B10")
	require.NoError(t, err)
	assert.Equal(t, "Equity", equityLabel)
}

func TestWriteStatementsXLSX_MissingStatement(t *testing.T) {
	s := sampleStatements()
	s.BalanceSheet = nil
	assert.Error(t, WriteStatementsXLSX(&bytes.Buffer{}, s))
}
