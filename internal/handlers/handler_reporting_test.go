package handlers_test

import (
	"bytes"
	"net/http"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"
)

func sameDay(want time.Time) any {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

func (suite *HandlerTestSuite) TestAccountBalances() {
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	rows := []domain.AccountBalance{
		{AccountID: "a1", Number: "1930", Name: "Bank", AccountType: domain.Asset,
			Debit: decimal.NewFromInt(500), Credit: decimal.NewFromInt(200), Balance: decimal.NewFromInt(300)},
		{AccountID: "a2", Number: "3001", Name: "Sales", AccountType: domain.Revenue,
			Debit: decimal.Zero, Credit: decimal.NewFromInt(300), Balance: decimal.NewFromInt(300)},
	}
	suite.reporting.On("AccountBalances", mock.Anything, testCompanyID, sameDay(asOf)).Return(rows, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/reports/account-balances?asOf=2024-06-30", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.AccountBalancesResponse
	suite.decode(w, &resp)
	suite.Equal("2024-06-30", resp.AsOf)
	suite.Require().Len(resp.Rows, 2)
	suite.True(resp.Rows[1].Balance.Equal(decimal.NewFromInt(300)))
}

func (suite *HandlerTestSuite) TestAccountBalances_InvalidDate() {
	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/reports/account-balances?asOf=30-06-2024", nil)
	suite.assertError(w, http.StatusBadRequest, "VALIDATION_ERROR")
}

func (suite *HandlerTestSuite) TestIncomeStatement() {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	stmt := &domain.IncomeStatement{
		From:            from,
		To:              to,
		RevenueAccounts: []domain.AccountAmount{{AccountID: "a2", Number: "3001", Name: "Sales", Amount: decimal.NewFromInt(1000)}},
		ExpenseAccounts: []domain.AccountAmount{{AccountID: "a3", Number: "5010", Name: "Rent", Amount: decimal.NewFromInt(400)}},
		TotalRevenue:    decimal.NewFromInt(1000),
		TotalExpenses:   decimal.NewFromInt(400),
		NetIncome:       decimal.NewFromInt(600),
	}
	suite.reporting.On("IncomeStatement", mock.Anything, testCompanyID, sameDay(from), sameDay(to)).Return(stmt, nil).Once()

	w := suite.do(http.MethodGet,
		"/api/v1/companies/"+testCompanyID+"/reports/income-statement?fromDate=2024-01-01&toDate=2024-03-31", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.IncomeStatementResponse
	suite.decode(w, &resp)
	suite.Equal("2024-01-01", resp.FromDate)
	suite.Len(resp.RevenueAccounts, 1)
	suite.Len(resp.ExpenseAccounts, 1)
}

func (suite *HandlerTestSuite) TestIncomeStatement_DefaultsToYearOfToDate() {
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 8, 31, 0, 0, 0, 0, time.UTC)
	suite.reporting.On("IncomeStatement", mock.Anything, testCompanyID, sameDay(from), sameDay(to)).
		Return(&domain.IncomeStatement{From: from, To: to}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/reports/income-statement?toDate=2023-08-31", nil)
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestIncomeStatement_FromAfterTo() {
	suite.reporting.On("IncomeStatement", mock.Anything, testCompanyID, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.do(http.MethodGet,
		"/api/v1/companies/"+testCompanyID+"/reports/income-statement?fromDate=2024-05-01&toDate=2024-03-31", nil)
	suite.assertError(w, http.StatusBadRequest, "VALIDATION_ERROR")
}

func (suite *HandlerTestSuite) TestBalanceSheet() {
	asOf := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	sheet := &domain.BalanceSheet{
		AsOf:             asOf,
		Assets:           []domain.AccountAmount{{AccountID: "a1", Number: "1930", Name: "Bank", Amount: decimal.NewFromInt(900)}},
		Liabilities:      []domain.AccountAmount{{AccountID: "a4", Number: "2440", Name: "Suppliers", Amount: decimal.NewFromInt(300)}},
		TotalAssets:      decimal.NewFromInt(900),
		TotalLiabilities: decimal.NewFromInt(300),
		Equity:           decimal.NewFromInt(600),
	}
	suite.reporting.On("BalanceSheet", mock.Anything, testCompanyID, sameDay(asOf)).Return(sheet, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/reports/balance-sheet?asOf=2024-12-31", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.BalanceSheetResponse
	suite.decode(w, &resp)
	suite.Equal("2024-12-31", resp.AsOf)
	suite.Len(resp.Assets, 1)
	suite.Len(resp.Liabilities, 1)
}

func (suite *HandlerTestSuite) TestExportStatements() {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	suite.company.On("GetCompany", mock.Anything, testCompanyID).
		Return(&domain.Company{CompanyID: testCompanyID, Name: "Acme AB", CurrentFiscalYear: 2024}, nil).Once()
	suite.reporting.On("IncomeStatement", mock.Anything, testCompanyID, sameDay(from), sameDay(to)).
		Return(&domain.IncomeStatement{From: from, To: to, NetIncome: decimal.Zero}, nil).Once()
	suite.reporting.On("BalanceSheet", mock.Anything, testCompanyID, sameDay(to)).
		Return(&domain.BalanceSheet{AsOf: to}, nil).Once()

	w := suite.do(http.MethodGet,
		"/api/v1/companies/"+testCompanyID+"/reports/statements.xlsx?fromDate=2024-01-01&toDate=2024-12-31", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(w.Header().Get("Content-Type"), "spreadsheetml")
	suite.Contains(w.Header().Get("Content-Disposition"), "statements-2024-12-31.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	suite.Require().NoError(err)
	defer f.Close()
	name, err := f.GetCellValue("Income Statement", "A1")
	suite.Require().NoError(err)
	suite.Equal("Acme AB", name)
}

func (suite *HandlerTestSuite) TestExportStatements_UnknownCompany() {
	suite.company.On("GetCompany", mock.Anything, testCompanyID).Return(nil, apperrors.ErrCompanyNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/reports/statements.xlsx?toDate=2024-12-31", nil)
	suite.assertError(w, http.StatusNotFound, "COMPANY_NOT_FOUND")
}
