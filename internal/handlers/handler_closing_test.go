package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestYearEndSummary() {
	summary := &domain.YearEndSummary{
		CompanyID:       testCompanyID,
		FiscalYear:      2024,
		OperatingResult: decimal.NewFromInt(1000),
		ResultBeforeTax: decimal.NewFromInt(1000),
		TaxRate:         decimal.RequireFromString("0.206"),
		CorporateTax:    decimal.NewFromInt(206),
		NetResult:       decimal.NewFromInt(794),
	}
	suite.closing.On("YearEndSummary", mock.Anything, testCompanyID, 2024).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/closing/2024/summary", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp domain.YearEndSummary
	suite.decode(w, &resp)
	suite.Equal(2024, resp.FiscalYear)
	suite.True(resp.NetResult.Equal(decimal.NewFromInt(794)))
}

func (suite *HandlerTestSuite) TestYearEndSummary_InvalidYear() {
	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/closing/twenty/summary", nil)
	suite.assertError(w, http.StatusBadRequest, "VALIDATION_ERROR")
}

func (suite *HandlerTestSuite) TestCloseYear_Success() {
	next := 2025
	result := &domain.CloseYearResult{
		Success:       true,
		Message:       "Fiscal year 2024 closed with net result 794.00",
		NewFiscalYear: &next,
		ClosingVoucher: &domain.Voucher{
			VoucherID: "v-close", VoucherNumber: "00042", Date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			Rows: []domain.VoucherRow{
				{AccountNumber: "2099", Debit: decimal.NewFromInt(794), Credit: decimal.Zero},
				{AccountNumber: "2091", Debit: decimal.Zero, Credit: decimal.NewFromInt(794), SortOrder: 1},
			},
		},
	}
	suite.closing.On("CloseYear", mock.Anything, testCompanyID, 2024).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies/"+testCompanyID+"/closing/2024", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.CloseYearResponse
	suite.decode(w, &resp)
	suite.True(resp.Success)
	suite.Require().NotNil(resp.NewFiscalYear)
	suite.Equal(2025, *resp.NewFiscalYear)
	suite.Require().NotNil(resp.ClosingVoucher)
	suite.Equal("2024-12-31", resp.ClosingVoucher.Date)
}

func (suite *HandlerTestSuite) TestCloseYear_Refusals() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"already closed", fmt.Errorf("fiscal year 2023: %w", apperrors.ErrAlreadyClosed), http.StatusConflict, "ALREADY_CLOSED"},
		{"prior year open", apperrors.ErrPriorYearOpen, http.StatusConflict, "PRIOR_YEAR_OPEN"},
		{"no company", apperrors.ErrCompanyNotFound, http.StatusNotFound, "COMPANY_NOT_FOUND"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.closing.On("CloseYear", mock.Anything, testCompanyID, 2023).Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/companies/"+testCompanyID+"/closing/2023", nil)

			suite.Equal(tc.status, w.Code)
			var resp dto.CloseYearResponse
			suite.decode(w, &resp)
			suite.False(resp.Success)
			suite.Equal(tc.code, resp.Code)
			suite.NotEmpty(resp.Message)
			suite.Nil(resp.NewFiscalYear)
		})
	}
}

func (suite *HandlerTestSuite) TestCloseYear_InternalFailure() {
	suite.closing.On("CloseYear", mock.Anything, testCompanyID, 2024).Return(nil, fmt.Errorf("tx aborted")).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies/"+testCompanyID+"/closing/2024", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp dto.CloseYearResponse
	suite.decode(w, &resp)
	suite.False(resp.Success)
	suite.Equal("INTERNAL_ERROR", resp.Code)
	suite.Equal("Failed to close fiscal year", resp.Message)
}

func (suite *HandlerTestSuite) TestTaxCalculation() {
	calc := &domain.TaxCalculation{
		FiscalYear:        2024,
		VatToPay:          decimal.NewFromInt(150),
		Payroll:           domain.PayrollTotals{GrossSalaries: decimal.NewFromInt(30000), PaymentCount: 1},
		TotalTaxLiability: decimal.NewFromInt(356),
	}
	suite.tax.On("TaxCalculation", mock.Anything, testCompanyID, 2024).Return(calc, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/closing/2024/tax", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp domain.TaxCalculation
	suite.decode(w, &resp)
	suite.True(resp.TotalTaxLiability.Equal(decimal.NewFromInt(356)))
	suite.Equal(1, resp.Payroll.PaymentCount)
}
