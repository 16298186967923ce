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

func testVoucher(number string, date time.Time) *domain.Voucher {
	return &domain.Voucher{
		VoucherID:     "v-" + number,
		CompanyID:     testCompanyID,
		VoucherNumber: number,
		Date:          date,
		Description:   "Invoice 1001",
		VoucherType:   domain.VoucherInvoice,
		Rows: []domain.VoucherRow{
			{RowID: "r1", AccountID: "acc-1510", AccountNumber: "1510", Debit: decimal.NewFromInt(1250), Credit: decimal.Zero, SortOrder: 0},
			{RowID: "r2", AccountID: "acc-3001", AccountNumber: "3001", Debit: decimal.Zero, Credit: decimal.NewFromInt(1000), SortOrder: 1},
			{RowID: "r3", AccountID: "acc-2611", AccountNumber: "2611", Debit: decimal.Zero, Credit: decimal.NewFromInt(250), SortOrder: 2},
		},
	}
}

func (suite *HandlerTestSuite) TestPostVoucher_Success() {
	body := map[string]any{
		"date":        "2024-03-15",
		"description": "Invoice 1001",
		"voucherType": "INVOICE",
		"rows": []map[string]any{
			{"accountID": "acc-1510", "debit": "1250"},
			{"accountID": "acc-3001", "credit": "1000"},
			{"accountID": "acc-2611", "credit": "250"},
		},
	}
	posted := testVoucher("00001", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	suite.voucher.On("PostVoucher", mock.Anything, testCompanyID, mock.MatchedBy(func(req dto.PostVoucherRequest) bool {
		return req.Date == "2024-03-15" && len(req.Rows) == 3 &&
			req.Rows[0].Debit.Equal(decimal.NewFromInt(1250)) &&
			req.Rows[2].Credit.Equal(decimal.NewFromInt(250))
	})).Return(posted, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies/"+testCompanyID+"/vouchers", body)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.VoucherResponse
	suite.decode(w, &resp)
	suite.Equal("00001", resp.VoucherNumber)
	suite.Equal("2024-03-15", resp.Date)
	suite.Len(resp.Rows, 3)
	suite.True(resp.TotalDebit.Equal(resp.TotalCredit))
}

func (suite *HandlerTestSuite) TestPostVoucher_BadDate() {
	body := map[string]any{"date": "15/03/2024", "rows": []map[string]any{{"accountID": "acc-1", "debit": "1"}}}

	w := suite.do(http.MethodPost, "/api/v1/companies/"+testCompanyID+"/vouchers", body)
	suite.assertError(w, http.StatusBadRequest, "VALIDATION_ERROR")
}

func (suite *HandlerTestSuite) TestPostVoucher_Rejections() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unbalanced", apperrors.ErrUnbalancedVoucher, http.StatusBadRequest, "UNBALANCED_VOUCHER"},
		{"empty", apperrors.ErrEmptyVoucher, http.StatusBadRequest, "EMPTY_VOUCHER"},
		{"unknown account", apperrors.ErrInvalidAccountReference, http.StatusBadRequest, "INVALID_ACCOUNT_REFERENCE"},
		{"closed year", fmt.Errorf("voucher dated 2023-12-31: %w", apperrors.ErrFiscalYearClosed), http.StatusConflict, "FISCAL_YEAR_CLOSED"},
		{"no company", apperrors.ErrCompanyNotFound, http.StatusNotFound, "COMPANY_NOT_FOUND"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.voucher.On("PostVoucher", mock.Anything, testCompanyID, mock.AnythingOfType("dto.PostVoucherRequest")).
				Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/companies/"+testCompanyID+"/vouchers",
				map[string]any{"date": "2024-01-10", "rows": []map[string]any{}})

			suite.assertError(w, tc.status, tc.code)
			suite.voucher.AssertExpectations(suite.T())
		})
	}
}

func (suite *HandlerTestSuite) TestListVouchers_PassesPagingParams() {
	page := &domain.VoucherPage{
		Vouchers:  []domain.Voucher{*testVoucher("00002", time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC))},
		NextToken: "next-page",
	}
	expected := dto.ListVouchersParams{Limit: 1, NextToken: "abc", FromDate: "2024-01-01", ToDate: "2024-12-31"}
	suite.voucher.On("ListVouchers", mock.Anything, testCompanyID, expected).Return(page, nil).Once()

	w := suite.do(http.MethodGet,
		"/api/v1/companies/"+testCompanyID+"/vouchers?limit=1&nextToken=abc&fromDate=2024-01-01&toDate=2024-12-31", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListVouchersResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Vouchers, 1)
	suite.Equal("00002", resp.Vouchers[0].VoucherNumber)
	suite.Equal("next-page", resp.NextToken)
}

func (suite *HandlerTestSuite) TestListVouchers_InvalidFromDate() {
	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/vouchers?fromDate=yesterday", nil)
	suite.assertError(w, http.StatusBadRequest, "VALIDATION_ERROR")
}

func (suite *HandlerTestSuite) TestGetVoucher() {
	v := testVoucher("00003", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	suite.voucher.On("GetVoucherByID", mock.Anything, testCompanyID, v.VoucherID).Return(v, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/vouchers/"+v.VoucherID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.VoucherResponse
	suite.decode(w, &resp)
	suite.Equal(v.VoucherID, resp.VoucherID)
	suite.Equal("3001", resp.Rows[1].AccountNumber)
}

func (suite *HandlerTestSuite) TestDeleteVoucher() {
	suite.voucher.On("DeleteVoucher", mock.Anything, testCompanyID, "v-1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/companies/"+testCompanyID+"/vouchers/v-1", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteVoucher_ClosedYear() {
	suite.voucher.On("DeleteVoucher", mock.Anything, testCompanyID, "v-1").Return(apperrors.ErrFiscalYearClosed).Once()

	w := suite.do(http.MethodDelete, "/api/v1/companies/"+testCompanyID+"/vouchers/v-1", nil)
	suite.assertError(w, http.StatusConflict, "FISCAL_YEAR_CLOSED")
}
