package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestVatSummary_DefaultsToQuarterly() {
	summary := &domain.VatSummary{
		Year:       2024,
		PeriodType: domain.VatQuarterly,
		Periods: []domain.VatPeriod{
			{Year: 2024, Period: 1, PeriodType: domain.VatQuarterly,
				StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
				OutputVat: decimal.NewFromInt(250), InputVat: decimal.NewFromInt(100), VatToPay: decimal.NewFromInt(150)},
		},
		TotalOutputVat: decimal.NewFromInt(250),
		TotalInputVat:  decimal.NewFromInt(100),
		TotalVatToPay:  decimal.NewFromInt(150),
	}
	suite.vat.On("VatSummary", mock.Anything, testCompanyID, 2024, domain.VatQuarterly).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/vat/summary?year=2024", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.VatSummaryResponse
	suite.decode(w, &resp)
	suite.Equal(domain.VatQuarterly, resp.PeriodType)
	suite.Require().Len(resp.Periods, 1)
	suite.Equal("2024-03-31", resp.Periods[0].EndDate)
	suite.True(resp.Periods[0].VatToPay.Equal(decimal.NewFromInt(150)))
}

func (suite *HandlerTestSuite) TestVatSummary_Validation() {
	cases := map[string]string{
		"missing year":        "",
		"unknown period type": "?year=2024&periodType=WEEKLY",
	}
	for name, query := range cases {
		suite.Run(name, func() {
			w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/vat/summary"+query, nil)
			suite.assertError(w, http.StatusBadRequest, "VALIDATION_ERROR")
		})
	}
}

func (suite *HandlerTestSuite) TestMarkVatPaid() {
	paidAt := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(150)
	marked := &domain.VatPeriod{
		Year: 2024, Period: 1, PeriodType: domain.VatQuarterly,
		VatToPay:   amount,
		VatPayment: domain.VatPayment{IsPaid: true, PaidAt: &paidAt, PaidAmount: &amount, PaymentReference: "OCR 123"},
	}
	suite.vat.On("MarkVatPaid", mock.Anything, testCompanyID, mock.MatchedBy(func(in domain.MarkVatPaidInput) bool {
		return in.Year == 2024 && in.Period == 1 && in.PeriodType == domain.VatQuarterly &&
			in.PaidAt != nil && in.PaidAt.Equal(paidAt) && in.PaidAmount == nil && in.PaymentReference == "OCR 123"
	})).Return(marked, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies/"+testCompanyID+"/vat/payments", map[string]any{
		"year": 2024, "period": 1, "periodType": "QUARTERLY", "paidAt": "2024-05-12", "paymentReference": "OCR 123",
	})

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.VatPeriodResponse
	suite.decode(w, &resp)
	suite.True(resp.IsPaid)
	suite.Require().NotNil(resp.PaidAt)
	suite.Equal("2024-05-12", *resp.PaidAt)
}

func (suite *HandlerTestSuite) TestMarkVatPaid_PeriodOutOfRange() {
	suite.vat.On("MarkVatPaid", mock.Anything, testCompanyID, mock.Anything).Return(nil, apperrors.ErrInvalidVatPeriod).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies/"+testCompanyID+"/vat/payments", map[string]any{
		"year": 2024, "period": 5, "periodType": "QUARTERLY",
	})
	suite.assertError(w, http.StatusBadRequest, "INVALID_VAT_PERIOD")
}

func (suite *HandlerTestSuite) TestUnmarkVatPaid() {
	suite.vat.On("UnmarkVatPaid", mock.Anything, testCompanyID, 2024, 3, domain.VatMonthly).Return(true, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/companies/"+testCompanyID+"/vat/payments/2024/3?periodType=MONTHLY", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestUnmarkVatPaid_NoRecord() {
	suite.vat.On("UnmarkVatPaid", mock.Anything, testCompanyID, 2024, 2, domain.VatQuarterly).
		Return(false, apperrors.ErrVatPeriodNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/companies/"+testCompanyID+"/vat/payments/2024/2", nil)
	suite.assertError(w, http.StatusNotFound, "VAT_PERIOD_NOT_FOUND")
}
