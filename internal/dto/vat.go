package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MarkVatPaidRequest marks one VAT period as paid.
type MarkVatPaidRequest struct {
	Year             int                  `json:"year" binding:"required,min=1900,max=9999"`
	Period           int                  `json:"period" binding:"required,min=1,max=12"`
	PeriodType       domain.VatPeriodType `json:"periodType" binding:"required,vatperiodtype"`
	PaidAmount       *decimal.Decimal     `json:"paidAmount"` // Defaults to the computed VAT to pay
	PaidAt           string               `json:"paidAt" binding:"omitempty,datetime=2006-01-02"`
	PaymentReference string               `json:"paymentReference"`
	Notes            string               `json:"notes"`
}

// ToInput converts the request into the service input.
func (r MarkVatPaidRequest) ToInput() (domain.MarkVatPaidInput, error) {
	in := domain.MarkVatPaidInput{
		Year:             r.Year,
		Period:           r.Period,
		PeriodType:       r.PeriodType,
		PaidAmount:       r.PaidAmount,
		PaymentReference: r.PaymentReference,
		Notes:            r.Notes,
	}
	if r.PaidAt != "" {
		t, err := time.Parse(domain.DateLayout, r.PaidAt)
		if err != nil {
			return in, fmt.Errorf("invalid paidAt %q: %w", r.PaidAt, err)
		}
		in.PaidAt = &t
	}
	return in, nil
}

// VatPeriodResponse defines the data returned for one VAT period.
type VatPeriodResponse struct {
	Year             int                  `json:"year"`
	Period           int                  `json:"period"`
	PeriodType       domain.VatPeriodType `json:"periodType"`
	StartDate        string               `json:"startDate"`
	EndDate          string               `json:"endDate"`
	OutputVat        decimal.Decimal      `json:"outputVat"`
	InputVat         decimal.Decimal      `json:"inputVat"`
	VatToPay         decimal.Decimal      `json:"vatToPay"`
	IsPaid           bool                 `json:"isPaid"`
	PaidAt           *string              `json:"paidAt,omitempty"`
	PaidAmount       *decimal.Decimal     `json:"paidAmount,omitempty"`
	PaymentReference string               `json:"paymentReference,omitempty"`
	Notes            string               `json:"notes,omitempty"`
}

// VatSummaryResponse defines the data returned for a VAT summary.
type VatSummaryResponse struct {
	Year       int                  `json:"year"`
	PeriodType domain.VatPeriodType `json:"periodType"`
	Periods    []VatPeriodResponse  `json:"periods"`
	Totals     struct {
		OutputVat decimal.Decimal `json:"outputVat"`
		InputVat  decimal.Decimal `json:"inputVat"`
		VatToPay  decimal.Decimal `json:"vatToPay"`
	} `json:"totals"`
}

// ToVatPeriodResponse converts a domain.VatPeriod to its DTO.
func ToVatPeriodResponse(p *domain.VatPeriod) VatPeriodResponse {
	resp := VatPeriodResponse{
		Year:             p.Year,
		Period:           p.Period,
		PeriodType:       p.PeriodType,
		StartDate:        p.StartDate.Format(domain.DateLayout),
		EndDate:          p.EndDate.Format(domain.DateLayout),
		OutputVat:        p.OutputVat,
		InputVat:         p.InputVat,
		VatToPay:         p.VatToPay,
		IsPaid:           p.IsPaid,
		PaidAmount:       p.PaidAmount,
		PaymentReference: p.PaymentReference,
		Notes:            p.Notes,
	}
	if p.PaidAt != nil {
		s := p.PaidAt.Format(domain.DateLayout)
		resp.PaidAt = &s
	}
	return resp
}

// ToVatSummaryResponse converts a domain.VatSummary to its DTO.
func ToVatSummaryResponse(s *domain.VatSummary) VatSummaryResponse {
	resp := VatSummaryResponse{
		Year:       s.Year,
		PeriodType: s.PeriodType,
		Periods:    make([]VatPeriodResponse, len(s.Periods)),
	}
	for i := range s.Periods {
		resp.Periods[i] = ToVatPeriodResponse(&s.Periods[i])
	}
	resp.Totals.OutputVat = s.TotalOutputVat
	resp.Totals.InputVat = s.TotalInputVat
	resp.Totals.VatToPay = s.TotalVatToPay
	return resp
}
