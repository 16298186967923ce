package accounting

import (
	"fmt"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildVatPeriods buckets VAT documents into the periods of year. Output VAT comes
// from sales documents, input VAT only from paid purchase documents. Documents
// outside the year are ignored.
func BuildVatPeriods(companyID string, year int, periodType domain.VatPeriodType, docs []domain.VatDocument) ([]domain.VatPeriod, error) {
	count := periodType.PeriodCount()
	if count == 0 {
		return nil, fmt.Errorf("period type %q: %w", periodType, apperrors.ErrInvalidVatPeriod)
	}

	periods := make([]domain.VatPeriod, count)
	for i := range periods {
		start, end, err := periodType.PeriodRange(year, i+1)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, apperrors.ErrInvalidVatPeriod)
		}
		periods[i] = domain.VatPeriod{
			CompanyID:  companyID,
			Year:       year,
			Period:     i + 1,
			PeriodType: periodType,
			StartDate:  start,
			EndDate:    end,
			OutputVat:  decimal.Zero,
			InputVat:   decimal.Zero,
		}
	}

	monthsPerPeriod := 12 / count
	for _, doc := range docs {
		date := domain.NormalizeDate(doc.Date)
		if date.Year() != year {
			continue
		}
		idx := (int(date.Month()) - 1) / monthsPerPeriod
		switch doc.Kind {
		case domain.SalesDocument:
			periods[idx].OutputVat = periods[idx].OutputVat.Add(doc.VatAmount)
		case domain.PurchaseDocument:
			if doc.IsPaid {
				periods[idx].InputVat = periods[idx].InputVat.Add(doc.VatAmount)
			}
		}
	}

	for i := range periods {
		periods[i].VatToPay = periods[i].OutputVat.Sub(periods[i].InputVat)
	}
	return periods, nil
}

// SummarizeVat totals a set of periods into a summary.
func SummarizeVat(year int, periodType domain.VatPeriodType, periods []domain.VatPeriod) domain.VatSummary {
	summary := domain.VatSummary{
		Year:           year,
		PeriodType:     periodType,
		Periods:        periods,
		TotalOutputVat: decimal.Zero,
		TotalInputVat:  decimal.Zero,
		TotalVatToPay:  decimal.Zero,
	}
	for _, p := range periods {
		summary.TotalOutputVat = summary.TotalOutputVat.Add(p.OutputVat)
		summary.TotalInputVat = summary.TotalInputVat.Add(p.InputVat)
		summary.TotalVatToPay = summary.TotalVatToPay.Add(p.VatToPay)
	}
	return summary
}
