package mapping

import (
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/models"
)

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToModelVatPeriod converts a domain VatPeriod to a model VatPeriod
func ToModelVatPeriod(d domain.VatPeriod) models.VatPeriod {
	return models.VatPeriod{
		CompanyID:        d.CompanyID,
		Year:             d.Year,
		Period:           d.Period,
		PeriodType:       string(d.PeriodType),
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		OutputVat:        d.OutputVat,
		InputVat:         d.InputVat,
		VatToPay:         d.VatToPay,
		IsPaid:           d.IsPaid,
		PaidAt:           d.PaidAt,
		PaidAmount:       d.PaidAmount,
		PaymentReference: optionalString(d.PaymentReference),
		Notes:            optionalString(d.Notes),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVatPeriod converts a model VatPeriod to a domain VatPeriod
func ToDomainVatPeriod(m models.VatPeriod) domain.VatPeriod {
	return domain.VatPeriod{
		CompanyID:  m.CompanyID,
		Year:       m.Year,
		Period:     m.Period,
		PeriodType: domain.VatPeriodType(m.PeriodType),
		StartDate:  domain.NormalizeDate(m.StartDate),
		EndDate:    domain.NormalizeDate(m.EndDate),
		OutputVat:  m.OutputVat,
		InputVat:   m.InputVat,
		VatToPay:   m.VatToPay,
		VatPayment: domain.VatPayment{
			IsPaid:           m.IsPaid,
			PaidAt:           m.PaidAt,
			PaidAmount:       m.PaidAmount,
			PaymentReference: derefString(m.PaymentReference),
			Notes:            derefString(m.Notes),
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
