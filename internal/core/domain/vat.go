package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// VatPeriodType selects how a year is partitioned for VAT reporting.
type VatPeriodType string

const (
	VatMonthly   VatPeriodType = "MONTHLY"
	VatQuarterly VatPeriodType = "QUARTERLY"
	VatYearly    VatPeriodType = "YEARLY"
)

// Valid reports whether t is a known VAT period type.
func (t VatPeriodType) Valid() bool {
	return t.PeriodCount() > 0
}

// PeriodCount returns how many periods of this type make up a year.
func (t VatPeriodType) PeriodCount() int {
	switch t {
	case VatMonthly:
		return 12
	case VatQuarterly:
		return 4
	case VatYearly:
		return 1
	}
	return 0
}

// PeriodRange returns the inclusive first and last calendar day of period (1-based) in year.
func (t VatPeriodType) PeriodRange(year, period int) (time.Time, time.Time, error) {
	count := t.PeriodCount()
	if count == 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("unknown VAT period type %q", t)
	}
	if period < 1 || period > count {
		return time.Time{}, time.Time{}, fmt.Errorf("period %d out of range 1..%d for %s", period, count, t)
	}
	months := 12 / count
	start := time.Date(year, time.Month((period-1)*months+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, months, -1)
	return start, end, nil
}

// VatDocumentKind says whether a document carries output or input VAT.
type VatDocumentKind string

const (
	SalesDocument    VatDocumentKind = "SALES"
	PurchaseDocument VatDocumentKind = "PURCHASE"
)

// VatDocument is a VAT-relevant invoice or expense supplied by a collaborator service.
type VatDocument struct {
	DocumentID string          `json:"documentID"`
	CompanyID  string          `json:"companyID"`
	Kind       VatDocumentKind `json:"kind"`
	Date       time.Time       `json:"date"`
	VatAmount  decimal.Decimal `json:"vatAmount"`
	IsPaid     bool            `json:"isPaid"`
}

// VatPayment is the persisted payment sub-record of a VAT period.
type VatPayment struct {
	IsPaid           bool             `json:"isPaid"`
	PaidAt           *time.Time       `json:"paidAt,omitempty"`
	PaidAmount       *decimal.Decimal `json:"paidAmount,omitempty"`
	PaymentReference string           `json:"paymentReference,omitempty"`
	Notes            string           `json:"notes,omitempty"`
}

// VatPeriod is one reconciliation bucket. The amounts are computed on read;
// when loaded from storage they hold the snapshot taken at marking time.
type VatPeriod struct {
	CompanyID  string          `json:"companyID"`
	Year       int             `json:"year"`
	Period     int             `json:"period"`
	PeriodType VatPeriodType   `json:"periodType"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	OutputVat  decimal.Decimal `json:"outputVat"`
	InputVat   decimal.Decimal `json:"inputVat"`
	VatToPay   decimal.Decimal `json:"vatToPay"`
	VatPayment
	AuditFields
}

// VatSummary lists every period of a year plus totals.
type VatSummary struct {
	Year           int             `json:"year"`
	PeriodType     VatPeriodType   `json:"periodType"`
	Periods        []VatPeriod     `json:"periods"`
	TotalOutputVat decimal.Decimal `json:"totalOutputVat"`
	TotalInputVat  decimal.Decimal `json:"totalInputVat"`
	TotalVatToPay  decimal.Decimal `json:"totalVatToPay"`
}

// MarkVatPaidInput targets one period and carries optional payment details.
type MarkVatPaidInput struct {
	Year             int
	Period           int
	PeriodType       VatPeriodType
	PaidAmount       *decimal.Decimal
	PaidAt           *time.Time
	PaymentReference string
	Notes            string
}
