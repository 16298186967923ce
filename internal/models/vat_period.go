package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VatPeriod represents a row of the vat_periods table: the payment record plus
// the figures snapshotted when the period was marked.
type VatPeriod struct {
	CompanyID        string           `db:"company_id"`
	Year             int              `db:"year"`
	Period           int              `db:"period"`
	PeriodType       string           `db:"period_type"`
	StartDate        time.Time        `db:"start_date"`
	EndDate          time.Time        `db:"end_date"`
	OutputVat        decimal.Decimal  `db:"output_vat"`
	InputVat         decimal.Decimal  `db:"input_vat"`
	VatToPay         decimal.Decimal  `db:"vat_to_pay"`
	IsPaid           bool             `db:"is_paid"`
	PaidAt           *time.Time       `db:"paid_at"`
	PaidAmount       *decimal.Decimal `db:"paid_amount"`
	PaymentReference *string          `db:"payment_reference"`
	Notes            *string          `db:"notes"`
	AuditFields
}
