package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType tags a voucher with its origin. Informational only.
type VoucherType string

const (
	VoucherManual  VoucherType = "MANUAL"
	VoucherInvoice VoucherType = "INVOICE"
	VoucherPayment VoucherType = "PAYMENT"
	VoucherSalary  VoucherType = "SALARY"
	VoucherOther   VoucherType = "OTHER"
)

// Valid reports whether t is a known voucher type.
func (t VoucherType) Valid() bool {
	switch t {
	case VoucherManual, VoucherInvoice, VoucherPayment, VoucherSalary, VoucherOther:
		return true
	}
	return false
}

// VoucherNumberWidth is the zero-padded width of voucher numbers.
const VoucherNumberWidth = 5

// FormatVoucherNumber renders a sequence value as a voucher number, e.g. 7 -> "00007".
func FormatVoucherNumber(seq int64) string {
	return fmt.Sprintf("%0*d", VoucherNumberWidth, seq)
}

// ParseVoucherNumber returns the numeric value of a voucher number.
// ok is false for numbers that are not purely numeric (imported series and the like).
func ParseVoucherNumber(number string) (int64, bool) {
	if number == "" {
		return 0, false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Voucher is a balanced double-entry transaction: a header plus ordered rows.
type Voucher struct {
	VoucherID     string       `json:"voucherID"`
	CompanyID     string       `json:"companyID"`
	VoucherNumber string       `json:"voucherNumber"`
	Date          time.Time    `json:"date"`
	Description   string       `json:"description"`
	VoucherType   VoucherType  `json:"voucherType"`
	Rows          []VoucherRow `json:"rows"`
	AuditFields
}

// VoucherRow is one debit and/or credit posting against a single account.
type VoucherRow struct {
	RowID         string          `json:"rowID"`
	VoucherID     string          `json:"voucherID"`
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Description   string          `json:"description"`
	SortOrder     int             `json:"sortOrder"`
}

// Totals returns the debit and credit sums over the voucher rows.
func (v Voucher) Totals() (decimal.Decimal, decimal.Decimal) {
	debit, credit := decimal.Zero, decimal.Zero
	for _, r := range v.Rows {
		debit = debit.Add(r.Debit)
		credit = credit.Add(r.Credit)
	}
	return debit, credit
}

// VoucherFilter narrows voucher listings.
type VoucherFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
	// Cursor position, exclusive: listings are ordered by date then number, newest first.
	AfterDate   *time.Time
	AfterNumber string
}

// VoucherPage is one page of a voucher listing.
type VoucherPage struct {
	Vouchers  []Voucher `json:"vouchers"`
	NextToken string    `json:"nextToken,omitempty"`
}
