package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher represents a row of the vouchers table. Rows are stored separately.
type Voucher struct {
	VoucherID     string    `db:"voucher_id"`
	CompanyID     string    `db:"company_id"`
	VoucherNumber string    `db:"voucher_number"`
	VoucherDate   time.Time `db:"voucher_date"`
	Description   string    `db:"description"`
	VoucherType   string    `db:"voucher_type"`
	AuditFields
}

// VoucherRow represents a row of the voucher_rows table joined with its account.
type VoucherRow struct {
	RowID         string          `db:"row_id"`
	VoucherID     string          `db:"voucher_id"`
	AccountID     string          `db:"account_id"`
	AccountNumber string          `db:"account_number"`
	AccountName   string          `db:"account_name"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	Description   string          `db:"description"`
	SortOrder     int             `db:"sort_order"`
}
