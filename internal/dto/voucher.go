package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherRowRequest is one posting line of a voucher. Callers normally set one
// of Debit or Credit and leave the other at zero.
type VoucherRowRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// PostVoucherRequest defines the data needed to post a voucher.
type PostVoucherRequest struct {
	Date        string              `json:"date" binding:"required,datetime=2006-01-02"`
	Description string              `json:"description"`
	VoucherType domain.VoucherType  `json:"voucherType" binding:"omitempty,vouchertype"`
	Rows        []VoucherRowRequest `json:"rows" binding:"dive"`
}

// ParsedDate returns the voucher date as a calendar date.
func (r PostVoucherRequest) ParsedDate() (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, r.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid voucher date %q: %w", r.Date, err)
	}
	return t, nil
}

// ListVouchersParams holds query parameters for listing vouchers.
type ListVouchersParams struct {
	Limit     int    `form:"limit"`
	NextToken string `form:"nextToken"`
	FromDate  string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate    string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
}

// VoucherRowResponse defines the data returned for a voucher row.
type VoucherRowResponse struct {
	RowID         string          `json:"rowID"`
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Description   string          `json:"description"`
	SortOrder     int             `json:"sortOrder"`
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID     string               `json:"voucherID"`
	VoucherNumber string               `json:"voucherNumber"`
	Date          string               `json:"date"`
	Description   string               `json:"description"`
	VoucherType   domain.VoucherType   `json:"voucherType"`
	Rows          []VoucherRowResponse `json:"rows"`
	TotalDebit    decimal.Decimal      `json:"totalDebit"`
	TotalCredit   decimal.Decimal      `json:"totalCredit"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
}

// ListVouchersResponse is one page of vouchers.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToVoucherResponse converts a domain.Voucher to VoucherResponse DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	debit, credit := v.Totals()
	rows := make([]VoucherRowResponse, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = VoucherRowResponse{
			RowID:         r.RowID,
			AccountID:     r.AccountID,
			AccountNumber: r.AccountNumber,
			AccountName:   r.AccountName,
			Debit:         r.Debit,
			Credit:        r.Credit,
			Description:   r.Description,
			SortOrder:     r.SortOrder,
		}
	}
	return VoucherResponse{
		VoucherID:     v.VoucherID,
		VoucherNumber: v.VoucherNumber,
		Date:          v.Date.Format(domain.DateLayout),
		Description:   v.Description,
		VoucherType:   v.VoucherType,
		Rows:          rows,
		TotalDebit:    debit,
		TotalCredit:   credit,
		CreatedAt:     v.CreatedAt,
		CreatedBy:     v.CreatedBy,
	}
}

// ToListVouchersResponse converts a domain.VoucherPage to its DTO.
func ToListVouchersResponse(page *domain.VoucherPage) ListVouchersResponse {
	resp := ListVouchersResponse{
		Vouchers:  make([]VoucherResponse, len(page.Vouchers)),
		NextToken: page.NextToken,
	}
	for i := range page.Vouchers {
		resp.Vouchers[i] = ToVoucherResponse(&page.Vouchers[i])
	}
	return resp
}
