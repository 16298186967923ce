package mapping

import (
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/models"
)

// ToModelVoucher converts a domain Voucher header to a model Voucher
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:     d.VoucherID,
		CompanyID:     d.CompanyID,
		VoucherNumber: d.VoucherNumber,
		VoucherDate:   domain.NormalizeDate(d.Date),
		Description:   d.Description,
		VoucherType:   string(d.VoucherType),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher and its rows to a domain Voucher
func ToDomainVoucher(m models.Voucher, rows []models.VoucherRow) domain.Voucher {
	return domain.Voucher{
		VoucherID:     m.VoucherID,
		CompanyID:     m.CompanyID,
		VoucherNumber: m.VoucherNumber,
		Date:          domain.NormalizeDate(m.VoucherDate),
		Description:   m.Description,
		VoucherType:   domain.VoucherType(m.VoucherType),
		Rows:          ToDomainVoucherRowSlice(rows),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelVoucherRow converts a domain VoucherRow to a model VoucherRow
func ToModelVoucherRow(d domain.VoucherRow) models.VoucherRow {
	return models.VoucherRow{
		RowID:         d.RowID,
		VoucherID:     d.VoucherID,
		AccountID:     d.AccountID,
		AccountNumber: d.AccountNumber,
		AccountName:   d.AccountName,
		Debit:         d.Debit,
		Credit:        d.Credit,
		Description:   d.Description,
		SortOrder:     d.SortOrder,
	}
}

// ToDomainVoucherRow converts a model VoucherRow to a domain VoucherRow
func ToDomainVoucherRow(m models.VoucherRow) domain.VoucherRow {
	return domain.VoucherRow{
		RowID:         m.RowID,
		VoucherID:     m.VoucherID,
		AccountID:     m.AccountID,
		AccountNumber: m.AccountNumber,
		AccountName:   m.AccountName,
		Debit:         m.Debit,
		Credit:        m.Credit,
		Description:   m.Description,
		SortOrder:     m.SortOrder,
	}
}

// ToDomainVoucherRowSlice converts model rows to domain rows, keeping their order
func ToDomainVoucherRowSlice(ms []models.VoucherRow) []domain.VoucherRow {
	ds := make([]domain.VoucherRow, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucherRow(m)
	}
	return ds
}
