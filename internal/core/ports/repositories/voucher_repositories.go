package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// VoucherReader defines read operations for vouchers. Writes only happen
// through a unit of work so numbering and balance checks stay atomic.
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher with its rows in sort order.
	FindVoucherByID(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error)

	// ListVouchers retrieves vouchers newest first, honouring the filter cursor.
	ListVouchers(ctx context.Context, companyID string, filter domain.VoucherFilter) ([]domain.Voucher, error)
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces
type VoucherRepositoryFacade interface {
	VoucherReader
}
