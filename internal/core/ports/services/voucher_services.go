package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
)

// VoucherReaderSvc defines read operations for vouchers
type VoucherReaderSvc interface {
	GetVoucherByID(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) (*domain.VoucherPage, error)
}

// VoucherWriterSvc defines write operations for vouchers
type VoucherWriterSvc interface {
	// PostVoucher validates, numbers and persists a balanced voucher atomically.
	PostVoucher(ctx context.Context, companyID string, req dto.PostVoucherRequest) (*domain.Voucher, error)

	// DeleteVoucher removes a voucher and its rows.
	DeleteVoucher(ctx context.Context, companyID string, voucherID string) error
}

// VoucherSvcFacade combines all voucher-related service interfaces
type VoucherSvcFacade interface {
	VoucherReaderSvc
	VoucherWriterSvc
}
