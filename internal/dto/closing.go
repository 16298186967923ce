package dto

import (
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// CloseYearResponse is returned for every close attempt, successful or not.
type CloseYearResponse struct {
	Success        bool             `json:"success"`
	Message        string           `json:"message"`
	Code           string           `json:"code,omitempty"`
	NewFiscalYear  *int             `json:"newFiscalYear,omitempty"`
	ClosingVoucher *VoucherResponse `json:"closingVoucher,omitempty"`
}

// ToCloseYearResponse converts a successful domain.CloseYearResult to its DTO.
func ToCloseYearResponse(r *domain.CloseYearResult) CloseYearResponse {
	resp := CloseYearResponse{
		Success:       r.Success,
		Message:       r.Message,
		NewFiscalYear: r.NewFiscalYear,
	}
	if r.ClosingVoucher != nil {
		v := ToVoucherResponse(r.ClosingVoucher)
		resp.ClosingVoucher = &v
	}
	return resp
}
