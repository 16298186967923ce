package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: vs}
}

// RegisterVoucherRoutes registers routes related to vouchers on a company-scoped group.
func RegisterVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.postVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucher_id", h.getVoucher)
		vouchers.DELETE("/:voucher_id", h.deleteVoucher)
	}
}

// postVoucher godoc
// @Summary Post a voucher
// @Description Validates and posts a balanced voucher. The voucher number is assigned by the server.
// @Tags vouchers
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param voucher body dto.PostVoucherRequest true "Voucher date, description and rows"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} ErrorResponse "Empty, unbalanced or invalid voucher"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 409 {object} ErrorResponse "Fiscal year closed"
// @Failure 500 {object} ErrorResponse "Failed to post voucher"
// @Router /companies/{company_id}/vouchers [post]
func (h *voucherHandler) postVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param(companyIDParam)

	var req dto.PostVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	voucher, err := h.voucherService.PostVoucher(c.Request.Context(), companyID, req)
	if err != nil {
		respondError(c, err, "Failed to post voucher")
		return
	}

	logger.Info("Voucher posted",
		slog.String("company_id", companyID),
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("voucher_number", voucher.VoucherNumber))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List vouchers
// @Description Lists vouchers newest first with token based pagination
// @Tags vouchers
// @Produce json
// @Param company_id path string true "Company ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param fromDate query string false "Earliest voucher date (YYYY-MM-DD)"
// @Param toDate query string false "Latest voucher date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListVouchersResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Failed to list vouchers"
// @Router /companies/{company_id}/vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}

	page, err := h.voucherService.ListVouchers(c.Request.Context(), c.Param(companyIDParam), params)
	if err != nil {
		respondError(c, err, "Failed to list vouchers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVouchersResponse(page))
}

// getVoucher godoc
// @Summary Get a voucher by ID
// @Tags vouchers
// @Produce json
// @Param company_id path string true "Company ID"
// @Param voucher_id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve voucher"
// @Router /companies/{company_id}/vouchers/{voucher_id} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), c.Param(companyIDParam), c.Param("voucher_id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// deleteVoucher godoc
// @Summary Delete a voucher
// @Description Removes a voucher and its rows. Vouchers in closed fiscal years cannot be deleted.
// @Tags vouchers
// @Param company_id path string true "Company ID"
// @Param voucher_id path string true "Voucher ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 409 {object} ErrorResponse "Fiscal year closed"
// @Failure 500 {object} ErrorResponse "Failed to delete voucher"
// @Router /companies/{company_id}/vouchers/{voucher_id} [delete]
func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	voucherID := c.Param("voucher_id")
	if err := h.voucherService.DeleteVoucher(c.Request.Context(), c.Param(companyIDParam), voucherID); err != nil {
		respondError(c, err, "Failed to delete voucher")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Voucher deleted", slog.String("voucher_id", voucherID))
	c.Status(http.StatusNoContent)
}
