package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type vatHandler struct {
	vatService portssvc.VatSvcFacade
}

func newVatHandler(vs portssvc.VatSvcFacade) *vatHandler {
	return &vatHandler{vatService: vs}
}

// RegisterVatRoutes registers the VAT reconciliation routes on a company-scoped group.
func RegisterVatRoutes(rg *gin.RouterGroup, vatService portssvc.VatSvcFacade) {
	h := newVatHandler(vatService)

	vat := rg.Group("/vat")
	{
		vat.GET("/summary", h.getVatSummary)
		vat.POST("/payments", h.markVatPaid)
		vat.DELETE("/payments/:year/:period", h.unmarkVatPaid)
	}
}

type vatSummaryQuery struct {
	Year       int                  `form:"year" binding:"required,min=1900,max=9999"`
	PeriodType domain.VatPeriodType `form:"periodType" binding:"omitempty,vatperiodtype"`
}

type vatPaymentURI struct {
	Year   int `uri:"year" binding:"required,min=1900,max=9999"`
	Period int `uri:"period" binding:"required,min=1,max=12"`
}

// getVatSummary godoc
// @Summary VAT summary for a year
// @Description Output and input VAT per period with payment status
// @Tags vat
// @Produce json
// @Param company_id path string true "Company ID"
// @Param year query int true "Calendar year"
// @Param periodType query string false "MONTHLY, QUARTERLY or YEARLY" default(QUARTERLY)
// @Success 200 {object} dto.VatSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid year or period type"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Failed to compute VAT summary"
// @Router /companies/{company_id}/vat/summary [get]
func (h *vatHandler) getVatSummary(c *gin.Context) {
	var q vatSummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}
	if q.PeriodType == "" {
		q.PeriodType = domain.VatQuarterly
	}

	summary, err := h.vatService.VatSummary(c.Request.Context(), c.Param(companyIDParam), q.Year, q.PeriodType)
	if err != nil {
		respondError(c, err, "Failed to compute VAT summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToVatSummaryResponse(summary))
}

// markVatPaid godoc
// @Summary Mark a VAT period as paid
// @Description Records the payment and snapshots the computed amounts. Marking an already paid period overwrites the payment details.
// @Tags vat
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param payment body dto.MarkVatPaidRequest true "Period and payment details"
// @Success 200 {object} dto.VatPeriodResponse
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Failed to mark VAT period"
// @Router /companies/{company_id}/vat/payments [post]
func (h *vatHandler) markVatPaid(c *gin.Context) {
	var req dto.MarkVatPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		respondBindError(c, err, "request format")
		return
	}

	period, err := h.vatService.MarkVatPaid(c.Request.Context(), c.Param(companyIDParam), in)
	if err != nil {
		respondError(c, err, "Failed to mark VAT period")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("VAT period marked paid",
		slog.Int("year", period.Year),
		slog.Int("period", period.Period))
	c.JSON(http.StatusOK, dto.ToVatPeriodResponse(period))
}

// unmarkVatPaid godoc
// @Summary Clear a VAT payment
// @Tags vat
// @Param company_id path string true "Company ID"
// @Param year path int true "Calendar year"
// @Param period path int true "1-based period number"
// @Param periodType query string false "MONTHLY, QUARTERLY or YEARLY" default(QUARTERLY)
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 404 {object} ErrorResponse "No VAT period record"
// @Failure 500 {object} ErrorResponse "Failed to clear VAT payment"
// @Router /companies/{company_id}/vat/payments/{year}/{period} [delete]
func (h *vatHandler) unmarkVatPaid(c *gin.Context) {
	var uri vatPaymentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, err, "path parameters")
		return
	}
	periodType := domain.VatPeriodType(c.DefaultQuery("periodType", string(domain.VatQuarterly)))

	if _, err := h.vatService.UnmarkVatPaid(c.Request.Context(), c.Param(companyIDParam), uri.Year, uri.Period, periodType); err != nil {
		respondError(c, err, "Failed to clear VAT payment")
		return
	}
	c.Status(http.StatusNoContent)
}
