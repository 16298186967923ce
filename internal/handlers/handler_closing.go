package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type closingHandler struct {
	closingService portssvc.ClosingSvcFacade
	taxService     portssvc.TaxSvcFacade
}

func newClosingHandler(cs portssvc.ClosingSvcFacade, ts portssvc.TaxSvcFacade) *closingHandler {
	return &closingHandler{closingService: cs, taxService: ts}
}

// RegisterClosingRoutes registers the year-end routes on a company-scoped group.
func RegisterClosingRoutes(rg *gin.RouterGroup, closingService portssvc.ClosingSvcFacade, taxService portssvc.TaxSvcFacade) {
	h := newClosingHandler(closingService, taxService)

	closing := rg.Group("/closing/:fiscal_year")
	{
		closing.GET("/summary", h.getYearEndSummary)
		closing.POST("", h.closeYear)
		closing.GET("/tax", h.getTaxCalculation)
	}
}

func fiscalYearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("fiscal_year"))
	if err != nil || year < 1900 || year > 9999 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid fiscal year", Code: "VALIDATION_ERROR"})
		return 0, false
	}
	return year, true
}

// getYearEndSummary godoc
// @Summary Year-end summary
// @Description Operating and financial result, corporate tax and net result for a fiscal year
// @Tags closing
// @Produce json
// @Param company_id path string true "Company ID"
// @Param fiscal_year path int true "Fiscal year"
// @Success 200 {object} domain.YearEndSummary
// @Failure 400 {object} ErrorResponse "Invalid fiscal year"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Failed to compute summary"
// @Router /companies/{company_id}/closing/{fiscal_year}/summary [get]
func (h *closingHandler) getYearEndSummary(c *gin.Context) {
	year, ok := fiscalYearParam(c)
	if !ok {
		return
	}
	summary, err := h.closingService.YearEndSummary(c.Request.Context(), c.Param(companyIDParam), year)
	if err != nil {
		respondError(c, err, "Failed to compute year-end summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// closeYear godoc
// @Summary Close a fiscal year
// @Description Posts the closing voucher when the net result is non-zero and advances the company to the next fiscal year
// @Tags closing
// @Produce json
// @Param company_id path string true "Company ID"
// @Param fiscal_year path int true "Fiscal year to close"
// @Success 200 {object} dto.CloseYearResponse
// @Failure 400 {object} ErrorResponse "Invalid fiscal year"
// @Failure 404 {object} dto.CloseYearResponse "Company not found"
// @Failure 409 {object} dto.CloseYearResponse "Year already closed or an earlier year is open"
// @Failure 500 {object} dto.CloseYearResponse "Failed to close year"
// @Router /companies/{company_id}/closing/{fiscal_year} [post]
func (h *closingHandler) closeYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := fiscalYearParam(c)
	if !ok {
		return
	}

	result, err := h.closingService.CloseYear(c.Request.Context(), c.Param(companyIDParam), year)
	if err != nil {
		status := statusFor(err)
		resp := dto.CloseYearResponse{Success: false, Code: codeFor(err, status), Message: err.Error()}
		if status == http.StatusInternalServerError {
			logger.Error("Failed to close fiscal year", slog.Int("fiscal_year", year), slog.String("error", err.Error()))
			resp.Message = "Failed to close fiscal year"
		} else {
			logger.Warn("Fiscal year close refused", slog.Int("fiscal_year", year), slog.String("reason", apperrors.ReasonOf(err)))
		}
		c.JSON(status, resp)
		return
	}

	logger.Info("Fiscal year closed", slog.Int("fiscal_year", year), slog.Bool("closing_voucher", result.ClosingVoucher != nil))
	c.JSON(http.StatusOK, dto.ToCloseYearResponse(result))
}

// getTaxCalculation godoc
// @Summary Tax calculation
// @Description Year-end summary combined with yearly VAT and payroll totals
// @Tags closing
// @Produce json
// @Param company_id path string true "Company ID"
// @Param fiscal_year path int true "Fiscal year"
// @Success 200 {object} domain.TaxCalculation
// @Failure 400 {object} ErrorResponse "Invalid fiscal year"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Failed to compute tax"
// @Router /companies/{company_id}/closing/{fiscal_year}/tax [get]
func (h *closingHandler) getTaxCalculation(c *gin.Context) {
	year, ok := fiscalYearParam(c)
	if !ok {
		return
	}
	calc, err := h.taxService.TaxCalculation(c.Request.Context(), c.Param(companyIDParam), year)
	if err != nil {
		respondError(c, err, "Failed to compute tax calculation")
		return
	}
	c.JSON(http.StatusOK, calc)
}
