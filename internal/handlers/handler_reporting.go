package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/export"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	companyService   portssvc.CompanySvcFacade
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade, cs portssvc.CompanySvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		companyService:   cs,
		now:              time.Now,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, companyService portssvc.CompanySvcFacade) {
	h := newReportingHandler(reportingService, companyService)

	reports := rg.Group("/reports")
	{
		reports.GET("/account-balances", h.getAccountBalances)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/statements.xlsx", h.exportStatements)
	}
}

// dateQuery reads an optional YYYY-MM-DD query parameter, falling back to def.
func dateQuery(c *gin.Context, name string, def time.Time) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return domain.NormalizeDate(def), nil
	}
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a YYYY-MM-DD date", name)
	}
	return t, nil
}

// periodQuery reads fromDate and toDate. The default period is the calendar year of toDate.
func (h *reportingHandler) periodQuery(c *gin.Context) (time.Time, time.Time, error) {
	to, err := dateQuery(c, "toDate", h.now())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	yearStart, _ := domain.YearRange(to.Year())
	from, err := dateQuery(c, "fromDate", yearStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

// getAccountBalances godoc
// @Summary Account balances
// @Description Per-account debit, credit and display-signed balance over every voucher up to asOf
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.AccountBalancesResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Router /companies/{company_id}/reports/account-balances [get]
func (h *reportingHandler) getAccountBalances(c *gin.Context) {
	asOf, err := dateQuery(c, "asOf", h.now())
	if err != nil {
		respondBindError(c, err, "query parameters")
		return
	}

	rows, err := h.reportingService.AccountBalances(c.Request.Context(), c.Param(companyIDParam), asOf)
	if err != nil {
		respondError(c, err, "Failed to generate account balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountBalancesResponse(rows, asOf.Format(domain.DateLayout)))
}

// getIncomeStatement godoc
// @Summary Income statement
// @Description Revenue and expense accounts with their totals for a period
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param fromDate query string false "Period start (YYYY-MM-DD)" default(start of the year)
// @Param toDate query string false "Period end (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Router /companies/{company_id}/reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	from, to, err := h.periodQuery(c)
	if err != nil {
		respondBindError(c, err, "query parameters")
		return
	}

	stmt, err := h.reportingService.IncomeStatement(c.Request.Context(), c.Param(companyIDParam), from, to)
	if err != nil {
		respondError(c, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(stmt))
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Asset and liability accounts with their totals as of a date
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Router /companies/{company_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	asOf, err := dateQuery(c, "asOf", h.now())
	if err != nil {
		respondBindError(c, err, "query parameters")
		return
	}

	sheet, err := h.reportingService.BalanceSheet(c.Request.Context(), c.Param(companyIDParam), asOf)
	if err != nil {
		respondError(c, err, "Failed to generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet))
}

// exportStatements godoc
// @Summary Export statements as a workbook
// @Description Income statement for the period and balance sheet as of toDate in one XLSX workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param company_id path string true "Company ID"
// @Param fromDate query string false "Period start (YYYY-MM-DD)" default(start of the year)
// @Param toDate query string false "Period end (YYYY-MM-DD)" default(current date)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Failed to export statements"
// @Router /companies/{company_id}/reports/statements.xlsx [get]
func (h *reportingHandler) exportStatements(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.Param(companyIDParam)

	from, to, err := h.periodQuery(c)
	if err != nil {
		respondBindError(c, err, "query parameters")
		return
	}

	company, err := h.companyService.GetCompany(ctx, companyID)
	if err != nil {
		respondError(c, err, "Failed to export statements")
		return
	}
	stmt, err := h.reportingService.IncomeStatement(ctx, companyID, from, to)
	if err != nil {
		respondError(c, err, "Failed to export statements")
		return
	}
	sheet, err := h.reportingService.BalanceSheet(ctx, companyID, to)
	if err != nil {
		respondError(c, err, "Failed to export statements")
		return
	}

	var buf bytes.Buffer
	err = export.WriteStatementsXLSX(&buf, export.Statements{
		Company:         *company,
		IncomeStatement: stmt,
		BalanceSheet:    sheet,
	})
	if err != nil {
		respondError(c, err, "Failed to export statements")
		return
	}

	middleware.GetLoggerFromCtx(ctx).Info("Statements exported",
		slog.String("company_id", companyID),
		slog.Int("bytes", buf.Len()))
	filename := fmt.Sprintf("statements-%s.xlsx", to.Format(domain.DateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
