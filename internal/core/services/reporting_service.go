package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/utils/accounting"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	companyRepo   portsrepo.CompanyReader
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository, companyRepo portsrepo.CompanyReader, opts ...ServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		BaseService:   newBaseService(),
		reportingRepo: repo,
		companyRepo:   companyRepo,
	}
	applyOptions(&svc.BaseService, opts)
	return svc
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// AccountBalances returns the balance of every active account as of a date
func (s *reportingService) AccountBalances(ctx context.Context, companyID string, asOf time.Time) ([]domain.AccountBalance, error) {
	if _, err := requireCompany(ctx, s.companyRepo, companyID); err != nil {
		return nil, err
	}

	asOf = domain.NormalizeDate(asOf)
	totals, err := s.reportingRepo.AccountTotals(ctx, companyID, nil, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve account totals",
			slog.String("company_id", companyID),
			slog.String("asOf", asOf.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to retrieve account totals: %w", err)
	}

	balances := accounting.BuildAccountBalances(totals)
	s.LogDebug(ctx, "Account balances generated",
		slog.String("company_id", companyID),
		slog.Int("row_count", len(balances)))
	return balances, nil
}

// IncomeStatement generates the income statement for a date range
func (s *reportingService) IncomeStatement(ctx context.Context, companyID string, from, to time.Time) (*domain.IncomeStatement, error) {
	from, to = domain.NormalizeDate(from), domain.NormalizeDate(to)
	if from.After(to) {
		return nil, fmt.Errorf("from date %s is after to date %s: %w",
			from.Format(domain.DateLayout), to.Format(domain.DateLayout), apperrors.ErrValidation)
	}

	if _, err := requireCompany(ctx, s.companyRepo, companyID); err != nil {
		return nil, err
	}

	totals, err := s.reportingRepo.AccountTotals(ctx, companyID, &from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve income statement data",
			slog.String("company_id", companyID),
			slog.String("from", from.Format(domain.DateLayout)),
			slog.String("to", to.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to retrieve income statement data: %w", err)
	}

	stmt := accounting.BuildIncomeStatement(from, to, totals)
	s.LogInfo(ctx, "Income statement generated successfully",
		slog.String("company_id", companyID),
		slog.String("net_income", stmt.NetIncome.StringFixed(2)))
	return &stmt, nil
}

// BalanceSheet generates a balance sheet as of a specific date
func (s *reportingService) BalanceSheet(ctx context.Context, companyID string, asOf time.Time) (*domain.BalanceSheet, error) {
	if _, err := requireCompany(ctx, s.companyRepo, companyID); err != nil {
		return nil, err
	}

	asOf = domain.NormalizeDate(asOf)
	totals, err := s.reportingRepo.AccountTotals(ctx, companyID, nil, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance sheet data",
			slog.String("company_id", companyID),
			slog.String("asOf", asOf.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
	}

	sheet := accounting.BuildBalanceSheet(asOf, totals)
	s.LogInfo(ctx, "Balance sheet generated successfully",
		slog.String("company_id", companyID),
		slog.String("asOf", asOf.Format(domain.DateLayout)))
	return &sheet, nil
}
