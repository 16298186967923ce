package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/utils/accounting"
)

type vatService struct {
	BaseService
	vatRepo     portsrepo.VatPeriodRepositoryFacade
	docRepo     portsrepo.VatDocumentReader
	companyRepo portsrepo.CompanyReader
}

// NewVatService creates the VAT reconciliation service.
func NewVatService(vatRepo portsrepo.VatPeriodRepositoryFacade, docRepo portsrepo.VatDocumentReader, companyRepo portsrepo.CompanyReader, opts ...ServiceOption) portssvc.VatSvcFacade {
	svc := &vatService{
		BaseService: newBaseService(),
		vatRepo:     vatRepo,
		docRepo:     docRepo,
		companyRepo: companyRepo,
	}
	applyOptions(&svc.BaseService, opts)
	return svc
}

var _ portssvc.VatSvcFacade = (*vatService)(nil)

// computePeriods builds the live figures for every period of the year.
func (s *vatService) computePeriods(ctx context.Context, companyID string, year int, periodType domain.VatPeriodType) ([]domain.VatPeriod, error) {
	from, to := domain.YearRange(year)
	docs, err := s.docRepo.ListVatDocuments(ctx, companyID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list VAT documents",
			slog.String("company_id", companyID),
			slog.Int("year", year))
		return nil, fmt.Errorf("failed to list VAT documents: %w", err)
	}
	return accounting.BuildVatPeriods(companyID, year, periodType, docs)
}

func (s *vatService) VatSummary(ctx context.Context, companyID string, year int, periodType domain.VatPeriodType) (*domain.VatSummary, error) {
	if !periodType.Valid() {
		return nil, fmt.Errorf("period type %q: %w", periodType, apperrors.ErrInvalidVatPeriod)
	}
	if _, err := requireCompany(ctx, s.companyRepo, companyID); err != nil {
		return nil, err
	}

	periods, err := s.computePeriods(ctx, companyID, year, periodType)
	if err != nil {
		return nil, err
	}

	records, err := s.vatRepo.FindVatPeriods(ctx, companyID, year, periodType)
	if err != nil {
		s.LogError(ctx, err, "Failed to load VAT period records", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to load VAT period records: %w", err)
	}
	for _, rec := range records {
		idx := rec.Period - 1
		if idx < 0 || idx >= len(periods) {
			continue
		}
		periods[idx].VatPayment = rec.VatPayment
		periods[idx].AuditFields = rec.AuditFields
	}

	summary := accounting.SummarizeVat(year, periodType, periods)
	return &summary, nil
}

func (s *vatService) MarkVatPaid(ctx context.Context, companyID string, in domain.MarkVatPaidInput) (*domain.VatPeriod, error) {
	if _, _, err := in.PeriodType.PeriodRange(in.Year, in.Period); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrInvalidVatPeriod)
	}
	if in.PaidAmount != nil && !domain.AmountFitsStorage(*in.PaidAmount) {
		return nil, fmt.Errorf("paid amount %s exceeds stored precision: %w", in.PaidAmount.String(), apperrors.ErrValidation)
	}
	if _, err := requireCompany(ctx, s.companyRepo, companyID); err != nil {
		return nil, err
	}

	periods, err := s.computePeriods(ctx, companyID, in.Year, in.PeriodType)
	if err != nil {
		return nil, err
	}
	period := periods[in.Period-1]

	now := s.now()
	actor := s.Actor(ctx)

	paidAmount := period.VatToPay
	if in.PaidAmount != nil {
		paidAmount = *in.PaidAmount
	}
	paidAt := now
	if in.PaidAt != nil {
		paidAt = *in.PaidAt
	}
	period.VatPayment = domain.VatPayment{
		IsPaid:           true,
		PaidAt:           &paidAt,
		PaidAmount:       &paidAmount,
		PaymentReference: in.PaymentReference,
		Notes:            in.Notes,
	}

	period.AuditFields = newAudit(actor, now)
	existing, err := s.vatRepo.FindVatPeriod(ctx, companyID, in.Year, in.Period, in.PeriodType)
	switch {
	case err == nil:
		period.CreatedAt = existing.CreatedAt
		period.CreatedBy = existing.CreatedBy
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to load VAT period record", slog.String("company_id", companyID))
		return nil, err
	}

	if err := s.vatRepo.UpsertVatPeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to save VAT payment",
			slog.String("company_id", companyID),
			slog.Int("year", in.Year),
			slog.Int("period", in.Period))
		return nil, err
	}

	s.metrics().VatPeriodMarked(true)
	s.LogInfo(ctx, "VAT period marked as paid",
		slog.String("company_id", companyID),
		slog.Int("year", in.Year),
		slog.Int("period", in.Period),
		slog.String("period_type", string(in.PeriodType)),
		slog.String("paid_amount", paidAmount.StringFixed(2)))
	return &period, nil
}

func (s *vatService) UnmarkVatPaid(ctx context.Context, companyID string, year, period int, periodType domain.VatPeriodType) (bool, error) {
	if _, _, err := periodType.PeriodRange(year, period); err != nil {
		return false, fmt.Errorf("%v: %w", err, apperrors.ErrInvalidVatPeriod)
	}
	if _, err := requireCompany(ctx, s.companyRepo, companyID); err != nil {
		return false, err
	}

	err := s.vatRepo.ClearVatPayment(ctx, companyID, year, period, periodType, s.Actor(ctx), s.now())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, apperrors.ErrVatPeriodNotFound
		}
		s.LogError(ctx, err, "Failed to clear VAT payment", slog.String("company_id", companyID))
		return false, err
	}

	s.metrics().VatPeriodMarked(false)
	s.LogInfo(ctx, "VAT period payment cleared",
		slog.String("company_id", companyID),
		slog.Int("year", year),
		slog.Int("period", period))
	return true, nil
}
