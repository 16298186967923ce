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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClosingConfig holds the tax rate and the accounts used by the closing voucher.
type ClosingConfig struct {
	TaxRate           decimal.Decimal
	CurrentYearResult domain.ClosingAccount
	RetainedEarnings  domain.ClosingAccount
}

// DefaultClosingConfig returns the Swedish defaults: 20.6% corporate tax, 2099 and 2091.
func DefaultClosingConfig() ClosingConfig {
	return ClosingConfig{
		TaxRate:           decimal.RequireFromString("0.206"),
		CurrentYearResult: domain.ClosingAccount{Number: "2099", Name: "Årets resultat"},
		RetainedEarnings:  domain.ClosingAccount{Number: "2091", Name: "Balanserad vinst eller förlust"},
	}
}

// ClosingConfigFrom builds a ClosingConfig from configured account numbers.
// Account names fall back to the defaults.
func ClosingConfigFrom(taxRate decimal.Decimal, currentYearResult, retainedEarnings string) ClosingConfig {
	return ClosingConfig{
		TaxRate:           taxRate,
		CurrentYearResult: domain.ClosingAccount{Number: currentYearResult},
		RetainedEarnings:  domain.ClosingAccount{Number: retainedEarnings},
	}
}

type closingService struct {
	BaseService
	uow           portsrepo.UnitOfWork
	reportingRepo portsrepo.ReportingRepository
	companyRepo   portsrepo.CompanyReader
	cfg           ClosingConfig
}

// NewClosingService creates the year-end closing service.
func NewClosingService(uow portsrepo.UnitOfWork, reportingRepo portsrepo.ReportingRepository, companyRepo portsrepo.CompanyReader, cfg ClosingConfig, opts ...ServiceOption) portssvc.ClosingSvcFacade {
	defaults := DefaultClosingConfig()
	if cfg.CurrentYearResult.Number == "" {
		cfg.CurrentYearResult = defaults.CurrentYearResult
	}
	if cfg.RetainedEarnings.Number == "" {
		cfg.RetainedEarnings = defaults.RetainedEarnings
	}
	if cfg.CurrentYearResult.Name == "" {
		cfg.CurrentYearResult.Name = defaults.CurrentYearResult.Name
	}
	if cfg.RetainedEarnings.Name == "" {
		cfg.RetainedEarnings.Name = defaults.RetainedEarnings.Name
	}

	svc := &closingService{
		BaseService:   newBaseService(),
		uow:           uow,
		reportingRepo: reportingRepo,
		companyRepo:   companyRepo,
		cfg:           cfg,
	}
	applyOptions(&svc.BaseService, opts)
	return svc
}

var _ portssvc.ClosingSvcFacade = (*closingService)(nil)

func (s *closingService) YearEndSummary(ctx context.Context, companyID string, fiscalYear int) (*domain.YearEndSummary, error) {
	company, err := requireCompany(ctx, s.companyRepo, companyID)
	if err != nil {
		return nil, err
	}

	from, to := domain.YearRange(fiscalYear)
	totals, err := s.reportingRepo.AccountTotals(ctx, companyID, &from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve year totals",
			slog.String("company_id", companyID),
			slog.Int("fiscal_year", fiscalYear))
		return nil, fmt.Errorf("failed to retrieve year totals: %w", err)
	}

	summary := accounting.BuildYearEndSummary(companyID, fiscalYear, totals, s.cfg.TaxRate)
	summary.IsClosed = company.IsYearClosed(fiscalYear)
	return &summary, nil
}

// CloseYear locks the company, books the net result onto retained earnings and
// advances the fiscal marker, all in one unit of work.
func (s *closingService) CloseYear(ctx context.Context, companyID string, fiscalYear int) (*domain.CloseYearResult, error) {
	actor := s.Actor(ctx)
	result := &domain.CloseYearResult{}

	err := s.uow.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		company, err := tx.LockCompany(ctx, companyID, portsrepo.LockUpdate)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.ErrCompanyNotFound
			}
			return err
		}

		switch {
		case fiscalYear < company.CurrentFiscalYear:
			return fmt.Errorf("fiscal year %d: %w", fiscalYear, apperrors.ErrAlreadyClosed)
		case fiscalYear > company.CurrentFiscalYear:
			return fmt.Errorf("fiscal year %d must be closed before %d: %w", company.CurrentFiscalYear, fiscalYear, apperrors.ErrPriorYearOpen)
		}

		from, to := domain.YearRange(fiscalYear)
		totals, err := tx.AccountTotals(ctx, companyID, &from, to)
		if err != nil {
			return err
		}
		summary := accounting.BuildYearEndSummary(companyID, fiscalYear, totals, s.cfg.TaxRate)

		if !summary.NetResult.IsZero() {
			voucher, err := s.postClosingVoucher(ctx, tx, companyID, summary, actor)
			if err != nil {
				return err
			}
			result.ClosingVoucher = voucher
		}

		next := fiscalYear + 1
		if err := tx.UpdateFiscalYear(ctx, companyID, next, actor, s.now()); err != nil {
			return err
		}

		result.Success = true
		result.NewFiscalYear = &next
		result.Message = fmt.Sprintf("Fiscal year %d closed with net result %s", fiscalYear, summary.NetResult.StringFixed(2))
		return nil
	})
	if err != nil {
		if apperrors.ReasonOf(err) == "" {
			s.LogError(ctx, err, "Failed to close fiscal year",
				slog.String("company_id", companyID),
				slog.Int("fiscal_year", fiscalYear))
		} else {
			s.LogInfo(ctx, "Year-end close refused",
				slog.String("company_id", companyID),
				slog.Int("fiscal_year", fiscalYear),
				slog.String("reason", apperrors.ReasonOf(err)))
		}
		return nil, err
	}

	s.metrics().YearClosed(result.ClosingVoucher != nil)
	s.LogInfo(ctx, "Fiscal year closed",
		slog.String("company_id", companyID),
		slog.Int("fiscal_year", fiscalYear),
		slog.Int("new_fiscal_year", *result.NewFiscalYear))
	return result, nil
}

func (s *closingService) postClosingVoucher(ctx context.Context, tx portsrepo.LedgerTx, companyID string, summary domain.YearEndSummary, actor string) (*domain.Voucher, error) {
	if err := tx.LockVoucherNumbering(ctx, companyID); err != nil {
		return nil, err
	}

	resultAccount, err := s.ensureClosingAccount(ctx, tx, companyID, s.cfg.CurrentYearResult, actor)
	if err != nil {
		return nil, err
	}
	retainedAccount, err := s.ensureClosingAccount(ctx, tx, companyID, s.cfg.RetainedEarnings, actor)
	if err != nil {
		return nil, err
	}

	debitAccount, creditAccount := resultAccount, retainedAccount
	if summary.NetResult.IsNegative() {
		debitAccount, creditAccount = retainedAccount, resultAccount
	}
	amount := summary.NetResult.Abs()

	currentMax, err := tx.MaxVoucherSequence(ctx, companyID)
	if err != nil {
		return nil, err
	}

	voucherID := uuid.NewString()
	description := fmt.Sprintf("Bokslut %d", summary.FiscalYear)
	voucher := domain.Voucher{
		VoucherID:     voucherID,
		CompanyID:     companyID,
		VoucherNumber: accounting.NextVoucherNumber(currentMax),
		Date:          summary.To,
		Description:   description,
		VoucherType:   domain.VoucherOther,
		Rows: []domain.VoucherRow{
			{
				RowID:         uuid.NewString(),
				VoucherID:     voucherID,
				AccountID:     debitAccount.AccountID,
				AccountNumber: debitAccount.Number,
				AccountName:   debitAccount.Name,
				Debit:         amount,
				Credit:        decimal.Zero,
				Description:   description,
				SortOrder:     0,
			},
			{
				RowID:         uuid.NewString(),
				VoucherID:     voucherID,
				AccountID:     creditAccount.AccountID,
				AccountNumber: creditAccount.Number,
				AccountName:   creditAccount.Name,
				Debit:         decimal.Zero,
				Credit:        amount,
				Description:   description,
				SortOrder:     1,
			},
		},
		AuditFields: newAudit(actor, s.now()),
	}

	if err := tx.SaveVoucher(ctx, voucher); err != nil {
		return nil, err
	}
	return &voucher, nil
}

// ensureClosingAccount returns the closing account, creating or reactivating it as needed.
func (s *closingService) ensureClosingAccount(ctx context.Context, tx portsrepo.LedgerTx, companyID string, want domain.ClosingAccount, actor string) (*domain.Account, error) {
	account, err := tx.FindAccountByNumber(ctx, companyID, want.Number)
	if err == nil {
		if !account.IsActive {
			if err := tx.ActivateAccount(ctx, companyID, account.AccountID, actor, s.now()); err != nil {
				return nil, err
			}
			account.IsActive = true
			s.LogDebug(ctx, "Reactivated closing account", slog.String("number", account.Number))
		}
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	created := domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   companyID,
		Number:      want.Number,
		Name:        want.Name,
		AccountType: domain.Liability,
		IsActive:    true,
		AuditFields: newAudit(actor, s.now()),
	}
	if err := tx.SaveAccount(ctx, created); err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Created closing account", slog.String("number", created.Number))
	return &created, nil
}
