package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/utils/accounting"
	"github.com/SscSPs/bookkeeping_core/internal/utils/pagination"
	"github.com/google/uuid"
)

type voucherService struct {
	BaseService
	uow         portsrepo.UnitOfWork
	voucherRepo portsrepo.VoucherRepositoryFacade
	companyRepo portsrepo.CompanyReader
}

// NewVoucherService creates the voucher posting engine.
func NewVoucherService(uow portsrepo.UnitOfWork, voucherRepo portsrepo.VoucherRepositoryFacade, companyRepo portsrepo.CompanyReader, opts ...ServiceOption) portssvc.VoucherSvcFacade {
	svc := &voucherService{
		BaseService: newBaseService(),
		uow:         uow,
		voucherRepo: voucherRepo,
		companyRepo: companyRepo,
	}
	applyOptions(&svc.BaseService, opts)
	return svc
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// PostVoucher validates the rows, then numbers and stores the voucher inside one
// unit of work. Nothing is written when any check fails.
func (s *voucherService) PostVoucher(ctx context.Context, companyID string, req dto.PostVoucherRequest) (*domain.Voucher, error) {
	voucher, err := s.buildVoucher(ctx, companyID, req)
	if err != nil {
		s.reject(ctx, companyID, err)
		return nil, err
	}

	err = s.uow.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		company, err := tx.LockCompany(ctx, companyID, portsrepo.LockShare)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.ErrCompanyNotFound
			}
			return err
		}
		if company.IsYearClosed(voucher.Date.Year()) {
			return fmt.Errorf("voucher dated %s: %w", voucher.Date.Format(domain.DateLayout), apperrors.ErrFiscalYearClosed)
		}

		if err := tx.LockVoucherNumbering(ctx, companyID); err != nil {
			return err
		}

		if err := s.resolveAccounts(ctx, tx, companyID, voucher); err != nil {
			return err
		}

		currentMax, err := tx.MaxVoucherSequence(ctx, companyID)
		if err != nil {
			return err
		}
		voucher.VoucherNumber = accounting.NextVoucherNumber(currentMax)

		return tx.SaveVoucher(ctx, *voucher)
	})
	if err != nil {
		s.reject(ctx, companyID, err)
		return nil, err
	}

	s.metrics().VoucherPosted(voucher.VoucherType)
	s.LogInfo(ctx, "Voucher posted",
		slog.String("company_id", companyID),
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("voucher_number", voucher.VoucherNumber),
		slog.Int("rows", len(voucher.Rows)))
	return voucher, nil
}

func (s *voucherService) buildVoucher(ctx context.Context, companyID string, req dto.PostVoucherRequest) (*domain.Voucher, error) {
	date, err := req.ParsedDate()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}

	voucherType := req.VoucherType
	if voucherType == "" {
		voucherType = domain.VoucherManual
	}
	if !voucherType.Valid() {
		return nil, fmt.Errorf("unknown voucher type %q: %w", voucherType, apperrors.ErrValidation)
	}

	voucherID := uuid.NewString()
	rows := make([]domain.VoucherRow, len(req.Rows))
	for i, r := range req.Rows {
		if strings.TrimSpace(r.AccountID) == "" {
			return nil, fmt.Errorf("row %d: %w", i+1, apperrors.ErrInvalidAccountReference)
		}
		rows[i] = domain.VoucherRow{
			RowID:       uuid.NewString(),
			VoucherID:   voucherID,
			AccountID:   r.AccountID,
			Debit:       r.Debit,
			Credit:      r.Credit,
			Description: r.Description,
			SortOrder:   i,
		}
	}

	if err := accounting.ValidateVoucherRows(rows); err != nil {
		return nil, err
	}

	return &domain.Voucher{
		VoucherID:   voucherID,
		CompanyID:   companyID,
		Date:        domain.NormalizeDate(date),
		Description: strings.TrimSpace(req.Description),
		VoucherType: voucherType,
		Rows:        rows,
		AuditFields: newAudit(s.Actor(ctx), s.now()),
	}, nil
}

// resolveAccounts checks every row references an active account of the company
// and copies number and name onto the row.
func (s *voucherService) resolveAccounts(ctx context.Context, tx portsrepo.LedgerTx, companyID string, voucher *domain.Voucher) error {
	ids := make([]string, 0, len(voucher.Rows))
	seen := make(map[string]bool, len(voucher.Rows))
	for _, r := range voucher.Rows {
		if !seen[r.AccountID] {
			seen[r.AccountID] = true
			ids = append(ids, r.AccountID)
		}
	}

	accounts, err := tx.FindAccountsByIDs(ctx, companyID, ids)
	if err != nil {
		return err
	}

	for i := range voucher.Rows {
		row := &voucher.Rows[i]
		account, ok := accounts[row.AccountID]
		if !ok || account.CompanyID != companyID {
			return fmt.Errorf("row %d: account %s not found: %w", i+1, row.AccountID, apperrors.ErrInvalidAccountReference)
		}
		if !account.IsActive {
			return fmt.Errorf("row %d: account %s is inactive: %w", i+1, account.Number, apperrors.ErrInvalidAccountReference)
		}
		row.AccountNumber = account.Number
		row.AccountName = account.Name
	}
	return nil
}

func (s *voucherService) reject(ctx context.Context, companyID string, err error) {
	reason := apperrors.ReasonOf(err)
	if reason == "" && errors.Is(err, apperrors.ErrValidation) {
		reason = "VALIDATION"
	}
	if reason == "" {
		reason = "INTERNAL"
		s.LogError(ctx, err, "Failed to post voucher", slog.String("company_id", companyID))
	} else {
		s.LogDebug(ctx, "Voucher rejected",
			slog.String("company_id", companyID),
			slog.String("reason", reason),
			slog.String("error", err.Error()))
	}
	s.metrics().VoucherRejected(reason)
}

func (s *voucherService) GetVoucherByID(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, companyID, voucherID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find voucher", slog.String("voucher_id", voucherID))
		}
		return nil, err
	}
	return voucher, nil
}

func (s *voucherService) ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) (*domain.VoucherPage, error) {
	if _, err := requireCompany(ctx, s.companyRepo, companyID); err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(params.Limit)
	filter := domain.VoucherFilter{Limit: limit + 1}

	if params.FromDate != "" {
		from, err := time.Parse(domain.DateLayout, params.FromDate)
		if err != nil {
			return nil, fmt.Errorf("invalid fromDate: %w", apperrors.ErrValidation)
		}
		filter.From = &from
	}
	if params.ToDate != "" {
		to, err := time.Parse(domain.DateLayout, params.ToDate)
		if err != nil {
			return nil, fmt.Errorf("invalid toDate: %w", apperrors.ErrValidation)
		}
		filter.To = &to
	}
	if params.NextToken != "" {
		afterDate, afterNumber, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
		}
		filter.AfterDate = &afterDate
		filter.AfterNumber = afterNumber
	}

	vouchers, err := s.voucherRepo.ListVouchers(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}

	page := &domain.VoucherPage{Vouchers: vouchers}
	if len(vouchers) > limit {
		page.Vouchers = vouchers[:limit]
		last := page.Vouchers[limit-1]
		page.NextToken = pagination.EncodeToken(last.Date, last.VoucherNumber)
	}
	if page.Vouchers == nil {
		page.Vouchers = []domain.Voucher{}
	}
	return page, nil
}

// DeleteVoucher removes a voucher and its rows. Vouchers dated in a closed fiscal
// year are kept so closed figures stay fixed.
func (s *voucherService) DeleteVoucher(ctx context.Context, companyID string, voucherID string) error {
	err := s.uow.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		company, err := tx.LockCompany(ctx, companyID, portsrepo.LockShare)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.ErrCompanyNotFound
			}
			return err
		}

		voucher, err := tx.FindVoucherByID(ctx, companyID, voucherID)
		if err != nil {
			return err
		}
		if company.IsYearClosed(voucher.Date.Year()) {
			return fmt.Errorf("voucher %s: %w", voucher.VoucherNumber, apperrors.ErrFiscalYearClosed)
		}

		return tx.DeleteVoucher(ctx, companyID, voucherID)
	})
	if err != nil {
		if apperrors.ReasonOf(err) == "" && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete voucher", slog.String("voucher_id", voucherID))
		}
		return err
	}

	s.metrics().VoucherDeleted()
	s.LogInfo(ctx, "Voucher deleted",
		slog.String("company_id", companyID),
		slog.String("voucher_id", voucherID))
	return nil
}
