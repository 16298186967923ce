package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/chart"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	companyRepo portsrepo.CompanyReader
	seedChart   *chart.Chart
}

// NewAccountService creates a new account service. The default chart is used for seeding.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, companyRepo portsrepo.CompanyReader, opts ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		BaseService: newBaseService(),
		accountRepo: repo,
		companyRepo: companyRepo,
		seedChart:   chart.Default(),
	}
	applyOptions(&svc.BaseService, opts)
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	number := strings.TrimSpace(req.Number)
	name := strings.TrimSpace(req.Name)
	if number == "" || name == "" {
		return nil, fmt.Errorf("account number and name are required: %w", apperrors.ErrValidation)
	}
	if !req.AccountType.Valid() {
		return nil, fmt.Errorf("unknown account type %q: %w", req.AccountType, apperrors.ErrValidation)
	}

	if _, err := requireCompany(ctx, s.companyRepo, companyID); err != nil {
		return nil, err
	}

	existing, err := s.accountRepo.FindAccountByNumber(ctx, companyID, number)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account number",
			slog.String("company_id", companyID),
			slog.String("number", number))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("account %s: %w", number, apperrors.ErrAccountNumberExists)
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   companyID,
		Number:      number,
		Name:        name,
		AccountType: req.AccountType,
		IsActive:    true,
		AuditFields: newAudit(s.Actor(ctx), s.now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account",
				slog.String("company_id", companyID),
				slog.String("number", number))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("number", account.Number),
		slog.String("company_id", companyID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, companyID string, includeInactive bool) ([]domain.Account, error) {
	if _, err := requireCompany(ctx, s.companyRepo, companyID); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, companyID, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list accounts for company %s: %w", companyID, err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) DeactivateOrDeleteAccount(ctx context.Context, companyID string, accountID string) (domain.AccountRemoval, error) {
	account, err := s.GetAccountByID(ctx, companyID, accountID)
	if err != nil {
		return "", err
	}

	inUse, err := s.accountRepo.AccountHasRows(ctx, companyID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account usage", slog.String("account_id", accountID))
		return "", err
	}

	if !inUse {
		err = s.accountRepo.DeleteAccount(ctx, companyID, accountID)
		if err == nil {
			s.LogInfo(ctx, "Account deleted",
				slog.String("account_id", accountID),
				slog.String("number", account.Number))
			return domain.AccountDeleted, nil
		}
		if !errors.Is(err, apperrors.ErrAccountInUse) {
			s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
			return "", err
		}
		// A voucher referencing the account was posted in between.
		s.LogDebug(ctx, "Account became referenced, deactivating instead", slog.String("account_id", accountID))
	}

	if !account.IsActive {
		return domain.AccountDeactivated, nil
	}
	if err := s.accountRepo.DeactivateAccount(ctx, companyID, accountID, s.Actor(ctx), s.now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return "", err
	}

	s.LogInfo(ctx, "Account deactivated",
		slog.String("account_id", accountID),
		slog.String("number", account.Number))
	return domain.AccountDeactivated, nil
}

func (s *accountService) SeedChart(ctx context.Context, companyID string) (int, error) {
	if _, err := requireCompany(ctx, s.companyRepo, companyID); err != nil {
		return 0, err
	}

	existing, err := s.accountRepo.ListAccounts(ctx, companyID, true)
	if err != nil {
		return 0, fmt.Errorf("failed to list accounts for seeding: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, a := range existing {
		have[a.Number] = true
	}

	actor := s.Actor(ctx)
	created := 0
	for _, entry := range s.seedChart.Accounts {
		if have[entry.Number] {
			continue
		}
		account := domain.Account{
			AccountID:   uuid.NewString(),
			CompanyID:   companyID,
			Number:      entry.Number,
			Name:        entry.Name,
			AccountType: entry.Type,
			IsActive:    true,
			AuditFields: newAudit(actor, s.now()),
		}
		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			s.LogError(ctx, err, "Failed to seed account", slog.String("number", entry.Number))
			return created, err
		}
		created++
	}

	s.LogInfo(ctx, "Chart of accounts seeded",
		slog.String("company_id", companyID),
		slog.Int("created", created))
	return created, nil
}
