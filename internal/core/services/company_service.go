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

type companyService struct {
	BaseService
	uow         portsrepo.UnitOfWork
	companyRepo portsrepo.CompanyRepositoryFacade
	seedChart   *chart.Chart
}

// NewCompanyService creates a company service. Registration writes the company
// and, when requested, the default chart of accounts in one unit of work.
func NewCompanyService(uow portsrepo.UnitOfWork, repo portsrepo.CompanyRepositoryFacade, opts ...ServiceOption) portssvc.CompanySvcFacade {
	svc := &companyService{
		BaseService: newBaseService(),
		uow:         uow,
		companyRepo: repo,
		seedChart:   chart.Default(),
	}
	applyOptions(&svc.BaseService, opts)
	return svc
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) RegisterCompany(ctx context.Context, req dto.RegisterCompanyRequest) (*domain.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("company name is required: %w", apperrors.ErrValidation)
	}
	if req.FirstFiscalYear < 1900 || req.FirstFiscalYear > 9999 {
		return nil, fmt.Errorf("first fiscal year %d out of range: %w", req.FirstFiscalYear, apperrors.ErrValidation)
	}

	company := domain.Company{
		CompanyID:          uuid.NewString(),
		Name:               name,
		OrganizationNumber: strings.TrimSpace(req.OrganizationNumber),
		CurrentFiscalYear:  req.FirstFiscalYear,
		AuditFields:        newAudit(s.Actor(ctx), s.now()),
	}

	created := 0
	err := s.uow.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		if err := tx.SaveCompany(ctx, company); err != nil {
			return fmt.Errorf("failed to save company: %w", err)
		}
		if !req.SeedChart {
			return nil
		}
		for _, entry := range s.seedChart.Accounts {
			account := domain.Account{
				AccountID:   uuid.NewString(),
				CompanyID:   company.CompanyID,
				Number:      entry.Number,
				Name:        entry.Name,
				AccountType: entry.Type,
				IsActive:    true,
				AuditFields: company.AuditFields,
			}
			if err := tx.SaveAccount(ctx, account); err != nil {
				return fmt.Errorf("failed to seed account %s: %w", entry.Number, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to register company", slog.String("name", name))
		return nil, err
	}
	if created > 0 {
		s.LogDebug(ctx, "Seeded chart of accounts", slog.Int("created", created))
	}

	s.LogInfo(ctx, "Company registered",
		slog.String("company_id", company.CompanyID),
		slog.Int("fiscal_year", company.CurrentFiscalYear))
	return &company, nil
}

func (s *companyService) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := requireCompany(ctx, s.companyRepo, companyID)
	if err != nil && !errors.Is(err, apperrors.ErrCompanyNotFound) {
		s.LogError(ctx, err, "Failed to find company", slog.String("company_id", companyID))
	}
	return company, err
}

// requireCompany loads a company through reader and maps absence to ErrCompanyNotFound.
func requireCompany(ctx context.Context, reader portsrepo.CompanyReader, companyID string) (*domain.Company, error) {
	company, err := reader.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}
