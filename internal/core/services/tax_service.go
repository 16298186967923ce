package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

type taxService struct {
	BaseService
	closingSvc  portssvc.ClosingSvcFacade
	vatSvc      portssvc.VatSvcFacade
	payrollRepo portsrepo.PayrollReader
	companyRepo portsrepo.CompanyReader
}

// NewTaxService creates the read-only tax overview service.
func NewTaxService(closingSvc portssvc.ClosingSvcFacade, vatSvc portssvc.VatSvcFacade, payrollRepo portsrepo.PayrollReader, companyRepo portsrepo.CompanyReader, opts ...ServiceOption) portssvc.TaxSvcFacade {
	svc := &taxService{
		BaseService: newBaseService(),
		closingSvc:  closingSvc,
		vatSvc:      vatSvc,
		payrollRepo: payrollRepo,
		companyRepo: companyRepo,
	}
	applyOptions(&svc.BaseService, opts)
	return svc
}

var _ portssvc.TaxSvcFacade = (*taxService)(nil)

// TaxCalculation gathers the year result, the yearly VAT figures and payroll
// totals concurrently and adds them up.
func (s *taxService) TaxCalculation(ctx context.Context, companyID string, fiscalYear int) (*domain.TaxCalculation, error) {
	if _, err := requireCompany(ctx, s.companyRepo, companyID); err != nil {
		return nil, err
	}

	var (
		summary *domain.YearEndSummary
		vat     *domain.VatSummary
		payroll domain.PayrollTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.closingSvc.YearEndSummary(gctx, companyID, fiscalYear)
		return err
	})
	g.Go(func() error {
		var err error
		vat, err = s.vatSvc.VatSummary(gctx, companyID, fiscalYear, domain.VatYearly)
		return err
	})
	g.Go(func() error {
		from, to := domain.YearRange(fiscalYear)
		var err error
		payroll, err = s.payrollRepo.SumPayroll(gctx, companyID, from, to)
		if err != nil {
			return fmt.Errorf("failed to sum payroll: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to gather tax figures",
			slog.String("company_id", companyID),
			slog.Int("fiscal_year", fiscalYear))
		return nil, err
	}

	calc := &domain.TaxCalculation{
		FiscalYear: fiscalYear,
		Summary:    *summary,
		OutputVat:  vat.TotalOutputVat,
		InputVat:   vat.TotalInputVat,
		VatToPay:   vat.TotalVatToPay,
		Payroll:    payroll,
	}
	calc.TotalTaxLiability = summary.CorporateTax.
		Add(vat.TotalVatToPay).
		Add(payroll.EmployerContributions).
		Add(payroll.TaxWithheld)

	s.LogDebug(ctx, "Tax calculation generated",
		slog.String("company_id", companyID),
		slog.String("total_tax_liability", calc.TotalTaxLiability.StringFixed(2)))
	return calc, nil
}
