// Package memory is an in-process implementation of every storage port. It backs
// the "memory" storage driver, the CLI tests and the ledger property tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// SalaryPayment is one payroll payment as recorded by the payroll service.
type SalaryPayment struct {
	CompanyID            string
	PaymentDate          time.Time
	GrossSalary          decimal.Decimal
	EmployerContribution decimal.Decimal
	TaxWithheld          decimal.Decimal
}

type vatKey struct {
	companyID  string
	year       int
	period     int
	periodType domain.VatPeriodType
}

type state struct {
	companies  map[string]domain.Company
	accounts   map[string]domain.Account
	vouchers   map[string]domain.Voucher
	vatPeriods map[vatKey]domain.VatPeriod
	documents  []domain.VatDocument
	salaries   []SalaryPayment
}

func newState() *state {
	return &state{
		companies:  make(map[string]domain.Company),
		accounts:   make(map[string]domain.Account),
		vouchers:   make(map[string]domain.Voucher),
		vatPeriods: make(map[vatKey]domain.VatPeriod),
	}
}

// clone copies the maps. Voucher rows are never mutated in place, so the row
// slices can be shared.
func (s *state) clone() *state {
	c := &state{
		companies:  make(map[string]domain.Company, len(s.companies)),
		accounts:   make(map[string]domain.Account, len(s.accounts)),
		vouchers:   make(map[string]domain.Voucher, len(s.vouchers)),
		vatPeriods: make(map[vatKey]domain.VatPeriod, len(s.vatPeriods)),
		documents:  append([]domain.VatDocument(nil), s.documents...),
		salaries:   append([]SalaryPayment(nil), s.salaries...),
	}
	for k, v := range s.companies {
		c.companies[k] = v
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.vouchers {
		c.vouchers[k] = v
	}
	for k, v := range s.vatPeriods {
		c.vatPeriods[k] = v
	}
	return c
}

// Store keeps all ledger state in memory behind one RWMutex. Units of work run
// against a private copy that replaces the shared state on success.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

var (
	_ portsrepo.UnitOfWork                = (*Store)(nil)
	_ portsrepo.CompanyRepositoryFacade   = (*Store)(nil)
	_ portsrepo.AccountRepositoryFacade   = (*Store)(nil)
	_ portsrepo.VoucherRepositoryFacade   = (*Store)(nil)
	_ portsrepo.ReportingRepository       = (*Store)(nil)
	_ portsrepo.VatPeriodRepositoryFacade = (*Store)(nil)
	_ portsrepo.VatDocumentReader         = (*Store)(nil)
	_ portsrepo.PayrollReader             = (*Store)(nil)
)

// Provider exposes the store through every repository port.
func (s *Store) Provider() *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UnitOfWork:      s,
		CompanyRepo:     s,
		AccountRepo:     s,
		VoucherRepo:     s,
		ReportingRepo:   s,
		VatPeriodRepo:   s,
		VatDocumentRepo: s,
		PayrollRepo:     s,
	}
}

// WithTx runs fn against a copy of the state. The copy is kept only if fn succeeds.
// Store methods must not be called from inside fn; use tx instead.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.st.clone()
	if err := fn(ctx, &ledgerTx{st: working}); err != nil {
		return err
	}
	s.st = working
	return nil
}

func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.st)
}

func (s *Store) write(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

// CompanyCount returns the number of registered companies.
func (s *Store) CompanyCount() (n int) {
	s.read(func(st *state) { n = len(st.companies) })
	return n
}

// AddVatDocument records a sales or purchase document, as the invoicing and
// expense services would.
func (s *Store) AddVatDocument(doc domain.VatDocument) {
	doc.Date = domain.NormalizeDate(doc.Date)
	_ = s.write(func(st *state) error {
		st.documents = append(st.documents, doc)
		return nil
	})
}

// AddSalaryPayment records a payroll payment, as the payroll service would.
func (s *Store) AddSalaryPayment(p SalaryPayment) {
	p.PaymentDate = domain.NormalizeDate(p.PaymentDate)
	_ = s.write(func(st *state) error {
		st.salaries = append(st.salaries, p)
		return nil
	})
}

// ListVatDocuments implements portsrepo.VatDocumentReader.
func (s *Store) ListVatDocuments(ctx context.Context, companyID string, from, to time.Time) ([]domain.VatDocument, error) {
	var docs []domain.VatDocument
	s.read(func(st *state) {
		for _, d := range st.documents {
			if d.CompanyID == companyID && inRange(d.Date, &from, to) {
				docs = append(docs, d)
			}
		}
	})
	return docs, nil
}

// SumPayroll implements portsrepo.PayrollReader.
func (s *Store) SumPayroll(ctx context.Context, companyID string, from, to time.Time) (domain.PayrollTotals, error) {
	totals := domain.PayrollTotals{
		GrossSalaries:         decimal.Zero,
		EmployerContributions: decimal.Zero,
		TaxWithheld:           decimal.Zero,
	}
	s.read(func(st *state) {
		for _, p := range st.salaries {
			if p.CompanyID != companyID || !inRange(p.PaymentDate, &from, to) {
				continue
			}
			totals.GrossSalaries = totals.GrossSalaries.Add(p.GrossSalary)
			totals.EmployerContributions = totals.EmployerContributions.Add(p.EmployerContribution)
			totals.TaxWithheld = totals.TaxWithheld.Add(p.TaxWithheld)
			totals.PaymentCount++
		}
	})
	return totals, nil
}

func inRange(date time.Time, from *time.Time, to time.Time) bool {
	date = domain.NormalizeDate(date)
	if from != nil && date.Before(domain.NormalizeDate(*from)) {
		return false
	}
	return !date.After(domain.NormalizeDate(to))
}

func (st *state) accountTotals(companyID string, from *time.Time, to time.Time) []domain.AccountTotals {
	byAccount := make(map[string]*domain.AccountTotals)
	for _, a := range st.accounts {
		if a.CompanyID != companyID {
			continue
		}
		byAccount[a.AccountID] = &domain.AccountTotals{
			AccountID:   a.AccountID,
			Number:      a.Number,
			Name:        a.Name,
			AccountType: a.AccountType,
			IsActive:    a.IsActive,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
	}
	for _, v := range st.vouchers {
		if v.CompanyID != companyID || !inRange(v.Date, from, to) {
			continue
		}
		for _, r := range v.Rows {
			t, ok := byAccount[r.AccountID]
			if !ok {
				continue
			}
			t.Debit = t.Debit.Add(r.Debit)
			t.Credit = t.Credit.Add(r.Credit)
		}
	}

	totals := make([]domain.AccountTotals, 0, len(byAccount))
	for _, t := range byAccount {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool {
		return accounting.CompareAccountNumbers(totals[i].Number, totals[j].Number) < 0
	})
	return totals
}

// AccountTotals implements portsrepo.ReportingRepository.
func (s *Store) AccountTotals(ctx context.Context, companyID string, from *time.Time, to time.Time) ([]domain.AccountTotals, error) {
	var totals []domain.AccountTotals
	s.read(func(st *state) {
		totals = st.accountTotals(companyID, from, to)
	})
	return totals, nil
}
