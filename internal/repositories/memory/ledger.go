package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/utils/accounting"
)

func (st *state) findCompany(companyID string) (*domain.Company, error) {
	c, ok := st.companies[companyID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (st *state) findAccount(companyID, accountID string) (*domain.Account, error) {
	a, ok := st.accounts[accountID]
	if !ok || a.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (st *state) findAccountByNumber(companyID, number string) (*domain.Account, error) {
	for _, a := range st.accounts {
		if a.CompanyID == companyID && a.Number == number {
			return &a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (st *state) saveCompany(company domain.Company) error {
	if _, ok := st.companies[company.CompanyID]; ok {
		return fmt.Errorf("company %s: %w", company.CompanyID, apperrors.ErrDuplicate)
	}
	st.companies[company.CompanyID] = company
	return nil
}

func (st *state) saveAccount(account domain.Account) error {
	if _, err := st.findAccountByNumber(account.CompanyID, account.Number); err == nil {
		return fmt.Errorf("account %s: %w", account.Number, apperrors.ErrAccountNumberExists)
	}
	if _, ok := st.companies[account.CompanyID]; !ok {
		return fmt.Errorf("company %s: %w", account.CompanyID, apperrors.ErrNotFound)
	}
	st.accounts[account.AccountID] = account
	return nil
}

func (st *state) setAccountActive(companyID, accountID string, active bool, userID string, now time.Time) error {
	a, err := st.findAccount(companyID, accountID)
	if err != nil {
		return err
	}
	a.IsActive = active
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
	st.accounts[accountID] = *a
	return nil
}

func (st *state) accountHasRows(companyID, accountID string) bool {
	for _, v := range st.vouchers {
		if v.CompanyID != companyID {
			continue
		}
		for _, r := range v.Rows {
			if r.AccountID == accountID {
				return true
			}
		}
	}
	return false
}

func (st *state) findVoucher(companyID, voucherID string) (*domain.Voucher, error) {
	v, ok := st.vouchers[voucherID]
	if !ok || v.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &v, nil
}

func (st *state) maxVoucherSequence(companyID string) int64 {
	numbers := make([]string, 0)
	for _, v := range st.vouchers {
		if v.CompanyID == companyID {
			numbers = append(numbers, v.VoucherNumber)
		}
	}
	return accounting.MaxVoucherSequence(numbers)
}

func (st *state) saveVoucher(voucher domain.Voucher) error {
	if _, ok := st.companies[voucher.CompanyID]; !ok {
		return fmt.Errorf("company %s: %w", voucher.CompanyID, apperrors.ErrNotFound)
	}
	for _, v := range st.vouchers {
		if v.CompanyID == voucher.CompanyID && v.VoucherNumber == voucher.VoucherNumber {
			return fmt.Errorf("voucher number %s: %w", voucher.VoucherNumber, apperrors.ErrDuplicate)
		}
	}
	for _, r := range voucher.Rows {
		if _, ok := st.accounts[r.AccountID]; !ok {
			return fmt.Errorf("row account %s: %w", r.AccountID, apperrors.ErrInvalidAccountReference)
		}
	}
	rows := append([]domain.VoucherRow(nil), voucher.Rows...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].SortOrder < rows[j].SortOrder })
	voucher.Rows = rows
	st.vouchers[voucher.VoucherID] = voucher
	return nil
}

// compareListing orders vouchers newest first: date descending, then number descending.
func compareListing(a, b domain.Voucher) int {
	if !a.Date.Equal(b.Date) {
		if a.Date.After(b.Date) {
			return -1
		}
		return 1
	}
	return -accounting.CompareAccountNumbers(a.VoucherNumber, b.VoucherNumber)
}

func (st *state) listVouchers(companyID string, filter domain.VoucherFilter) []domain.Voucher {
	var cursor *domain.Voucher
	if filter.AfterDate != nil {
		cursor = &domain.Voucher{Date: domain.NormalizeDate(*filter.AfterDate), VoucherNumber: filter.AfterNumber}
	}

	vouchers := make([]domain.Voucher, 0)
	for _, v := range st.vouchers {
		if v.CompanyID != companyID {
			continue
		}
		if filter.From != nil && v.Date.Before(domain.NormalizeDate(*filter.From)) {
			continue
		}
		if filter.To != nil && v.Date.After(domain.NormalizeDate(*filter.To)) {
			continue
		}
		if cursor != nil && compareListing(v, *cursor) <= 0 {
			continue
		}
		vouchers = append(vouchers, v)
	}
	sort.Slice(vouchers, func(i, j int) bool { return compareListing(vouchers[i], vouchers[j]) < 0 })

	if filter.Limit > 0 && len(vouchers) > filter.Limit {
		vouchers = vouchers[:filter.Limit]
	}
	return vouchers
}

// FindCompanyByID implements portsrepo.CompanyReader.
func (s *Store) FindCompanyByID(ctx context.Context, companyID string) (company *domain.Company, err error) {
	s.read(func(st *state) { company, err = st.findCompany(companyID) })
	return company, err
}

// SaveCompany implements portsrepo.CompanyWriter.
func (s *Store) SaveCompany(ctx context.Context, company domain.Company) error {
	return s.write(func(st *state) error { return st.saveCompany(company) })
}

func (s *Store) FindAccountByID(ctx context.Context, companyID string, accountID string) (account *domain.Account, err error) {
	s.read(func(st *state) { account, err = st.findAccount(companyID, accountID) })
	return account, err
}

func (s *Store) FindAccountByNumber(ctx context.Context, companyID string, number string) (account *domain.Account, err error) {
	s.read(func(st *state) { account, err = st.findAccountByNumber(companyID, number) })
	return account, err
}

func (s *Store) ListAccounts(ctx context.Context, companyID string, includeInactive bool) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0)
	s.read(func(st *state) {
		for _, a := range st.accounts {
			if a.CompanyID == companyID && (includeInactive || a.IsActive) {
				accounts = append(accounts, a)
			}
		}
	})
	sort.Slice(accounts, func(i, j int) bool {
		return accounting.CompareAccountNumbers(accounts[i].Number, accounts[j].Number) < 0
	})
	return accounts, nil
}

func (s *Store) AccountHasRows(ctx context.Context, companyID string, accountID string) (inUse bool, err error) {
	s.read(func(st *state) { inUse = st.accountHasRows(companyID, accountID) })
	return inUse, nil
}

func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	return s.write(func(st *state) error { return st.saveAccount(account) })
}

func (s *Store) DeactivateAccount(ctx context.Context, companyID string, accountID string, userID string, now time.Time) error {
	return s.write(func(st *state) error { return st.setAccountActive(companyID, accountID, false, userID, now) })
}

// DeleteAccount refuses to remove an account that voucher rows still reference.
func (s *Store) DeleteAccount(ctx context.Context, companyID string, accountID string) error {
	return s.write(func(st *state) error {
		if _, err := st.findAccount(companyID, accountID); err != nil {
			return err
		}
		if st.accountHasRows(companyID, accountID) {
			return apperrors.ErrAccountInUse
		}
		delete(st.accounts, accountID)
		return nil
	})
}

func (s *Store) FindVoucherByID(ctx context.Context, companyID string, voucherID string) (voucher *domain.Voucher, err error) {
	s.read(func(st *state) { voucher, err = st.findVoucher(companyID, voucherID) })
	return voucher, err
}

func (s *Store) ListVouchers(ctx context.Context, companyID string, filter domain.VoucherFilter) (vouchers []domain.Voucher, err error) {
	s.read(func(st *state) { vouchers = st.listVouchers(companyID, filter) })
	return vouchers, nil
}

// ledgerTx is the unit-of-work view over a private copy of the state.
type ledgerTx struct {
	st *state
}

var _ portsrepo.LedgerTx = (*ledgerTx)(nil)

// LockCompany only loads the company; the store mutex already serialises units of work.
func (tx *ledgerTx) LockCompany(ctx context.Context, companyID string, mode portsrepo.LockMode) (*domain.Company, error) {
	return tx.st.findCompany(companyID)
}

func (tx *ledgerTx) LockVoucherNumbering(ctx context.Context, companyID string) error {
	return ctx.Err()
}

func (tx *ledgerTx) UpdateFiscalYear(ctx context.Context, companyID string, year int, userID string, now time.Time) error {
	c, err := tx.st.findCompany(companyID)
	if err != nil {
		return err
	}
	c.CurrentFiscalYear = year
	c.LastUpdatedAt = now
	c.LastUpdatedBy = userID
	tx.st.companies[companyID] = *c
	return nil
}

func (tx *ledgerTx) SaveCompany(ctx context.Context, company domain.Company) error {
	return tx.st.saveCompany(company)
}

func (tx *ledgerTx) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	found := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if a, err := tx.st.findAccount(companyID, id); err == nil {
			found[id] = *a
		}
	}
	return found, nil
}

func (tx *ledgerTx) FindAccountByNumber(ctx context.Context, companyID string, number string) (*domain.Account, error) {
	return tx.st.findAccountByNumber(companyID, number)
}

func (tx *ledgerTx) SaveAccount(ctx context.Context, account domain.Account) error {
	return tx.st.saveAccount(account)
}

func (tx *ledgerTx) ActivateAccount(ctx context.Context, companyID string, accountID string, userID string, now time.Time) error {
	return tx.st.setAccountActive(companyID, accountID, true, userID, now)
}

func (tx *ledgerTx) MaxVoucherSequence(ctx context.Context, companyID string) (int64, error) {
	return tx.st.maxVoucherSequence(companyID), nil
}

func (tx *ledgerTx) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	return tx.st.saveVoucher(voucher)
}

func (tx *ledgerTx) FindVoucherByID(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error) {
	return tx.st.findVoucher(companyID, voucherID)
}

func (tx *ledgerTx) DeleteVoucher(ctx context.Context, companyID string, voucherID string) error {
	if _, err := tx.st.findVoucher(companyID, voucherID); err != nil {
		return err
	}
	delete(tx.st.vouchers, voucherID)
	return nil
}

func (tx *ledgerTx) AccountTotals(ctx context.Context, companyID string, from *time.Time, to time.Time) ([]domain.AccountTotals, error) {
	return tx.st.accountTotals(companyID, from, to), nil
}
