package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T) (*Store, domain.Account, domain.Account) {
	t.Helper()
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveCompany(ctx, domain.Company{CompanyID: "c1", Name: "Test AB", CurrentFiscalYear: 2024}))

	bank := domain.Account{AccountID: "a-1930", CompanyID: "c1", Number: "1930", Name: "Bank", AccountType: domain.Asset, IsActive: true}
	sales := domain.Account{AccountID: "a-3001", CompanyID: "c1", Number: "3001", Name: "Sales", AccountType: domain.Revenue, IsActive: true}
	require.NoError(t, s.SaveAccount(ctx, bank))
	require.NoError(t, s.SaveAccount(ctx, sales))
	return s, bank, sales
}

func voucher(id, number, date string, debit, credit domain.Account, value string) domain.Voucher {
	d, _ := time.Parse(domain.DateLayout, date)
	amt := decimal.RequireFromString(value)
	return domain.Voucher{
		VoucherID:     id,
		CompanyID:     "c1",
		VoucherNumber: number,
		Date:          d,
		Rows: []domain.VoucherRow{
			{RowID: id + "-1", VoucherID: id, AccountID: debit.AccountID, Debit: amt, SortOrder: 0},
			{RowID: id + "-2", VoucherID: id, AccountID: credit.AccountID, Credit: amt, SortOrder: 1},
		},
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s, bank, sales := seedStore(t)

	failure := errors.New("boom")
	err := s.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		require.NoError(t, tx.SaveVoucher(ctx, voucher("v1", "00001", "2024-06-01", bank, sales, "100")))
		require.NoError(t, tx.UpdateFiscalYear(ctx, "c1", 2025, "tester", time.Now()))
		return failure
	})
	assert.ErrorIs(t, err, failure)

	_, err = s.FindVoucherByID(ctx, "c1", "v1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	company, err := s.FindCompanyByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2024, company.CurrentFiscalYear)
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	s, bank, sales := seedStore(t)

	err := s.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		if err := tx.SaveVoucher(ctx, voucher("v1", "00001", "2024-06-01", bank, sales, "100")); err != nil {
			return err
		}
		highest, err := tx.MaxVoucherSequence(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), highest)
		return nil
	})
	require.NoError(t, err)

	v, err := s.FindVoucherByID(ctx, "c1", "v1")
	require.NoError(t, err)
	assert.Len(t, v.Rows, 2)

	_, err = s.FindVoucherByID(ctx, "other-company", "v1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveVoucher_DuplicateNumber(t *testing.T) {
	ctx := context.Background()
	s, bank, sales := seedStore(t)

	err := s.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		if err := tx.SaveVoucher(ctx, voucher("v1", "00001", "2024-06-01", bank, sales, "1")); err != nil {
			return err
		}
		return tx.SaveVoucher(ctx, voucher("v2", "00001", "2024-06-02", bank, sales, "1"))
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestAccounts_UniqueNumberAndDeleteGuard(t *testing.T) {
	ctx := context.Background()
	s, bank, sales := seedStore(t)

	err := s.SaveAccount(ctx, domain.Account{AccountID: "dup", CompanyID: "c1", Number: "1930", AccountType: domain.Asset})
	assert.ErrorIs(t, err, apperrors.ErrAccountNumberExists)

	require.NoError(t, s.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		return tx.SaveVoucher(ctx, voucher("v1", "00001", "2024-06-01", bank, sales, "1"))
	}))

	inUse, err := s.AccountHasRows(ctx, "c1", bank.AccountID)
	require.NoError(t, err)
	assert.True(t, inUse)
	assert.ErrorIs(t, s.DeleteAccount(ctx, "c1", bank.AccountID), apperrors.ErrAccountInUse)

	require.NoError(t, s.DeactivateAccount(ctx, "c1", bank.AccountID, "tester", time.Now()))
	active, err := s.ListAccounts(ctx, "c1", false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "3001", active[0].Number)

	all, err := s.ListAccounts(ctx, "c1", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAccountTotals_DateRangeAndUntouchedAccounts(t *testing.T) {
	ctx := context.Background()
	s, bank, sales := seedStore(t)
	require.NoError(t, s.SaveAccount(ctx, domain.Account{AccountID: "a-5010", CompanyID: "c1", Number: "5010", AccountType: domain.Expense, IsActive: true}))

	require.NoError(t, s.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		if err := tx.SaveVoucher(ctx, voucher("v1", "00001", "2023-12-31", bank, sales, "50")); err != nil {
			return err
		}
		return tx.SaveVoucher(ctx, voucher("v2", "00002", "2024-01-01", bank, sales, "100"))
	}))

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	totals, err := s.AccountTotals(ctx, "c1", &from, to)
	require.NoError(t, err)
	require.Len(t, totals, 3)
	assert.Equal(t, "1930", totals[0].Number)
	assert.True(t, decimal.NewFromInt(100).Equal(totals[0].Debit))
	assert.Equal(t, "5010", totals[2].Number)
	assert.True(t, totals[2].Debit.IsZero())

	cumulative, err := s.AccountTotals(ctx, "c1", nil, to)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(cumulative[0].Debit))
}

func TestListVouchers_OrderAndCursor(t *testing.T) {
	ctx := context.Background()
	s, bank, sales := seedStore(t)
	require.NoError(t, s.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		for _, v := range []domain.Voucher{
			voucher("v1", "00001", "2024-01-05", bank, sales, "1"),
			voucher("v2", "00002", "2024-01-05", bank, sales, "1"),
			voucher("v3", "00003", "2024-01-04", bank, sales, "1"),
		} {
			if err := tx.SaveVoucher(ctx, v); err != nil {
				return err
			}
		}
		return nil
	}))

	list, err := s.ListVouchers(ctx, "c1", domain.VoucherFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"00002", "00001", "00003"}, []string{list[0].VoucherNumber, list[1].VoucherNumber, list[2].VoucherNumber})

	after := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	list, err = s.ListVouchers(ctx, "c1", domain.VoucherFilter{AfterDate: &after, AfterNumber: "00002", Limit: 1})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "00001", list[0].VoucherNumber)
}

func TestVatPeriods_UpsertAndClear(t *testing.T) {
	ctx := context.Background()
	s, _, _ := seedStore(t)
	paid := decimal.NewFromInt(10)

	assert.ErrorIs(t, s.ClearVatPayment(ctx, "c1", 2024, 1, domain.VatQuarterly, "tester", time.Now()), apperrors.ErrNotFound)

	require.NoError(t, s.UpsertVatPeriod(ctx, domain.VatPeriod{
		CompanyID: "c1", Year: 2024, Period: 1, PeriodType: domain.VatQuarterly,
		VatPayment: domain.VatPayment{IsPaid: true, PaidAmount: &paid},
	}))
	found, err := s.FindVatPeriod(ctx, "c1", 2024, 1, domain.VatQuarterly)
	require.NoError(t, err)
	assert.True(t, found.IsPaid)

	_, err = s.FindVatPeriod(ctx, "c1", 2024, 1, domain.VatMonthly)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, s.ClearVatPayment(ctx, "c1", 2024, 1, domain.VatQuarterly, "tester", time.Now()))
	periods, err := s.FindVatPeriods(ctx, "c1", 2024, domain.VatQuarterly)
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.False(t, periods[0].IsPaid)
	assert.Nil(t, periods[0].PaidAmount)
}
