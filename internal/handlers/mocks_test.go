package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) RegisterCompany(ctx context.Context, req dto.RegisterCompanyRequest) (*domain.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, companyID string, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateOrDeleteAccount(ctx context.Context, companyID string, accountID string) (domain.AccountRemoval, error) {
	args := m.Called(ctx, companyID, accountID)
	return args.Get(0).(domain.AccountRemoval), args.Error(1)
}

func (m *MockAccountService) SeedChart(ctx context.Context, companyID string) (int, error) {
	args := m.Called(ctx, companyID)
	return args.Int(0), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock VoucherService ---
type MockVoucherService struct {
	mock.Mock
}

func (m *MockVoucherService) GetVoucherByID(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, companyID, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) (*domain.VoucherPage, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherPage), args.Error(1)
}

func (m *MockVoucherService) PostVoucher(ctx context.Context, companyID string, req dto.PostVoucherRequest) (*domain.Voucher, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) DeleteVoucher(ctx context.Context, companyID string, voucherID string) error {
	args := m.Called(ctx, companyID, voucherID)
	return args.Error(0)
}

var _ portssvc.VoucherSvcFacade = (*MockVoucherService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) AccountBalances(ctx context.Context, companyID string, asOf time.Time) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, companyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

func (m *MockReportingService) IncomeStatement(ctx context.Context, companyID string, from, to time.Time) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, companyID string, asOf time.Time) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, companyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock VatService ---
type MockVatService struct {
	mock.Mock
}

func (m *MockVatService) VatSummary(ctx context.Context, companyID string, year int, periodType domain.VatPeriodType) (*domain.VatSummary, error) {
	args := m.Called(ctx, companyID, year, periodType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatSummary), args.Error(1)
}

func (m *MockVatService) MarkVatPaid(ctx context.Context, companyID string, in domain.MarkVatPaidInput) (*domain.VatPeriod, error) {
	args := m.Called(ctx, companyID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatPeriod), args.Error(1)
}

func (m *MockVatService) UnmarkVatPaid(ctx context.Context, companyID string, year, period int, periodType domain.VatPeriodType) (bool, error) {
	args := m.Called(ctx, companyID, year, period, periodType)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.VatSvcFacade = (*MockVatService)(nil)

// --- Mock ClosingService ---
type MockClosingService struct {
	mock.Mock
}

func (m *MockClosingService) YearEndSummary(ctx context.Context, companyID string, fiscalYear int) (*domain.YearEndSummary, error) {
	args := m.Called(ctx, companyID, fiscalYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.YearEndSummary), args.Error(1)
}

func (m *MockClosingService) CloseYear(ctx context.Context, companyID string, fiscalYear int) (*domain.CloseYearResult, error) {
	args := m.Called(ctx, companyID, fiscalYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CloseYearResult), args.Error(1)
}

var _ portssvc.ClosingSvcFacade = (*MockClosingService)(nil)

// --- Mock TaxService ---
type MockTaxService struct {
	mock.Mock
}

func (m *MockTaxService) TaxCalculation(ctx context.Context, companyID string, fiscalYear int) (*domain.TaxCalculation, error) {
	args := m.Called(ctx, companyID, fiscalYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxCalculation), args.Error(1)
}

var _ portssvc.TaxSvcFacade = (*MockTaxService)(nil)
