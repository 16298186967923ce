package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/core/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

// --- Implement mock methods for AccountRepositoryFacade ---

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, companyID string, number string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) AccountHasRows(ctx context.Context, companyID string, accountID string) (bool, error) {
	args := m.Called(ctx, companyID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, companyID string, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, companyID, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, companyID string, accountID string) error {
	args := m.Called(ctx, companyID, accountID)
	return args.Error(0)
}

// MockCompanyRepository is a mock type for the CompanyRepositoryFacade interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockAccountRepository
	mockCompany *MockCompanyRepository
	service     portssvc.AccountSvcFacade
	now         time.Time
	companyID   string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockCompany = new(MockCompanyRepository)
	suite.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.companyID = "company-1"
	suite.service = services.NewAccountService(suite.mockRepo, suite.mockCompany,
		services.WithClock(func() time.Time { return suite.now }))
}

func (suite *AccountServiceTestSuite) expectCompany(ctx context.Context) {
	suite.mockCompany.On("FindCompanyByID", ctx, suite.companyID).
		Return(&domain.Company{CompanyID: suite.companyID, CurrentFiscalYear: 2024}, nil)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := middleware.WithActor(context.Background(), "user-7")
	req := dto.CreateAccountRequest{
		Number:      " 1930 ",
		Name:        "Företagskonto",
		AccountType: domain.Asset,
	}

	suite.expectCompany(ctx)
	suite.mockRepo.On("FindAccountByNumber", ctx, suite.companyID, "1930").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, suite.companyID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal("1930", created.Number)
	suite.Equal(domain.Asset, created.AccountType)
	suite.True(created.IsActive)
	suite.Equal("user-7", created.CreatedBy)
	suite.Equal(suite.now, created.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NumberExists() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Number: "1930", Name: "Bank", AccountType: domain.Asset}

	suite.expectCompany(ctx)
	suite.mockRepo.On("FindAccountByNumber", ctx, suite.companyID, "1930").
		Return(&domain.Account{AccountID: "existing", Number: "1930"}, nil).Once()

	created, err := suite.service.CreateAccount(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrAccountNumberExists)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidInput() {
	ctx := context.Background()

	_, err := suite.service.CreateAccount(ctx, suite.companyID, dto.CreateAccountRequest{Number: "", Name: "x", AccountType: domain.Asset})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateAccount(ctx, suite.companyID, dto.CreateAccountRequest{Number: "1", Name: "x", AccountType: "EQUITY"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockCompany.AssertNotCalled(suite.T(), "FindCompanyByID", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CompanyNotFound() {
	ctx := context.Background()
	suite.mockCompany.On("FindCompanyByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(ctx, "missing", dto.CreateAccountRequest{Number: "1930", Name: "Bank", AccountType: domain.Asset})

	suite.ErrorIs(err, apperrors.ErrCompanyNotFound)
	suite.Equal("COMPANY_NOT_FOUND", apperrors.ReasonOf(err))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Number: "1930", Name: "Bank", AccountType: domain.Asset}

	suite.expectCompany(ctx)
	suite.mockRepo.On("FindAccountByNumber", ctx, suite.companyID, "1930").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(assert.AnError).Once()

	created, err := suite.service.CreateAccount(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, suite.companyID, "nope").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, suite.companyID, "nope")

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestDeactivateOrDelete_DeletesUnreferenced() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "a1", CompanyID: suite.companyID, Number: "6570", IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, suite.companyID, "a1").Return(account, nil).Once()
	suite.mockRepo.On("AccountHasRows", ctx, suite.companyID, "a1").Return(false, nil).Once()
	suite.mockRepo.On("DeleteAccount", ctx, suite.companyID, "a1").Return(nil).Once()

	removal, err := suite.service.DeactivateOrDeleteAccount(ctx, suite.companyID, "a1")

	suite.Require().NoError(err)
	suite.Equal(domain.AccountDeleted, removal)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateOrDelete_DeactivatesReferenced() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "a1", CompanyID: suite.companyID, Number: "1930", IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, suite.companyID, "a1").Return(account, nil).Once()
	suite.mockRepo.On("AccountHasRows", ctx, suite.companyID, "a1").Return(true, nil).Once()
	suite.mockRepo.On("DeactivateAccount", ctx, suite.companyID, "a1", domain.SystemActor, suite.now).Return(nil).Once()

	removal, err := suite.service.DeactivateOrDeleteAccount(ctx, suite.companyID, "a1")

	suite.Require().NoError(err)
	suite.Equal(domain.AccountDeactivated, removal)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateOrDelete_FallsBackWhenDeleteRaces() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "a1", CompanyID: suite.companyID, Number: "1930", IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, suite.companyID, "a1").Return(account, nil).Once()
	suite.mockRepo.On("AccountHasRows", ctx, suite.companyID, "a1").Return(false, nil).Once()
	suite.mockRepo.On("DeleteAccount", ctx, suite.companyID, "a1").Return(apperrors.ErrAccountInUse).Once()
	suite.mockRepo.On("DeactivateAccount", ctx, suite.companyID, "a1", domain.SystemActor, suite.now).Return(nil).Once()

	removal, err := suite.service.DeactivateOrDeleteAccount(ctx, suite.companyID, "a1")

	suite.Require().NoError(err)
	suite.Equal(domain.AccountDeactivated, removal)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSeedChart_SkipsExisting() {
	ctx := context.Background()
	suite.expectCompany(ctx)
	suite.mockRepo.On("ListAccounts", ctx, suite.companyID, true).
		Return([]domain.Account{{Number: "1930"}, {Number: "3001"}}, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Number != "1930" && a.Number != "3001"
	})).Return(nil)

	created, err := suite.service.SeedChart(ctx, suite.companyID)

	suite.Require().NoError(err)
	suite.Greater(created, 10)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Number == "1930"
	}))
}

// Run the test suite
func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
