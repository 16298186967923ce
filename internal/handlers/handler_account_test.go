package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func testAccount(number, name string, t domain.AccountType) *domain.Account {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   testCompanyID,
		Number:      number,
		Name:        name,
		AccountType: t,
		IsActive:    true,
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "user-1", LastUpdatedAt: now, LastUpdatedBy: "user-1"},
	}
}

func (suite *HandlerTestSuite) TestRegisterCompany_Success() {
	req := dto.RegisterCompanyRequest{Name: "Acme AB", OrganizationNumber: "556000-0000", FirstFiscalYear: 2024, SeedChart: true}
	suite.company.On("RegisterCompany", mock.Anything, req).
		Return(&domain.Company{CompanyID: testCompanyID, Name: "Acme AB", CurrentFiscalYear: 2024}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies", req)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.CompanyResponse
	suite.decode(w, &resp)
	suite.Equal(testCompanyID, resp.CompanyID)
	suite.Equal(2024, resp.CurrentFiscalYear)
}

func (suite *HandlerTestSuite) TestRegisterCompany_MissingName() {
	w := suite.do(http.MethodPost, "/api/v1/companies", map[string]any{"firstFiscalYear": 2024})
	suite.assertError(w, http.StatusBadRequest, "VALIDATION_ERROR")
	suite.company.AssertNotCalled(suite.T(), "RegisterCompany", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetCompany_NotFound() {
	suite.company.On("GetCompany", mock.Anything, "missing").Return(nil, apperrors.ErrCompanyNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/missing", nil)
	suite.assertError(w, http.StatusNotFound, "COMPANY_NOT_FOUND")
}

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{Number: "1930", Name: "Bank", AccountType: domain.Asset}
	created := testAccount("1930", "Bank", domain.Asset)

	actorInCtx := mock.MatchedBy(func(ctx context.Context) bool {
		actor, ok := middleware.GetActorFromCtx(ctx)
		return ok && actor == "user-1"
	})
	suite.account.On("CreateAccount", actorInCtx, testCompanyID, req).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies/"+testCompanyID+"/accounts", req, middleware.ActorHeader, "user-1")

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.Equal(created.AccountID, resp.AccountID)
	suite.Equal("1930", resp.Number)
	suite.Equal(domain.Asset, resp.AccountType)
	suite.Equal("user-1", resp.CreatedBy)
}

func (suite *HandlerTestSuite) TestCreateAccount_InvalidType() {
	w := suite.do(http.MethodPost, "/api/v1/companies/"+testCompanyID+"/accounts",
		map[string]any{"number": "1930", "name": "Bank", "accountType": "EQUITY"})
	suite.assertError(w, http.StatusBadRequest, "VALIDATION_ERROR")
}

func (suite *HandlerTestSuite) TestCreateAccount_DuplicateNumber() {
	req := dto.CreateAccountRequest{Number: "1930", Name: "Bank", AccountType: domain.Asset}
	suite.account.On("CreateAccount", mock.Anything, testCompanyID, req).
		Return(nil, fmt.Errorf("account 1930: %w", apperrors.ErrAccountNumberExists)).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies/"+testCompanyID+"/accounts", req)
	suite.assertError(w, http.StatusConflict, "ACCOUNT_NUMBER_EXISTS")
}

func (suite *HandlerTestSuite) TestListAccounts_IncludeInactive() {
	accounts := []domain.Account{
		*testAccount("1510", "Receivables", domain.Asset),
		*testAccount("3001", "Sales", domain.Revenue),
	}
	suite.account.On("ListAccounts", mock.Anything, testCompanyID, true).Return(accounts, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/accounts?includeInactive=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Accounts, 2)
	suite.Equal("1510", resp.Accounts[0].Number)
	suite.Equal("3001", resp.Accounts[1].Number)
}

func (suite *HandlerTestSuite) TestListAccounts_ActiveOnlyByDefault() {
	suite.account.On("ListAccounts", mock.Anything, testCompanyID, false).Return([]domain.Account{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"accounts":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetAccount_InternalErrorHidesCause() {
	suite.account.On("GetAccountByID", mock.Anything, testCompanyID, "acc-1").
		Return(nil, fmt.Errorf("connection reset by peer")).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/"+testCompanyID+"/accounts/acc-1", nil)

	suite.assertError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
	suite.NotContains(w.Body.String(), "connection reset")
}

func (suite *HandlerTestSuite) TestDeleteAccount_DeactivatesUsedAccount() {
	suite.account.On("DeactivateOrDeleteAccount", mock.Anything, testCompanyID, "acc-1").
		Return(domain.AccountDeactivated, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/companies/"+testCompanyID+"/accounts/acc-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountRemovalResponse
	suite.decode(w, &resp)
	suite.Equal("acc-1", resp.AccountID)
	suite.Equal(domain.AccountDeactivated, resp.Outcome)
}

func (suite *HandlerTestSuite) TestDeleteAccount_NotFound() {
	suite.account.On("DeactivateOrDeleteAccount", mock.Anything, testCompanyID, "acc-9").
		Return(domain.AccountRemoval(""), apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/companies/"+testCompanyID+"/accounts/acc-9", nil)
	suite.assertError(w, http.StatusNotFound, "NOT_FOUND")
}

func (suite *HandlerTestSuite) TestSeedChart() {
	suite.account.On("SeedChart", mock.Anything, testCompanyID).Return(12, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies/"+testCompanyID+"/accounts/seed", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"created":12}`, w.Body.String())
}
