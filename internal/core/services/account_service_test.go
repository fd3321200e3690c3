package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/restolane/resto_management_app/internal/apperrors"
	"github.com/restolane/resto_management_app/internal/core/domain"
	portssvc "github.com/restolane/resto_management_app/internal/core/ports/services"
	"github.com/restolane/resto_management_app/internal/core/services"
	"github.com/restolane/resto_management_app/internal/dto"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

// --- Implement mock methods for AccountRepository ---

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, updatedBy string, at time.Time) error {
	args := m.Called(ctx, accountID, updatedBy, at)
	return args.Error(0)
}

func (m *MockAccountRepository) ApplyBalanceChanges(ctx context.Context, changes map[string]decimal.Decimal, updatedBy string, at time.Time) error {
	args := m.Called(ctx, changes, updatedBy, at)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvc
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:           "1120",
		Name:           "المخزون",
		AccountType:    domain.Asset,
		OpeningBalance: decimal.NewFromInt(5000),
		CreatedBy:      "admin",
	}

	suite.mockRepo.On("FindAccountByCode", ctx, "1120").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.NotEmpty(createdAccount.AccountID)
	suite.Equal(req.Code, createdAccount.Code)
	suite.Equal(req.Name, createdAccount.Name)
	suite.Equal(domain.Asset, createdAccount.AccountType)
	suite.True(createdAccount.IsActive)
	suite.True(createdAccount.Balance.Equal(decimal.NewFromInt(5000)))
	suite.Equal("admin", createdAccount.CreatedBy)
	suite.WithinDuration(time.Now(), createdAccount.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByCode() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "1000",
		Name:        "النقدية",
		AccountType: domain.Asset,
		IsActive:    true,
	}

	suite.mockRepo.On("FindAccountByCode", ctx, "1000").Return(account, nil).Once()
	suite.mockRepo.On("FindAccountByCode", ctx, "9999").Return(nil, apperrors.ErrNotFound).Once()

	found, err := suite.service.GetAccountByCode(ctx, "1000")
	suite.Require().NoError(err)
	suite.Equal(account.AccountID, found.AccountID)

	_, err = suite.service.GetAccountByCode(ctx, "9999")
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "1120",
		Name:        "Existing",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	req := dto.CreateAccountRequest{
		Code:        "1120",
		Name:        "Another inventory",
		AccountType: domain.Asset,
		CreatedBy:   "admin",
	}

	suite.mockRepo.On("FindAccountByCode", ctx, "1120").Return(existing, nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "9999",
		Name:        "Mystery",
		AccountType: domain.AccountType("SOMETHING"),
		CreatedBy:   "admin",
	}

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, services.ErrInvalidAccType.Error())
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountByCode", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentNotFound() {
	ctx := context.Background()
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Code:            "1121",
		Name:            "Dry storage",
		AccountType:     domain.Asset,
		ParentAccountID: &parentID,
		CreatedBy:       "admin",
	}

	suite.mockRepo.On("FindAccountByCode", ctx, "1121").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindAccountByID", ctx, parentID).Return(nil, apperrors.ErrNotFound).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, services.ErrInvalidParent.Error())
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentTypeMismatch() {
	ctx := context.Background()
	parentID := uuid.NewString()
	parent := &domain.Account{
		AccountID:   parentID,
		Code:        "4000",
		Name:        "إيرادات المبيعات",
		AccountType: domain.Revenue,
		IsActive:    true,
	}
	req := dto.CreateAccountRequest{
		Code:            "1121",
		Name:            "Dry storage",
		AccountType:     domain.Asset,
		ParentAccountID: &parentID,
		CreatedBy:       "admin",
	}

	suite.mockRepo.On("FindAccountByCode", ctx, "1121").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindAccountByID", ctx, parentID).Return(parent, nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, services.ErrInvalidParent.Error())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NameOnly() {
	ctx := context.Background()
	accountID := uuid.NewString()
	stored := &domain.Account{
		AccountID:   accountID,
		Code:        "5200",
		Name:        "إيجار",
		AccountType: domain.Expense,
		IsActive:    true,
	}
	newName := "إيجار المطعم"
	req := dto.UpdateAccountRequest{
		Name:      &newName,
		UpdatedBy: "admin",
	}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Name == newName && acc.Code == "5200" && acc.LastUpdatedBy == "admin"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, accountID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(newName, updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateAccount(ctx, accountID, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
