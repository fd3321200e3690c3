package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/restolane/resto_management_app/internal/core/domain"
	portssvc "github.com/restolane/resto_management_app/internal/core/ports/services"
	"github.com/restolane/resto_management_app/internal/core/services"
)

// MockCashFlowSource is a mock type for the CashFlowSource interface
type MockCashFlowSource struct {
	mock.Mock
}

func (m *MockCashFlowSource) GetCashFlowData(ctx context.Context) ([]domain.CashFlowItem, []domain.CashFlowItem, []domain.CashFlowItem, decimal.Decimal, error) {
	args := m.Called(ctx)
	var operating, investing, financing []domain.CashFlowItem
	if args.Get(0) != nil {
		operating = args.Get(0).([]domain.CashFlowItem)
	}
	if args.Get(1) != nil {
		investing = args.Get(1).([]domain.CashFlowItem)
	}
	if args.Get(2) != nil {
		financing = args.Get(2).([]domain.CashFlowItem)
	}
	return operating, investing, financing, args.Get(3).(decimal.Decimal), args.Error(4)
}

// --- Test Suite Setup ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockCashFlow    *MockCashFlowSource
	service         portssvc.ReportingSvc
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCashFlow = new(MockCashFlowSource)
	suite.service = services.NewReportingService(suite.mockAccountRepo, suite.mockCashFlow)
}

func account(code, name string, accType domain.AccountType, balance int64) domain.Account {
	return domain.Account{
		AccountID:   uuid.NewString(),
		Code:        code,
		Name:        name,
		AccountType: accType,
		Balance:     decimal.NewFromInt(balance),
		IsActive:    true,
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestTrialBalance_ColumnsFollowAccountType() {
	ctx := context.Background()
	accounts := []domain.Account{
		account("1000", "النقدية", domain.Asset, 45000),
		account("2000", "الموردون", domain.Liability, 28000),
		account("3000", "رأس المال", domain.Equity, 150000),
		account("4000", "إيرادات المبيعات", domain.Revenue, 185000),
		account("5100", "رواتب وأجور", domain.Expense, 42000),
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()

	report, err := suite.service.TrialBalance(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 5)

	// Asset and expense balances land in the debit column, the rest in credit
	suite.True(report.Rows[0].Debit.Equal(decimal.NewFromInt(45000)))
	suite.True(report.Rows[0].Credit.IsZero())
	suite.True(report.Rows[1].Credit.Equal(decimal.NewFromInt(28000)))
	suite.True(report.Rows[1].Debit.IsZero())
	suite.True(report.Rows[4].Debit.Equal(decimal.NewFromInt(42000)))

	suite.True(report.TotalDebit.Equal(decimal.NewFromInt(87000)))
	suite.True(report.TotalCredit.Equal(decimal.NewFromInt(363000)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_NetIncome() {
	ctx := context.Background()
	accounts := []domain.Account{
		account("1000", "النقدية", domain.Asset, 45000), // ignored by P&L
		account("4000", "إيرادات المبيعات", domain.Revenue, 185000),
		account("4100", "إيرادات التوصيل", domain.Revenue, 15000),
		account("5000", "تكلفة المواد الغذائية", domain.Expense, 95000),
		account("5100", "رواتب وأجور", domain.Expense, 42000),
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx)

	suite.Require().NoError(err)
	suite.Len(report.Revenue, 2)
	suite.Len(report.Expenses, 2)
	suite.True(report.TotalRevenue.Equal(decimal.NewFromInt(200000)))
	suite.True(report.TotalExpenses.Equal(decimal.NewFromInt(137000)))
	suite.True(report.NetIncome.Equal(decimal.NewFromInt(63000)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCashFlow_SummationLaw() {
	ctx := context.Background()
	operating := []domain.CashFlowItem{
		{Name: "المقبوضات من المبيعات", Amount: decimal.NewFromInt(185000)},
		{Name: "مدفوعات للموردين", Amount: decimal.NewFromInt(-95000)},
	}
	investing := []domain.CashFlowItem{
		{Name: "شراء معدات مطبخ", Amount: decimal.NewFromInt(-25000)},
	}
	financing := []domain.CashFlowItem{
		{Name: "مساهمة المالك", Amount: decimal.NewFromInt(20000)},
	}
	beginning := decimal.NewFromInt(45000)

	suite.mockCashFlow.On("GetCashFlowData", ctx).Return(operating, investing, financing, beginning, nil).Once()

	statement, err := suite.service.CashFlow(ctx)

	suite.Require().NoError(err)
	suite.True(statement.Operating.Total.Equal(decimal.NewFromInt(90000)))
	suite.True(statement.Investing.Total.Equal(decimal.NewFromInt(-25000)))
	suite.True(statement.Financing.Total.Equal(decimal.NewFromInt(20000)))

	// net = sum of section totals, ending = beginning + net
	suite.True(statement.NetCashFlow.Equal(decimal.NewFromInt(85000)))
	suite.True(statement.BeginningCash.Equal(beginning))
	suite.True(statement.EndingCash.Equal(decimal.NewFromInt(130000)))
	suite.mockCashFlow.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCashFlow_EmptySections() {
	ctx := context.Background()

	suite.mockCashFlow.On("GetCashFlowData", ctx).Return(nil, nil, nil, decimal.NewFromInt(1000), nil).Once()

	statement, err := suite.service.CashFlow(ctx)

	suite.Require().NoError(err)
	suite.True(statement.NetCashFlow.IsZero())
	suite.True(statement.EndingCash.Equal(decimal.NewFromInt(1000)))
	suite.mockCashFlow.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
