package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/restolane/resto_management_app/internal/core/domain"
	portsrepo "github.com/restolane/resto_management_app/internal/core/ports/repositories"
	portssvc "github.com/restolane/resto_management_app/internal/core/ports/services"
)

// reportingService derives financial reports from the current chart of
// accounts. All three reports are pure functions over the account collection
// (plus the cash flow source); none of them mutates ledger state.
type reportingService struct {
	BaseService
	accountRepo    portsrepo.AccountReader
	cashFlowSource portsrepo.CashFlowSource
}

// NewReportingService creates a new ReportingSvc.
func NewReportingService(accountRepo portsrepo.AccountReader, cashFlowSource portsrepo.CashFlowSource) portssvc.ReportingSvc {
	return &reportingService{
		accountRepo:    accountRepo,
		cashFlowSource: cashFlowSource,
	}
}

// Ensure reportingService implements the portssvc.ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// TrialBalance lists every account's balance in exactly one of the
// debit/credit columns based solely on its type. For a balanced ledger the
// totals are expected to match; the report states them and leaves the
// comparison to the caller.
func (s *reportingService) TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve accounts for trial balance")
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	report := &domain.TrialBalanceReport{
		Rows:        make([]domain.TrialBalanceRow, 0, len(accounts)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, acc := range accounts {
		row := domain.TrialBalanceRow{
			AccountID:   acc.AccountID,
			Code:        acc.Code,
			AccountName: acc.Name,
			AccountType: acc.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if acc.AccountType.NormalBalanceIsDebit() {
			row.Debit = acc.Balance
			report.TotalDebit = report.TotalDebit.Add(acc.Balance)
		} else {
			row.Credit = acc.Balance
			report.TotalCredit = report.TotalCredit.Add(acc.Balance)
		}
		report.Rows = append(report.Rows, row)
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.Int("row_count", len(report.Rows)),
		slog.String("total_debit", report.TotalDebit.String()),
		slog.String("total_credit", report.TotalCredit.String()))
	return report, nil
}

// ProfitAndLoss sums revenue and expense account balances into a net income figure.
func (s *reportingService) ProfitAndLoss(ctx context.Context) (*domain.PAndLReport, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve accounts for profit and loss")
		return nil, fmt.Errorf("failed to retrieve profit and loss data: %w", err)
	}

	report := &domain.PAndLReport{
		Revenue:       []domain.AccountAmount{},
		Expenses:      []domain.AccountAmount{},
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, acc := range accounts {
		amount := domain.AccountAmount{
			AccountID: acc.AccountID,
			Code:      acc.Code,
			Name:      acc.Name,
			NetAmount: acc.Balance,
		}
		switch acc.AccountType {
		case domain.Revenue:
			report.Revenue = append(report.Revenue, amount)
			report.TotalRevenue = report.TotalRevenue.Add(acc.Balance)
		case domain.Expense:
			report.Expenses = append(report.Expenses, amount)
			report.TotalExpenses = report.TotalExpenses.Add(acc.Balance)
		}
	}
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)

	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.Expenses)),
		slog.String("net_income", report.NetIncome.String()))
	return report, nil
}

// CashFlow assembles the three-section statement from the configured source.
// The summation law lives here: section total = sum of its rows, net = sum of
// section totals, ending = beginning + net. Where the figures come from is
// the source's concern.
func (s *reportingService) CashFlow(ctx context.Context) (*domain.CashFlowStatement, error) {
	operating, investing, financing, beginningCash, err := s.cashFlowSource.GetCashFlowData(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve cash flow data")
		return nil, fmt.Errorf("failed to retrieve cash flow data: %w", err)
	}

	statement := &domain.CashFlowStatement{
		Operating:     sumSection("operating", operating),
		Investing:     sumSection("investing", investing),
		Financing:     sumSection("financing", financing),
		BeginningCash: beginningCash,
	}
	statement.NetCashFlow = statement.Operating.Total.
		Add(statement.Investing.Total).
		Add(statement.Financing.Total)
	statement.EndingCash = statement.BeginningCash.Add(statement.NetCashFlow)

	s.LogInfo(ctx, "Cash flow statement generated successfully",
		slog.String("net_cash_flow", statement.NetCashFlow.String()),
		slog.String("ending_cash", statement.EndingCash.String()))
	return statement, nil
}

func sumSection(name string, items []domain.CashFlowItem) domain.CashFlowSection {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	if items == nil {
		items = []domain.CashFlowItem{}
	}
	return domain.CashFlowSection{Name: name, Items: items, Total: total}
}
