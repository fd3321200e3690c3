package services

import (
	"context"

	"github.com/restolane/resto_management_app/internal/core/domain"
)

// ReportingSvc derives financial reports from the current ledger state.
// All three are pure reads: they report, never repair.
type ReportingSvc interface {
	TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error)
	ProfitAndLoss(ctx context.Context) (*domain.PAndLReport, error)
	CashFlow(ctx context.Context) (*domain.CashFlowStatement, error)
}
