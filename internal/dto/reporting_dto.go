package dto

import (
	"github.com/restolane/resto_management_app/internal/core/domain"
)

// Reporting responses return the domain report shapes directly; the reports
// are already presentation-ready aggregates with no persistence identity.

// TrialBalanceResponse wraps the trial balance report.
type TrialBalanceResponse struct {
	Report domain.TrialBalanceReport `json:"report"`
}

// PAndLResponse wraps the profit and loss report.
type PAndLResponse struct {
	Report domain.PAndLReport `json:"report"`
}

// CashFlowResponse wraps the cash flow statement.
type CashFlowResponse struct {
	Report domain.CashFlowStatement `json:"report"`
}
