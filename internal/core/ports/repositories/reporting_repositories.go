package repositories

import (
	"context"

	"github.com/restolane/resto_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashFlowSource supplies the raw line items of the cash flow statement.
// The reporting service owns the summation law (section total = sum of rows,
// net = sum of totals, ending = beginning + net); where the figures come from
// is this collaborator's concern.
type CashFlowSource interface {
	GetCashFlowData(ctx context.Context) (operating, investing, financing []domain.CashFlowItem, beginningCash decimal.Decimal, err error)
}
