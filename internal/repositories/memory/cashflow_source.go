package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/restolane/resto_management_app/internal/core/domain"
	portsrepo "github.com/restolane/resto_management_app/internal/core/ports/repositories"
)

// StaticCashFlowSource serves a fixed set of cash flow line items. It stands
// in for the treasury feed that would supply real figures; the reporting
// service only relies on it listing the rows of each section.
type StaticCashFlowSource struct {
	Operating     []domain.CashFlowItem
	Investing     []domain.CashFlowItem
	Financing     []domain.CashFlowItem
	BeginningCash decimal.Decimal
}

// NewStaticCashFlowSource creates a source with the restaurant's seed figures.
func NewStaticCashFlowSource() *StaticCashFlowSource {
	return &StaticCashFlowSource{
		Operating: []domain.CashFlowItem{
			{Name: "المقبوضات من المبيعات", Amount: decimal.NewFromInt(185000)},
			{Name: "مدفوعات للموردين", Amount: decimal.NewFromInt(-95000)},
			{Name: "رواتب وأجور", Amount: decimal.NewFromInt(-42000)},
			{Name: "مصاريف تشغيلية أخرى", Amount: decimal.NewFromInt(-18500)},
		},
		Investing: []domain.CashFlowItem{
			{Name: "شراء معدات مطبخ", Amount: decimal.NewFromInt(-25000)},
			{Name: "بيع أصول مستعملة", Amount: decimal.NewFromInt(6000)},
		},
		Financing: []domain.CashFlowItem{
			{Name: "سداد قرض", Amount: decimal.NewFromInt(-10000)},
			{Name: "مساهمة المالك", Amount: decimal.NewFromInt(20000)},
		},
		BeginningCash: decimal.NewFromInt(45000),
	}
}

// Ensure StaticCashFlowSource implements portsrepo.CashFlowSource
var _ portsrepo.CashFlowSource = (*StaticCashFlowSource)(nil)

func (s *StaticCashFlowSource) GetCashFlowData(_ context.Context) (operating, investing, financing []domain.CashFlowItem, beginningCash decimal.Decimal, err error) {
	return s.Operating, s.Investing, s.Financing, s.BeginningCash, nil
}
