package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restolane/resto_management_app/internal/core/domain"
)

const seedActor = "system"

// SeedChartOfAccounts loads the restaurant's starting chart of accounts into
// the given repository. Codes follow the usual grouping: 1xxx assets, 2xxx
// liabilities, 3xxx equity, 4xxx revenue, 5xxx expenses.
func SeedChartOfAccounts(ctx context.Context, repo *AccountRepository) error {
	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     seedActor,
		LastUpdatedAt: now,
		LastUpdatedBy: seedActor,
	}

	type seedAccount struct {
		code    string
		name    string
		accType domain.AccountType
		balance int64
	}

	accounts := []seedAccount{
		{"1000", "النقدية", domain.Asset, 45000},
		{"1100", "البنك", domain.Asset, 120000},
		{"1200", "المخزون", domain.Asset, 35000},
		{"1300", "معدات المطبخ", domain.Asset, 80000},
		{"2000", "الموردون", domain.Liability, 28000},
		{"2100", "قروض قصيرة الأجل", domain.Liability, 40000},
		{"3000", "رأس المال", domain.Equity, 150000},
		{"4000", "إيرادات المبيعات", domain.Revenue, 0},
		{"4100", "إيرادات التوصيل", domain.Revenue, 0},
		{"5000", "تكلفة المواد الغذائية", domain.Expense, 0},
		{"5100", "رواتب وأجور", domain.Expense, 0},
		{"5200", "إيجار", domain.Expense, 0},
		{"5300", "كهرباء ومياه", domain.Expense, 0},
	}

	for _, a := range accounts {
		account := domain.Account{
			AccountID:   uuid.NewString(),
			Code:        a.code,
			Name:        a.name,
			AccountType: a.accType,
			Balance:     decimal.NewFromInt(a.balance),
			IsActive:    true,
			AuditFields: audit,
		}
		if err := repo.SaveAccount(ctx, account); err != nil {
			return err
		}
	}
	return nil
}

// SeedSuppliers returns the starting supplier directory.
func SeedSuppliers() []domain.Supplier {
	return []domain.Supplier{
		{SupplierID: uuid.NewString(), Name: "شركة الخليج للمواد الغذائية", Phone: "+966500000001", Email: "orders@gulf-foods.example", IsActive: true},
		{SupplierID: uuid.NewString(), Name: "مزارع الوادي للخضار", Phone: "+966500000002", Email: "sales@wadi-farms.example", IsActive: true},
		{SupplierID: uuid.NewString(), Name: "مؤسسة النور للتغليف", Phone: "+966500000003", Email: "info@alnoor-pack.example", IsActive: true},
		{SupplierID: uuid.NewString(), Name: "مخابز الصباح", Phone: "+966500000004", Email: "contact@sabah-bakery.example", IsActive: false},
	}
}
