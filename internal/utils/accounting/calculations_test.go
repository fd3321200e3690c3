package accounting_test

import (
	"testing"

	"github.com/restolane/resto_management_app/internal/core/domain"
	"github.com/restolane/resto_management_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedLineAmount(t *testing.T) {
	amount := decimal.NewFromInt(500)

	tests := []struct {
		name        string
		line        domain.JournalLine
		accountType domain.AccountType
		want        decimal.Decimal
	}{
		{"debit to asset increases", domain.JournalLine{AccountID: "a", Debit: amount}, domain.Asset, amount},
		{"credit to asset decreases", domain.JournalLine{AccountID: "a", Credit: amount}, domain.Asset, amount.Neg()},
		{"debit to expense increases", domain.JournalLine{AccountID: "a", Debit: amount}, domain.Expense, amount},
		{"credit to liability increases", domain.JournalLine{AccountID: "a", Credit: amount}, domain.Liability, amount},
		{"debit to liability decreases", domain.JournalLine{AccountID: "a", Debit: amount}, domain.Liability, amount.Neg()},
		{"credit to revenue increases", domain.JournalLine{AccountID: "a", Credit: amount}, domain.Revenue, amount},
		{"debit to equity decreases", domain.JournalLine{AccountID: "a", Debit: amount}, domain.Equity, amount.Neg()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.SignedLineAmount(tt.line, tt.accountType)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestSignedLineAmount_UnknownType(t *testing.T) {
	_, err := accounting.SignedLineAmount(domain.JournalLine{AccountID: "a", Debit: decimal.NewFromInt(1)}, domain.AccountType("BOGUS"))
	assert.Error(t, err)
}

func TestBalanceChanges(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "inventory", Debit: decimal.NewFromInt(5000)},
		{AccountID: "payables", Credit: decimal.NewFromInt(5000)},
	}
	types := map[string]domain.AccountType{
		"inventory": domain.Asset,
		"payables":  domain.Liability,
	}

	changes, err := accounting.BalanceChanges(lines, types)
	require.NoError(t, err)
	assert.True(t, changes["inventory"].Equal(decimal.NewFromInt(5000)))
	assert.True(t, changes["payables"].Equal(decimal.NewFromInt(5000)))
}

func TestBalanceChanges_MissingAccountType(t *testing.T) {
	lines := []domain.JournalLine{{AccountID: "ghost", Debit: decimal.NewFromInt(10)}}
	_, err := accounting.BalanceChanges(lines, map[string]domain.AccountType{})
	assert.Error(t, err)
}
