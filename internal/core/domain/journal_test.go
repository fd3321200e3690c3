package domain_test

import (
	"testing"

	"github.com/restolane/resto_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalLine_Validate(t *testing.T) {
	tests := []struct {
		name    string
		line    domain.JournalLine
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid debit line",
			line: domain.JournalLine{
				AccountID: "acc_1",
				Debit:     decimal.NewFromInt(5000),
			},
			wantErr: false,
		},
		{
			name: "valid credit line",
			line: domain.JournalLine{
				AccountID: "acc_2",
				Credit:    decimal.NewFromInt(5000),
			},
			wantErr: false,
		},
		{
			name: "missing account",
			line: domain.JournalLine{
				Debit: decimal.NewFromInt(100),
			},
			wantErr: true,
			errMsg:  "must reference an account",
		},
		{
			name: "both sides set",
			line: domain.JournalLine{
				AccountID: "acc_1",
				Debit:     decimal.NewFromInt(100),
				Credit:    decimal.NewFromInt(100),
			},
			wantErr: true,
			errMsg:  "exactly one of debit/credit",
		},
		{
			name: "neither side set",
			line: domain.JournalLine{
				AccountID: "acc_1",
			},
			wantErr: true,
			errMsg:  "exactly one of debit/credit",
		},
		{
			name: "negative amount",
			line: domain.JournalLine{
				AccountID: "acc_1",
				Debit:     decimal.NewFromInt(-100),
			},
			wantErr: true,
			errMsg:  "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.line.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJournalEntry_IsBalanced(t *testing.T) {
	tests := []struct {
		name  string
		lines []domain.JournalLine
		want  bool
	}{
		{
			name: "balanced two-line entry",
			lines: []domain.JournalLine{
				{AccountID: "acc_1", Debit: decimal.NewFromInt(5000)},
				{AccountID: "acc_2", Credit: decimal.NewFromInt(5000)},
			},
			want: true,
		},
		{
			name: "unbalanced entry",
			lines: []domain.JournalLine{
				{AccountID: "acc_1", Debit: decimal.NewFromInt(5000)},
				{AccountID: "acc_2", Credit: decimal.NewFromInt(4000)},
			},
			want: false,
		},
		{
			name: "balanced split credit",
			lines: []domain.JournalLine{
				{AccountID: "acc_1", Debit: decimal.NewFromFloat(1725.50)},
				{AccountID: "acc_2", Credit: decimal.NewFromFloat(1500)},
				{AccountID: "acc_3", Credit: decimal.NewFromFloat(225.50)},
			},
			want: true,
		},
		{
			name: "off by a cent is not balanced",
			lines: []domain.JournalLine{
				{AccountID: "acc_1", Debit: decimal.NewFromFloat(100.00)},
				{AccountID: "acc_2", Credit: decimal.NewFromFloat(99.99)},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := domain.JournalEntry{Lines: tt.lines}
			assert.Equal(t, tt.want, entry.IsBalanced())
		})
	}
}

func TestJournalLine_Amount(t *testing.T) {
	debit := domain.JournalLine{AccountID: "acc_1", Debit: decimal.NewFromInt(300)}
	credit := domain.JournalLine{AccountID: "acc_2", Credit: decimal.NewFromInt(300)}

	assert.True(t, debit.IsDebit())
	assert.False(t, credit.IsDebit())
	assert.True(t, debit.Amount().Equal(decimal.NewFromInt(300)))
	assert.True(t, credit.Amount().Equal(decimal.NewFromInt(300)))
}
