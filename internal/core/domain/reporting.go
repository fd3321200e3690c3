package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report.
// Every account contributes to exactly one of Debit/Credit based solely on
// its type: ASSET/EXPENSE balances land in the debit column, the rest in the
// credit column.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every account's balance split into debit/credit
// columns. The report only states what the ledger holds; it never repairs an
// unbalanced ledger, callers compare the totals themselves.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// AccountAmount represents an account with its net amount for financial reports.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// PAndLReport represents a profit and loss report.
type PAndLReport struct {
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"` // TotalRevenue - TotalExpenses
}

// CashFlowItem is one named row of a cash flow section.
type CashFlowItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// CashFlowSection is one of the three statement sections; Total is always the
// sum of Items.
type CashFlowSection struct {
	Name  string          `json:"name"` // operating, investing, financing
	Items []CashFlowItem  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// CashFlowStatement is the three-section cash flow report:
// NetCashFlow = sum of section totals, EndingCash = BeginningCash + NetCashFlow.
type CashFlowStatement struct {
	Operating     CashFlowSection `json:"operating"`
	Investing     CashFlowSection `json:"investing"`
	Financing     CashFlowSection `json:"financing"`
	BeginningCash decimal.Decimal `json:"beginningCash"`
	NetCashFlow   decimal.Decimal `json:"netCashFlow"`
	EndingCash    decimal.Decimal `json:"endingCash"`
}
