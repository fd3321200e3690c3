package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	EntryDraft    EntryStatus = "DRAFT"
	EntryApproved EntryStatus = "APPROVED"
	EntryPosted   EntryStatus = "POSTED" // Terminal
)

// ReferenceType identifies the business document a journal entry originates from.
type ReferenceType string

const (
	RefPurchase ReferenceType = "PURCHASE"
	RefInvoice  ReferenceType = "INVOICE"
	RefPayment  ReferenceType = "PAYMENT"
	RefSalary   ReferenceType = "SALARY"
	RefManual   ReferenceType = "MANUAL"
)

// IsValid reports whether r is a known reference type.
func (r ReferenceType) IsValid() bool {
	switch r {
	case RefPurchase, RefInvoice, RefPayment, RefSalary, RefManual:
		return true
	}
	return false
}

// JournalEntry represents a single, balanced financial event composed of two
// or more debit/credit lines. Entries start in DRAFT and move through
// APPROVED to POSTED; POSTED is terminal and is the point where line amounts
// are applied to account balances.
type JournalEntry struct {
	EntryID       string          `json:"entryID"`     // Primary Key (UUID)
	EntryNumber   string          `json:"entryNumber"` // Unique, sequential per year: JE-YYYY-NNN
	EntryDate     time.Time       `json:"entryDate"`
	Description   string          `json:"description"`
	ReferenceType ReferenceType   `json:"referenceType"`
	ReferenceID   string          `json:"referenceID"` // Optional link to the source document
	TotalAmount   decimal.Decimal `json:"totalAmount"` // Sum of the debit side (== credit side)
	Status        EntryStatus     `json:"status"`
	ApprovedBy    string          `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time      `json:"approvedAt,omitempty"`
	Lines         []JournalLine   `json:"lines,omitempty"`
	AuditFields
}

// JournalLine is a single row of a journal entry, affecting one account.
// Exactly one of Debit/Credit is positive; the other is zero.
type JournalLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`  // Zero if credit side
	Credit      decimal.Decimal `json:"credit"` // Zero if debit side
	Description string          `json:"description"`
	Account     *Account        `json:"account,omitempty"` // Denormalized snapshot for display
}

// IsDebit reports whether the line carries its amount on the debit side.
func (l JournalLine) IsDebit() bool {
	return l.Debit.IsPositive()
}

// Amount returns the positive amount of the line, whichever side it is on.
func (l JournalLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.Debit
	}
	return l.Credit
}

// Validate checks the single-line invariant: exactly one of debit/credit is
// positive, the other zero, and an account is referenced.
func (l JournalLine) Validate() error {
	if l.AccountID == "" {
		return fmt.Errorf("journal line must reference an account")
	}
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return fmt.Errorf("journal line amounts must not be negative")
	}
	if l.Debit.IsPositive() == l.Credit.IsPositive() {
		return fmt.Errorf("journal line must have a positive amount on exactly one of debit/credit")
	}
	return nil
}

// DebitTotal sums the debit side of the entry's lines.
func (e JournalEntry) DebitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// CreditTotal sums the credit side of the entry's lines.
func (e JournalEntry) CreditTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// IsBalanced reports whether the double-entry invariant holds. Exact decimal
// equality, no rounding tolerance.
func (e JournalEntry) IsBalanced() bool {
	return e.DebitTotal().Equal(e.CreditTotal())
}
