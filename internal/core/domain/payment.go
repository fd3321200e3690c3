package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod indicates how an invoice payment was made.
type PaymentMethod string

const (
	PayCash         PaymentMethod = "CASH"
	PayBankTransfer PaymentMethod = "BANK_TRANSFER"
	PayCheck        PaymentMethod = "CHECK"
	PayCreditCard   PaymentMethod = "CREDIT_CARD"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PayCash, PayBankTransfer, PayCheck, PayCreditCard:
		return true
	}
	return false
}

// PaymentRecord is one immutable payment against a single invoice.
// Records are append-only: once recorded they are never mutated or deleted,
// and their insertion order is the display order of the payment history.
type PaymentRecord struct {
	PaymentID     string          `json:"paymentID"` // Primary Key (UUID)
	InvoiceID     string          `json:"invoiceID"`
	Amount        decimal.Decimal `json:"amount"` // > 0, <= invoice remaining at record time
	PaymentDate   time.Time       `json:"paymentDate"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Notes         string          `json:"notes"`
	AuditFields
}
