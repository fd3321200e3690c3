package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the persisted payment state of a purchase invoice.
// OVERDUE is deliberately absent: it is a display-derived state, see IsOverdue.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePartial   InvoiceStatus = "PARTIAL"
	InvoicePaid      InvoiceStatus = "PAID"      // Terminal
	InvoiceCancelled InvoiceStatus = "CANCELLED" // Terminal
)

// IsTerminal reports whether no further transition is accepted from s.
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoicePaid || s == InvoiceCancelled
}

// Invoice represents a supplier purchase invoice and its payment lifecycle.
// PaidAmount is derived strictly from the invoice's payment records;
// RemainingAmount is always TotalAmount - PaidAmount.
type Invoice struct {
	InvoiceID         string          `json:"invoiceID"`     // Primary Key (UUID)
	InvoiceNumber     string          `json:"invoiceNumber"` // Unique, sequential per year: INV-YYYY-NNN
	SupplierID        string          `json:"supplierID"`
	InvoiceDate       time.Time       `json:"invoiceDate"`
	DueDate           time.Time       `json:"dueDate"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	TaxAmount         decimal.Decimal `json:"taxAmount"`
	TotalAmount       decimal.Decimal `json:"totalAmount"` // Subtotal + TaxAmount
	PaidAmount        decimal.Decimal `json:"paidAmount"`
	RemainingAmount   decimal.Decimal `json:"remainingAmount"`
	Status            InvoiceStatus   `json:"status"`
	LastPaymentDate   *time.Time      `json:"lastPaymentDate,omitempty"`
	LastPaymentMethod PaymentMethod   `json:"lastPaymentMethod,omitempty"`
	Notes             string          `json:"notes"`
	AttachmentURL     string          `json:"attachmentURL,omitempty"` // Optional scanned-document reference
	AuditFields
}

// IsOverdue reports whether the invoice is unpaid past its due date as of the
// given time. Display/filtering concern only; it never mutates Status.
func (i Invoice) IsOverdue(asOf time.Time) bool {
	if i.Status != InvoicePending && i.Status != InvoicePartial {
		return false
	}
	return i.DueDate.Before(asOf)
}
