package repositories

import (
	"context"
	"time"

	"github.com/restolane/resto_management_app/internal/core/domain"
)

// ListInvoicesFilter narrows an invoice listing. Nil/zero fields match all.
// Overdue is resolved against AsOf, since OVERDUE is not a persisted status.
type ListInvoicesFilter struct {
	Status      *domain.InvoiceStatus
	OverdueOnly bool
	AsOf        time.Time
	From        *time.Time
	To          *time.Time
	SupplierID  string
	Search      string // Case-insensitive match over invoice number and notes
}

// InvoiceRepository defines the persistence operations for invoices and their
// payment history.
type InvoiceRepository interface {
	// NextInvoiceNumber returns the next value of the per-year invoice
	// sequence, incremented atomically by the repository.
	NextInvoiceNumber(ctx context.Context, year int) (int, error)
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, filter ListInvoicesFilter) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
	// AddPayment persists the updated invoice and appends the payment record
	// in one atomic step, so the totals law can never be observed broken.
	AddPayment(ctx context.Context, invoice domain.Invoice, payment domain.PaymentRecord) error
	// ListPayments returns the invoice's payment history in insertion order.
	ListPayments(ctx context.Context, invoiceID string) ([]domain.PaymentRecord, error)
}
