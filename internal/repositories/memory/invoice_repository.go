package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/restolane/resto_management_app/internal/apperrors"
	"github.com/restolane/resto_management_app/internal/core/domain"
	portsrepo "github.com/restolane/resto_management_app/internal/core/ports/repositories"
)

// InvoiceRepository stores invoices, their append-only payment histories and
// the per-year invoice number sequence.
type InvoiceRepository struct {
	mu       sync.RWMutex
	byID     map[string]domain.Invoice
	order    []string                          // insertion order of invoice IDs
	payments map[string][]domain.PaymentRecord // invoiceID -> payment history, insertion order
	sequence map[int]int64                     // year -> last allocated sequence value
}

// NewInvoiceRepository creates an empty in-memory invoice store.
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{
		byID:     make(map[string]domain.Invoice),
		payments: make(map[string][]domain.PaymentRecord),
		sequence: make(map[int]int64),
	}
}

// Ensure InvoiceRepository implements portsrepo.InvoiceRepository
var _ portsrepo.InvoiceRepository = (*InvoiceRepository)(nil)

// NextInvoiceNumber allocates the next per-year sequence value under the
// aggregate lock.
func (r *InvoiceRepository) NextInvoiceNumber(_ context.Context, year int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sequence[year]++
	return int(r.sequence[year]), nil
}

func (r *InvoiceRepository) SaveInvoice(_ context.Context, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[invoice.InvoiceID]; exists {
		return fmt.Errorf("%w: invoice ID %s", apperrors.ErrDuplicate, invoice.InvoiceID)
	}
	r.byID[invoice.InvoiceID] = invoice
	r.order = append(r.order, invoice.InvoiceID)
	return nil
}

func (r *InvoiceRepository) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	invoice, ok := r.byID[invoiceID]
	if !ok {
		return nil, fmt.Errorf("%w: invoice ID %s", apperrors.ErrNotFound, invoiceID)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) ListInvoices(_ context.Context, filter portsrepo.ListInvoicesFilter) ([]domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	invoices := make([]domain.Invoice, 0, len(r.order))
	for _, id := range r.order {
		invoice := r.byID[id]
		if filter.Status != nil && invoice.Status != *filter.Status {
			continue
		}
		if filter.OverdueOnly && !invoice.IsOverdue(filter.AsOf) {
			continue
		}
		if filter.SupplierID != "" && invoice.SupplierID != filter.SupplierID {
			continue
		}
		if filter.From != nil && invoice.InvoiceDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && invoice.InvoiceDate.After(*filter.To) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(invoice.InvoiceNumber), search) &&
			!strings.Contains(strings.ToLower(invoice.Notes), search) {
			continue
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}

func (r *InvoiceRepository) UpdateInvoice(_ context.Context, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[invoice.InvoiceID]; !ok {
		return fmt.Errorf("%w: invoice ID %s", apperrors.ErrNotFound, invoice.InvoiceID)
	}
	r.byID[invoice.InvoiceID] = invoice
	return nil
}

// AddPayment stores the updated invoice and appends the payment record under
// one lock acquisition, so no reader can see the invoice and its payment
// history disagree.
func (r *InvoiceRepository) AddPayment(_ context.Context, invoice domain.Invoice, payment domain.PaymentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[invoice.InvoiceID]; !ok {
		return fmt.Errorf("%w: invoice ID %s", apperrors.ErrNotFound, invoice.InvoiceID)
	}
	if payment.InvoiceID != invoice.InvoiceID {
		return fmt.Errorf("%w: payment belongs to invoice %s, not %s", apperrors.ErrValidation, payment.InvoiceID, invoice.InvoiceID)
	}
	r.byID[invoice.InvoiceID] = invoice
	r.payments[invoice.InvoiceID] = append(r.payments[invoice.InvoiceID], payment)
	return nil
}

func (r *InvoiceRepository) ListPayments(_ context.Context, invoiceID string) ([]domain.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.byID[invoiceID]; !ok {
		return nil, fmt.Errorf("%w: invoice ID %s", apperrors.ErrNotFound, invoiceID)
	}
	history := r.payments[invoiceID]
	payments := make([]domain.PaymentRecord, len(history))
	copy(payments, history)
	return payments, nil
}
