package services

import (
	"context"

	"github.com/restolane/resto_management_app/internal/core/domain"
	"github.com/restolane/resto_management_app/internal/dto"
)

// InvoiceSvc is the invoice payment lifecycle surface exposed to callers.
type InvoiceSvc interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error)
	RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest) (*domain.Invoice, error)
	ListPayments(ctx context.Context, invoiceID string) ([]domain.PaymentRecord, error)
	CancelInvoice(ctx context.Context, invoiceID string, cancelledBy string) (*domain.Invoice, error)
}

// PaymentJournalRecorder is the bridge from the invoice engine to the ledger:
// a recorded payment would become a posted journal entry of reference type
// PAYMENT. The invoice service announces each successful payment to the
// configured recorder after the aggregate is committed; no recorder is wired
// by default and the invoice engine never depends on the ledger directly.
type PaymentJournalRecorder interface {
	RecordPaymentJournal(ctx context.Context, invoice domain.Invoice, payment domain.PaymentRecord) error
}

// SupplierSvc exposes the supplier lookup directory.
type SupplierSvc interface {
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
}
