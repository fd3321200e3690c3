package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restolane/resto_management_app/internal/apperrors"
	"github.com/restolane/resto_management_app/internal/core/domain"
	portsrepo "github.com/restolane/resto_management_app/internal/core/ports/repositories"
	portssvc "github.com/restolane/resto_management_app/internal/core/ports/services"
	"github.com/restolane/resto_management_app/internal/dto"
)

var (
	ErrSupplierRequired  = errors.New("invoice supplier is required")
	ErrDatesRequired     = errors.New("invoice date and due date are required")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrOverPayment       = errors.New("payment exceeds remaining invoice amount")
	ErrInvalidTransition = errors.New("invoice status does not allow this transition")
)

// invoiceService provides the invoice payment lifecycle operations.
//
// Cancelling a partially paid invoice keeps its payment history and
// PaidAmount untouched; there is no refund/reversal record yet, so CANCELLED
// means "no further payments expected", not "fully reconciled". Pending a
// product decision on the refund workflow.
type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepository
	supplierRepo portsrepo.SupplierReader
	// journalRecorder, when configured, is told about each successful
	// payment so it can become a PAYMENT journal entry. Optional.
	journalRecorder portssvc.PaymentJournalRecorder
}

// InvoiceServiceOption is a functional option for configuring the invoice service.
type InvoiceServiceOption func(*invoiceService)

// WithPaymentJournalRecorder wires the ledger bridge for recorded payments.
func WithPaymentJournalRecorder(recorder portssvc.PaymentJournalRecorder) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.journalRecorder = recorder
	}
}

// NewInvoiceService creates a new InvoiceSvc.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository, supplierRepo portsrepo.SupplierReader, options ...InvoiceServiceOption) portssvc.InvoiceSvc {
	svc := &invoiceService{
		invoiceRepo:  invoiceRepo,
		supplierRepo: supplierRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure invoiceService implements the portssvc.InvoiceSvc interface
var _ portssvc.InvoiceSvc = (*invoiceService)(nil)

// CreateInvoice registers a new purchase invoice in PENDING status.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if req.SupplierID == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrSupplierRequired)
	}
	if req.InvoiceDate.IsZero() || req.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrDatesRequired)
	}
	if !req.Subtotal.IsPositive() {
		return nil, fmt.Errorf("%w: %s: subtotal %s", apperrors.ErrValidation, ErrInvalidAmount, req.Subtotal)
	}
	if req.TaxAmount.IsNegative() {
		return nil, fmt.Errorf("%w: tax amount must not be negative: %s", apperrors.ErrValidation, req.TaxAmount)
	}

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, req.SupplierID)
		}
		s.LogError(ctx, err, "Failed to look up supplier", slog.String("supplier_id", req.SupplierID))
		return nil, fmt.Errorf("failed to look up supplier: %w", err)
	}

	year := req.InvoiceDate.Year()
	seq, err := s.invoiceRepo.NextInvoiceNumber(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate invoice number", slog.Int("year", year))
		return nil, fmt.Errorf("failed to allocate invoice number: %w", err)
	}

	now := time.Now().UTC()
	total := req.Subtotal.Add(req.TaxAmount)
	invoice := domain.Invoice{
		InvoiceID:       uuid.NewString(),
		InvoiceNumber:   fmt.Sprintf("INV-%d-%03d", year, seq),
		SupplierID:      supplier.SupplierID,
		InvoiceDate:     req.InvoiceDate,
		DueDate:         req.DueDate,
		Subtotal:        req.Subtotal,
		TaxAmount:       req.TaxAmount,
		TotalAmount:     total,
		PaidAmount:      decimal.Zero,
		RemainingAmount: total,
		Status:          domain.InvoicePending,
		Notes:           req.Notes,
		AttachmentURL:   req.AttachmentURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created successfully",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("total_amount", invoice.TotalAmount.String()))
	return &invoice, nil
}

// GetInvoiceByID retrieves a specific invoice.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice by ID", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

// ListInvoices retrieves invoices matching the given filters. The OVERDUE
// status filter is derived against the current clock, not a stored state.
func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error) {
	filter := portsrepo.ListInvoicesFilter{
		SupplierID: params.SupplierID,
		From:       params.From,
		To:         params.To,
		Search:     params.Search,
		AsOf:       time.Now().UTC(),
	}
	if params.Status != "" {
		if params.Status == "OVERDUE" {
			filter.OverdueOnly = true
		} else {
			status := domain.InvoiceStatus(params.Status)
			filter.Status = &status
		}
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	s.LogDebug(ctx, "Invoices listed successfully", slog.Int("count", len(invoices)))
	return invoices, nil
}

// RecordPayment appends an immutable payment record to the invoice and moves
// its status along the payment state machine. All-or-nothing: a rejected
// payment leaves the invoice untouched.
func (s *invoiceService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest) (*domain.Invoice, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, ErrInvalidAmount, req.Amount)
	}
	if !req.PaymentMethod.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %s", apperrors.ErrValidation, req.PaymentMethod)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice for payment", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	if invoice.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: %s: invoice %s is %s",
			apperrors.ErrConflict, ErrInvalidTransition, invoice.InvoiceNumber, invoice.Status)
	}
	if req.Amount.GreaterThan(invoice.RemainingAmount) {
		return nil, fmt.Errorf("%w: %s: amount %s exceeds remaining %s",
			apperrors.ErrValidation, ErrOverPayment, req.Amount, invoice.RemainingAmount)
	}

	now := time.Now().UTC()
	payment := domain.PaymentRecord{
		PaymentID:     uuid.NewString(),
		InvoiceID:     invoice.InvoiceID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.RecordedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.RecordedBy,
		},
	}

	// Recompute the derived amounts; RemainingAmount always follows from
	// TotalAmount and the payment sum, it is never adjusted independently.
	invoice.PaidAmount = invoice.PaidAmount.Add(req.Amount)
	invoice.RemainingAmount = invoice.TotalAmount.Sub(invoice.PaidAmount)
	switch {
	case invoice.RemainingAmount.LessThanOrEqual(decimal.Zero):
		invoice.Status = domain.InvoicePaid
	case invoice.PaidAmount.IsPositive():
		invoice.Status = domain.InvoicePartial
	}
	invoice.LastPaymentDate = &req.PaymentDate
	invoice.LastPaymentMethod = req.PaymentMethod
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = req.RecordedBy

	if err := s.invoiceRepo.AddPayment(ctx, *invoice, payment); err != nil {
		s.LogError(ctx, err, "Failed to record payment",
			slog.String("invoice_id", invoiceID),
			slog.String("amount", req.Amount.String()))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.LogInfo(ctx, "Payment recorded successfully",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", payment.Amount.String()),
		slog.String("new_status", string(invoice.Status)))

	if s.journalRecorder != nil {
		if err := s.journalRecorder.RecordPaymentJournal(ctx, *invoice, payment); err != nil {
			// The payment itself is committed; the ledger bridge failing is
			// reported but does not undo the aggregate.
			s.LogError(ctx, err, "Payment journal recorder failed",
				slog.String("invoice_id", invoice.InvoiceID),
				slog.String("payment_id", payment.PaymentID))
		}
	}

	return invoice, nil
}

// ListPayments returns the invoice's payment history in insertion order.
func (s *invoiceService) ListPayments(ctx context.Context, invoiceID string) ([]domain.PaymentRecord, error) {
	// Verify the invoice exists so an unknown ID is NotFound, not an empty list
	if _, err := s.GetInvoiceByID(ctx, invoiceID); err != nil {
		return nil, err
	}

	payments, err := s.invoiceRepo.ListPayments(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	if payments == nil {
		return []domain.PaymentRecord{}, nil
	}
	return payments, nil
}

// CancelInvoice marks a PENDING or PARTIAL invoice as CANCELLED (terminal).
// Payments already recorded are kept as-is.
func (s *invoiceService) CancelInvoice(ctx context.Context, invoiceID string, cancelledBy string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice for cancellation", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	if invoice.Status != domain.InvoicePending && invoice.Status != domain.InvoicePartial {
		return nil, fmt.Errorf("%w: %s: invoice %s is %s",
			apperrors.ErrConflict, ErrInvalidTransition, invoice.InvoiceNumber, invoice.Status)
	}

	now := time.Now().UTC()
	invoice.Status = domain.InvoiceCancelled
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = cancelledBy

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to cancel invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to cancel invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice cancelled",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("paid_amount", invoice.PaidAmount.String()))
	return invoice, nil
}
