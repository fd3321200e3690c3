package dto

import (
	"time"

	"github.com/restolane/resto_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to register a purchase invoice.
type CreateInvoiceRequest struct {
	SupplierID    string          `json:"supplierID" binding:"required"`
	InvoiceDate   time.Time       `json:"invoiceDate" binding:"required" time_format:"2006-01-02"`
	DueDate       time.Time       `json:"dueDate" binding:"required" time_format:"2006-01-02"`
	Subtotal      decimal.Decimal `json:"subtotal" binding:"required"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Notes         string          `json:"notes"`
	AttachmentURL string          `json:"attachmentURL"`
	CreatedBy     string          `json:"createdBy" binding:"required"`
}

// RecordPaymentRequest defines the data needed to record a payment against an invoice.
type RecordPaymentRequest struct {
	Amount        decimal.Decimal      `json:"amount" binding:"required"`
	PaymentDate   time.Time            `json:"paymentDate" binding:"required" time_format:"2006-01-02"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH BANK_TRANSFER CHECK CREDIT_CARD"`
	Notes         string               `json:"notes"`
	RecordedBy    string               `json:"recordedBy" binding:"required"`
}

// CancelInvoiceRequest carries the operator cancelling the invoice.
type CancelInvoiceRequest struct {
	CancelledBy string `json:"cancelledBy" binding:"required"`
}

// ListInvoicesParams defines query parameters for listing invoices.
// status accepts the persisted statuses plus the derived OVERDUE filter.
type ListInvoicesParams struct {
	Status     string     `form:"status"`
	SupplierID string     `form:"supplierID"`
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
	Search     string     `form:"search"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID         string               `json:"invoiceID"`
	InvoiceNumber     string               `json:"invoiceNumber"`
	SupplierID        string               `json:"supplierID"`
	InvoiceDate       time.Time            `json:"invoiceDate"`
	DueDate           time.Time            `json:"dueDate"`
	Subtotal          decimal.Decimal      `json:"subtotal"`
	TaxAmount         decimal.Decimal      `json:"taxAmount"`
	TotalAmount       decimal.Decimal      `json:"totalAmount"`
	PaidAmount        decimal.Decimal      `json:"paidAmount"`
	RemainingAmount   decimal.Decimal      `json:"remainingAmount"`
	Status            domain.InvoiceStatus `json:"status"`
	IsOverdue         bool                 `json:"isOverdue"`
	LastPaymentDate   *time.Time           `json:"lastPaymentDate,omitempty"`
	LastPaymentMethod domain.PaymentMethod `json:"lastPaymentMethod,omitempty"`
	Notes             string               `json:"notes"`
	AttachmentURL     string               `json:"attachmentURL,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	CreatedBy         string               `json:"createdBy"`
}

// PaymentResponse defines the data returned for a payment record.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentID"`
	InvoiceID     string               `json:"invoiceID"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentDate   time.Time            `json:"paymentDate"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Notes         string               `json:"notes"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
}

// ListInvoicesResponse wraps the list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ListPaymentsResponse wraps an invoice's payment history.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
// asOf anchors the derived overdue flag.
func ToInvoiceResponse(inv *domain.Invoice, asOf time.Time) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:         inv.InvoiceID,
		InvoiceNumber:     inv.InvoiceNumber,
		SupplierID:        inv.SupplierID,
		InvoiceDate:       inv.InvoiceDate,
		DueDate:           inv.DueDate,
		Subtotal:          inv.Subtotal,
		TaxAmount:         inv.TaxAmount,
		TotalAmount:       inv.TotalAmount,
		PaidAmount:        inv.PaidAmount,
		RemainingAmount:   inv.RemainingAmount,
		Status:            inv.Status,
		IsOverdue:         inv.IsOverdue(asOf),
		LastPaymentDate:   inv.LastPaymentDate,
		LastPaymentMethod: inv.LastPaymentMethod,
		Notes:             inv.Notes,
		AttachmentURL:     inv.AttachmentURL,
		CreatedAt:         inv.CreatedAt,
		CreatedBy:         inv.CreatedBy,
	}
}

// ToPaymentResponse converts a domain.PaymentRecord to PaymentResponse DTO.
func ToPaymentResponse(p *domain.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		InvoiceID:     p.InvoiceID,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
		PaymentMethod: p.PaymentMethod,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
}

// ToListInvoicesResponse converts a slice of domain.Invoice to the list DTO.
func ToListInvoicesResponse(invoices []domain.Invoice, asOf time.Time) ListInvoicesResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i], asOf)
	}
	return ListInvoicesResponse{Invoices: res}
}

// ToListPaymentsResponse converts a slice of domain.PaymentRecord to the list DTO.
func ToListPaymentsResponse(payments []domain.PaymentRecord) ListPaymentsResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return ListPaymentsResponse{Payments: res}
}
