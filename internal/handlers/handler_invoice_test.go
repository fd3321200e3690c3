package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/restolane/resto_management_app/internal/apperrors"
	"github.com/restolane/resto_management_app/internal/core/domain"
	portssvc "github.com/restolane/resto_management_app/internal/core/ports/services"
	"github.com/restolane/resto_management_app/internal/dto"
	"github.com/restolane/resto_management_app/internal/handlers"
	"github.com/restolane/resto_management_app/pkg/config"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListPayments(ctx context.Context, invoiceID string) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

func (m *MockInvoiceService) CancelInvoice(ctx context.Context, invoiceID string, cancelledBy string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, cancelledBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.InvoiceSvc = (*MockInvoiceService)(nil)

// --- Test Suite Setup ---

type InvoiceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockInvoiceService *MockInvoiceService
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockInvoiceService = new(MockInvoiceService)

	// Only the invoice routes are exercised here, the other services stay nil.
	// IsProduction skips the swagger routes.
	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{Invoice: suite.mockInvoiceService}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func sampleInvoice(status domain.InvoiceStatus, paid, remaining int64) *domain.Invoice {
	total := paid + remaining
	return &domain.Invoice{
		InvoiceID:       uuid.NewString(),
		InvoiceNumber:   "INV-2024-003",
		SupplierID:      uuid.NewString(),
		InvoiceDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:         time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Subtotal:        decimal.NewFromInt(total),
		TotalAmount:     decimal.NewFromInt(total),
		PaidAmount:      decimal.NewFromInt(paid),
		RemainingAmount: decimal.NewFromInt(remaining),
		Status:          status,
	}
}

// --- Test Cases ---

func (suite *InvoiceHandlerTestSuite) TestRecordPayment_Success() {
	stored := sampleInvoice(domain.InvoicePartial, 500, 650)

	suite.mockInvoiceService.On("RecordPayment",
		mock.Anything,
		stored.InvoiceID,
		mock.MatchedBy(func(req dto.RecordPaymentRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(500)) && req.PaymentMethod == domain.PayBankTransfer
		}),
	).Return(stored, nil).Once()

	body, _ := json.Marshal(gin.H{
		"amount":        500,
		"paymentDate":   "2024-03-10T00:00:00Z",
		"paymentMethod": "BANK_TRANSFER",
		"recordedBy":    "treasury",
	})
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/invoices/%s/payments", stored.InvoiceID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.InvoiceResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.Require().NoError(err)
	suite.Equal(stored.InvoiceID, responseBody.InvoiceID)
	suite.Equal(domain.InvoicePartial, responseBody.Status)
	suite.True(responseBody.RemainingAmount.Equal(decimal.NewFromInt(650)))

	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestRecordPayment_Overpayment() {
	invoiceID := uuid.NewString()

	suite.mockInvoiceService.On("RecordPayment", mock.Anything, invoiceID, mock.AnythingOfType("dto.RecordPaymentRequest")).
		Return(nil, fmt.Errorf("%w: amount exceeds remaining", apperrors.ErrValidation)).Once()

	body, _ := json.Marshal(gin.H{
		"amount":        9999,
		"paymentDate":   "2024-03-10T00:00:00Z",
		"paymentMethod": "CASH",
		"recordedBy":    "treasury",
	})
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/invoices/%s/payments", invoiceID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestRecordPayment_TerminalInvoiceConflict() {
	invoiceID := uuid.NewString()

	suite.mockInvoiceService.On("RecordPayment", mock.Anything, invoiceID, mock.AnythingOfType("dto.RecordPaymentRequest")).
		Return(nil, fmt.Errorf("%w: invoice is CANCELLED", apperrors.ErrConflict)).Once()

	body, _ := json.Marshal(gin.H{
		"amount":        100,
		"paymentDate":   "2024-03-10T00:00:00Z",
		"paymentMethod": "CASH",
		"recordedBy":    "treasury",
	})
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/invoices/%s/payments", invoiceID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestRecordPayment_InvalidBody() {
	invoiceID := uuid.NewString()

	// paymentMethod outside the allowed set is rejected by binding
	body, _ := json.Marshal(gin.H{
		"amount":        100,
		"paymentDate":   "2024-03-10T00:00:00Z",
		"paymentMethod": "BARTER",
		"recordedBy":    "treasury",
	})
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/invoices/%s/payments", invoiceID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_NotFound() {
	invoiceID := uuid.NewString()

	suite.mockInvoiceService.On("GetInvoiceByID", mock.Anything, invoiceID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCancelInvoice_Success() {
	stored := sampleInvoice(domain.InvoiceCancelled, 0, 1150)

	suite.mockInvoiceService.On("CancelInvoice", mock.Anything, stored.InvoiceID, "manager").
		Return(stored, nil).Once()

	body, _ := json.Marshal(gin.H{"cancelledBy": "manager"})
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/invoices/%s/cancel", stored.InvoiceID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.InvoiceResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceCancelled, responseBody.Status)

	suite.mockInvoiceService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestInvoiceHandler(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
