package domain_test

import (
	"testing"
	"time"

	"github.com/restolane/resto_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestInvoice_IsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	pastDue := now.AddDate(0, 0, -3)
	futureDue := now.AddDate(0, 0, 7)

	tests := []struct {
		name    string
		status  domain.InvoiceStatus
		dueDate time.Time
		want    bool
	}{
		{"pending past due", domain.InvoicePending, pastDue, true},
		{"partial past due", domain.InvoicePartial, pastDue, true},
		{"pending not yet due", domain.InvoicePending, futureDue, false},
		{"paid past due is not overdue", domain.InvoicePaid, pastDue, false},
		{"cancelled past due is not overdue", domain.InvoiceCancelled, pastDue, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := domain.Invoice{Status: tt.status, DueDate: tt.dueDate}
			assert.Equal(t, tt.want, inv.IsOverdue(now))
		})
	}
}

func TestInvoiceStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.InvoicePending.IsTerminal())
	assert.False(t, domain.InvoicePartial.IsTerminal())
	assert.True(t, domain.InvoicePaid.IsTerminal())
	assert.True(t, domain.InvoiceCancelled.IsTerminal())
}
