package dto

import (
	"time"

	"github.com/restolane/resto_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryLineRequest is one debit/credit row of a new journal entry.
// Exactly one of Debit/Credit must be positive.
type CreateEntryLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// CreateEntryRequest defines the data needed to create a journal entry.
type CreateEntryRequest struct {
	Date          time.Time                `json:"date" binding:"required" time_format:"2006-01-02"`
	Description   string                   `json:"description" binding:"required"`
	ReferenceType domain.ReferenceType     `json:"referenceType" binding:"required,oneof=PURCHASE INVOICE PAYMENT SALARY MANUAL"`
	ReferenceID   string                   `json:"referenceID"`
	Lines         []CreateEntryLineRequest `json:"lines" binding:"required"`
	CreatedBy     string                   `json:"createdBy" binding:"required"`
}

// ApproveEntryRequest carries the approver for a DRAFT -> APPROVED transition.
type ApproveEntryRequest struct {
	ApprovedBy string `json:"approvedBy" binding:"required"`
}

// PostEntryRequest carries the operator for an APPROVED -> POSTED transition.
type PostEntryRequest struct {
	PostedBy string `json:"postedBy" binding:"required"`
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	From          *time.Time `form:"from" time_format:"2006-01-02"`
	To            *time.Time `form:"to" time_format:"2006-01-02"`
	Status        string     `form:"status"`
	ReferenceType string     `form:"referenceType"`
	Search        string     `form:"search"`
}

// EntryLineResponse defines the data returned for a journal entry line.
type EntryLineResponse struct {
	LineID      string           `json:"lineID"`
	AccountID   string           `json:"accountID"`
	Debit       decimal.Decimal  `json:"debit"`
	Credit      decimal.Decimal  `json:"credit"`
	Description string           `json:"description"`
	Account     *AccountResponse `json:"account,omitempty"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID       string               `json:"entryID"`
	EntryNumber   string               `json:"entryNumber"`
	EntryDate     time.Time            `json:"entryDate"`
	Description   string               `json:"description"`
	ReferenceType domain.ReferenceType `json:"referenceType"`
	ReferenceID   string               `json:"referenceID,omitempty"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	Status        domain.EntryStatus   `json:"status"`
	ApprovedBy    string               `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time           `json:"approvedAt,omitempty"`
	Lines         []EntryLineResponse  `json:"lines,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
}

// ListEntriesResponse wraps the list of journal entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryLineResponse converts a domain.JournalLine to EntryLineResponse DTO.
func ToEntryLineResponse(line *domain.JournalLine) EntryLineResponse {
	resp := EntryLineResponse{
		LineID:      line.LineID,
		AccountID:   line.AccountID,
		Debit:       line.Debit,
		Credit:      line.Credit,
		Description: line.Description,
	}
	if line.Account != nil {
		acc := ToAccountResponse(line.Account)
		resp.Account = &acc
	}
	return resp
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	lines := make([]EntryLineResponse, len(e.Lines))
	for i := range e.Lines {
		lines[i] = ToEntryLineResponse(&e.Lines[i])
	}
	return EntryResponse{
		EntryID:       e.EntryID,
		EntryNumber:   e.EntryNumber,
		EntryDate:     e.EntryDate,
		Description:   e.Description,
		ReferenceType: e.ReferenceType,
		ReferenceID:   e.ReferenceID,
		TotalAmount:   e.TotalAmount,
		Status:        e.Status,
		ApprovedBy:    e.ApprovedBy,
		ApprovedAt:    e.ApprovedAt,
		Lines:         lines,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
}

// ToListEntriesResponse converts a slice of domain.JournalEntry to the list DTO.
func ToListEntriesResponse(entries []domain.JournalEntry) ListEntriesResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{Entries: res}
}
