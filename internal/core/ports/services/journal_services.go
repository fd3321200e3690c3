package services

import (
	"context"

	"github.com/restolane/resto_management_app/internal/core/domain"
	"github.com/restolane/resto_management_app/internal/dto"
)

// JournalSvc is the journal entry command/query surface exposed to callers.
//
// ApproveEntry and PostEntry mirror the general-ledger screen's behavior on
// an entry in the wrong state: the call is accepted and the entry is returned
// unchanged rather than erroring. Callers detect a non-transition by
// comparing the returned status.
type JournalSvc interface {
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error)
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error)
	ApproveEntry(ctx context.Context, entryID string, approvedBy string) (*domain.JournalEntry, error)
	PostEntry(ctx context.Context, entryID string, postedBy string) (*domain.JournalEntry, error)
}
