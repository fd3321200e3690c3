package repositories

import (
	"context"
	"time"

	"github.com/restolane/resto_management_app/internal/core/domain"
)

// ListEntriesFilter narrows a journal entry listing. Nil/zero fields match all.
type ListEntriesFilter struct {
	From          *time.Time
	To            *time.Time
	Status        *domain.EntryStatus
	ReferenceType *domain.ReferenceType
	Search        string // Case-insensitive match over entry number and description
}

// JournalRepository defines the persistence operations for journal entries.
type JournalRepository interface {
	// NextEntryNumber returns the next value of the per-year entry sequence.
	// The counter is owned by the repository and incremented atomically, so
	// concurrent creates can never observe the same value.
	NextEntryNumber(ctx context.Context, year int) (int, error)
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, filter ListEntriesFilter) ([]domain.JournalEntry, error)
	// UpdateEntry replaces the stored entry; used for status transitions.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error
}
