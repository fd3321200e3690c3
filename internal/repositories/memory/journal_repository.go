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

// JournalRepository stores journal entries and owns the per-year entry
// number sequence.
type JournalRepository struct {
	mu       sync.RWMutex
	byID     map[string]domain.JournalEntry
	order    []string      // insertion order of entry IDs
	sequence map[int]int64 // year -> last allocated sequence value
}

// NewJournalRepository creates an empty in-memory journal store.
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{
		byID:     make(map[string]domain.JournalEntry),
		sequence: make(map[int]int64),
	}
}

// Ensure JournalRepository implements portsrepo.JournalRepository
var _ portsrepo.JournalRepository = (*JournalRepository)(nil)

// NextEntryNumber allocates the next per-year sequence value under the
// aggregate lock. Allocated values are never reused, even if the entry that
// requested one is subsequently not saved.
func (r *JournalRepository) NextEntryNumber(_ context.Context, year int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sequence[year]++
	return int(r.sequence[year]), nil
}

func (r *JournalRepository) SaveEntry(_ context.Context, entry domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[entry.EntryID]; exists {
		return fmt.Errorf("%w: entry ID %s", apperrors.ErrDuplicate, entry.EntryID)
	}
	r.byID[entry.EntryID] = cloneEntry(entry)
	r.order = append(r.order, entry.EntryID)
	return nil
}

func (r *JournalRepository) FindEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byID[entryID]
	if !ok {
		return nil, fmt.Errorf("%w: entry ID %s", apperrors.ErrNotFound, entryID)
	}
	cloned := cloneEntry(entry)
	return &cloned, nil
}

func (r *JournalRepository) ListEntries(_ context.Context, filter portsrepo.ListEntriesFilter) ([]domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	entries := make([]domain.JournalEntry, 0, len(r.order))
	for _, id := range r.order {
		entry := r.byID[id]
		if filter.From != nil && entry.EntryDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && entry.EntryDate.After(*filter.To) {
			continue
		}
		if filter.Status != nil && entry.Status != *filter.Status {
			continue
		}
		if filter.ReferenceType != nil && entry.ReferenceType != *filter.ReferenceType {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(entry.EntryNumber), search) &&
			!strings.Contains(strings.ToLower(entry.Description), search) {
			continue
		}
		entries = append(entries, cloneEntry(entry))
	}
	return entries, nil
}

func (r *JournalRepository) UpdateEntry(_ context.Context, entry domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[entry.EntryID]; !ok {
		return fmt.Errorf("%w: entry ID %s", apperrors.ErrNotFound, entry.EntryID)
	}
	r.byID[entry.EntryID] = cloneEntry(entry)
	return nil
}

// cloneEntry copies the entry together with its line slice so callers can
// never mutate stored state through a returned reference.
func cloneEntry(entry domain.JournalEntry) domain.JournalEntry {
	lines := make([]domain.JournalLine, len(entry.Lines))
	copy(lines, entry.Lines)
	for i := range lines {
		if lines[i].Account != nil {
			acc := *lines[i].Account
			lines[i].Account = &acc
		}
	}
	entry.Lines = lines
	return entry
}
