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
	"github.com/restolane/resto_management_app/internal/utils/accounting"
)

var (
	ErrEntryUnbalanced = errors.New("entry debits and credits do not balance")
	ErrEntryMinLines   = errors.New("entry must have at least two qualifying lines")
	ErrAccountNotFound = errors.New("account not found")
	ErrEntryNotFound   = errors.New("journal entry not found")
)

// journalService provides the journal entry operations of the ledger engine.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

// NewJournalService creates a new JournalSvc.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) portssvc.JournalSvc {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvc interface
var _ portssvc.JournalSvc = (*journalService)(nil)

// qualifyingLines keeps the lines that name an account and carry a positive
// amount on either side; blank rows from the entry form are dropped rather
// than rejected.
func qualifyingLines(reqLines []dto.CreateEntryLineRequest) []dto.CreateEntryLineRequest {
	qualified := make([]dto.CreateEntryLineRequest, 0, len(reqLines))
	for _, l := range reqLines {
		if l.AccountID == "" {
			continue
		}
		if !l.Debit.IsPositive() && !l.Credit.IsPositive() {
			continue
		}
		qualified = append(qualified, l)
	}
	return qualified
}

// CreateEntry validates and records a new journal entry in DRAFT status.
// Validation is all-or-nothing: on any failure no state is mutated.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	if !req.ReferenceType.IsValid() {
		return nil, fmt.Errorf("%w: unknown reference type %s", apperrors.ErrValidation, req.ReferenceType)
	}

	lines := qualifyingLines(req.Lines)
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEntryMinLines)
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	// Prepare domain lines from DTO and validate each one
	domainLines := make([]domain.JournalLine, len(lines))
	accountIDs := make([]string, 0, len(lines))
	debitsSum := decimal.Zero
	creditsSum := decimal.Zero
	for i, lineReq := range lines {
		line := domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   lineReq.AccountID,
			Debit:       lineReq.Debit,
			Credit:      lineReq.Credit,
			Description: lineReq.Description,
		}
		if err := line.Validate(); err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", apperrors.ErrValidation, i+1, err)
		}
		domainLines[i] = line
		accountIDs = append(accountIDs, lineReq.AccountID)
		debitsSum = debitsSum.Add(line.Debit)
		creditsSum = creditsSum.Add(line.Credit)
	}

	// Double-entry check: exact equality, no rounding tolerance
	if !debitsSum.Equal(creditsSum) {
		return nil, fmt.Errorf("%w: %s: debits sum is %s and credits sum is %s",
			apperrors.ErrValidation, ErrEntryUnbalanced, debitsSum.String(), creditsSum.String())
	}

	// Resolve every referenced account and snapshot it onto its lines
	uniqueAccountIDs := uniqueStrings(accountIDs)
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueAccountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for entry creation")
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range uniqueAccountIDs {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: %s: ID %s", apperrors.ErrNotFound, ErrAccountNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s (%s) is inactive", apperrors.ErrValidation, acc.Code, id)
		}
	}
	for i := range domainLines {
		acc := accountsMap[domainLines[i].AccountID]
		domainLines[i].Account = &acc
	}

	// Per-year sequence owned by the repository, so concurrent creates can
	// never hand out the same entry number.
	year := req.Date.Year()
	seq, err := s.journalRepo.NextEntryNumber(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate entry number", slog.Int("year", year))
		return nil, fmt.Errorf("failed to allocate entry number: %w", err)
	}

	entry := domain.JournalEntry{
		EntryID:       entryID,
		EntryNumber:   fmt.Sprintf("JE-%d-%03d", year, seq),
		EntryDate:     req.Date,
		Description:   req.Description,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		TotalAmount:   debitsSum,
		Status:        domain.EntryDraft,
		Lines:         domainLines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created successfully",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.String("total_amount", entry.TotalAmount.String()))
	return &entry, nil
}

// GetEntryByID retrieves a specific journal entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry by ID", slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("%w: ID %s: %w", ErrEntryNotFound, entryID, err)
	}
	return entry, nil
}

// ListEntries retrieves journal entries matching the given filters.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error) {
	filter := portsrepo.ListEntriesFilter{
		From:   params.From,
		To:     params.To,
		Search: params.Search,
	}
	if params.Status != "" {
		status := domain.EntryStatus(params.Status)
		filter.Status = &status
	}
	if params.ReferenceType != "" {
		refType := domain.ReferenceType(params.ReferenceType)
		filter.ReferenceType = &refType
	}

	entries, err := s.journalRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}
	if entries == nil {
		return []domain.JournalEntry{}, nil
	}
	s.LogDebug(ctx, "Journal entries listed successfully", slog.Int("count", len(entries)))
	return entries, nil
}

// ApproveEntry moves a DRAFT entry to APPROVED and stamps the approver.
// On any other status the entry is returned unchanged; the ledger screen
// treats a mis-timed approve as a non-event, not an error.
func (s *journalService) ApproveEntry(ctx context.Context, entryID string, approvedBy string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry for approval", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	if entry.Status != domain.EntryDraft {
		s.LogDebug(ctx, "Approve ignored: entry not in draft",
			slog.String("entry_id", entryID),
			slog.String("status", string(entry.Status)))
		return entry, nil
	}

	now := time.Now().UTC()
	entry.Status = domain.EntryApproved
	entry.ApprovedBy = approvedBy
	entry.ApprovedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = approvedBy

	if err := s.journalRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry approval", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save entry approval: %w", err)
	}

	s.LogInfo(ctx, "Journal entry approved",
		slog.String("entry_id", entryID),
		slog.String("approved_by", approvedBy))
	return entry, nil
}

// PostEntry moves an APPROVED entry to POSTED, the terminal state, and
// applies each line's signed amount to the referenced accounts' balances.
// On any other status the entry is returned unchanged.
func (s *journalService) PostEntry(ctx context.Context, entryID string, postedBy string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry for posting", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	if entry.Status != domain.EntryApproved {
		s.LogDebug(ctx, "Post ignored: entry not approved",
			slog.String("entry_id", entryID),
			slog.String("status", string(entry.Status)))
		return entry, nil
	}

	// Calculate the net balance change per account before touching anything
	accountIDs := make([]string, 0, len(entry.Lines))
	for _, line := range entry.Lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueStrings(accountIDs))
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for posting", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to fetch accounts for posting: %w", err)
	}
	accountTypes := make(map[string]domain.AccountType, len(accountsMap))
	for id, acc := range accountsMap {
		accountTypes[id] = acc.AccountType
	}
	balanceChanges, err := accounting.BalanceChanges(entry.Lines, accountTypes)
	if err != nil {
		s.LogError(ctx, err, "Failed to calculate balance changes", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInternal, err)
	}

	now := time.Now().UTC()
	entry.Status = domain.EntryPosted
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = postedBy

	if err := s.journalRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry posting", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save entry posting: %w", err)
	}

	if err := s.accountRepo.ApplyBalanceChanges(ctx, balanceChanges, postedBy, now); err != nil {
		s.LogError(ctx, err, "Failed to apply balance changes", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to apply balance changes: %w", err)
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.Int("accounts_affected", len(balanceChanges)))
	return entry, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
