// Package memory holds the in-memory repository adapters. Each repository
// guards its aggregate with a single RWMutex, which gives the one-writer-at-
// a-time discipline the engines rely on: an operation observes all effects of
// previously completed operations and nothing of in-flight ones.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restolane/resto_management_app/internal/apperrors"
	"github.com/restolane/resto_management_app/internal/core/domain"
	portsrepo "github.com/restolane/resto_management_app/internal/core/ports/repositories"
)

// AccountRepository stores the chart of accounts.
type AccountRepository struct {
	mu     sync.RWMutex
	byID   map[string]domain.Account
	byCode map[string]string // code -> accountID
	order  []string          // insertion order of account IDs
}

// NewAccountRepository creates an empty in-memory account store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:   make(map[string]domain.Account),
		byCode: make(map[string]string),
	}
}

// Ensure AccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*AccountRepository)(nil)

func (r *AccountRepository) SaveAccount(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[account.AccountID]; exists {
		return fmt.Errorf("%w: account ID %s", apperrors.ErrDuplicate, account.AccountID)
	}
	if _, exists := r.byCode[account.Code]; exists {
		return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, account.Code)
	}

	r.byID[account.AccountID] = account
	r.byCode[account.Code] = account.AccountID
	r.order = append(r.order, account.AccountID)
	return nil
}

func (r *AccountRepository) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account ID %s", apperrors.ErrNotFound, accountID)
	}
	return &account, nil
}

func (r *AccountRepository) FindAccountByCode(_ context.Context, code string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accountID, ok := r.byCode[code]
	if !ok {
		return nil, fmt.Errorf("%w: account code %s", apperrors.ErrNotFound, code)
	}
	account := r.byID[accountID]
	return &account, nil
}

func (r *AccountRepository) FindAccountsByIDs(_ context.Context, accountIDs []string) (map[string]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if account, ok := r.byID[id]; ok {
			found[id] = account
		}
	}
	// Missing IDs are simply absent from the map; callers decide whether
	// that is an error.
	return found, nil
}

func (r *AccountRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(r.order))
	for _, id := range r.order {
		accounts = append(accounts, r.byID[id])
	}
	return accounts, nil
}

func (r *AccountRepository) UpdateAccount(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[account.AccountID]
	if !ok {
		return fmt.Errorf("%w: account ID %s", apperrors.ErrNotFound, account.AccountID)
	}
	// Code is immutable once created; keep the index consistent
	account.Code = existing.Code
	r.byID[account.AccountID] = account
	return nil
}

func (r *AccountRepository) DeactivateAccount(_ context.Context, accountID string, updatedBy string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byID[accountID]
	if !ok {
		return fmt.Errorf("%w: account ID %s", apperrors.ErrNotFound, accountID)
	}
	account.IsActive = false
	account.LastUpdatedAt = at
	account.LastUpdatedBy = updatedBy
	r.byID[accountID] = account
	return nil
}

func (r *AccountRepository) ApplyBalanceChanges(_ context.Context, changes map[string]decimal.Decimal, updatedBy string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Validate first so the application is all-or-nothing
	for accountID := range changes {
		if _, ok := r.byID[accountID]; !ok {
			return fmt.Errorf("%w: account ID %s", apperrors.ErrNotFound, accountID)
		}
	}
	for accountID, delta := range changes {
		account := r.byID[accountID]
		account.Balance = account.Balance.Add(delta)
		account.LastUpdatedAt = at
		account.LastUpdatedBy = updatedBy
		r.byID[accountID] = account
	}
	return nil
}
