package repositories

import (
	"context"
	"time"

	"github.com/restolane/resto_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read-only access to the chart of accounts.
type AccountReader interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountRepository defines the persistence operations for accounts.
type AccountRepository interface {
	AccountReader
	SaveAccount(ctx context.Context, account domain.Account) error
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, accountID string, updatedBy string, at time.Time) error
	// ApplyBalanceChanges adds each signed delta to the referenced account's
	// balance in one atomic step. Called exactly once per posted journal entry.
	ApplyBalanceChanges(ctx context.Context, changes map[string]decimal.Decimal, updatedBy string, at time.Time) error
}
