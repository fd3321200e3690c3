package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/restolane/resto_management_app/internal/apperrors"
	"github.com/restolane/resto_management_app/internal/core/domain"
	portsrepo "github.com/restolane/resto_management_app/internal/core/ports/repositories"
)

// SupplierRepository is the pre-loaded supplier lookup directory.
type SupplierRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.Supplier
	order []string
}

// NewSupplierRepository creates a supplier directory holding the given entries.
func NewSupplierRepository(suppliers ...domain.Supplier) *SupplierRepository {
	repo := &SupplierRepository{byID: make(map[string]domain.Supplier, len(suppliers))}
	for _, s := range suppliers {
		if _, exists := repo.byID[s.SupplierID]; exists {
			continue
		}
		repo.byID[s.SupplierID] = s
		repo.order = append(repo.order, s.SupplierID)
	}
	return repo
}

// Ensure SupplierRepository implements portsrepo.SupplierReader
var _ portsrepo.SupplierReader = (*SupplierRepository)(nil)

func (r *SupplierRepository) FindSupplierByID(_ context.Context, supplierID string) (*domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supplier, ok := r.byID[supplierID]
	if !ok {
		return nil, fmt.Errorf("%w: supplier ID %s", apperrors.ErrNotFound, supplierID)
	}
	return &supplier, nil
}

func (r *SupplierRepository) ListSuppliers(_ context.Context) ([]domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suppliers := make([]domain.Supplier, 0, len(r.order))
	for _, id := range r.order {
		suppliers = append(suppliers, r.byID[id])
	}
	return suppliers, nil
}
