package repositories

import (
	"context"

	"github.com/restolane/resto_management_app/internal/core/domain"
)

// SupplierReader is the lookup directory for suppliers. The invoice engine
// only resolves references against it; the directory itself is loaded by the
// procurement side of the system.
type SupplierReader interface {
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}
