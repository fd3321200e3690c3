package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/restolane/resto_management_app/internal/apperrors"
	"github.com/restolane/resto_management_app/internal/core/domain"
	portsrepo "github.com/restolane/resto_management_app/internal/core/ports/repositories"
	portssvc "github.com/restolane/resto_management_app/internal/core/ports/services"
)

// supplierService exposes the read-only supplier directory.
type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierReader
}

// NewSupplierService creates a new SupplierSvc.
func NewSupplierService(supplierRepo portsrepo.SupplierReader) portssvc.SupplierSvc {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvc = (*supplierService)(nil)

func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers")
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find supplier", slog.String("supplier_id", supplierID))
		}
		return nil, err
	}
	return supplier, nil
}
