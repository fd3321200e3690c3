package dto

import (
	"github.com/restolane/resto_management_app/internal/core/domain"
)

// SupplierResponse defines the data returned for a supplier directory entry.
type SupplierResponse struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	IsActive   bool   `json:"isActive"`
}

// ListSuppliersResponse wraps the supplier directory.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID: s.SupplierID,
		Name:       s.Name,
		Phone:      s.Phone,
		Email:      s.Email,
		IsActive:   s.IsActive,
	}
}

// ToListSuppliersResponse converts a slice of domain.Supplier to the list DTO.
func ToListSuppliersResponse(suppliers []domain.Supplier) ListSuppliersResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		res[i] = ToSupplierResponse(&suppliers[i])
	}
	return ListSuppliersResponse{Suppliers: res}
}
