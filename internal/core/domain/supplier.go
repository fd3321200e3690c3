package domain

// Supplier is a vendor the restaurant purchases from. The supplier directory
// is owned by the procurement side of the system; the invoice engine only
// reads it to resolve references.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	IsActive   bool   `json:"isActive"`
}
