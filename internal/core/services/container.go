package services

import (
	portsrepo "github.com/restolane/resto_management_app/internal/core/ports/repositories"
	portssvc "github.com/restolane/resto_management_app/internal/core/ports/services"
)

// NewServiceContainer wires the repositories into the full service surface
// handed to the HTTP layer.
func NewServiceContainer(
	accountRepo portsrepo.AccountRepository,
	journalRepo portsrepo.JournalRepository,
	invoiceRepo portsrepo.InvoiceRepository,
	supplierRepo portsrepo.SupplierReader,
	cashFlowSource portsrepo.CashFlowSource,
	invoiceOptions ...InvoiceServiceOption,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(accountRepo),
		Journal:   NewJournalService(journalRepo, accountRepo),
		Invoice:   NewInvoiceService(invoiceRepo, supplierRepo, invoiceOptions...),
		Reporting: NewReportingService(accountRepo, cashFlowSource),
		Supplier:  NewSupplierService(supplierRepo),
	}
}
