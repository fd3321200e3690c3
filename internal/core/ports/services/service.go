package services

// ServiceContainer aggregates the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Account   AccountSvc
	Journal   JournalSvc
	Invoice   InvoiceSvc
	Reporting ReportingSvc
	Supplier  SupplierSvc
}
