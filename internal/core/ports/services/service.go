package services

// ServiceContainer bundles every service the handlers need, so route
// registration receives one dependency instead of a parameter list.
type ServiceContainer struct {
	Import   ImportSvc
	Ledger   LedgerSvcFacade
	Summary  SummarySvc
	Release  ReleaseSvc
	Backfill BackfillSvc
	Auth     AuthSvc
}
