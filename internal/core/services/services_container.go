package services

import (
	portsrepo "github.com/flsuite/freelance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/flsuite/freelance_ledger_app/internal/core/ports/services"
	"github.com/flsuite/freelance_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Import = NewImportService(repos.LedgerRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo)
	container.Summary = NewSummaryService(repos.LedgerRepo)
	container.Release = NewReleaseService(repos.LedgerRepo)
	container.Backfill = NewBackfillService(repos.LedgerRepo, repos.ProjectRepo)
	container.Auth = NewAuthService(cfg)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.ImportSvc       = (*importService)(nil)
	_ portssvc.LedgerSvcFacade = (*ledgerService)(nil)
	_ portssvc.SummarySvc      = (*summaryService)(nil)
	_ portssvc.ReleaseSvc      = (*releaseService)(nil)
	_ portssvc.BackfillSvc     = (*backfillService)(nil)
	_ portssvc.AuthSvc         = (*authService)(nil)
)
