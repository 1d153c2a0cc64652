package services

import (
	"context"
	"time"

	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	"github.com/flsuite/freelance_ledger_app/internal/dto"
)

// ImportSvc ingests raw export text into the ledger.
type ImportSvc interface {
	// ImportFromExport tokenizes, parses, classifies and deduplicates every
	// row of the export and persists the economic ones. It never fails for
	// data-quality reasons; malformed and duplicate rows are counted skipped.
	ImportFromExport(ctx context.Context, exportText string, importerUserID string) (*dto.ImportResult, error)
}

// LedgerSvcFacade exposes CRUD operations over persisted ledger entries.
type LedgerSvcFacade interface {
	CreateManualEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.LedgerEntry, error)
	GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, updaterUserID string) (*domain.LedgerEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
}

// SummarySvc produces aggregated financial views over the ledger.
type SummarySvc interface {
	GetSummary(ctx context.Context, from, to *time.Time) (*domain.FinancialSummary, error)
	ListDistinctProjects(ctx context.Context) ([]domain.ProjectRollup, error)
}

// ReleaseSvc derives ledger entries from milestone-release events raised by
// the external project subsystem.
type ReleaseSvc interface {
	// OnMilestoneReleased is idempotent per milestone: a pre-existing payment
	// entry for the milestone is returned unchanged instead of duplicated.
	OnMilestoneReleased(ctx context.Context, req dto.MilestoneReleaseRequest, userID string) ([]domain.LedgerEntry, error)
}

// BackfillSvc synthesizes project records from historical ledger rows.
type BackfillSvc interface {
	CreateProjectFromLedgerHistory(ctx context.Context, req dto.BackfillProjectRequest, userID string) (*domain.Project, error)
}
