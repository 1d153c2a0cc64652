package repositories

import (
	"context"
	"time"

	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryFilters narrows ledger entry listings. Nil fields are not applied.
type EntryFilters struct {
	Type         *domain.TransactionKind
	CurrencyCode *string
	ProjectName  *string // substring match
	Search       *string // free-text over description and notes
	From         *time.Time
	To           *time.Time
}

// LedgerReader defines read operations for ledger entry data.
type LedgerReader interface {
	// FindEntryByID retrieves a specific ledger entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// FindEntryByNaturalKey retrieves the entry matching the import dedup
	// triple (date, description, amount). Amount comparison is exact.
	FindEntryByNaturalKey(ctx context.Context, entryDate time.Time, description string, amount decimal.Decimal) (*domain.LedgerEntry, error)

	// FindMilestonePaymentByMilestoneID retrieves the MILESTONE_PAYMENT entry
	// linked to the given milestone, if any.
	FindMilestonePaymentByMilestoneID(ctx context.Context, milestoneID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a filtered, paginated list of entries using
	// token-based pagination. It returns the entries, a token for the next
	// page, and an error.
	ListEntries(ctx context.Context, filters EntryFilters, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)

	// ScanEntries retrieves every entry within the optional date bounds, in
	// date order, for aggregation.
	ScanEntries(ctx context.Context, from, to *time.Time) ([]domain.LedgerEntry, error)

	// ListMilestonePaymentsByProjectName retrieves MILESTONE_PAYMENT entries
	// whose project name case-insensitively equals the given name.
	ListMilestonePaymentsByProjectName(ctx context.Context, projectName string) ([]domain.LedgerEntry, error)

	// ListProjectRollups aggregates milestone payment history per distinct
	// project name observed in the ledger.
	ListProjectRollups(ctx context.Context) ([]domain.ProjectRollup, error)
}

// LedgerWriter defines write operations for ledger entry data.
type LedgerWriter interface {
	// SaveEntry persists a single ledger entry. A natural-key collision
	// surfaces as apperrors.ErrDuplicate.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	// SaveEntries persists a set of entries atomically within one DB transaction.
	SaveEntries(ctx context.Context, entries []domain.LedgerEntry) error

	// UpdateEntry replaces the mutable fields of an existing entry.
	UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error

	// DeleteEntry removes an entry by ID.
	DeleteEntry(ctx context.Context, entryID string) error

	// LinkEntriesToProject attaches a project ID to the given entries.
	LinkEntriesToProject(ctx context.Context, entryIDs []string, projectID string, updatedByUserID string, updatedAt time.Time) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
