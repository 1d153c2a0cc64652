package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/flsuite/freelance_ledger_app/internal/apperrors"
	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	portsrepo "github.com/flsuite/freelance_ledger_app/internal/core/ports/repositories"
	"github.com/flsuite/freelance_ledger_app/internal/models"
	"github.com/flsuite/freelance_ledger_app/internal/utils/mapping"
	"github.com/flsuite/freelance_ledger_app/internal/utils/pagination"
)

const uniqueViolationCode = "23505"

const entryColumns = `entry_id, entry_date, description, type, amount, currency_code, gst, project_name, client_name, platform, project_id, milestone_id, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entry data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// scanEntry scans one row laid out as entryColumns.
func scanEntry(row pgx.Row) (*models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryDate,
		&m.Description,
		&m.Type,
		&m.Amount,
		&m.CurrencyCode,
		&m.GST,
		&m.ProjectName,
		&m.ClientName,
		&m.Platform,
		&m.ProjectID,
		&m.MilestoneID,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	defer rows.Close()
	var result []models.LedgerEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entry rows: %w", err)
	}
	return mapping.ToDomainEntrySlice(result), nil
}

const insertEntryQuery = `
	INSERT INTO ledger_entries (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
`

func entryInsertArgs(m models.LedgerEntry) []any {
	return []any{
		m.EntryID,
		m.EntryDate,
		m.Description,
		m.Type,
		m.Amount,
		m.CurrencyCode,
		m.GST,
		m.ProjectName,
		m.ClientName,
		m.Platform,
		m.ProjectID,
		m.MilestoneID,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

// SaveEntry inserts a single entry. A collision on the natural-key unique
// index surfaces as apperrors.ErrDuplicate.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelEntry(entry)
	_, err := r.Pool.Exec(ctx, insertEntryQuery, entryInsertArgs(m)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: entry (%s, %q, %s) already exists", apperrors.ErrDuplicate, m.EntryDate.Format(time.RFC3339), m.Description, m.Amount.String())
		}
		return fmt.Errorf("failed to save ledger entry %s: %w", m.EntryID, err)
	}
	return nil
}

// SaveEntries inserts a set of entries atomically within one transaction.
func (r *PgxLedgerRepository) SaveEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, entry := range entries {
		m := mapping.ToModelEntry(entry)
		if _, err := tx.Exec(ctx, insertEntryQuery, entryInsertArgs(m)...); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return fmt.Errorf("%w: entry (%s, %q, %s) already exists", apperrors.ErrDuplicate, m.EntryDate.Format(time.RFC3339), m.Description, m.Amount.String())
			}
			return fmt.Errorf("failed to save ledger entry %s: %w", m.EntryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateEntry replaces the mutable fields of an existing entry.
func (r *PgxLedgerRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelEntry(entry)
	query := `
		UPDATE ledger_entries
		SET entry_date = $2, description = $3, type = $4, amount = $5, currency_code = $6, gst = $7,
		    project_name = $8, client_name = $9, notes = $10, last_updated_at = $11, last_updated_by = $12
		WHERE entry_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.EntryDate,
		m.Description,
		m.Type,
		m.Amount,
		m.CurrencyCode,
		m.GST,
		m.ProjectName,
		m.ClientName,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: update collides with an existing entry", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update ledger entry %s: %w", m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes an entry by ID.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM ledger_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LinkEntriesToProject attaches a project ID to the given entries.
func (r *PgxLedgerRepository) LinkEntriesToProject(ctx context.Context, entryIDs []string, projectID string, updatedByUserID string, updatedAt time.Time) error {
	if len(entryIDs) == 0 {
		return nil
	}
	query := `
		UPDATE ledger_entries
		SET project_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = ANY($1);
	`
	_, err := r.Pool.Exec(ctx, query, entryIDs, projectID, updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to link entries to project %s: %w", projectID, err)
	}
	return nil
}

// FindEntryByID retrieves a specific ledger entry by its unique identifier.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE entry_id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	entry := mapping.ToDomainEntry(*m)
	return &entry, nil
}

// FindEntryByNaturalKey retrieves the entry matching the import dedup triple.
func (r *PgxLedgerRepository) FindEntryByNaturalKey(ctx context.Context, entryDate time.Time, description string, amount decimal.Decimal) (*domain.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE entry_date = $1 AND description = $2 AND amount = $3
		LIMIT 1;
	`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryDate, description, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry by natural key: %w", err)
	}
	entry := mapping.ToDomainEntry(*m)
	return &entry, nil
}

// FindMilestonePaymentByMilestoneID retrieves the payment entry booked for a milestone.
func (r *PgxLedgerRepository) FindMilestonePaymentByMilestoneID(ctx context.Context, milestoneID string) (*domain.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE milestone_id = $1 AND type = $2
		LIMIT 1;
	`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, milestoneID, models.TransactionKind(domain.KindMilestonePayment)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find milestone payment for %s: %w", milestoneID, err)
	}
	entry := mapping.ToDomainEntry(*m)
	return &entry, nil
}

// ListEntries retrieves a filtered page of entries, newest first, using
// keyset pagination over (entry_date, created_at).
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, filters portsrepo.EntryFilters, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	var conditions []string
	var args []any

	addCondition := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filters.Type != nil {
		addCondition("type = $%d", string(*filters.Type))
	}
	if filters.CurrencyCode != nil {
		addCondition("currency_code = $%d", *filters.CurrencyCode)
	}
	if filters.ProjectName != nil {
		addCondition("project_name ILIKE '%%' || $%d || '%%'", *filters.ProjectName)
	}
	if filters.Search != nil {
		args = append(args, *filters.Search)
		conditions = append(conditions, fmt.Sprintf("(description ILIKE '%%' || $%d || '%%' OR notes ILIKE '%%' || $%d || '%%')", len(args), len(args)))
	}
	if filters.From != nil {
		addCondition("entry_date >= $%d", *filters.From)
	}
	if filters.To != nil {
		addCondition("entry_date <= $%d", *filters.To)
	}

	if nextToken != nil && *nextToken != "" {
		cursorDate, cursorCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		args = append(args, cursorDate, cursorCreatedAt)
		conditions = append(conditions, fmt.Sprintf("(entry_date, created_at) < ($%d, $%d)", len(args)-1, len(args)))
	}

	query := `SELECT ` + entryColumns + ` FROM ledger_entries`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY entry_date DESC, created_at DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	entries, err := collectEntries(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		token = &t
	}
	return entries, token, nil
}

// ScanEntries retrieves every entry within the optional date bounds, oldest first.
func (r *PgxLedgerRepository) ScanEntries(ctx context.Context, from, to *time.Time) ([]domain.LedgerEntry, error) {
	var conditions []string
	var args []any

	if from != nil {
		args = append(args, *from)
		conditions = append(conditions, fmt.Sprintf("entry_date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conditions = append(conditions, fmt.Sprintf("entry_date <= $%d", len(args)))
	}

	query := `SELECT ` + entryColumns + ` FROM ledger_entries`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY entry_date ASC, created_at ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}
	return collectEntries(rows)
}

// ListMilestonePaymentsByProjectName retrieves positive milestone payments for
// a project, matched case-insensitively, oldest first.
func (r *PgxLedgerRepository) ListMilestonePaymentsByProjectName(ctx context.Context, projectName string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE type = $1 AND amount > 0 AND LOWER(project_name) = LOWER($2)
		ORDER BY entry_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, models.TransactionKind(domain.KindMilestonePayment), projectName)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestone payments for project %q: %w", projectName, err)
	}
	return collectEntries(rows)
}

// ListProjectRollups aggregates milestone payment history per project name.
func (r *PgxLedgerRepository) ListProjectRollups(ctx context.Context) ([]domain.ProjectRollup, error) {
	query := `
		SELECT project_name, MIN(client_name), SUM(amount), currency_code, COUNT(*), MIN(entry_date), MAX(entry_date)
		FROM ledger_entries
		WHERE type = $1 AND amount > 0 AND project_name IS NOT NULL
		GROUP BY project_name, currency_code
		ORDER BY MAX(entry_date) DESC;
	`
	rows, err := r.Pool.Query(ctx, query, models.TransactionKind(domain.KindMilestonePayment))
	if err != nil {
		return nil, fmt.Errorf("failed to list project rollups: %w", err)
	}
	defer rows.Close()

	var rollups []domain.ProjectRollup
	for rows.Next() {
		var rollup domain.ProjectRollup
		err := rows.Scan(
			&rollup.Name,
			&rollup.ClientName,
			&rollup.TotalEarned,
			&rollup.CurrencyCode,
			&rollup.PaymentCount,
			&rollup.FirstPaymentDate,
			&rollup.LastPaymentDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project rollup row: %w", err)
		}
		rollups = append(rollups, rollup)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project rollup rows: %w", err)
	}
	return rollups, nil
}
