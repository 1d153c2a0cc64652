package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flsuite/freelance_ledger_app/internal/apperrors"
	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	portsrepo "github.com/flsuite/freelance_ledger_app/internal/core/ports/repositories"
	"github.com/flsuite/freelance_ledger_app/internal/models"
	"github.com/flsuite/freelance_ledger_app/internal/utils/mapping"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project, milestone and client data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

// FindClientByName retrieves a client by case-insensitive name match.
func (r *PgxProjectRepository) FindClientByName(ctx context.Context, name string) (*domain.Client, error) {
	query := `
		SELECT client_id, name, client_type, created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		WHERE LOWER(name) = LOWER($1)
		LIMIT 1;
	`
	var m models.Client
	err := r.Pool.QueryRow(ctx, query, name).Scan(
		&m.ClientID,
		&m.Name,
		&m.ClientType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client %q: %w", name, err)
	}
	client := mapping.ToDomainClient(m)
	return &client, nil
}

// SaveClient inserts a new client.
func (r *PgxProjectRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (client_id, name, client_type, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.ClientType,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: client %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save client %s: %w", m.ClientID, err)
	}
	return nil
}

// SaveProject inserts a new project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (project_id, name, client_id, status, start_date, end_date, budget, currency_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.Name,
		m.ClientID,
		m.Status,
		m.StartDate,
		m.EndDate,
		m.Budget,
		m.CurrencyCode,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: project with ID %s already exists", apperrors.ErrDuplicate, m.ProjectID)
		}
		return fmt.Errorf("failed to save project %s: %w", m.ProjectID, err)
	}
	return nil
}

// SaveMilestones inserts a batch of milestones within one transaction.
func (r *PgxProjectRepository) SaveMilestones(ctx context.Context, milestones []domain.Milestone) error {
	if len(milestones) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO milestones (milestone_id, project_id, title, amount, currency_code, status, due_date, released_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, milestone := range milestones {
		m := mapping.ToModelMilestone(milestone)
		_, err := tx.Exec(ctx, query,
			m.MilestoneID,
			m.ProjectID,
			m.Title,
			m.Amount,
			m.CurrencyCode,
			m.Status,
			m.DueDate,
			m.ReleasedAt,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to save milestone %s: %w", m.MilestoneID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindProjectByID retrieves a project by its unique identifier.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT project_id, name, client_id, status, start_date, end_date, budget, currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM projects
		WHERE project_id = $1;
	`
	var m models.Project
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(
		&m.ProjectID,
		&m.Name,
		&m.ClientID,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
		&m.Budget,
		&m.CurrencyCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	project := mapping.ToDomainProject(m)
	return &project, nil
}
