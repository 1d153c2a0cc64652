package repositories

import (
	"context"

	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	// FindClientByName retrieves a client by case-insensitive name match.
	FindClientByName(ctx context.Context, name string) (*domain.Client, error)

	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error
}

// ProjectWriter defines persistence operations for projects and milestones.
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// SaveMilestones persists a batch of milestones within one DB transaction.
	SaveMilestones(ctx context.Context, milestones []domain.Milestone) error
}

// ProjectReader defines read operations for project data.
type ProjectReader interface {
	// FindProjectByID retrieves a project by its unique identifier.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
}

// ProjectRepositoryFacade combines all project-side repository interfaces.
type ProjectRepositoryFacade interface {
	ClientRepository
	ProjectWriter
	ProjectReader
}
