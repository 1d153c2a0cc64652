package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flsuite/freelance_ledger_app/internal/apperrors"
	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	portsrepo "github.com/flsuite/freelance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/flsuite/freelance_ledger_app/internal/core/ports/services"
	"github.com/flsuite/freelance_ledger_app/internal/dto"
)

// backfillService synthesizes a project, its client and one released
// milestone per payment from historical ledger rows that predate the project
// subsystem. The operation is one-shot: running it twice over the same name
// creates a second project, so callers gate it behind the rollup listing.
type backfillService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewBackfillService creates a new instance of backfillService.
func NewBackfillService(ledgerRepo portsrepo.LedgerRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade) portssvc.BackfillSvc {
	return &backfillService{ledgerRepo: ledgerRepo, projectRepo: projectRepo}
}

func (s *backfillService) CreateProjectFromLedgerHistory(ctx context.Context, req dto.BackfillProjectRequest, userID string) (*domain.Project, error) {
	logger := s.GetLogger(ctx)

	payments, err := s.ledgerRepo.ListMilestonePaymentsByProjectName(ctx, req.ProjectName)
	if err != nil {
		logger.Error("Failed to list milestone payments for backfill", slog.String("error", err.Error()), slog.String("project_name", req.ProjectName))
		return nil, fmt.Errorf("failed to list milestone payments for backfill: %w", err)
	}
	if len(payments) == 0 {
		return nil, apperrors.NewAppError(404, fmt.Sprintf("no milestone payments found for project %q", req.ProjectName), apperrors.ErrNoData)
	}

	clientName := resolveClientName(req, payments)
	client, err := s.findOrCreateClient(ctx, clientName, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	budget := decimal.Zero
	startDate := payments[0].EntryDate
	endDate := payments[0].EntryDate
	for _, payment := range payments {
		budget = budget.Add(payment.Amount)
		if payment.EntryDate.Before(startDate) {
			startDate = payment.EntryDate
		}
		if payment.EntryDate.After(endDate) {
			endDate = payment.EntryDate
		}
	}

	project := domain.Project{
		ProjectID:    uuid.NewString(),
		Name:         req.ProjectName,
		ClientID:     client.ClientID,
		Status:       domain.ProjectCompleted,
		StartDate:    startDate,
		EndDate:      &endDate,
		Budget:       budget,
		CurrencyCode: payments[0].CurrencyCode,
		AuditFields:  audit,
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		logger.Error("Failed to save backfilled project", slog.String("error", err.Error()), slog.String("project_name", req.ProjectName))
		return nil, fmt.Errorf("failed to save backfilled project: %w", err)
	}

	milestones := make([]domain.Milestone, 0, len(payments))
	entryIDs := make([]string, 0, len(payments))
	for _, payment := range payments {
		releasedAt := payment.EntryDate
		milestones = append(milestones, domain.Milestone{
			MilestoneID:  uuid.NewString(),
			ProjectID:    project.ProjectID,
			Title:        fmt.Sprintf("Payment on %s", payment.EntryDate.Format("02 Jan 2006")),
			Amount:       payment.Amount,
			CurrencyCode: payment.CurrencyCode,
			Status:       domain.MilestoneReleased,
			ReleasedAt:   &releasedAt,
			AuditFields:  audit,
		})
		entryIDs = append(entryIDs, payment.EntryID)
	}

	if err := s.projectRepo.SaveMilestones(ctx, milestones); err != nil {
		logger.Error("Failed to save backfilled milestones", slog.String("error", err.Error()), slog.String("project_id", project.ProjectID))
		return nil, fmt.Errorf("failed to save backfilled milestones: %w", err)
	}

	if err := s.ledgerRepo.LinkEntriesToProject(ctx, entryIDs, project.ProjectID, userID, now); err != nil {
		logger.Error("Failed to link ledger entries to backfilled project", slog.String("error", err.Error()), slog.String("project_id", project.ProjectID))
		return nil, fmt.Errorf("failed to link ledger entries to backfilled project: %w", err)
	}

	logger.Info("Project backfilled from ledger history",
		slog.String("project_id", project.ProjectID),
		slog.Int("milestone_count", len(milestones)),
	)
	return &project, nil
}

// resolveClientName prefers the explicit request value, then the first client
// name observed in the payment history, then a placeholder.
func resolveClientName(req dto.BackfillProjectRequest, payments []domain.LedgerEntry) string {
	if req.ClientName != nil && *req.ClientName != "" {
		return *req.ClientName
	}
	for _, payment := range payments {
		if payment.ClientName != nil && *payment.ClientName != "" {
			return *payment.ClientName
		}
	}
	return "Unknown Client"
}

func (s *backfillService) findOrCreateClient(ctx context.Context, name string, userID string) (*domain.Client, error) {
	logger := s.GetLogger(ctx)

	client, err := s.projectRepo.FindClientByName(ctx, name)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up client", slog.String("error", err.Error()), slog.String("client_name", name))
		return nil, fmt.Errorf("failed to look up client: %w", err)
	}

	now := time.Now().UTC()
	newClient := domain.Client{
		ClientID:   uuid.NewString(),
		Name:       name,
		ClientType: domain.ClientUnassociated,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.projectRepo.SaveClient(ctx, newClient); err != nil {
		logger.Error("Failed to save client", slog.String("error", err.Error()), slog.String("client_name", name))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	return &newClient, nil
}
