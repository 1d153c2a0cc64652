package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flsuite/freelance_ledger_app/internal/apperrors"
	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	portsrepo "github.com/flsuite/freelance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/flsuite/freelance_ledger_app/internal/core/ports/services"
	"github.com/flsuite/freelance_ledger_app/internal/dto"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new instance of ledgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

func (s *ledgerService) CreateManualEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	logger := s.GetLogger(ctx)

	if err := req.Validate(); err != nil {
		return nil, apperrors.NewAppError(400, "invalid entry request", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error()))
	}

	now := time.Now().UTC()
	entry := domain.LedgerEntry{
		EntryID:      uuid.NewString(),
		EntryDate:    req.Date,
		Description:  req.Description,
		Type:         req.Type,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		GST:          req.GST,
		ProjectName:  req.ProjectName,
		ClientName:   req.ClientName,
		Platform:     domain.PlatformFreelancer,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save manual entry", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Manual entry created", slog.String("entry_id", entry.EntryID))
	return &entry, nil
}

func (s *ledgerService) GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	logger := s.GetLogger(ctx)
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find entry by ID", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := s.GetLogger(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	filters := portsrepo.EntryFilters{
		Type:         params.Type,
		CurrencyCode: params.CurrencyCode,
		ProjectName:  params.ProjectName,
		Search:       params.Search,
		From:         params.From,
		To:           params.To,
	}

	entries, nextToken, err := s.ledgerRepo.ListEntries(ctx, filters, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

func (s *ledgerService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, updaterUserID string) (*domain.LedgerEntry, error) {
	logger := s.GetLogger(ctx)

	if err := req.Validate(); err != nil {
		return nil, apperrors.NewAppError(400, "invalid entry update", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error()))
	}

	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		entry.EntryDate = *req.Date
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Type != nil {
		entry.Type = *req.Type
	}
	if req.Amount != nil {
		entry.Amount = *req.Amount
	}
	if req.CurrencyCode != nil {
		entry.CurrencyCode = *req.CurrencyCode
	}
	if req.GST != nil {
		entry.GST = req.GST
	}
	if req.ProjectName != nil {
		entry.ProjectName = req.ProjectName
	}
	if req.ClientName != nil {
		entry.ClientName = req.ClientName
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = updaterUserID

	if err := s.ledgerRepo.UpdateEntry(ctx, *entry); err != nil {
		logger.Error("Failed to update entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, err
	}

	logger.Info("Entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

func (s *ledgerService) DeleteEntry(ctx context.Context, entryID string) error {
	logger := s.GetLogger(ctx)
	if err := s.ledgerRepo.DeleteEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return err
	}
	logger.Info("Entry deleted", slog.String("entry_id", entryID))
	return nil
}
