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

var oneHundred = decimal.NewFromInt(100)

// releaseService turns milestone-release events into ledger entries: one
// positive payment entry and, when a platform fee applies, one negative fee
// entry, persisted atomically.
type releaseService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewReleaseService creates a new instance of releaseService.
func NewReleaseService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.ReleaseSvc {
	return &releaseService{ledgerRepo: ledgerRepo}
}

func (s *releaseService) OnMilestoneReleased(ctx context.Context, req dto.MilestoneReleaseRequest, userID string) ([]domain.LedgerEntry, error) {
	logger := s.GetLogger(ctx)

	if err := req.Validate(); err != nil {
		return nil, apperrors.NewAppError(400, "invalid milestone release request", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error()))
	}

	// Re-delivered release events must not double-book the payment.
	existing, err := s.ledgerRepo.FindMilestonePaymentByMilestoneID(ctx, req.MilestoneID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing milestone payment", slog.String("error", err.Error()), slog.String("milestone_id", req.MilestoneID))
		return nil, fmt.Errorf("failed to check for existing milestone payment: %w", err)
	}
	if existing != nil {
		logger.Info("Milestone already booked, returning existing entry", slog.String("milestone_id", req.MilestoneID))
		return []domain.LedgerEntry{*existing}, nil
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	milestoneID := req.MilestoneID

	payment := domain.LedgerEntry{
		EntryID:      uuid.NewString(),
		EntryDate:    now,
		Description:  paymentDescription(req),
		Type:         domain.KindMilestonePayment,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		ProjectName:  req.ProjectName,
		ClientName:   req.ClientName,
		Platform:     domain.PlatformFreelancer,
		ProjectID:    req.ProjectID,
		MilestoneID:  &milestoneID,
		AuditFields:  audit,
	}

	entries := []domain.LedgerEntry{payment}

	if req.PlatformFeePercent.IsPositive() {
		feeAmount := req.Amount.Mul(req.PlatformFeePercent).Div(oneHundred).Neg()
		fee := domain.LedgerEntry{
			EntryID:      uuid.NewString(),
			EntryDate:    now,
			Description:  feeDescription(req),
			Type:         domain.KindProjectFee,
			Amount:       feeAmount,
			CurrencyCode: req.CurrencyCode,
			ProjectName:  req.ProjectName,
			ClientName:   req.ClientName,
			Platform:     domain.PlatformFreelancer,
			ProjectID:    req.ProjectID,
			MilestoneID:  &milestoneID,
			AuditFields:  audit,
		}
		entries = append(entries, fee)
	}

	if err := s.ledgerRepo.SaveEntries(ctx, entries); err != nil {
		logger.Error("Failed to save milestone release entries", slog.String("error", err.Error()), slog.String("milestone_id", req.MilestoneID))
		return nil, fmt.Errorf("failed to save milestone release entries: %w", err)
	}

	logger.Info("Milestone release booked",
		slog.String("milestone_id", req.MilestoneID),
		slog.Int("entry_count", len(entries)),
	)
	return entries, nil
}

// paymentDescription phrases the entry so that re-importing it classifies
// back to MILESTONE_PAYMENT and re-extracts the same project and client.
func paymentDescription(req dto.MilestoneReleaseRequest) string {
	switch {
	case req.ClientName != nil && req.ProjectName != nil:
		return fmt.Sprintf("Done Milestone Payment (%s) from %s for project %s", req.Title, *req.ClientName, *req.ProjectName)
	case req.ProjectName != nil:
		return fmt.Sprintf("Done Milestone Payment (%s) for project %s", req.Title, *req.ProjectName)
	default:
		return fmt.Sprintf("Done Milestone Payment (%s)", req.Title)
	}
}

func feeDescription(req dto.MilestoneReleaseRequest) string {
	if req.ProjectName != nil {
		return fmt.Sprintf("Project fee taken (%s)", *req.ProjectName)
	}
	return fmt.Sprintf("Project fee taken (%s)", req.Title)
}
