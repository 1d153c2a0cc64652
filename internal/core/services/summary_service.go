package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	portsrepo "github.com/flsuite/freelance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/flsuite/freelance_ledger_app/internal/core/ports/services"
)

// feeKinds contribute their absolute value to the fee total.
var feeKinds = map[domain.TransactionKind]bool{
	domain.KindProjectFee:   true,
	domain.KindPreferredFee: true,
	domain.KindHourlyFee:    true,
}

type summaryService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewSummaryService creates a new instance of summaryService.
func NewSummaryService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.SummarySvc {
	return &summaryService{ledgerRepo: ledgerRepo}
}

// GetSummary aggregates the date-bounded slice of the ledger in memory.
// Amounts never cross currencies; every total is a per-currency map.
func (s *summaryService) GetSummary(ctx context.Context, from, to *time.Time) (*domain.FinancialSummary, error) {
	logger := s.GetLogger(ctx)

	entries, err := s.ledgerRepo.ScanEntries(ctx, from, to)
	if err != nil {
		logger.Error("Failed to scan entries for summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to scan entries for summary: %w", err)
	}

	summary := &domain.FinancialSummary{
		From:             from,
		To:               to,
		TotalEarnings:    domain.CurrencyTotals{},
		TotalFees:        domain.CurrencyTotals{},
		TotalWithdrawals: domain.CurrencyTotals{},
		ByType:           map[domain.TransactionKind]domain.KindSummary{},
		ByProject:        map[string]domain.GroupSummary{},
		ByClient:         map[string]domain.GroupSummary{},
	}

	for _, entry := range entries {
		kindSummary := summary.ByType[entry.Type]
		if kindSummary.Totals == nil {
			kindSummary.Totals = domain.CurrencyTotals{}
		}
		kindSummary.Count++
		kindSummary.Totals.Add(entry.CurrencyCode, entry.Amount)
		summary.ByType[entry.Type] = kindSummary

		switch {
		case entry.Type == domain.KindMilestonePayment && entry.Amount.IsPositive():
			summary.TotalEarnings.Add(entry.CurrencyCode, entry.Amount)
		case feeKinds[entry.Type]:
			summary.TotalFees.Add(entry.CurrencyCode, entry.Amount.Abs())
		case entry.Type == domain.KindWithdrawal && entry.Amount.IsNegative():
			summary.TotalWithdrawals.Add(entry.CurrencyCode, entry.Amount.Abs())
		}

		// Project and client groupings track earnings only, so fees and
		// withdrawals never dilute a project's total.
		if entry.Type != domain.KindMilestonePayment || !entry.Amount.IsPositive() {
			continue
		}

		if entry.ProjectName != nil {
			group := summary.ByProject[*entry.ProjectName]
			if group.Totals == nil {
				group.Totals = domain.CurrencyTotals{}
			}
			group.Count++
			group.Totals.Add(entry.CurrencyCode, entry.Amount)
			summary.ByProject[*entry.ProjectName] = group
		}

		if entry.ClientName != nil {
			group := summary.ByClient[*entry.ClientName]
			if group.Totals == nil {
				group.Totals = domain.CurrencyTotals{}
			}
			group.Count++
			group.Totals.Add(entry.CurrencyCode, entry.Amount)
			summary.ByClient[*entry.ClientName] = group
		}
	}

	logger.Debug("Summary computed", slog.Int("entry_count", len(entries)))
	return summary, nil
}

func (s *summaryService) ListDistinctProjects(ctx context.Context) ([]domain.ProjectRollup, error) {
	logger := s.GetLogger(ctx)

	rollups, err := s.ledgerRepo.ListProjectRollups(ctx)
	if err != nil {
		logger.Error("Failed to list project rollups", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list project rollups: %w", err)
	}

	if rollups == nil {
		return []domain.ProjectRollup{}, nil
	}
	return rollups, nil
}
