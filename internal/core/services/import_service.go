package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flsuite/freelance_ledger_app/internal/apperrors"
	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	"github.com/flsuite/freelance_ledger_app/internal/core/importer"
	portsrepo "github.com/flsuite/freelance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/flsuite/freelance_ledger_app/internal/core/ports/services"
	"github.com/flsuite/freelance_ledger_app/internal/dto"
)

// importService ingests raw export text row by row. Each row fails or
// succeeds independently; a bad row never aborts the rest of the import.
type importService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewImportService creates a new instance of importService.
func NewImportService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.ImportSvc {
	return &importService{ledgerRepo: ledgerRepo}
}

func (s *importService) ImportFromExport(ctx context.Context, exportText string, importerUserID string) (*dto.ImportResult, error) {
	logger := s.GetLogger(ctx)
	result := &dto.ImportResult{}

	lines := strings.Split(strings.ReplaceAll(exportText, "\r\n", "\n"), "\n")
	for i, line := range lines {
		// The first row is the column header.
		if i == 0 {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		row := importer.ParseRow(importer.TokenizeLine(line))
		if row == nil {
			result.Skipped++
			continue
		}

		if domain.NonEconomicKinds[row.Type] {
			result.Skipped++
			continue
		}

		existing, err := s.ledgerRepo.FindEntryByNaturalKey(ctx, row.Date, row.Description, row.Amount)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to check entry for duplicate", slog.String("error", err.Error()), slog.Int("line", i+1))
			result.Skipped++
			continue
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		now := time.Now().UTC()
		entry := domain.LedgerEntry{
			EntryID:      uuid.NewString(),
			EntryDate:    row.Date,
			Description:  row.Description,
			Type:         row.Type,
			Amount:       row.Amount,
			CurrencyCode: row.CurrencyCode,
			GST:          row.GST,
			ProjectName:  row.ProjectName,
			ClientName:   row.ClientName,
			Platform:     row.Platform,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     importerUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: importerUserID,
			},
		}

		if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				// Lost the race against a concurrent import of the same row;
				// the unique index on the natural key is the backstop.
				result.Skipped++
				continue
			}
			logger.Error("Failed to save imported entry", slog.String("error", err.Error()), slog.Int("line", i+1))
			result.Skipped++
			continue
		}

		result.Imported++
	}

	logger.Info("Import completed",
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}
