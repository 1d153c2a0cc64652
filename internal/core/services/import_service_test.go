package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flsuite/freelance_ledger_app/internal/apperrors"
	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	portssvc "github.com/flsuite/freelance_ledger_app/internal/core/ports/services"
	"github.com/flsuite/freelance_ledger_app/internal/core/services"
)

const exportHeader = "Date,Description,Currency,Amount,GST"

type ImportServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.ImportSvc
}

func (s *ImportServiceTestSuite) SetupTest() {
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.service = services.NewImportService(s.mockLedgerRepo)
}

func (s *ImportServiceTestSuite) TestImport_NewRowsArePersisted() {
	ctx := context.Background()
	export := exportHeader + "\n" +
		`06 Jan 2026 23:52,"Done Milestone Payment from Acme Corp for project Website Redesign",USD,"+1,234.56",` + "\n" +
		"07 Jan 2026,Express Withdrawal,USD,-500.00,"

	s.mockLedgerRepo.On("FindEntryByNaturalKey", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Twice()
	s.mockLedgerRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Type == domain.KindMilestonePayment &&
			e.ProjectName != nil && *e.ProjectName == "Website Redesign" &&
			e.ClientName != nil && *e.ClientName == "Acme Corp" &&
			e.Amount.String() == "1234.56"
	})).Return(nil).Once()
	s.mockLedgerRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Type == domain.KindWithdrawal && e.Amount.String() == "-500"
	})).Return(nil).Once()

	result, err := s.service.ImportFromExport(ctx, export, "importer-1")

	s.Require().NoError(err)
	s.Equal(2, result.Imported)
	s.Equal(0, result.Skipped)
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *ImportServiceTestSuite) TestImport_NonEconomicRowsAreSkipped() {
	ctx := context.Background()
	export := exportHeader + "\n" +
		"06 Jan 2026,Funds locked due to processing,USD,-100.00,\n" +
		"06 Jan 2026,Removal of [Locked] funds,USD,+100.00,\n" +
		"07 Jan 2026,Currency Conversion,EUR,+90.00,"

	result, err := s.service.ImportFromExport(ctx, export, "importer-1")

	s.Require().NoError(err)
	s.Equal(0, result.Imported)
	s.Equal(3, result.Skipped)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (s *ImportServiceTestSuite) TestImport_ReimportIsIdempotent() {
	ctx := context.Background()
	export := exportHeader + "\n" +
		"06 Jan 2026,Monthly Membership Fee,USD,-24.95,"

	existing := &domain.LedgerEntry{EntryID: "already-there"}
	s.mockLedgerRepo.On("FindEntryByNaturalKey", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(existing, nil).Once()

	result, err := s.service.ImportFromExport(ctx, export, "importer-1")

	s.Require().NoError(err)
	s.Equal(0, result.Imported)
	s.Equal(1, result.Skipped)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (s *ImportServiceTestSuite) TestImport_DuplicateRaceCountsAsSkip() {
	ctx := context.Background()
	export := exportHeader + "\n" +
		"06 Jan 2026,Monthly Membership Fee,USD,-24.95,"

	s.mockLedgerRepo.On("FindEntryByNaturalKey", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()
	s.mockLedgerRepo.On("SaveEntry", ctx, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	result, err := s.service.ImportFromExport(ctx, export, "importer-1")

	s.Require().NoError(err)
	s.Equal(0, result.Imported)
	s.Equal(1, result.Skipped)
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *ImportServiceTestSuite) TestImport_MalformedRowsNeverAbort() {
	ctx := context.Background()
	export := exportHeader + "\n" +
		"not a date,Some Description,USD,10.00,\n" +
		",,,,\n" +
		"\n" +
		"07 Jan 2026,Monthly Membership Fee,USD,-24.95,"

	s.mockLedgerRepo.On("FindEntryByNaturalKey", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()
	s.mockLedgerRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Type == domain.KindMembership
	})).Return(nil).Once()

	result, err := s.service.ImportFromExport(ctx, export, "importer-1")

	s.Require().NoError(err)
	s.Equal(1, result.Imported)
	// Blank lines are not counted; the two malformed rows are.
	s.Equal(2, result.Skipped)
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *ImportServiceTestSuite) TestImport_AuditFieldsCarryImporter() {
	ctx := context.Background()
	export := exportHeader + "\n" +
		"06 Jan 2026 23:52,Monthly Membership Fee,USD,-24.95,"

	s.mockLedgerRepo.On("FindEntryByNaturalKey", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()
	s.mockLedgerRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.CreatedBy == "importer-7" &&
			e.EntryDate.Equal(time.Date(2026, 1, 6, 23, 52, 0, 0, time.UTC)) &&
			e.Platform == domain.PlatformFreelancer
	})).Return(nil).Once()

	result, err := s.service.ImportFromExport(ctx, export, "importer-7")

	s.Require().NoError(err)
	s.Equal(1, result.Imported)
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
