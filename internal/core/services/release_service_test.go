package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flsuite/freelance_ledger_app/internal/apperrors"
	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	"github.com/flsuite/freelance_ledger_app/internal/core/importer"
	portssvc "github.com/flsuite/freelance_ledger_app/internal/core/ports/services"
	"github.com/flsuite/freelance_ledger_app/internal/core/services"
	"github.com/flsuite/freelance_ledger_app/internal/dto"
)

type ReleaseServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.ReleaseSvc
}

func (s *ReleaseServiceTestSuite) SetupTest() {
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.service = services.NewReleaseService(s.mockLedgerRepo)
}

func strPtr(v string) *string { return &v }

func releaseRequest() dto.MilestoneReleaseRequest {
	return dto.MilestoneReleaseRequest{
		MilestoneID:        "ms-1",
		Title:              "Phase 1",
		Amount:             decimal.NewFromInt(1000),
		CurrencyCode:       "USD",
		ProjectName:        strPtr("Website Redesign"),
		ClientName:         strPtr("Acme Corp"),
		PlatformFeePercent: decimal.NewFromInt(10),
	}
}

func (s *ReleaseServiceTestSuite) TestRelease_CreatesPaymentAndFee() {
	ctx := context.Background()
	req := releaseRequest()

	s.mockLedgerRepo.On("FindMilestonePaymentByMilestoneID", ctx, "ms-1").
		Return(nil, apperrors.ErrNotFound).Once()
	s.mockLedgerRepo.On("SaveEntries", ctx, mock.MatchedBy(func(entries []domain.LedgerEntry) bool {
		if len(entries) != 2 {
			return false
		}
		payment, fee := entries[0], entries[1]
		return payment.Type == domain.KindMilestonePayment &&
			payment.Amount.Equal(decimal.NewFromInt(1000)) &&
			payment.MilestoneID != nil && *payment.MilestoneID == "ms-1" &&
			fee.Type == domain.KindProjectFee &&
			fee.Amount.Equal(decimal.NewFromInt(-100))
	})).Return(nil).Once()

	entries, err := s.service.OnMilestoneReleased(ctx, req, "user-1")

	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *ReleaseServiceTestSuite) TestRelease_NoFeeEntryWhenPercentZero() {
	ctx := context.Background()
	req := releaseRequest()
	req.PlatformFeePercent = decimal.Zero

	s.mockLedgerRepo.On("FindMilestonePaymentByMilestoneID", ctx, "ms-1").
		Return(nil, apperrors.ErrNotFound).Once()
	s.mockLedgerRepo.On("SaveEntries", ctx, mock.MatchedBy(func(entries []domain.LedgerEntry) bool {
		return len(entries) == 1 && entries[0].Type == domain.KindMilestonePayment
	})).Return(nil).Once()

	entries, err := s.service.OnMilestoneReleased(ctx, req, "user-1")

	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *ReleaseServiceTestSuite) TestRelease_IdempotentPerMilestone() {
	ctx := context.Background()
	req := releaseRequest()

	existing := &domain.LedgerEntry{EntryID: "entry-1", Type: domain.KindMilestonePayment}
	s.mockLedgerRepo.On("FindMilestonePaymentByMilestoneID", ctx, "ms-1").
		Return(existing, nil).Once()

	entries, err := s.service.OnMilestoneReleased(ctx, req, "user-1")

	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("entry-1", entries[0].EntryID)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SaveEntries", mock.Anything, mock.Anything)
}

func (s *ReleaseServiceTestSuite) TestRelease_DescriptionsRoundTripThroughImporter() {
	ctx := context.Background()
	req := releaseRequest()

	var saved []domain.LedgerEntry
	s.mockLedgerRepo.On("FindMilestonePaymentByMilestoneID", ctx, "ms-1").
		Return(nil, apperrors.ErrNotFound).Once()
	s.mockLedgerRepo.On("SaveEntries", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.LedgerEntry)
		}).Return(nil).Once()

	_, err := s.service.OnMilestoneReleased(ctx, req, "user-1")
	s.Require().NoError(err)
	s.Require().Len(saved, 2)

	// A subsequent export of these entries must classify and extract back to
	// the same kinds and names.
	s.Equal(domain.KindMilestonePayment, importer.Classify(saved[0].Description))
	project, client := importer.ExtractEntities(saved[0].Description)
	s.Require().NotNil(project)
	s.Equal("Website Redesign", *project)
	s.Require().NotNil(client)
	s.Equal("Acme Corp", *client)

	s.Equal(domain.KindProjectFee, importer.Classify(saved[1].Description))
}

func TestReleaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReleaseServiceTestSuite))
}
