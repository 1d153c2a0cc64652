package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flsuite/freelance_ledger_app/internal/apperrors"
	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	portssvc "github.com/flsuite/freelance_ledger_app/internal/core/ports/services"
	"github.com/flsuite/freelance_ledger_app/internal/core/services"
	"github.com/flsuite/freelance_ledger_app/internal/dto"
)

type BackfillServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo  *MockLedgerRepository
	mockProjectRepo *MockProjectRepository
	service         portssvc.BackfillSvc
}

func (s *BackfillServiceTestSuite) SetupTest() {
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.mockProjectRepo = new(MockProjectRepository)
	s.service = services.NewBackfillService(s.mockLedgerRepo, s.mockProjectRepo)
}

func paymentEntry(id string, day int, amount string) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:      id,
		EntryDate:    time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC),
		Type:         domain.KindMilestonePayment,
		Amount:       decimal.RequireFromString(amount),
		CurrencyCode: "USD",
		ProjectName:  strPtr("Website Redesign"),
		ClientName:   strPtr("Acme Corp"),
	}
}

func (s *BackfillServiceTestSuite) TestBackfill_SynthesizesProjectFromHistory() {
	ctx := context.Background()
	payments := []domain.LedgerEntry{
		paymentEntry("e1", 5, "100"),
		paymentEntry("e2", 20, "200"),
	}

	s.mockLedgerRepo.On("ListMilestonePaymentsByProjectName", ctx, "Website Redesign").
		Return(payments, nil).Once()
	s.mockProjectRepo.On("FindClientByName", ctx, "Acme Corp").
		Return(nil, apperrors.ErrNotFound).Once()
	s.mockProjectRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == "Acme Corp" && c.ClientType == domain.ClientUnassociated
	})).Return(nil).Once()
	s.mockProjectRepo.On("SaveProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Name == "Website Redesign" &&
			p.Status == domain.ProjectCompleted &&
			p.Budget.Equal(decimal.NewFromInt(300)) &&
			p.StartDate.Equal(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)) &&
			p.EndDate != nil && p.EndDate.Equal(time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)) &&
			p.CurrencyCode == "USD"
	})).Return(nil).Once()
	s.mockProjectRepo.On("SaveMilestones", ctx, mock.MatchedBy(func(milestones []domain.Milestone) bool {
		if len(milestones) != 2 {
			return false
		}
		for _, m := range milestones {
			if m.Status != domain.MilestoneReleased || m.ReleasedAt == nil {
				return false
			}
		}
		return true
	})).Return(nil).Once()
	s.mockLedgerRepo.On("LinkEntriesToProject", ctx, []string{"e1", "e2"}, mock.Anything, "user-1", mock.Anything).
		Return(nil).Once()

	project, err := s.service.CreateProjectFromLedgerHistory(ctx, dto.BackfillProjectRequest{ProjectName: "Website Redesign"}, "user-1")

	s.Require().NoError(err)
	s.Require().NotNil(project)
	s.Equal(domain.ProjectCompleted, project.Status)
	s.mockLedgerRepo.AssertExpectations(s.T())
	s.mockProjectRepo.AssertExpectations(s.T())
}

func (s *BackfillServiceTestSuite) TestBackfill_ReusesExistingClient() {
	ctx := context.Background()
	payments := []domain.LedgerEntry{paymentEntry("e1", 5, "100")}
	existingClient := &domain.Client{ClientID: "c-1", Name: "Acme Corp", ClientType: domain.ClientContracted}

	s.mockLedgerRepo.On("ListMilestonePaymentsByProjectName", ctx, "Website Redesign").
		Return(payments, nil).Once()
	s.mockProjectRepo.On("FindClientByName", ctx, "Acme Corp").
		Return(existingClient, nil).Once()
	s.mockProjectRepo.On("SaveProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.ClientID == "c-1"
	})).Return(nil).Once()
	s.mockProjectRepo.On("SaveMilestones", ctx, mock.Anything).Return(nil).Once()
	s.mockLedgerRepo.On("LinkEntriesToProject", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()

	_, err := s.service.CreateProjectFromLedgerHistory(ctx, dto.BackfillProjectRequest{ProjectName: "Website Redesign"}, "user-1")

	s.Require().NoError(err)
	s.mockProjectRepo.AssertNotCalled(s.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (s *BackfillServiceTestSuite) TestBackfill_NoPaymentsIsNoData() {
	ctx := context.Background()
	s.mockLedgerRepo.On("ListMilestonePaymentsByProjectName", ctx, "Ghost Project").
		Return(nil, nil).Once()

	project, err := s.service.CreateProjectFromLedgerHistory(ctx, dto.BackfillProjectRequest{ProjectName: "Ghost Project"}, "user-1")

	s.Require().Error(err)
	s.Nil(project)
	s.ErrorIs(err, apperrors.ErrNoData)
	s.mockProjectRepo.AssertNotCalled(s.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (s *BackfillServiceTestSuite) TestBackfill_ExplicitClientNameWins() {
	ctx := context.Background()
	payments := []domain.LedgerEntry{paymentEntry("e1", 5, "100")}

	s.mockLedgerRepo.On("ListMilestonePaymentsByProjectName", ctx, "Website Redesign").
		Return(payments, nil).Once()
	s.mockProjectRepo.On("FindClientByName", ctx, "Different Client").
		Return(nil, apperrors.ErrNotFound).Once()
	s.mockProjectRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == "Different Client"
	})).Return(nil).Once()
	s.mockProjectRepo.On("SaveProject", ctx, mock.Anything).Return(nil).Once()
	s.mockProjectRepo.On("SaveMilestones", ctx, mock.Anything).Return(nil).Once()
	s.mockLedgerRepo.On("LinkEntriesToProject", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()

	_, err := s.service.CreateProjectFromLedgerHistory(ctx, dto.BackfillProjectRequest{
		ProjectName: "Website Redesign",
		ClientName:  strPtr("Different Client"),
	}, "user-1")

	s.Require().NoError(err)
	s.mockProjectRepo.AssertExpectations(s.T())
}

func TestBackfillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BackfillServiceTestSuite))
}
