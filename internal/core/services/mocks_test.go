package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	portsrepo "github.com/flsuite/freelance_ledger_app/internal/core/ports/repositories"
)

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	var entry *domain.LedgerEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.LedgerEntry)
	}
	return entry, args.Error(1)
}

func (m *MockLedgerRepository) FindEntryByNaturalKey(ctx context.Context, entryDate time.Time, description string, amount decimal.Decimal) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryDate, description, amount)
	var entry *domain.LedgerEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.LedgerEntry)
	}
	return entry, args.Error(1)
}

func (m *MockLedgerRepository) FindMilestonePaymentByMilestoneID(ctx context.Context, milestoneID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, milestoneID)
	var entry *domain.LedgerEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.LedgerEntry)
	}
	return entry, args.Error(1)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, filters portsrepo.EntryFilters, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, filters, limit, nextToken)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockLedgerRepository) ScanEntries(ctx context.Context, from, to *time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, from, to)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	return entries, args.Error(1)
}

func (m *MockLedgerRepository) ListMilestonePaymentsByProjectName(ctx context.Context, projectName string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, projectName)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	return entries, args.Error(1)
}

func (m *MockLedgerRepository) ListProjectRollups(ctx context.Context) ([]domain.ProjectRollup, error) {
	args := m.Called(ctx)
	var rollups []domain.ProjectRollup
	if args.Get(0) != nil {
		rollups = args.Get(0).([]domain.ProjectRollup)
	}
	return rollups, args.Error(1)
}

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLedgerRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockLedgerRepository) LinkEntriesToProject(ctx context.Context, entryIDs []string, projectID string, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, entryIDs, projectID, updatedByUserID, updatedAt)
	return args.Error(0)
}

// --- Mock ProjectRepository ---

type MockProjectRepository struct {
	mock.Mock
}

var _ portsrepo.ProjectRepositoryFacade = (*MockProjectRepository)(nil)

func (m *MockProjectRepository) FindClientByName(ctx context.Context, name string) (*domain.Client, error) {
	args := m.Called(ctx, name)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockProjectRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) SaveMilestones(ctx context.Context, milestones []domain.Milestone) error {
	args := m.Called(ctx, milestones)
	return args.Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}
