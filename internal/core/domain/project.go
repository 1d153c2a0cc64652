package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus indicates the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectCompleted ProjectStatus = "COMPLETED"
)

// MilestoneStatus indicates the lifecycle state of a milestone.
type MilestoneStatus string

const (
	MilestonePending  MilestoneStatus = "PENDING"
	MilestoneReleased MilestoneStatus = "RELEASED"
)

// ClientType classifies how a client relationship was established.
type ClientType string

const (
	ClientContracted   ClientType = "CONTRACTED"
	ClientUnassociated ClientType = "UNASSOCIATED"
)

// Client represents a paying client, possibly synthesized from ledger history.
type Client struct {
	ClientID   string     `json:"clientID"`
	Name       string     `json:"name"`
	ClientType ClientType `json:"clientType"`
	AuditFields
}

// Project is the external project subsystem's entity as consumed here.
type Project struct {
	ProjectID    string          `json:"projectID"`
	Name         string          `json:"name"`
	ClientID     string          `json:"clientID"`
	Status       ProjectStatus   `json:"status"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      *time.Time      `json:"endDate"`
	Budget       decimal.Decimal `json:"budget"`
	CurrencyCode string          `json:"currencyCode"`
	AuditFields
}

// Milestone is a contracted payment milestone within a project.
type Milestone struct {
	MilestoneID  string          `json:"milestoneID"`
	ProjectID    string          `json:"projectID"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Status       MilestoneStatus `json:"status"`
	DueDate      *time.Time      `json:"dueDate"`
	ReleasedAt   *time.Time      `json:"releasedAt"`
	AuditFields
}
