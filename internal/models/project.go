package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is the database row shape for a client.
type Client struct {
	ClientID   string `json:"clientID"`
	Name       string `json:"name"`
	ClientType string `json:"clientType"`
	AuditFields
}

// Project is the database row shape for a project.
type Project struct {
	ProjectID    string          `json:"projectID"`
	Name         string          `json:"name"`
	ClientID     string          `json:"clientID"`
	Status       string          `json:"status"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      *time.Time      `json:"endDate"`
	Budget       decimal.Decimal `json:"budget"`
	CurrencyCode string          `json:"currencyCode"`
	AuditFields
}

// Milestone is the database row shape for a milestone.
type Milestone struct {
	MilestoneID  string          `json:"milestoneID"`
	ProjectID    string          `json:"projectID"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Status       string          `json:"status"`
	DueDate      *time.Time      `json:"dueDate"`
	ReleasedAt   *time.Time      `json:"releasedAt"`
	AuditFields
}
