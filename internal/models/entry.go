package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind mirrors the closed domain enum at the storage layer.
type TransactionKind string

// Platform mirrors the export origin enum at the storage layer.
type Platform string

// LedgerEntry is the database row shape for one persisted financial event.
type LedgerEntry struct {
	EntryID      string           `json:"entryID"`
	EntryDate    time.Time        `json:"entryDate"`
	Description  string           `json:"description"`
	Type         TransactionKind  `json:"type"`
	Amount       decimal.Decimal  `json:"amount"`
	CurrencyCode string           `json:"currencyCode"`
	GST          *decimal.Decimal `json:"gst"`
	ProjectName  *string          `json:"projectName"`
	ClientName   *string          `json:"clientName"`
	Platform     Platform         `json:"platform"`
	ProjectID    *string          `json:"projectID"`
	MilestoneID  *string          `json:"milestoneID"`
	Notes        string           `json:"notes"`
	AuditFields
}
