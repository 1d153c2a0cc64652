package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the closed set of financial event types derived from
// export descriptions. Unclassifiable text maps to KindOther, never an error.
type TransactionKind string

const (
	KindLock               TransactionKind = "LOCK"
	KindUnlock             TransactionKind = "UNLOCK"
	KindCurrencyConversion TransactionKind = "CURRENCY_CONVERSION"
	KindMilestonePayment   TransactionKind = "MILESTONE_PAYMENT"
	KindPreferredFee       TransactionKind = "PREFERRED_FEE"
	KindHourlyFee          TransactionKind = "HOURLY_FEE"
	KindProjectFee         TransactionKind = "PROJECT_FEE"
	KindWithdrawal         TransactionKind = "WITHDRAWAL"
	KindMembership         TransactionKind = "MEMBERSHIP"
	KindExam               TransactionKind = "EXAM"
	KindRefund             TransactionKind = "REFUND"
	KindArbitration        TransactionKind = "ARBITRATION"
	KindOther              TransactionKind = "OTHER"
)

// NonEconomicKinds are platform bookkeeping events (fund locks/unlocks,
// currency conversions) that do not represent real cash movement and are
// never persisted by the importer.
var NonEconomicKinds = map[TransactionKind]bool{
	KindLock:               true,
	KindUnlock:             true,
	KindCurrencyConversion: true,
}

// Platform identifies the source export's origin.
type Platform string

const (
	PlatformFreelancer Platform = "FREELANCER"
)

// LedgerEntry represents one persisted financial event.
//
// The amount sign is semantic: positive means value flowing to the account
// holder (income, unlocks), negative means value flowing out (fees,
// withdrawals, locks). The (EntryDate, Description, Amount) triple is the
// natural key used for import deduplication.
type LedgerEntry struct {
	EntryID      string           `json:"entryID"`      // Primary Key (UUID)
	EntryDate    time.Time        `json:"entryDate"`    // Minute precision
	Description  string           `json:"description"`  // HTML-entity-decoded export text
	Type         TransactionKind  `json:"type"`         // Closed enum (Not Null)
	Amount       decimal.Decimal  `json:"amount"`       // Signed; precise decimal type
	CurrencyCode string           `json:"currencyCode"` // ISO-like code (Not Null)
	GST          *decimal.Decimal `json:"gst"`          // Nullable tax amount
	ProjectName  *string          `json:"projectName"`  // Nullable, derived from description
	ClientName   *string          `json:"clientName"`   // Nullable, derived from description
	Platform     Platform         `json:"platform"`     // Source export origin
	ProjectID    *string          `json:"projectID"`    // FK -> Project, nullable
	MilestoneID  *string          `json:"milestoneID"`  // FK -> Milestone, nullable
	Notes        string           `json:"notes"`        // Free text
	AuditFields
}
