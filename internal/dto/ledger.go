package dto

import (
	"time"

	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// CreateEntryRequest carries the fields for a manually created ledger entry.
type CreateEntryRequest struct {
	Date         time.Time              `json:"date" binding:"required"`
	Description  string                 `json:"description" binding:"required"`
	Type         domain.TransactionKind `json:"type" validate:"required,oneof=LOCK UNLOCK CURRENCY_CONVERSION MILESTONE_PAYMENT PREFERRED_FEE HOURLY_FEE PROJECT_FEE WITHDRAWAL MEMBERSHIP EXAM REFUND ARBITRATION OTHER"`
	Amount       decimal.Decimal        `json:"amount"`
	CurrencyCode string                 `json:"currencyCode" validate:"required,len=3"`
	GST          *decimal.Decimal       `json:"gst"`
	ProjectName  *string                `json:"projectName"`
	ClientName   *string                `json:"clientName"`
	Notes        string                 `json:"notes"`
}

// Validate applies the struct-level validation rules.
func (r CreateEntryRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateEntryRequest carries a partial update; nil fields are left untouched.
type UpdateEntryRequest struct {
	Date         *time.Time              `json:"date"`
	Description  *string                 `json:"description"`
	Type         *domain.TransactionKind `json:"type" validate:"omitempty,oneof=LOCK UNLOCK CURRENCY_CONVERSION MILESTONE_PAYMENT PREFERRED_FEE HOURLY_FEE PROJECT_FEE WITHDRAWAL MEMBERSHIP EXAM REFUND ARBITRATION OTHER"`
	Amount       *decimal.Decimal        `json:"amount"`
	CurrencyCode *string                 `json:"currencyCode" validate:"omitempty,len=3"`
	GST          *decimal.Decimal        `json:"gst"`
	ProjectName  *string                 `json:"projectName"`
	ClientName   *string                 `json:"clientName"`
	Notes        *string                 `json:"notes"`
}

// Validate applies the struct-level validation rules.
func (r UpdateEntryRequest) Validate() error {
	return validate.Struct(r)
}

// ListEntriesParams holds the query filters for listing ledger entries.
type ListEntriesParams struct {
	Type         *domain.TransactionKind `form:"type"`
	CurrencyCode *string                 `form:"currency"`
	ProjectName  *string                 `form:"projectName"`
	Search       *string                 `form:"search"`
	From         *time.Time              `form:"from" time_format:"2006-01-02"`
	To           *time.Time              `form:"to" time_format:"2006-01-02"`
	Limit        int                     `form:"limit"`
	NextToken    *string                 `form:"nextToken"`
}

// EntryResponse defines the data returned for one ledger entry.
type EntryResponse struct {
	EntryID      string           `json:"entryID"`
	Date         time.Time        `json:"date"`
	Description  string           `json:"description"`
	Type         string           `json:"type"`
	Amount       decimal.Decimal  `json:"amount"`
	CurrencyCode string           `json:"currencyCode"`
	GST          *decimal.Decimal `json:"gst,omitempty"`
	ProjectName  *string          `json:"projectName,omitempty"`
	ClientName   *string          `json:"clientName,omitempty"`
	Platform     string           `json:"platform"`
	ProjectID    *string          `json:"projectID,omitempty"`
	MilestoneID  *string          `json:"milestoneID,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ListEntriesResponse is the paginated listing result.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToEntryResponse(e *domain.LedgerEntry) EntryResponse {
	return EntryResponse{
		EntryID:      e.EntryID,
		Date:         e.EntryDate,
		Description:  e.Description,
		Type:         string(e.Type),
		Amount:       e.Amount,
		CurrencyCode: e.CurrencyCode,
		GST:          e.GST,
		ProjectName:  e.ProjectName,
		ClientName:   e.ClientName,
		Platform:     string(e.Platform),
		ProjectID:    e.ProjectID,
		MilestoneID:  e.MilestoneID,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
	}
}

// ToEntryResponses converts a slice of domain entries to response DTOs.
func ToEntryResponses(entries []domain.LedgerEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
