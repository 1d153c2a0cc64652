package dto

import (
	"github.com/shopspring/decimal"
)

// MilestoneReleaseRequest is the descriptor supplied by the external project
// subsystem when a milestone is marked released.
type MilestoneReleaseRequest struct {
	MilestoneID        string          `json:"milestoneID" binding:"required"`
	Title              string          `json:"title" binding:"required"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode       string          `json:"currencyCode" validate:"required,len=3"`
	ProjectID          *string         `json:"projectID"`
	ProjectName        *string         `json:"projectName"`
	ClientName         *string         `json:"clientName"`
	PlatformFeePercent decimal.Decimal `json:"platformFeePercent"`
}

// Validate applies the struct-level validation rules.
func (r MilestoneReleaseRequest) Validate() error {
	return validate.Struct(r)
}

// BackfillProjectRequest names a project observed only in the ledger that
// should be synthesized into a Project/Milestone pair.
type BackfillProjectRequest struct {
	ProjectName string  `json:"projectName" binding:"required"`
	ClientName  *string `json:"clientName"`
}
