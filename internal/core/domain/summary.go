package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyTotals accumulates amounts keyed by currency code.
type CurrencyTotals map[string]decimal.Decimal

// Add accumulates amount into the total for the given currency.
func (t CurrencyTotals) Add(currencyCode string, amount decimal.Decimal) {
	t[currencyCode] = t[currencyCode].Add(amount)
}

// KindSummary holds the count and per-currency totals for one transaction kind.
type KindSummary struct {
	Count  int            `json:"count"`
	Totals CurrencyTotals `json:"totals"`
}

// GroupSummary holds the count and per-currency totals for one project or client.
type GroupSummary struct {
	Count  int            `json:"count"`
	Totals CurrencyTotals `json:"totals"`
}

// FinancialSummary is the aggregated view over a date-bounded slice of the ledger.
type FinancialSummary struct {
	From             *time.Time                      `json:"from"`
	To               *time.Time                      `json:"to"`
	TotalEarnings    CurrencyTotals                  `json:"totalEarnings"`    // positive MILESTONE_PAYMENT entries
	TotalFees        CurrencyTotals                  `json:"totalFees"`        // abs of PROJECT_FEE, PREFERRED_FEE, HOURLY_FEE
	TotalWithdrawals CurrencyTotals                  `json:"totalWithdrawals"` // abs of negative WITHDRAWAL entries
	ByType           map[TransactionKind]KindSummary `json:"byType"`
	ByProject        map[string]GroupSummary         `json:"byProject"`
	ByClient         map[string]GroupSummary         `json:"byClient"`
}

// ProjectRollup is one row of the distinct-projects listing derived from
// milestone payment history in the ledger.
type ProjectRollup struct {
	Name             string          `json:"name"`
	ClientName       *string         `json:"clientName"`
	TotalEarned      decimal.Decimal `json:"totalEarned"`
	CurrencyCode     string          `json:"currencyCode"`
	PaymentCount     int             `json:"paymentCount"`
	FirstPaymentDate time.Time       `json:"firstPaymentDate"`
	LastPaymentDate  time.Time       `json:"lastPaymentDate"`
}
