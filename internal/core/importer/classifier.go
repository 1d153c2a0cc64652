package importer

import (
	"strings"

	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
)

// classifierRule maps a set of description phrases to a transaction kind.
type classifierRule struct {
	Kind    domain.TransactionKind
	Phrases []string
}

// classifierRules is evaluated top to bottom; the first rule with any phrase
// present in the lower-cased description wins. Order is load-bearing: a
// lock/unlock description can contain "express withdrawal" as a sub-clause,
// so the LOCK and UNLOCK rules must stay ahead of the WITHDRAWAL rule.
var classifierRules = []classifierRule{
	{domain.KindLock, []string{"locked due to process"}},
	{domain.KindUnlock, []string{"removal of [locked"}},
	{domain.KindCurrencyConversion, []string{"currency conversion"}},
	{domain.KindMilestonePayment, []string{"done milestone payment", "transfer from"}},
	{domain.KindPreferredFee, []string{"preferred freelancer program project fee"}},
	{domain.KindHourlyFee, []string{"hourly project fee"}},
	{domain.KindProjectFee, []string{"project fee taken", "offsite payment"}},
	{domain.KindWithdrawal, []string{"express withdrawal", "payoneer withdrawal"}},
	{domain.KindMembership, []string{"membership"}},
	{domain.KindExam, []string{"exam fee"}},
	{domain.KindRefund, []string{"refund"}},
	{domain.KindArbitration, []string{"arbitration"}},
}

// Classify maps a free-text transaction description to a TransactionKind.
// Unclassifiable text yields KindOther, never an error.
func Classify(description string) domain.TransactionKind {
	lowered := strings.ToLower(description)
	for _, rule := range classifierRules {
		for _, phrase := range rule.Phrases {
			if strings.Contains(lowered, phrase) {
				return rule.Kind
			}
		}
	}
	return domain.KindOther
}
