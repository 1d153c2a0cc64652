package importer_test

import (
	"testing"

	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	"github.com/flsuite/freelance_ledger_app/internal/core/importer"
	"github.com/stretchr/testify/assert"
)

func TestClassify_RuleTable(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        domain.TransactionKind
	}{
		{"lock", "Funds Locked due to process Express Withdrawal request", domain.KindLock},
		{"unlock", "Removal of [Locked Funds] after dispute resolution", domain.KindUnlock},
		{"currency conversion", "Currency Conversion from USD to AUD", domain.KindCurrencyConversion},
		{"milestone payment", "Done Milestone Payment received from John for project Website", domain.KindMilestonePayment},
		{"transfer from", "Transfer from account balance", domain.KindMilestonePayment},
		{"preferred fee", "Preferred Freelancer Program Project Fee taken (Website)", domain.KindPreferredFee},
		{"hourly fee", "Hourly Project Fee for invoice 991", domain.KindHourlyFee},
		{"project fee", "Project fee taken (Website Redesign)", domain.KindProjectFee},
		{"offsite payment", "Offsite Payment fee", domain.KindProjectFee},
		{"express withdrawal", "Express Withdrawal to bank account", domain.KindWithdrawal},
		{"payoneer withdrawal", "Payoneer Withdrawal request", domain.KindWithdrawal},
		{"membership", "Monthly Membership fee - Plus plan", domain.KindMembership},
		{"exam", "Exam fee: US English Level 1", domain.KindExam},
		{"refund", "Refund of project fee", domain.KindRefund},
		{"arbitration", "Arbitration fee for milestone dispute", domain.KindArbitration},
		{"unclassified", "Some entirely novel platform event", domain.KindOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, importer.Classify(tc.description))
		})
	}
}

// The lock/unlock rules must win over the withdrawal rule even when the
// description textually contains "express withdrawal" as a sub-clause.
func TestClassify_LockPrecedesWithdrawal(t *testing.T) {
	assert.Equal(t, domain.KindLock, importer.Classify("Locked due to process Express Withdrawal"))
	assert.Equal(t, domain.KindUnlock, importer.Classify("Removal of [Locked Funds] for Express Withdrawal request"))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, domain.KindMilestonePayment, importer.Classify("DONE MILESTONE PAYMENT RECEIVED"))
}
