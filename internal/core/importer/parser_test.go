package importer_test

import (
	"testing"
	"time"

	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	"github.com/flsuite/freelance_ledger_app/internal/core/importer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow_FullRow(t *testing.T) {
	row := importer.ParseRow([]string{
		"06 Jan 2026 23:52",
		"Done Milestone Payment from John D. for project Website Redesign (ref 123)",
		"USD",
		"+1,234.56",
		"0.00",
	})

	require.NotNil(t, row)
	assert.Equal(t, time.Date(2026, time.January, 6, 23, 52, 0, 0, time.UTC), row.Date)
	assert.Equal(t, domain.KindMilestonePayment, row.Type)
	assert.True(t, row.Amount.Equal(decimal.RequireFromString("1234.56")), "amount was %s", row.Amount)
	assert.Equal(t, "USD", row.CurrencyCode)
	require.NotNil(t, row.GST)
	assert.True(t, row.GST.IsZero())
	require.NotNil(t, row.ProjectName)
	assert.Equal(t, "Website Redesign", *row.ProjectName)
	require.NotNil(t, row.ClientName)
	assert.Equal(t, "John D.", *row.ClientName)
	assert.Equal(t, domain.PlatformFreelancer, row.Platform)
}

func TestParseRow_DateWithoutTimeDefaultsToMidnight(t *testing.T) {
	row := importer.ParseRow([]string{"01 Feb 2026", "Membership fee", "USD", "-9.95", ""})
	require.NotNil(t, row)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), row.Date)
	assert.Equal(t, domain.KindMembership, row.Type)
}

func TestParseRow_DiscardsMalformedRows(t *testing.T) {
	assert.Nil(t, importer.ParseRow([]string{"", "Membership fee", "USD", "-9.95", ""}), "empty date")
	assert.Nil(t, importer.ParseRow([]string{"01 Feb 2026", "", "USD", "-9.95", ""}), "empty description")
	assert.Nil(t, importer.ParseRow([]string{"2026-02-01", "Membership fee", "USD", "-9.95", ""}), "unparseable date")
}

func TestParseRow_AmountParsing(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"+1,234.56", "1234.56"},
		{"-50", "-50"},
		{"", "0"},
		{"garbage", "0"},
	}

	for _, tc := range cases {
		row := importer.ParseRow([]string{"01 Feb 2026", "Exam fee: English", "USD", tc.raw, ""})
		require.NotNil(t, row)
		assert.True(t, row.Amount.Equal(decimal.RequireFromString(tc.want)),
			"raw %q: got %s, want %s", tc.raw, row.Amount, tc.want)
	}
}

func TestParseRow_AbsentGSTIsNil(t *testing.T) {
	row := importer.ParseRow([]string{"01 Feb 2026", "Exam fee: English", "USD", "-15.00"})
	require.NotNil(t, row)
	assert.Nil(t, row.GST)
}

func TestParseRow_DecodesDescriptionEntities(t *testing.T) {
	row := importer.ParseRow([]string{"01 Feb 2026", "Refund for Design &amp; Build", "USD", "12.00", ""})
	require.NotNil(t, row)
	assert.Equal(t, "Refund for Design & Build", row.Description)
	assert.Equal(t, domain.KindRefund, row.Type)
}

func TestParseRow_UnclassifiedTextNeverNilKind(t *testing.T) {
	row := importer.ParseRow([]string{"01 Feb 2026", "Completely novel event text", "USD", "1.00", ""})
	require.NotNil(t, row)
	assert.Equal(t, domain.KindOther, row.Type)
}
