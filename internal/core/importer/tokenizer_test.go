package importer_test

import (
	"testing"

	"github.com/flsuite/freelance_ledger_app/internal/core/importer"
	"github.com/stretchr/testify/assert"
)

func TestTokenizeLine_PlainFields(t *testing.T) {
	fields := importer.TokenizeLine("06 Jan 2026 23:52,Express Withdrawal,USD,-50.00,")
	assert.Equal(t, []string{"06 Jan 2026 23:52", "Express Withdrawal", "USD", "-50.00", ""}, fields)
}

func TestTokenizeLine_QuotedSeparator(t *testing.T) {
	fields := importer.TokenizeLine(`01 Feb 2026,"Done Milestone Payment, ref 42",AUD,"+1,234.56",0.00`)
	assert.Equal(t, []string{"01 Feb 2026", "Done Milestone Payment, ref 42", "AUD", "+1,234.56", "0.00"}, fields)
}

func TestTokenizeLine_TrimsSurroundingWhitespace(t *testing.T) {
	fields := importer.TokenizeLine("  06 Jan 2026 , Membership fee ,USD, -9.95 ,")
	assert.Equal(t, []string{"06 Jan 2026", "Membership fee", "USD", "-9.95", ""}, fields)
}

func TestTokenizeLine_UnterminatedQuote(t *testing.T) {
	// A dangling quote swallows the rest of the line into the open field.
	fields := importer.TokenizeLine(`01 Feb 2026,"Payment, partial,USD`)
	assert.Equal(t, []string{"01 Feb 2026", "Payment, partial,USD"}, fields)
}

func TestTokenizeLine_EmptyLine(t *testing.T) {
	assert.Equal(t, []string{""}, importer.TokenizeLine(""))
}
