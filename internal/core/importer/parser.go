package importer

import (
	"html"
	"strings"
	"time"

	"github.com/flsuite/freelance_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Expected export column order.
const (
	colDate = iota
	colDescription
	colCurrency
	colAmount
	colGST
)

// Export dates look like "06 Jan 2026 23:52"; the time part is optional.
var dateLayouts = []string{
	"02 Jan 2006 15:04",
	"02 Jan 2006",
}

// ParsedRow is the typed intermediate record produced from one export row.
type ParsedRow struct {
	Date         time.Time
	Description  string
	Type         domain.TransactionKind
	Amount       decimal.Decimal
	CurrencyCode string
	GST          *decimal.Decimal
	ProjectName  *string
	ClientName   *string
	Platform     domain.Platform
}

// ParseRow converts a tokenized export row into a ParsedRow, classifying the
// description and extracting project/client names. It returns nil when the
// row is malformed (empty date or description, or an unparseable date); such
// rows are discarded, not surfaced as errors.
func ParseRow(fields []string) *ParsedRow {
	rawDate := fieldAt(fields, colDate)
	rawDescription := fieldAt(fields, colDescription)
	if rawDate == "" || rawDescription == "" {
		return nil
	}

	date, ok := parseDate(rawDate)
	if !ok {
		return nil
	}

	projectName, clientName := ExtractEntities(rawDescription)

	row := &ParsedRow{
		Date:         date,
		Description:  html.UnescapeString(rawDescription),
		Type:         Classify(rawDescription),
		Amount:       parseAmount(fieldAt(fields, colAmount)),
		CurrencyCode: fieldAt(fields, colCurrency),
		ProjectName:  projectName,
		ClientName:   clientName,
		Platform:     domain.PlatformFreelancer,
	}

	if raw := fieldAt(fields, colGST); raw != "" {
		gst := parseAmount(raw)
		row.GST = &gst
	}

	return row
}

func fieldAt(fields []string, index int) string {
	if index >= len(fields) {
		return ""
	}
	return fields[index]
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmount strips the leading plus sign and thousands separators before
// parsing. A malformed amount defaults to zero rather than failing the row.
func parseAmount(raw string) decimal.Decimal {
	cleaned := strings.NewReplacer("+", "", ",", "").Replace(strings.TrimSpace(raw))
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
