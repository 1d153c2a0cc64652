package importer

import "strings"

const fieldSeparator = ','

// TokenizeLine splits one raw export line into trimmed fields.
// A double quote toggles quoted mode; while inside a quoted field the
// separator is literal text rather than a field boundary. The export format
// has no escape sequence for a quote inside a quoted field.
func TokenizeLine(line string) []string {
	fields := make([]string, 0, 5)
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == fieldSeparator && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}
