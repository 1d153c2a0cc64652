package importer

import (
	"html"
	"regexp"
	"strings"
)

// extractorFunc attempts to derive a project name (and possibly a client
// name) from one description. ok reports whether the pattern matched.
type extractorFunc func(description string) (projectName, clientName *string, ok bool)

var (
	fromForProjectPattern = regexp.MustCompile(`from\s+(.+?)\s+for project\s+(.+)$`)
	feeTakenPattern       = regexp.MustCompile(`fee taken \(([^)]+)\)`)
	forProjectPattern     = regexp.MustCompile(`for project\s+(.+)$`)
)

// extractorChain is tried in order; the first extractor that matches wins and
// the remaining patterns are not attempted. Only the "from X for project Y"
// pattern ever produces a client name, so it must stay first.
var extractorChain = []extractorFunc{
	extractFromForProject,
	extractFeeTaken,
	extractForProject,
}

// ExtractEntities derives the associated project and client names from the
// original (non-lower-cased) description. Both results are nil when no
// pattern matches.
func ExtractEntities(description string) (projectName, clientName *string) {
	for _, extract := range extractorChain {
		if project, client, ok := extract(description); ok {
			return project, client
		}
	}
	return nil, nil
}

func extractFromForProject(description string) (*string, *string, bool) {
	m := fromForProjectPattern.FindStringSubmatch(description)
	if m == nil {
		return nil, nil, false
	}
	return cleanCapture(m[2]), cleanCapture(m[1]), true
}

func extractFeeTaken(description string) (*string, *string, bool) {
	m := feeTakenPattern.FindStringSubmatch(description)
	if m == nil {
		return nil, nil, false
	}
	return cleanCapture(m[1]), nil, true
}

func extractForProject(description string) (*string, *string, bool) {
	m := forProjectPattern.FindStringSubmatch(description)
	if m == nil {
		return nil, nil, false
	}
	return cleanCapture(m[1]), nil, true
}

// cleanCapture cuts the capture at an optional trailing opening parenthesis,
// decodes HTML entities and trims whitespace. Empty captures become nil.
func cleanCapture(capture string) *string {
	if i := strings.Index(capture, "("); i >= 0 {
		capture = capture[:i]
	}
	capture = strings.TrimSpace(html.UnescapeString(capture))
	if capture == "" {
		return nil
	}
	return &capture
}
