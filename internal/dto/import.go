package dto

// ImportRequest carries the raw export text to ingest. The first line is a
// header and is discarded.
type ImportRequest struct {
	Export string `json:"export" binding:"required"`
}

// ImportResult reports how many export rows were persisted and how many were
// skipped (malformed, non-economic, duplicate, or failed to persist).
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
