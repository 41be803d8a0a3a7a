package ai

import "context"

// Candidate is an employment entry proposed by an AI provider. Fields map
// one-to-one onto the JSON shape the extraction prompt requests.
type Candidate struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// Extractor is the narrow contract the deterministic pipeline depends on.
// Implementations receive raw CV text (or a bounded excerpt) and return
// candidate work-experience entries, or an error. Callers treat any failure
// as zero entries; it must never abort the rest of the pipeline.
type Extractor interface {
	ExtractExperience(ctx context.Context, text string) ([]Candidate, error)
}
