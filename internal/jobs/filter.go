package jobs

import (
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// SortOrder is one of the fixed orderings the engine supports.
type SortOrder string

const (
	SortBestMatch SortOrder = "Best Match"
	SortNewest    SortOrder = "Newest"
	SortOldest    SortOrder = "Oldest"
	SortCompanyAZ SortOrder = "Company A–Z"
)

// scoreBuckets are the only minimum-score thresholds the engine applies,
// highest first. Inputs snap down to the nearest bucket; anything below the
// lowest bucket means no score filter at all.
var scoreBuckets = []int{80, 70, 60, 50}

// FilterInput carries raw, untrusted filter criteria. Fields are typed as
// any because they arrive from user forms and flags; normalization is total
// and never fails on malformed values.
type FilterInput struct {
	Location     any `json:"location" mapstructure:"location"`
	RadiusKm     any `json:"radius_km" mapstructure:"radius_km"`
	MinimumScore any `json:"minimum_score" mapstructure:"minimum_score"`
	SortBy       any `json:"sort_by" mapstructure:"sort_by"`
}

// AppliedFilters echoes the normalized criteria the engine actually used,
// so callers can reconcile what the user asked for versus what applied.
// Nil pointers mean the criterion was not applied ("Any" for the score).
type AppliedFilters struct {
	Location     *string   `json:"location"`
	RadiusKm     *float64  `json:"radius_km"`
	MinimumScore *int      `json:"minimum_score"`
	SortBy       SortOrder `json:"sort_by"`
}

// Result is the output of one engine invocation: a freshly built list plus
// the normalized filters.
type Result struct {
	Jobs    []*Job         `json:"filtered_jobs"`
	Applied AppliedFilters `json:"applied_filters"`
}

// NormalizeFilters reduces raw input to the criteria the engine applies.
// Rules: a blank location is unset; a radius is only meaningful together
// with a location; the minimum score snaps down to a fixed bucket; the sort
// key is restricted to the known orders with Best Match as the default.
func NormalizeFilters(in FilterInput) AppliedFilters {
	applied := AppliedFilters{SortBy: normalizeSortOrder(in.SortBy)}

	if location := strings.TrimSpace(cast.ToString(in.Location)); location != "" {
		applied.Location = &location

		if radius, err := cast.ToFloat64E(in.RadiusKm); err == nil && radius > 0 {
			applied.RadiusKm = &radius
		}
	}

	if score, err := cast.ToFloat64E(in.MinimumScore); err == nil {
		for _, bucket := range scoreBuckets {
			if score >= float64(bucket) {
				b := bucket
				applied.MinimumScore = &b
				break
			}
		}
	}

	return applied
}

func normalizeSortOrder(v any) SortOrder {
	raw := strings.TrimSpace(cast.ToString(v))
	for _, order := range []SortOrder{SortBestMatch, SortNewest, SortOldest, SortCompanyAZ} {
		if strings.EqualFold(raw, string(order)) {
			return order
		}
	}
	// Accept the plain-hyphen spelling of the company ordering.
	if strings.EqualFold(raw, "Company A-Z") {
		return SortCompanyAZ
	}
	return SortBestMatch
}

// Apply filters and sorts the provided records. The input slice and its
// records are left untouched; the result holds a new list. Apply holds no
// state between calls and is safe for concurrent use.
func Apply(list []*Job, in FilterInput, logger *zap.Logger) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	applied := NormalizeFilters(in)

	filtered := make([]*Job, 0, len(list))
	for _, job := range list {
		if applied.MinimumScore != nil && job.score() < float64(*applied.MinimumScore) {
			continue
		}
		filtered = append(filtered, job)
	}

	logger.Debug("score filter",
		zap.Int("initial", len(list)),
		zap.Int("dropped", len(list)-len(filtered)),
		zap.Int("left", len(filtered)),
	)

	sortJobs(filtered, applied)

	return Result{Jobs: filtered, Applied: applied}
}
