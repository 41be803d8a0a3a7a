package jobs

import (
	"strings"
	"time"
)

// Job is one scored job record as handed to the filter engine. Records are
// read-only input; the engine never mutates them.
type Job struct {
	ID       string   `json:"job_id"`
	Title    string   `json:"title"`
	Company  string   `json:"company,omitempty"`
	Location string   `json:"location,omitempty"`
	Score    *float64 `json:"score,omitempty"`
	PostedAt string   `json:"posted_at,omitempty"`
}

// score treats a missing score as zero for filtering and ordering.
func (j *Job) score() float64 {
	if j == nil || j.Score == nil {
		return 0
	}
	return *j.Score
}

var postedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// postedTime parses the posting timestamp, reporting whether it was usable.
func (j *Job) postedTime() (time.Time, bool) {
	if j == nil {
		return time.Time{}, false
	}
	raw := strings.TrimSpace(j.PostedAt)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range postedAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// matchesLocation reports whether the job satisfies a location filter. An
// unset filter matches everything; otherwise the job's location must
// contain the filter string case-insensitively.
func (j *Job) matchesLocation(location *string) bool {
	if location == nil {
		return true
	}
	return strings.Contains(strings.ToLower(j.Location), strings.ToLower(*location))
}
