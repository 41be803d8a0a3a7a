package cv

import (
	"regexp"
	"strings"
)

// A date part is a bare year, an optionally abbreviated month name followed
// by a year, or a numeric month/year. The right-hand side of a range may
// also be an open-ended marker such as "Present" or "Nu".
const (
	datePart    = `(?:[A-Za-zÆØÅæøå]{3,9}\.?\s+)?(?:19|20)\d{2}|\d{1,2}[./](?:19|20)\d{2}`
	openEndPart = `[Pp]resent|[Cc]urrent|[Nn]ow|[Nn]u(?:værende)?|[Ii] dag|[Tt]oday`
)

var (
	dateRangeRe = regexp.MustCompile(`(` + datePart + `)\s*[-–—]\s*(` + datePart + `|` + openEndPart + `)`)
	yearRe      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// splitDateRange extracts the first date range from s. The left side of the
// dash is the start date; the right side is the end date, which may be an
// open-ended literal kept verbatim.
func splitDateRange(s string) (start, end string, ok bool) {
	m := dateRangeRe.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

func containsDateRange(s string) bool {
	return dateRangeRe.MatchString(s)
}

// firstYear returns the first standalone four-digit year in s, if any.
func firstYear(s string) (string, bool) {
	y := yearRe.FindString(s)
	return y, y != ""
}
