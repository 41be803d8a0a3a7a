package cv

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// EducationEntry is one extracted education record.
type EducationEntry struct {
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field,omitempty"`
	StartDate   string     `json:"start_date,omitempty"`
	EndDate     string     `json:"end_date,omitempty"`
	Confidence  Confidence `json:"confidence"`
}

var (
	// institutionCutRe marks where an institution name ends on a line:
	// the first pipe, comma or en-dash delimiter.
	institutionCutRe = regexp.MustCompile(`[|,–]`)

	fieldRe = regexp.MustCompile(`(?i)^\s*(?:in|i)\s+([^|,–—(]+)`)
)

// educationExtractor recognizes education entries in a single pass. A line
// qualifies when it carries both a degree keyword and an institution
// keyword; there is no fallback tier, so unrecognized formats simply yield
// zero entries.
type educationExtractor struct {
	vocab  *Vocabulary
	logger *zap.Logger
}

func newEducationExtractor(vocab *Vocabulary, logger *zap.Logger) *educationExtractor {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &educationExtractor{vocab: vocab, logger: logger}
}

func (e *educationExtractor) Extract(text string) []EducationEntry {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}

	var entries []EducationEntry
	for i, line := range lines {
		if line == "" {
			continue
		}

		degree, hasDegree := e.matchDegree(line)
		if !hasDegree || !e.hasInstitution(line) {
			continue
		}

		entry := EducationEntry{
			Institution: institutionName(line),
			Degree:      degree,
			Field:       fieldOfStudy(line, degree),
		}

		// A date range on the same line or the next one upgrades the entry.
		start, end, ok := splitDateRange(line)
		if !ok && i+1 < len(lines) {
			start, end, ok = splitDateRange(lines[i+1])
		}
		if ok {
			entry.StartDate, entry.EndDate = start, end
			entry.Confidence = ConfidenceHigh
		} else {
			entry.Confidence = ConfidenceMedium
		}

		e.logger.Debug("education entry matched",
			zap.String("institution", entry.Institution),
			zap.String("degree", entry.Degree),
		)
		entries = append(entries, entry)
	}

	return entries
}

func (e *educationExtractor) matchDegree(line string) (string, bool) {
	for _, degree := range e.vocab.Degrees {
		if containsFold(line, degree) {
			return degree, true
		}
	}
	return "", false
}

func (e *educationExtractor) hasInstitution(line string) bool {
	for _, inst := range e.vocab.Institutions {
		if containsFold(line, inst) {
			return true
		}
	}
	return false
}

// institutionName takes the text before the first delimiter as the
// institution, falling back to the whole line when none is present.
func institutionName(line string) string {
	if loc := institutionCutRe.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[:loc[0]])
	}
	return strings.TrimSpace(line)
}

// fieldOfStudy looks for an "in <field>" / "i <field>" phrase after the
// degree keyword, stopping at the next delimiter.
func fieldOfStudy(line, degree string) string {
	idx := strings.Index(strings.ToLower(line), strings.ToLower(degree))
	if idx < 0 {
		return ""
	}
	rest := line[idx+len(degree):]

	m := fieldRe.FindStringSubmatch(rest)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
