package cv

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	placeholderCompany = "Unknown company"
	placeholderRole    = "Unknown role"

	// Limits for the company-name heuristic in the multi-line block matcher.
	maxCompanyLineLen   = 50
	maxCompanyLineWords = 4
)

// ExperienceEntry is one extracted employment record. Company and Role are
// always populated after extraction; a placeholder is used when the source
// text genuinely lacks them.
type ExperienceEntry struct {
	Company     string     `json:"company"`
	Role        string     `json:"role"`
	Location    string     `json:"location,omitempty"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date,omitempty"`
	Description string     `json:"description,omitempty"`
	Confidence  Confidence `json:"confidence"`
}

var (
	// Role at/hos/ved Company, with an optional comma form, followed by a
	// parenthesized date range: "Vagt hos Securitas (2019 - 2021)".
	roleAtCompanyRe = regexp.MustCompile(`^(.+?)(?:\s+(?:at|hos|ved)\s+|,\s*)(.+?)\s*\((.+?)\)\s*$`)

	// Splits "Role at Company" on the first recognized preposition.
	roleCompanySplitRe = regexp.MustCompile(`^(.+?)\s+(?:at|hos|ved)\s+(.+)$`)
)

// experienceExtractor turns a section body into employment entries using a
// chain of pattern tiers with decreasing confidence. The chain is tried
// top-to-bottom per line and the first matching tier consumes the line.
type experienceExtractor struct {
	vocab  *Vocabulary
	logger *zap.Logger
	prepRe *regexp.Regexp
}

func newExperienceExtractor(vocab *Vocabulary, logger *zap.Logger) *experienceExtractor {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	preps := vocab.Prepositions
	if len(preps) == 0 {
		preps = DefaultVocabulary().Prepositions
	}
	quoted := make([]string, 0, len(preps))
	for _, p := range preps {
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	// A preposition followed by a capitalized token marks a candidate
	// employer in the heuristic scan. Case folding stays off the token
	// class so only genuinely capitalized words qualify.
	prepRe := regexp.MustCompile(`\b(?i:` + strings.Join(quoted, "|") + `)\b\s+(\p{Lu}[\p{L}\d&./'-]+)`)

	return &experienceExtractor{vocab: vocab, logger: logger, prepRe: prepRe}
}

// Extract runs the pattern tiers over the section body. When no tier
// produces anything, the looser heuristic scan runs over the whole body.
// The AI fallback is not handled here; the parser owns that decision.
func (e *experienceExtractor) Extract(text string) []ExperienceEntry {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}

	var entries []ExperienceEntry

	i := 0
	for i < len(lines) {
		line := lines[i]
		if line == "" {
			i++
			continue
		}

		if entry, ok := e.matchPipe(line); ok {
			entries = append(entries, entry)
			i++
			continue
		}
		if entry, ok := e.matchDateFirst(line); ok {
			entries = append(entries, entry)
			i++
			continue
		}
		if entry, ok := e.matchRoleAtCompany(line); ok {
			entries = append(entries, entry)
			i++
			continue
		}
		if entry, next, ok := e.matchCompanyBlock(lines, i); ok {
			entries = append(entries, entry)
			i = next
			continue
		}
		i++
	}

	if len(entries) == 0 {
		e.logger.Debug("no pattern tier matched, running heuristic scan",
			zap.Int("lines", len(lines)))
		entries = e.heuristicScan(lines)
	}

	for idx := range entries {
		finalizeEntry(&entries[idx])
	}

	return entries
}

// matchPipe handles "Company | DateRange | Role".
func (e *experienceExtractor) matchPipe(line string) (ExperienceEntry, bool) {
	parts := strings.Split(line, "|")
	if len(parts) < 3 {
		return ExperienceEntry{}, false
	}

	start, end, ok := splitDateRange(parts[1])
	if !ok {
		return ExperienceEntry{}, false
	}

	return ExperienceEntry{
		Company:    strings.TrimSpace(parts[0]),
		Role:       strings.TrimSpace(parts[2]),
		StartDate:  start,
		EndDate:    end,
		Confidence: ConfidenceHigh,
	}, true
}

// matchDateFirst handles "DateRange: Role at/hos/ved Company".
func (e *experienceExtractor) matchDateFirst(line string) (ExperienceEntry, bool) {
	colon := strings.Index(line, ":")
	if colon < 0 {
		return ExperienceEntry{}, false
	}

	start, end, ok := splitDateRange(line[:colon])
	if !ok {
		return ExperienceEntry{}, false
	}

	m := roleCompanySplitRe.FindStringSubmatch(strings.TrimSpace(line[colon+1:]))
	if m == nil {
		return ExperienceEntry{}, false
	}

	return ExperienceEntry{
		Company:    strings.TrimSpace(m[2]),
		Role:       strings.TrimSpace(m[1]),
		StartDate:  start,
		EndDate:    end,
		Confidence: ConfidenceHigh,
	}, true
}

// matchRoleAtCompany handles "Role at/hos/ved/, Company (DateRange)".
func (e *experienceExtractor) matchRoleAtCompany(line string) (ExperienceEntry, bool) {
	m := roleAtCompanyRe.FindStringSubmatch(line)
	if m == nil {
		return ExperienceEntry{}, false
	}

	start, end, ok := splitDateRange(m[3])
	if !ok {
		return ExperienceEntry{}, false
	}

	return ExperienceEntry{
		Company:    strings.TrimSpace(m[2]),
		Role:       strings.TrimSpace(m[1]),
		StartDate:  start,
		EndDate:    end,
		Confidence: ConfidenceMedium,
	}, true
}

// blockState tracks progress through the three-line company/role/dates
// matcher. Modeling the cursor jump as explicit states keeps the
// "consume three lines at once" behavior auditable.
type blockState int

const (
	blockScanning blockState = iota
	blockCandidateCompany
	blockCandidateRole
	blockConfirmDates
)

// matchCompanyBlock tries to read three consecutive lines as company, role
// and date range. On success it returns the entry and the index of the
// first line after the consumed block.
func (e *experienceExtractor) matchCompanyBlock(lines []string, idx int) (ExperienceEntry, int, bool) {
	var entry ExperienceEntry

	state := blockScanning
	for {
		switch state {
		case blockScanning:
			if !e.companyLike(lines[idx]) {
				return ExperienceEntry{}, idx, false
			}
			entry.Company = lines[idx]
			state = blockCandidateCompany

		case blockCandidateCompany:
			if idx+1 >= len(lines) || lines[idx+1] == "" {
				return ExperienceEntry{}, idx, false
			}
			entry.Role = lines[idx+1]
			state = blockCandidateRole

		case blockCandidateRole:
			if idx+2 >= len(lines) {
				return ExperienceEntry{}, idx, false
			}
			start, end, ok := splitDateRange(lines[idx+2])
			if !ok {
				return ExperienceEntry{}, idx, false
			}
			entry.StartDate, entry.EndDate = start, end
			state = blockConfirmDates

		case blockConfirmDates:
			entry.Confidence = ConfidenceMedium
			return entry, idx + 3, true
		}
	}
}

// companyLike reports whether a line plausibly holds a company name: either
// it carries a known legal-entity or industry token, or it is short enough
// to be a standalone name rather than prose. Section headers are never
// company names; the whole-document fallback would otherwise swallow them.
func (e *experienceExtractor) companyLike(line string) bool {
	if line == "" || containsDateRange(line) {
		return false
	}
	if _, isHeader := e.vocab.MatchSection(line); isHeader {
		return false
	}
	for _, token := range e.vocab.CompanyTokens {
		if containsWordFold(line, token) {
			return true
		}
	}
	if len(line) >= maxCompanyLineLen {
		return false
	}
	words := strings.Fields(line)
	return len(words) > 0 && len(words) <= maxCompanyLineWords
}

type employerCandidate struct {
	name string
	line int
}

// heuristicScan is the last deterministic resort: it looks for known
// employer names or a preposition followed by a capitalized token, then
// searches a small window around each hit for a role and a date. Candidates
// with neither a role nor a start date are dropped.
func (e *experienceExtractor) heuristicScan(lines []string) []ExperienceEntry {
	var candidates []employerCandidate
	seen := make(map[string]bool)

	add := func(name string, line int) {
		name = strings.TrimSpace(name)
		if len(name) < 2 {
			return
		}
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		candidates = append(candidates, employerCandidate{name: name, line: line})
	}

	for i, line := range lines {
		for _, employer := range e.vocab.Employers {
			if containsWordFold(line, employer) {
				add(employer, i)
			}
		}
		for _, m := range e.prepRe.FindAllStringSubmatch(line, -1) {
			add(m[1], i)
		}
	}

	var entries []ExperienceEntry
	for _, c := range candidates {
		role := e.findRoleNear(lines, c.line)
		start, end := e.findDatesNear(lines, c.line)

		if role == "" && start == "" {
			e.logger.Debug("dropping employer candidate without role or date",
				zap.String("employer", c.name))
			continue
		}

		entries = append(entries, ExperienceEntry{
			Company:    c.name,
			Role:       role,
			StartDate:  start,
			EndDate:    end,
			Confidence: ConfidenceLow,
		})
	}

	return entries
}

// findRoleNear searches two lines either side of idx for a role keyword and
// returns the first matching line as the role text.
func (e *experienceExtractor) findRoleNear(lines []string, idx int) string {
	for j := max(0, idx-2); j <= min(len(lines)-1, idx+2); j++ {
		for _, keyword := range e.vocab.RoleKeywords {
			if containsWordFold(lines[j], keyword) {
				return lines[j]
			}
		}
	}
	return ""
}

// findDatesNear searches five lines either side of idx for a date range, or
// failing that a bare four-digit year used as the start date.
func (e *experienceExtractor) findDatesNear(lines []string, idx int) (string, string) {
	lo, hi := max(0, idx-5), min(len(lines)-1, idx+5)

	for j := lo; j <= hi; j++ {
		if start, end, ok := splitDateRange(lines[j]); ok {
			return start, end
		}
	}
	for j := lo; j <= hi; j++ {
		if year, ok := firstYear(lines[j]); ok {
			return year, ""
		}
	}
	return "", ""
}

func finalizeEntry(entry *ExperienceEntry) {
	entry.Company = strings.TrimSpace(entry.Company)
	entry.Role = strings.TrimSpace(entry.Role)
	if entry.Company == "" {
		entry.Company = placeholderCompany
	}
	if entry.Role == "" {
		entry.Role = placeholderRole
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// containsWordFold reports whether s contains the phrase on word
// boundaries, case-insensitively. Substring matching alone is too eager for
// short tokens like "ISS" or "AB".
func containsWordFold(s, phrase string) bool {
	ls := strings.ToLower(s)
	lp := strings.ToLower(phrase)
	if lp == "" {
		return false
	}

	for from := 0; ; {
		i := strings.Index(ls[from:], lp)
		if i < 0 {
			return false
		}
		i += from

		beforeOK := i == 0 || !isWordRune(lastRune(ls[:i]))
		afterOK := i+len(lp) == len(ls) || !isWordRune(firstRune(ls[i+len(lp):]))
		if beforeOK && afterOK {
			return true
		}
		from = i + 1
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
