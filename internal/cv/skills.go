package cv

import (
	"regexp"
	"strings"
)

// maxSkillLen drops list items that are clearly prose rather than a skill
// or language name.
const maxSkillLen = 60

// skillSplitRe breaks a skills or languages section on the separators CVs
// commonly use: newlines, commas, semicolons, slashes and bullet markers.
var skillSplitRe = regexp.MustCompile(`[\n,;/•·]|^[-*]\s+|\s[-*]\s`)

// extractList splits a section body into deduplicated list items, keeping
// the first spelling of each case-insensitive duplicate and the order of
// first appearance.
func extractList(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var items []string
	seen := make(map[string]bool)

	for _, part := range skillSplitRe.Split(text, -1) {
		item := strings.Trim(strings.TrimSpace(part), "-*•· \t")
		if item == "" || len(item) > maxSkillLen {
			continue
		}
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, item)
	}

	return items
}
