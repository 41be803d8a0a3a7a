package cv

import (
	"regexp"
	"strings"
)

var (
	lineEndings  = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
	whitespaceRe = regexp.MustCompile(`[ \t]+`)
)

// Document is the normalized form of raw extracted text. Lines holds the
// trimmed, non-empty lines in document order; Text is the cleaned full text
// kept around as a fallback body for extraction when no section matched.
// A Document is never mutated after Normalize returns it.
type Document struct {
	Lines []string
	Text  string
}

// Normalize cleans raw document text into a stable line sequence.
// CRLF and bare CR become LF, runs of three or more newlines collapse to
// exactly two, and every line in the sequence is trimmed and non-empty.
// Normalizing already-normalized text is a no-op. Empty input yields an
// empty document rather than an error.
func Normalize(raw string) Document {
	text := lineEndings.Replace(raw)
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	if text == "" {
		return Document{}
	}

	rawLines := strings.Split(text, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, whitespaceRe.ReplaceAllString(line, " "))
	}

	return Document{Lines: lines, Text: text}
}

// splitLines breaks a section body back into trimmed lines, keeping empty
// lines so multi-line matching can see block boundaries.
func splitLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
