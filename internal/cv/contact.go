package cv

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Matches Danish 8-digit numbers with optional +45 prefix as well as
	// generic international formats.
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?){2,4}\d{2}`)

	nameWordRe = regexp.MustCompile(`^\p{Lu}[\p{L}'.-]+$`)
)

// nameScanLimit bounds how far into the document the name heuristic looks.
const nameScanLimit = 5

// Contact holds the identity fields read from the top of a document.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// extractContact pulls name, email and phone from the line sequence. The
// name is the first short line near the top made of capitalized words, with
// lines carrying an email address or digits skipped.
func extractContact(lines []string, fullText string) Contact {
	contact := Contact{
		Email: emailRe.FindString(fullText),
	}

	// A year or date range is never a phone number, even though the digit
	// groups can look like one.
	if phone := phoneRe.FindString(fullText); phone != "" && countDigits(phone) >= 8 && !yearRe.MatchString(phone) {
		contact.Phone = strings.TrimSpace(phone)
	}

	for i, line := range lines {
		if i >= nameScanLimit {
			break
		}
		if strings.ContainsAny(line, "@0123456789") {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		plausible := true
		for _, w := range words {
			if !nameWordRe.MatchString(w) {
				plausible = false
				break
			}
		}
		if plausible {
			contact.Name = line
			break
		}
	}

	return contact
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
