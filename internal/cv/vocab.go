package cv

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// SectionRule binds a section key to the header keywords that open it.
// Rules are evaluated in order; the first keyword match wins for a line.
type SectionRule struct {
	Key      SectionKey `mapstructure:"key"`
	Keywords []string   `mapstructure:"keywords"`
}

// Vocabulary holds every keyword table the extractors depend on. The tables
// are data, not code: a new locale or industry is supported by overriding
// entries in the configuration file, without touching extraction logic.
type Vocabulary struct {
	Sections      []SectionRule `mapstructure:"sections"`
	Degrees       []string      `mapstructure:"degrees"`
	Institutions  []string      `mapstructure:"institutions"`
	Employers     []string      `mapstructure:"employers"`
	CompanyTokens []string      `mapstructure:"company_tokens"`
	RoleKeywords  []string      `mapstructure:"role_keywords"`
	Prepositions  []string      `mapstructure:"prepositions"`
}

// DefaultVocabulary returns the built-in tables. The defaults cover English
// and Danish documents, matching the inputs the system was built around.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Sections: []SectionRule{
			{Key: SectionExperience, Keywords: []string{
				"erhvervserfaring", "arbejdserfaring", "work experience",
				"professional experience", "employment history", "experience",
				"erfaring", "ansættelser",
			}},
			{Key: SectionEducation, Keywords: []string{
				"uddannelse", "education", "academic background", "kurser og uddannelse",
			}},
			{Key: SectionSkills, Keywords: []string{
				"kompetencer", "technical skills", "skills", "færdigheder", "kvalifikationer",
			}},
			{Key: SectionLanguages, Keywords: []string{
				"sprog", "languages",
			}},
			{Key: SectionSummary, Keywords: []string{
				"profil", "profile", "summary", "resumé", "om mig", "about me", "objective",
			}},
		},
		Degrees: []string{
			"phd", "ph.d", "master", "msc", "m.sc", "cand.", "kandidat",
			"bachelor", "bsc", "b.sc", "diploma", "diplom", "certificate",
			"certifikat", "erhvervsuddannelse", "akademiuddannelse",
		},
		Institutions: []string{
			"university", "universitet", "college", "school", "skole",
			"academy", "akademi", "institute", "institut", "erhvervsakademi",
		},
		Employers: []string{
			"Securitas", "G4S", "Falck", "ISS", "Novo Nordisk",
			"Maersk", "Vestas", "Danske Bank", "TDC",
		},
		CompanyTokens: []string{
			"A/S", "ApS", "I/S", "IVS", "P/S", "Inc", "LLC", "Ltd", "GmbH", "AB",
			"Security", "Sikkerhed", "Vagt", "Consulting", "Group", "Solutions",
			"Services", "Systems",
		},
		RoleKeywords: []string{
			"engineer", "developer", "udvikler", "consultant", "konsulent",
			"manager", "leder", "analyst", "analytiker", "specialist",
			"assistant", "assistent", "coordinator", "koordinator",
			"technician", "tekniker", "vagt", "guard", "supervisor", "director",
		},
		Prepositions: []string{"hos", "for", "ved", "at", "i"},
	}
}

// MatchSection classifies a line as a section header when it equals a
// keyword case-insensitively, or starts with one and is short enough to
// plausibly be a heading rather than body text.
func (v *Vocabulary) MatchSection(line string) (SectionKey, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}
	for _, rule := range v.Sections {
		for _, keyword := range rule.Keywords {
			if strings.EqualFold(trimmed, keyword) {
				return rule.Key, true
			}
			if len(trimmed) < maxHeaderLen && hasPrefixFold(trimmed, keyword) {
				return rule.Key, true
			}
		}
	}
	return "", false
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

// VocabularyFromMap overlays user-provided tables on top of the defaults.
// Only keys present in the map replace the corresponding default table.
func VocabularyFromMap(raw map[string]any) (*Vocabulary, error) {
	vocab := DefaultVocabulary()
	if len(raw) == 0 {
		return vocab, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           vocab,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("building vocabulary decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding vocabulary overrides: %w", err)
	}

	return vocab, nil
}
