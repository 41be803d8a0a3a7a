package cv

import (
	"context"
	"strings"

	"github.com/alexandarmartin-KC/cvside/internal/ai"
	"go.uber.org/zap"
)

// maxFallbackRunes bounds the excerpt handed to the AI provider.
const maxFallbackRunes = 12000

// Profile is the structured result of parsing one document.
type Profile struct {
	Name       string            `json:"name,omitempty"`
	Email      string            `json:"email,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Skills     []string          `json:"skills"`
	Languages  []string          `json:"languages"`
}

// Parser runs the full extraction pipeline: normalize, segment, extract per
// section, and only when every deterministic tier produced nothing, defer
// to the AI collaborator. A Parser holds no per-parse state and is safe for
// concurrent use.
type Parser struct {
	vocab      *Vocabulary
	logger     *zap.Logger
	fallback   ai.Extractor
	segmenter  *Segmenter
	experience *experienceExtractor
	education  *educationExtractor
}

// NewParser builds a parser. A nil vocabulary selects the built-in tables
// and a nil fallback disables the AI tier entirely.
func NewParser(vocab *Vocabulary, logger *zap.Logger, fallback ai.Extractor) *Parser {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Parser{
		vocab:      vocab,
		logger:     logger,
		fallback:   fallback,
		segmenter:  NewSegmenter(vocab, logger),
		experience: newExperienceExtractor(vocab, logger),
		education:  newEducationExtractor(vocab, logger),
	}
}

// Parse never returns an error: malformed or empty input degrades to an
// empty profile, and a failing AI call degrades to whatever the
// deterministic tiers produced.
func (p *Parser) Parse(ctx context.Context, raw string) *Profile {
	profile := &Profile{
		Experience: []ExperienceEntry{},
		Education:  []EducationEntry{},
		Skills:     []string{},
		Languages:  []string{},
	}

	doc := Normalize(raw)
	if len(doc.Lines) == 0 {
		return profile
	}

	spans := p.segmenter.Segment(doc.Lines)

	contact := extractContact(doc.Lines, doc.Text)
	profile.Name = contact.Name
	profile.Email = contact.Email
	profile.Phone = contact.Phone

	if span, ok := spans[SectionSummary]; ok {
		profile.Summary = strings.TrimSpace(span.Text)
	}

	if entries := p.experience.Extract(sectionOrFullText(spans, SectionExperience, doc)); len(entries) > 0 {
		profile.Experience = entries
	} else if p.fallback != nil {
		profile.Experience = p.extractWithFallback(ctx, doc.Text)
	}

	if entries := p.education.Extract(sectionOrFullText(spans, SectionEducation, doc)); len(entries) > 0 {
		profile.Education = entries
	}

	if span, ok := spans[SectionSkills]; ok {
		if skills := extractList(span.Text); len(skills) > 0 {
			profile.Skills = skills
		}
	}
	if span, ok := spans[SectionLanguages]; ok {
		if languages := extractList(span.Text); len(languages) > 0 {
			profile.Languages = languages
		}
	}

	p.logger.Info("document parsed",
		zap.Int("experience_entries", len(profile.Experience)),
		zap.Int("education_entries", len(profile.Education)),
		zap.Int("skills", len(profile.Skills)),
		zap.Int("languages", len(profile.Languages)),
	)

	return profile
}

// extractWithFallback asks the AI collaborator for experience entries. Any
// provider failure is logged and treated as zero entries; AI output is
// never merged with pattern results because this tier only runs when the
// patterns produced nothing.
func (p *Parser) extractWithFallback(ctx context.Context, text string) []ExperienceEntry {
	candidates, err := p.fallback.ExtractExperience(ctx, truncateRunes(text, maxFallbackRunes))
	if err != nil {
		p.logger.Warn("ai experience extraction failed, continuing without it", zap.Error(err))
		return []ExperienceEntry{}
	}

	entries := make([]ExperienceEntry, 0, len(candidates))
	for _, c := range candidates {
		entry := ExperienceEntry{
			Company:     strings.TrimSpace(c.Company),
			Role:        strings.TrimSpace(c.Role),
			Location:    strings.TrimSpace(c.Location),
			StartDate:   strings.TrimSpace(c.StartDate),
			EndDate:     strings.TrimSpace(c.EndDate),
			Description: strings.TrimSpace(c.Description),
			Confidence:  ConfidenceMedium,
		}
		if entry.Company == "" && entry.Role == "" {
			continue
		}
		finalizeEntry(&entry)
		entries = append(entries, entry)
	}

	p.logger.Info("ai fallback produced experience entries", zap.Int("count", len(entries)))
	return entries
}

func sectionOrFullText(spans map[SectionKey]Span, key SectionKey, doc Document) string {
	if span, ok := spans[key]; ok {
		return span.Text
	}
	return doc.Text
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
