package cv

import (
	"strings"

	"go.uber.org/zap"
)

// SectionKey identifies a recognized CV section.
type SectionKey string

const (
	SectionExperience SectionKey = "experience"
	SectionEducation  SectionKey = "education"
	SectionSkills     SectionKey = "skills"
	SectionLanguages  SectionKey = "languages"
	SectionSummary    SectionKey = "summary"
)

// maxHeaderLen guards against matching a section keyword embedded in a long
// sentence: a line only counts as a header by prefix when it is short.
const maxHeaderLen = 50

// DuplicatePolicy decides what happens when the same section header appears
// twice in one document.
type DuplicatePolicy int

const (
	// KeepLast replaces the earlier span when a header repeats. This mirrors
	// the close-on-next-header behavior the segmentation rule has always had.
	KeepLast DuplicatePolicy = iota
	// KeepFirst ignores a repeated header for a key that already has a span.
	KeepFirst
)

// Span is a labeled slice of the document's line sequence. Start and End are
// inclusive indices into the lines the segmenter was given.
type Span struct {
	Key   SectionKey
	Text  string
	Start int
	End   int
}

// Segmenter partitions a normalized line sequence into labeled section spans.
type Segmenter struct {
	vocab  *Vocabulary
	policy DuplicatePolicy
	logger *zap.Logger
}

func NewSegmenter(vocab *Vocabulary, logger *zap.Logger) *Segmenter {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Segmenter{vocab: vocab, policy: KeepLast, logger: logger}
}

// WithDuplicatePolicy overrides how repeated headers are handled.
func (s *Segmenter) WithDuplicatePolicy(p DuplicatePolicy) *Segmenter {
	s.policy = p
	return s
}

// Segment scans the lines for section headers and returns the resulting
// spans keyed by section. Lines before the first header stay unlabeled and
// are reachable through the document's full text.
func (s *Segmenter) Segment(lines []string) map[SectionKey]Span {
	spans := make(map[SectionKey]Span)

	current := SectionKey("")
	start := 0

	for i, line := range lines {
		key, ok := s.matchHeader(line)
		if !ok {
			continue
		}

		if current != "" {
			s.close(spans, current, lines, start, i-1)
		}

		s.logger.Debug("section header matched",
			zap.String("section", string(key)),
			zap.Int("line", i),
		)

		current = key
		start = i + 1
	}

	if current != "" {
		s.close(spans, current, lines, start, len(lines)-1)
	}

	return spans
}

func (s *Segmenter) close(spans map[SectionKey]Span, key SectionKey, lines []string, start, end int) {
	if start > end {
		return
	}
	if s.policy == KeepFirst {
		if _, exists := spans[key]; exists {
			s.logger.Debug("ignoring repeated section header", zap.String("section", string(key)))
			return
		}
	}
	spans[key] = Span{
		Key:   key,
		Text:  strings.Join(lines[start:end+1], "\n"),
		Start: start,
		End:   end,
	}
}

func (s *Segmenter) matchHeader(line string) (SectionKey, bool) {
	return s.vocab.MatchSection(line)
}
