package cv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentBasicDocument(t *testing.T) {
	lines := []string{
		"Jens Hansen",
		"Erhvervserfaring",
		"Acme | 2020 - 2022 | Engineer",
		"Uddannelse",
		"Bachelor i Datalogi, Aarhus Universitet",
	}

	spans := NewSegmenter(nil, nil).Segment(lines)

	exp, ok := spans[SectionExperience]
	require.True(t, ok)
	require.Equal(t, "Acme | 2020 - 2022 | Engineer", exp.Text)
	require.Equal(t, 2, exp.Start)
	require.Equal(t, 2, exp.End)

	edu, ok := spans[SectionEducation]
	require.True(t, ok)
	require.Equal(t, 4, edu.Start)
	require.Equal(t, 4, edu.End)
}

func TestSegmentHeaderWithTrailingColon(t *testing.T) {
	lines := []string{"Work Experience:", "Acme | 2020 - 2022 | Engineer"}

	spans := NewSegmenter(nil, nil).Segment(lines)

	_, ok := spans[SectionExperience]
	require.True(t, ok)
}

func TestSegmentLengthGuardRejectsLongSentences(t *testing.T) {
	lines := []string{
		"Experience taught me that security work is never finished and always evolving",
		"Skills",
		"Go",
	}

	spans := NewSegmenter(nil, nil).Segment(lines)

	_, ok := spans[SectionExperience]
	require.False(t, ok, "a long sentence starting with a keyword is not a header")
	require.Contains(t, spans, SectionSkills)
}

func TestSegmentSpansDoNotOverlap(t *testing.T) {
	lines := []string{
		"Profil",
		"En kort tekst",
		"Erhvervserfaring",
		"Acme | 2020 - 2022 | Engineer",
		"Kompetencer",
		"Go, Python",
		"Sprog",
		"Dansk",
	}

	spans := NewSegmenter(nil, nil).Segment(lines)
	require.Len(t, spans, 4)

	for key, span := range spans {
		require.LessOrEqual(t, span.Start, span.End, "span %s", key)
		for other, otherSpan := range spans {
			if key == other {
				continue
			}
			disjoint := span.End < otherSpan.Start || otherSpan.End < span.Start
			require.True(t, disjoint, "spans %s and %s overlap", key, other)
		}
	}
}

func TestSegmentDuplicateHeaderKeepLast(t *testing.T) {
	lines := []string{"Skills", "Go", "Skills", "Python"}

	spans := NewSegmenter(nil, nil).Segment(lines)

	require.Equal(t, "Python", spans[SectionSkills].Text)
}

func TestSegmentDuplicateHeaderKeepFirst(t *testing.T) {
	lines := []string{"Skills", "Go", "Skills", "Python"}

	spans := NewSegmenter(nil, nil).WithDuplicatePolicy(KeepFirst).Segment(lines)

	require.Equal(t, "Go", spans[SectionSkills].Text)
}

func TestSegmentNoHeaders(t *testing.T) {
	spans := NewSegmenter(nil, nil).Segment([]string{"just", "some", "lines"})
	require.Empty(t, spans)
}
