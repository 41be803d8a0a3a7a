package jobs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ids(list []*Job) []string {
	out := make([]string, 0, len(list))
	for _, job := range list {
		out = append(out, job.ID)
	}
	return out
}

func TestSortCompanyAZ(t *testing.T) {
	list := []*Job{
		{ID: "z", Company: "Zeta"},
		{ID: "a", Company: "Acme"},
		{ID: "none", Company: ""},
		{ID: "lower", Company: "acme corp"},
	}

	sortJobs(list, AppliedFilters{SortBy: SortCompanyAZ})

	require.Equal(t, []string{"a", "lower", "z", "none"}, ids(list))
}

func TestSortNewestPutsUnparseableDatesLast(t *testing.T) {
	list := []*Job{
		{ID: "old", PostedAt: "2023-05-01"},
		{ID: "bad", PostedAt: "soon"},
		{ID: "new", PostedAt: "2024-01-01"},
		{ID: "missing"},
	}

	sortJobs(list, AppliedFilters{SortBy: SortNewest})

	require.Equal(t, []string{"new", "old", "bad", "missing"}, ids(list))
}

func TestSortOldest(t *testing.T) {
	list := []*Job{
		{ID: "new", PostedAt: "2024-01-01T10:00:00Z"},
		{ID: "old", PostedAt: "2023-05-01"},
		{ID: "missing"},
	}

	sortJobs(list, AppliedFilters{SortBy: SortOldest})

	require.Equal(t, []string{"old", "new", "missing"}, ids(list))
}

func TestSortBestMatchScoreThenLocationThenDate(t *testing.T) {
	location := "København"
	list := []*Job{
		{ID: "far", Score: scoreOf(80), Location: "Aarhus", PostedAt: "2024-03-01"},
		{ID: "near-old", Score: scoreOf(80), Location: "København", PostedAt: "2023-01-01"},
		{ID: "near-new", Score: scoreOf(80), Location: "København N", PostedAt: "2024-01-01"},
		{ID: "top", Score: scoreOf(95), Location: "Odense"},
	}

	sortJobs(list, AppliedFilters{SortBy: SortBestMatch, Location: &location})

	require.Equal(t, []string{"top", "near-new", "near-old", "far"}, ids(list))
}

func TestSortBestMatchWithoutLocationFilter(t *testing.T) {
	list := []*Job{
		{ID: "b", Score: scoreOf(60), PostedAt: "2023-01-01"},
		{ID: "a", Score: scoreOf(60), PostedAt: "2024-01-01"},
		{ID: "nil-score"},
	}

	sortJobs(list, AppliedFilters{SortBy: SortBestMatch})

	require.Equal(t, []string{"a", "b", "nil-score"}, ids(list))
}

func TestSortStableOnFullTies(t *testing.T) {
	list := []*Job{
		{ID: "first", PostedAt: "not a date"},
		{ID: "second", PostedAt: "also not"},
	}

	sortJobs(list, AppliedFilters{SortBy: SortNewest})

	require.Equal(t, []string{"first", "second"}, ids(list))
}

func TestSortNewestTiesFallBackToScore(t *testing.T) {
	list := []*Job{
		{ID: "low", Score: scoreOf(40), PostedAt: "2024-01-01"},
		{ID: "high", Score: scoreOf(90), PostedAt: "2024-01-01"},
	}

	sortJobs(list, AppliedFilters{SortBy: SortNewest})

	require.Equal(t, []string{"high", "low"}, ids(list))
}
