package jobs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scoreOf(v float64) *float64 {
	return &v
}

func TestNormalizeFiltersScoreBuckets(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		bucket *int
	}{
		{"snaps down", 73, intPtr(70)},
		{"exact bucket", 80, intPtr(80)},
		{"above top bucket", 95, intPtr(80)},
		{"below lowest bucket", 45, nil},
		{"numeric string", "70", intPtr(70)},
		{"garbage string", "abc", nil},
		{"empty string", "", nil},
		{"unset", nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			applied := NormalizeFilters(FilterInput{MinimumScore: tc.input})
			require.Equal(t, tc.bucket, applied.MinimumScore)
		})
	}
}

func intPtr(v int) *int {
	return &v
}

func TestNormalizeFiltersRadiusRequiresLocation(t *testing.T) {
	applied := NormalizeFilters(FilterInput{RadiusKm: 25})
	require.Nil(t, applied.RadiusKm)

	applied = NormalizeFilters(FilterInput{Location: "København", RadiusKm: 25})
	require.NotNil(t, applied.Location)
	require.Equal(t, "København", *applied.Location)
	require.NotNil(t, applied.RadiusKm)
	require.Equal(t, 25.0, *applied.RadiusKm)
}

func TestNormalizeFiltersBlankLocationIsUnset(t *testing.T) {
	applied := NormalizeFilters(FilterInput{Location: "   "})
	require.Nil(t, applied.Location)
}

func TestNormalizeFiltersSortOrder(t *testing.T) {
	tests := []struct {
		input any
		want  SortOrder
	}{
		{"Best Match", SortBestMatch},
		{"newest", SortNewest},
		{"OLDEST", SortOldest},
		{"Company A–Z", SortCompanyAZ},
		{"Company A-Z", SortCompanyAZ},
		{"score", SortBestMatch},
		{nil, SortBestMatch},
		{"", SortBestMatch},
	}

	for _, tc := range tests {
		applied := NormalizeFilters(FilterInput{SortBy: tc.input})
		require.Equal(t, tc.want, applied.SortBy, "input %v", tc.input)
	}
}

func TestApplyScoreFilter(t *testing.T) {
	list := []*Job{
		{ID: "a", Score: scoreOf(90)},
		{ID: "b", Score: scoreOf(72)},
		{ID: "c", Score: scoreOf(72)},
		{ID: "d"},
	}

	result := Apply(list, FilterInput{MinimumScore: "70"}, nil)

	require.Len(t, result.Jobs, 3)
	require.Equal(t, "a", result.Jobs[0].ID)
	require.Equal(t, "b", result.Jobs[1].ID)
	require.Equal(t, "c", result.Jobs[2].ID)
	require.NotNil(t, result.Applied.MinimumScore)
	require.Equal(t, 70, *result.Applied.MinimumScore)
}

func TestApplyMissingScoreExcludedByThreshold(t *testing.T) {
	list := []*Job{{ID: "a"}, {ID: "b", Score: scoreOf(55)}}

	result := Apply(list, FilterInput{MinimumScore: 50}, nil)

	require.Len(t, result.Jobs, 1)
	require.Equal(t, "b", result.Jobs[0].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	list := []*Job{
		{ID: "low", Score: scoreOf(10)},
		{ID: "high", Score: scoreOf(90)},
	}

	result := Apply(list, FilterInput{}, nil)

	require.Equal(t, "high", result.Jobs[0].ID)
	require.Equal(t, "low", list[0].ID)
	require.Equal(t, "high", list[1].ID)
	require.Equal(t, 10.0, *list[0].Score)
}

func TestApplyIsDeterministic(t *testing.T) {
	list := []*Job{
		{ID: "a", Score: scoreOf(70)},
		{ID: "b", Score: scoreOf(70)},
		{ID: "c", Score: scoreOf(70)},
	}

	first := Apply(list, FilterInput{SortBy: "Best Match"}, nil)
	second := Apply(list, FilterInput{SortBy: "Best Match"}, nil)

	require.Equal(t, first.Jobs, second.Jobs)
	require.Equal(t, "a", first.Jobs[0].ID)
	require.Equal(t, "b", first.Jobs[1].ID)
	require.Equal(t, "c", first.Jobs[2].ID)
}

func TestApplyEmptyList(t *testing.T) {
	result := Apply(nil, FilterInput{MinimumScore: 80}, nil)

	require.NotNil(t, result.Jobs)
	require.Empty(t, result.Jobs)
}
