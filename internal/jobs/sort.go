package jobs

import (
	"sort"
	"strings"
)

// comparator orders two jobs: negative means a sorts before b, zero defers
// to the next key in the chain.
type comparator func(a, b *Job) int

// sortJobs applies the full multi-key ordering for the selected sort order.
// The sort is always stable, so a comparator returning zero leaves the
// relative order produced by the previous keys intact.
func sortJobs(list []*Job, f AppliedFilters) {
	var chain []comparator

	switch f.SortBy {
	case SortNewest:
		chain = []comparator{byPostedAt(true), byLocationMatch(f.Location), byScoreDesc}
	case SortOldest:
		chain = []comparator{byPostedAt(false), byLocationMatch(f.Location), byScoreDesc}
	case SortCompanyAZ:
		chain = []comparator{byCompanyAZ, byLocationMatch(f.Location)}
	default:
		chain = []comparator{byScoreDesc, byLocationMatch(f.Location), byPostedDescLoose}
	}

	sort.SliceStable(list, func(i, j int) bool {
		for _, cmp := range chain {
			if r := cmp(list[i], list[j]); r != 0 {
				return r < 0
			}
		}
		return false
	})
}

func byScoreDesc(a, b *Job) int {
	switch {
	case a.score() > b.score():
		return -1
	case a.score() < b.score():
		return 1
	default:
		return 0
	}
}

// byLocationMatch prefers jobs whose location matches the filter. With no
// filter location every job matches vacuously and the key is neutral.
func byLocationMatch(location *string) comparator {
	return func(a, b *Job) int {
		am, bm := a.matchesLocation(location), b.matchesLocation(location)
		switch {
		case am && !bm:
			return -1
		case !am && bm:
			return 1
		default:
			return 0
		}
	}
}

// byPostedAt orders by posting time; records without a parseable date sort
// to the end regardless of direction.
func byPostedAt(newestFirst bool) comparator {
	return func(a, b *Job) int {
		at, aok := a.postedTime()
		bt, bok := b.postedTime()
		switch {
		case aok && !bok:
			return -1
		case !aok && bok:
			return 1
		case !aok && !bok:
			return 0
		}
		if at.Equal(bt) {
			return 0
		}
		if at.After(bt) == newestFirst {
			return -1
		}
		return 1
	}
}

// byPostedDescLoose is the tertiary Best Match key: newer first when both
// dates parse, otherwise neutral so the previous stable keys decide.
func byPostedDescLoose(a, b *Job) int {
	at, aok := a.postedTime()
	bt, bok := b.postedTime()
	if !aok || !bok {
		return 0
	}
	switch {
	case at.After(bt):
		return -1
	case bt.After(at):
		return 1
	default:
		return 0
	}
}

// byCompanyAZ orders companies case-insensitively ascending with missing
// names at the end.
func byCompanyAZ(a, b *Job) int {
	an := strings.ToLower(strings.TrimSpace(a.Company))
	bn := strings.ToLower(strings.TrimSpace(b.Company))
	switch {
	case an == "" && bn == "":
		return 0
	case an == "":
		return 1
	case bn == "":
		return -1
	}
	return strings.Compare(an, bn)
}
