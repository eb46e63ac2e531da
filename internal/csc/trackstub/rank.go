package trackstub

import (
	"cmp"
	"slices"
)

// RankingPolicy orders track stubs for sorting. Compare returns a positive
// number when a ranks above b, a negative number when it ranks below, and 0
// when neither ranks above the other.
//
// Implementations must be a strict weak ordering: Compare(a, a) == 0,
// sign(Compare(a, b)) == -sign(Compare(b, a)), and both ranking and ties
// are transitive. Equal stubs must compare as 0.
type RankingPolicy interface {
	Compare(a, b TrackStub) int
}

// PolicyFunc adapts a function to a RankingPolicy.
type PolicyFunc func(a, b TrackStub) int

func (f PolicyFunc) Compare(a, b TrackStub) int { return f(a, b) }

// MPCPolicy is the muon port card ranking. In order:
//
//  1. a valid stub ranks above an invalid one
//  2. higher quality ranks higher
//  3. lower trigger CSC ID ranks higher
//  4. track number 1 ranks above track number 2
//
// Remaining ties are broken on the other fields that define stub equality
// (lower value ranks higher), so Compare returns 0 only for Equal stubs.
type MPCPolicy struct{}

func (MPCPolicy) Compare(a, b TrackStub) int {
	if av, bv := a.IsValid(), b.IsValid(); av != bv {
		if av {
			return 1
		}
		return -1
	}
	if c := cmp.Compare(a.Quality(), b.Quality()); c != 0 {
		return c
	}

	// From here on the lower value ranks higher, so the operands are swapped.
	if c := cmp.Compare(b.CSCID(), a.CSCID()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.TrackNumber(), a.TrackNumber()); c != 0 {
		return c
	}
	ad, bd := a.digi, b.digi
	for _, pair := range [][2]uint32{
		{bd.BX(), ad.BX()},
		{bd.KeyWG(), ad.KeyWG()},
		{bd.Strip(), ad.Strip()},
		{bd.Pattern(), ad.Pattern()},
		{bd.Bend(), ad.Bend()},
		{bd.BX0(), ad.BX0()},
		{bd.SyncErr(), ad.SyncErr()},
		{bd.CSCID(), ad.CSCID()},
		{b.detID.Raw(), a.detID.Raw()},
	} {
		if c := cmp.Compare(pair[0], pair[1]); c != 0 {
			return c
		}
	}
	return 0
}

// Ranker applies a RankingPolicy. The zero Ranker uses MPCPolicy.
type Ranker struct {
	policy RankingPolicy
}

// NewRanker returns a Ranker for p; a nil p selects MPCPolicy.
func NewRanker(p RankingPolicy) Ranker {
	return Ranker{policy: p}
}

// Compare returns the policy's comparison of a and b.
func (r Ranker) Compare(a, b TrackStub) int {
	if r.policy == nil {
		return MPCPolicy{}.Compare(a, b)
	}
	return r.policy.Compare(a, b)
}

// Greater reports whether a ranks above b.
func (r Ranker) Greater(a, b TrackStub) bool { return r.Compare(a, b) > 0 }

// Less reports whether a ranks below b.
func (r Ranker) Less(a, b TrackStub) bool { return r.Compare(a, b) < 0 }

// GreaterEqual is !Less(a, b).
func (r Ranker) GreaterEqual(a, b TrackStub) bool { return !r.Less(a, b) }

// LessEqual is !Greater(a, b).
func (r Ranker) LessEqual(a, b TrackStub) bool { return !r.Greater(a, b) }

// Sort orders stubs best first. Stubs that tie keep their relative order.
func (r Ranker) Sort(stubs []TrackStub) {
	slices.SortStableFunc(stubs, func(a, b TrackStub) int { return r.Compare(b, a) })
}

// SelectBest returns up to n valid stubs, best first, with their MPC links
// numbered 1..n in rank order. stubs itself is not modified.
func (r Ranker) SelectBest(stubs []TrackStub, n int) []TrackStub {
	if n <= 0 {
		return nil
	}
	best := make([]TrackStub, 0, len(stubs))
	for _, s := range stubs {
		if s.IsValid() {
			best = append(best, s)
		}
	}
	if dropped := len(stubs) - len(best); dropped > 0 {
		diagf("dropped %d invalid stubs of %d", dropped, len(stubs))
	}

	r.Sort(best)
	if len(best) > n {
		opsf("discarding %d valid stubs beyond the best %d", len(best)-n, n)
		best = best[:n]
	}
	for i := range best {
		best[i].SetMPCLink(uint32(i + 1))
		tracef("link %d: %s", i+1, best[i])
	}
	return best
}
