package numberline

import "sort"

// fallbackSpread widens the accepted tick count of the scoring tier.
const fallbackSpread = 1.8

// SelectDenominator picks the denominator whose multiples best label r.
//
// The search runs in three tiers over the allowed denominators in ascending
// order: the first denominator yielding between minTicks and maxTicks ticks
// wins; otherwise the best score among denominators yielding 2 to
// 1.8*maxTicks ticks; otherwise the smallest denominator showing at least one
// tick. ok is false for degenerate ranges and when every tier fails.
func SelectDenominator(r Range, allowed []int, minTicks, maxTicks int) (den int, ok bool) {
	if r.Degenerate() {
		return 0, false
	}
	candidates := sortedCandidates(allowed)
	if len(candidates) == 0 {
		return 0, false
	}

	for _, d := range candidates {
		n := TickCount(r, d)
		if n >= minTicks && n <= maxTicks {
			return d, true
		}
	}

	if d, found := bestFallback(r, candidates, minTicks, maxTicks); found {
		return d, true
	}

	for _, d := range candidates {
		if TickCount(r, d) >= 1 {
			return d, true
		}
	}
	return 0, false
}

// fallbackScore rewards proximity to minTicks and penalizes large denominators.
func fallbackScore(ticks, minTicks, den int) float64 {
	diff := ticks - minTicks
	if diff < 0 {
		diff = -diff
	}
	return float64(ticks) - 0.5*float64(diff) - 0.01*float64(den)
}

// bestFallback returns the highest scoring candidate. Ties keep the smaller
// denominator.
func bestFallback(r Range, candidates []int, minTicks, maxTicks int) (int, bool) {
	limit := fallbackSpread * float64(maxTicks)
	best, found := 0, false
	bestScore := 0.0
	for _, d := range candidates {
		n := TickCount(r, d)
		if n < 2 || float64(n) > limit {
			continue
		}
		score := fallbackScore(n, minTicks, d)
		if !found || score > bestScore {
			best, bestScore, found = d, score, true
		}
	}
	return best, found
}

// sortedCandidates drops the implicit whole-number denominator and anything
// below it, then orders the rest ascending without duplicates.
func sortedCandidates(allowed []int) []int {
	out := make([]int, 0, len(allowed))
	seen := make(map[int]struct{}, len(allowed))
	for _, d := range allowed {
		if d <= 1 {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}
