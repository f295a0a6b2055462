package numberline

import (
	"math"
	"math/rand"
	"testing"
)

func TestSelectDenominator(t *testing.T) {
	cases := []struct {
		name    string
		r       Range
		allowed []int
		want    int
		wantOK  bool
	}{
		{name: "unit interval", r: Range{Low: 0, High: 1}, allowed: AllowedDenominators(), want: 6, wantOK: true},
		{name: "initial view", r: DefaultRange(), allowed: AllowedDenominators(), want: 6, wantOK: true},
		{name: "two fifths", r: Range{Low: 0.2, High: 0.4}, allowed: AllowedDenominators(), want: 30, wantOK: true},
		{name: "fallback scoring", r: Range{Low: 0, High: 0.05}, allowed: AllowedDenominators(), want: 100, wantOK: true},
		{name: "fallback unsorted", r: Range{Low: 0, High: 1}, allowed: []int{10, 4, 2}, want: 10, wantOK: true},
		{name: "last resort single tick", r: Range{Low: 0.1, High: 0.6}, allowed: []int{2}, want: 2, wantOK: true},
		{name: "last resort crowded", r: Range{Low: 0, High: 1}, allowed: []int{100}, want: 100, wantOK: true},
		{name: "no tick fits", r: Range{Low: 0.1, High: 0.4}, allowed: []int{2}, wantOK: false},
		{name: "whole numbers only", r: Range{Low: 0, High: 1}, allowed: []int{1}, wantOK: false},
		{name: "empty set", r: Range{Low: 0, High: 1}, allowed: nil, wantOK: false},
		{name: "equal bounds", r: Range{Low: 1, High: 1}, allowed: AllowedDenominators(), wantOK: false},
		{name: "reversed", r: Range{Low: 2, High: 1}, allowed: AllowedDenominators(), wantOK: false},
		{name: "tiny span", r: Range{Low: 0, High: 1e-10}, allowed: AllowedDenominators(), wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := SelectDenominator(tc.r, tc.allowed, MinFractionTicks, MaxFractionTicks)
			if ok != tc.wantOK {
				t.Fatalf("ok=%v, want %v (den %d)", ok, tc.wantOK, got)
			}
			if ok && got != tc.want {
				t.Fatalf("SelectDenominator(%v)=%d, want %d", tc.r, got, tc.want)
			}
		})
	}
}

func TestSelectDenominatorStaysInAllowedSet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		low := (rng.Float64() - 0.5) * 20
		span := rng.Float64() * 5
		r := Range{Low: low, High: low + span}
		den, ok := SelectDenominator(r, AllowedDenominators(), MinFractionTicks, MaxFractionTicks)
		if !ok {
			continue
		}
		if !IsAllowed(den) {
			t.Fatalf("SelectDenominator(%v)=%d, not an allowed denominator", r, den)
		}
	}
}

func TestFallbackScore(t *testing.T) {
	if got := fallbackScore(7, 7, 10); math.Abs(got-6.9) > Tolerance {
		t.Fatalf("score=%v, want 6.9", got)
	}
	if fallbackScore(11, 7, 10) <= fallbackScore(3, 7, 40) {
		t.Fatalf("expected more ticks near the band to score higher")
	}
}
