package numberline

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidRange = errors.New("invalid range")

// Range is the visible numeric span of the axis.
type Range struct {
	Low  float64
	High float64
}

// NewRange validates low and high. Equal bounds are accepted and yield a
// degenerate range; reversed or non-finite bounds are rejected.
func NewRange(low, high float64) (Range, error) {
	if !isFinite(low) || !isFinite(high) {
		return Range{}, fmt.Errorf("%w: bounds must be finite", ErrInvalidRange)
	}
	if math.Abs(low) > maxMagnitude || math.Abs(high) > maxMagnitude {
		return Range{}, fmt.Errorf("%w: bounds must be within ±%g", ErrInvalidRange, maxMagnitude)
	}
	if low > high {
		return Range{}, fmt.Errorf("%w: low %v is above high %v", ErrInvalidRange, low, high)
	}
	return Range{Low: low, High: high}, nil
}

// maxMagnitude keeps scaled numerators exactly representable as integers.
const maxMagnitude = 1e12

// DefaultRange is the initial view of the widget.
func DefaultRange() Range {
	return Range{Low: -0.01, High: 1.01}
}

func (r Range) Span() float64 {
	return r.High - r.Low
}

// Degenerate reports ranges for which no denominator can be chosen.
func (r Range) Degenerate() bool {
	if !isFinite(r.Low) || !isFinite(r.High) {
		return true
	}
	return r.Low >= r.High || math.Abs(r.High-r.Low) < Tolerance
}

// Contains reports whether v lies within the range, widened by Tolerance.
func (r Range) Contains(v float64) bool {
	return v >= r.Low-Tolerance && v <= r.High+Tolerance
}

// Padded extends the high edge so the last tick is not drawn on the border.
func (r Range) Padded() Range {
	return Range{Low: r.Low, High: r.High + DomainPadding*r.Span()}
}

// Zoom scales the range around pointer by exp(-deltaY*ZoomSensitivity).
// Positive deltaY zooms in. The range is returned unchanged with ok=false
// when the pointer is outside the range, the new span leaves
// [MinSpan, MaxSpan] or a new bound leaves ±maxMagnitude.
func (r Range) Zoom(pointer, deltaY float64) (Range, bool) {
	if !isFinite(pointer) || !isFinite(deltaY) || pointer < r.Low || pointer > r.High {
		return r, false
	}
	factor := math.Exp(-deltaY * ZoomSensitivity)
	next := Range{
		Low:  pointer - (pointer-r.Low)*factor,
		High: pointer + (r.High-pointer)*factor,
	}
	span := next.Span()
	if span < MinSpan || span > MaxSpan || !next.withinMagnitude() {
		return r, false
	}
	return next, true
}

// Pan shifts both edges by delta. The range is returned unchanged with
// ok=false when delta is not finite or a new bound leaves ±maxMagnitude.
func (r Range) Pan(delta float64) (Range, bool) {
	if !isFinite(delta) {
		return r, false
	}
	next := Range{Low: r.Low + delta, High: r.High + delta}
	if !next.withinMagnitude() {
		return r, false
	}
	return next, true
}

func (r Range) withinMagnitude() bool {
	return math.Abs(r.Low) <= maxMagnitude && math.Abs(r.High) <= maxMagnitude
}

// numeratorBounds returns the first and last integer k with k/den inside r.
// Ranges whose scaled bounds are not exact integers in float64 yield an
// empty interval.
func numeratorBounds(r Range, den int) (int, int) {
	d := float64(den)
	first := math.Ceil(r.Low*d - Tolerance)
	last := math.Floor(r.High*d + Tolerance)
	if !isFinite(first) || !isFinite(last) || math.Abs(first) >= maxExactInt || math.Abs(last) >= maxExactInt {
		return 1, 0
	}
	return int(first), int(last)
}

// TickCount is the number of multiples of 1/den inside r.
func TickCount(r Range, den int) int {
	if den < 1 {
		return 0
	}
	first, last := numeratorBounds(r, den)
	if last < first {
		return 0
	}
	return last - first + 1
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
