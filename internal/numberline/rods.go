package numberline

import "math"

// Rod is one unit-fraction segment [Index/Denominator, (Index+1)/Denominator].
type Rod struct {
	Index       int
	Denominator int
	Start       float64
	End         float64
	// Clipped marks rods that extend past an edge of the range.
	Clipped bool
}

// Length is the unclipped extent of the rod, always 1/Denominator.
func (r Rod) Length() float64 {
	return r.End - r.Start
}

// Rods lays unit fractions of 1/den end to end across r. Every segment that
// overlaps r by more than Tolerance is returned, in ascending order.
func Rods(r Range, den int) []Rod {
	if den < 2 || r.Degenerate() {
		return nil
	}
	d := float64(den)
	lo := math.Floor(r.Low*d + Tolerance)
	hi := math.Ceil(r.High*d - Tolerance)
	if math.Abs(lo) >= maxExactInt || math.Abs(hi) >= maxExactInt {
		return nil
	}
	first, last := int(lo), int(hi)-1
	if last < first || last-first+1 > maxRenderTicks {
		return nil
	}
	rods := make([]Rod, 0, last-first+1)
	for k := first; k <= last; k++ {
		start := float64(k) / d
		end := float64(k+1) / d
		rods = append(rods, Rod{
			Index:       k,
			Denominator: den,
			Start:       start,
			End:         end,
			Clipped:     start < r.Low-Tolerance || end > r.High+Tolerance,
		})
	}
	return rods
}
