package numberline

import "math"

// FractionTicks returns the multiples of 1/den inside r in ascending order.
func FractionTicks(r Range, den int) []float64 {
	if den < 1 {
		return nil
	}
	first, last := numeratorBounds(r, den)
	if last < first {
		return nil
	}
	ticks := make([]float64, 0, last-first+1)
	for k := first; k <= last; k++ {
		ticks = append(ticks, float64(k)/float64(den))
	}
	return ticks
}

// IntegerTicks returns every integer inside r.
func IntegerTicks(r Range) []float64 {
	return FractionTicks(r, 1)
}

var (
	niceE10 = math.Sqrt(50)
	niceE5  = math.Sqrt(10)
	niceE2  = math.Sqrt(2)
)

// DecimalTicks returns roughly count evenly spaced values inside r whose step
// is 1, 2 or 5 times a power of ten.
func DecimalTicks(r Range, count int) []float64 {
	if count <= 0 || !isFinite(r.Low) || !isFinite(r.High) || r.Low > r.High {
		return nil
	}
	if r.Low == r.High {
		return []float64{r.Low}
	}
	i1, i2, inc := niceSteps(r.Low, r.High, float64(count))
	if !isFinite(inc) || i2 < i1 || math.Abs(i1) >= maxExactInt || math.Abs(i2) >= maxExactInt {
		return nil
	}
	n := int(i2-i1) + 1
	if n > maxRenderTicks {
		n = maxRenderTicks
	}
	ticks := make([]float64, 0, n)
	for j := 0; j < n; j++ {
		i := i1 + float64(j)
		if inc < 0 {
			ticks = append(ticks, i/-inc)
		} else {
			ticks = append(ticks, i*inc)
		}
	}
	return ticks
}

// niceSteps returns the first and last step index and the step. A negative
// step means values are index / -step, which keeps sub-unit steps exact.
func niceSteps(start, stop, count float64) (float64, float64, float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	errRatio := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case errRatio >= niceE10:
		factor = 10
	case errRatio >= niceE5:
		factor = 5
	case errRatio >= niceE2:
		factor = 2
	}

	var i1, i2, inc float64
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && count >= 0.5 && count < 2 {
		return niceSteps(start, stop, count*2)
	}
	return i1, i2, inc
}

// wholeTicks keeps only the values within Tolerance of an integer, snapped.
func wholeTicks(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if r := math.Round(v); math.Abs(v-r) < Tolerance {
			out = append(out, r)
		}
	}
	return out
}
