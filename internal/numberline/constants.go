package numberline

// Tolerance is the absolute error absorbed by every floating-point
// comparison. Comparisons on scaled numerators multiply it by the denominator.
const Tolerance = 1e-9

// Tick-count bounds for automatically chosen fraction ticks.
const (
	MinFractionTicks = 7
	MaxFractionTicks = 10
)

// MaxLabels caps the number of labels on whole-number and decimal axes.
const MaxLabels = 10

// maxRenderTicks is the ceiling on ticks a single frame enumerates.
const maxRenderTicks = 1000

// maxExactInt bounds step indexes and scaled numerators to integers that
// float64 represents exactly.
const maxExactInt = 1 << 53

// labelPitch is the horizontal room, in pixels, reserved per decimal label.
const labelPitch = 70

// Viewport limits.
const (
	ZoomSensitivity = 0.001
	MinSpan         = 1e-7
	MaxSpan         = 1e7
	DomainPadding   = 0.03
)

var allowedDenominators = [...]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 14, 16, 18, 20, 25, 30, 40, 50, 60, 100}

// AllowedDenominators returns a copy of the curated candidate denominators in
// ascending order.
func AllowedDenominators() []int {
	out := make([]int, len(allowedDenominators))
	copy(out, allowedDenominators[:])
	return out
}

// IsAllowed reports whether den belongs to the curated denominator set.
func IsAllowed(den int) bool {
	for _, d := range allowedDenominators {
		if d == den {
			return true
		}
	}
	return false
}
