package numberline

import (
	"math"
	"strconv"
	"strings"
)

type LabelKind string

const (
	LabelZero     LabelKind = "Zero"
	LabelWhole    LabelKind = "Whole"
	LabelDecimal  LabelKind = "Decimal"
	LabelFraction LabelKind = "Fraction"
	LabelMixed    LabelKind = "Mixed"
)

// Label is the classified form of one tick value. Whole, Numerator and
// Denominator are magnitudes; the sign lives only in Negative.
type Label struct {
	Kind        LabelKind
	Negative    bool
	Whole       int
	Numerator   int
	Denominator int
	// Decimal holds the raw value of LabelDecimal labels.
	Decimal float64
}

// FormatLabel classifies value as a multiple of 1/den. A den of 1 or less
// labels whole numbers; anything that is not within tolerance of a whole is
// kept as a decimal. For larger denominators the value is rounded to the
// nearest multiple of 1/den. With simplify the fraction part is reduced to
// lowest terms.
func FormatLabel(value float64, den int, simplify bool) Label {
	if den <= 1 {
		return wholeNumberLabel(value)
	}

	d := float64(den)
	num := value * d
	if !isFinite(num) || math.Abs(num) >= maxExactInt {
		return decimalLabel(value)
	}
	if r := math.Round(num); math.Abs(num-r) < Tolerance*d {
		num = r
	}
	if math.Abs(value) < Tolerance || math.Abs(num) < Tolerance {
		return Label{Kind: LabelZero, Denominator: 1}
	}

	negative := num < 0
	abs := math.Abs(num)

	rem := math.Mod(abs, d)
	if rem < Tolerance*d || (d-rem < Tolerance*d && rem != 0) {
		return wholeLabel(negative, int(math.Round(abs/d)))
	}

	whole := int(math.Trunc(abs / d))
	remainder := int(math.Round(math.Mod(abs, d)))
	if remainder == den {
		whole++
		remainder = 0
	}
	if remainder == 0 {
		if whole == 0 {
			return Label{Kind: LabelZero, Denominator: 1}
		}
		return wholeLabel(negative, whole)
	}

	n, dd := remainder, den
	if simplify {
		n, dd = reduce(n, dd)
	}
	kind := LabelMixed
	if whole == 0 {
		kind = LabelFraction
	}
	return Label{Kind: kind, Negative: negative, Whole: whole, Numerator: n, Denominator: dd}
}

func wholeNumberLabel(value float64) Label {
	r := math.Round(value)
	if !isFinite(value) || math.Abs(r) >= maxExactInt || math.Abs(value-r) >= Tolerance {
		return decimalLabel(value)
	}
	if r == 0 {
		return Label{Kind: LabelZero, Denominator: 1}
	}
	return wholeLabel(r < 0, int(math.Abs(r)))
}

// decimalLabel keeps values that cannot be split into exact integer parts.
func decimalLabel(value float64) Label {
	return Label{Kind: LabelDecimal, Negative: value < 0, Decimal: value, Denominator: 1}
}

func wholeLabel(negative bool, whole int) Label {
	if whole == 0 {
		return Label{Kind: LabelZero, Denominator: 1}
	}
	return Label{Kind: LabelWhole, Negative: negative, Whole: whole, Denominator: 1}
}

// Sign is "-" for negative labels and empty otherwise.
func (l Label) Sign() string {
	if l.Negative {
		return "-"
	}
	return ""
}

// HasFraction reports whether the label carries a numerator/denominator part.
func (l Label) HasFraction() bool {
	return l.Kind == LabelFraction || l.Kind == LabelMixed
}

// Value recombines the label into a number.
func (l Label) Value() float64 {
	switch l.Kind {
	case LabelZero:
		return 0
	case LabelDecimal:
		return l.Decimal
	}
	v := float64(l.Whole)
	if l.HasFraction() && l.Denominator > 0 {
		v += float64(l.Numerator) / float64(l.Denominator)
	}
	if l.Negative {
		v = -v
	}
	return v
}

// String renders the label as plain text, e.g. "-1 3/4".
func (l Label) String() string {
	switch l.Kind {
	case LabelZero:
		return "0"
	case LabelDecimal:
		return formatDecimal(l.Decimal)
	case LabelWhole:
		return l.Sign() + strconv.Itoa(l.Whole)
	}
	var b strings.Builder
	b.WriteString(l.Sign())
	if l.Kind == LabelMixed {
		b.WriteString(strconv.Itoa(l.Whole))
		b.WriteString(" ")
	}
	b.WriteString(strconv.Itoa(l.Numerator))
	b.WriteString("/")
	b.WriteString(strconv.Itoa(l.Denominator))
	return b.String()
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatCompact mirrors the "~g" axis format: six significant digits with
// trailing zeros removed.
func formatCompact(v float64) string {
	if math.Abs(v) < Tolerance {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
