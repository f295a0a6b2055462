package numberline

import (
	"math"
	"testing"
)

func TestFormatLabel(t *testing.T) {
	cases := []struct {
		name     string
		value    float64
		den      int
		simplify bool
		want     Label
		text     string
	}{
		{name: "three quarters", value: 0.75, den: 4, simplify: true, want: Label{Kind: LabelFraction, Numerator: 3, Denominator: 4}, text: "3/4"},
		{name: "mixed half", value: 1.5, den: 2, simplify: true, want: Label{Kind: LabelMixed, Whole: 1, Numerator: 1, Denominator: 2}, text: "1 1/2"},
		{name: "negative half", value: -0.5, den: 2, want: Label{Kind: LabelFraction, Negative: true, Numerator: 1, Denominator: 2}, text: "-1/2"},
		{name: "reduced third", value: 2.0 / 6, den: 6, simplify: true, want: Label{Kind: LabelFraction, Numerator: 1, Denominator: 3}, text: "1/3"},
		{name: "unreduced sixths", value: 2.0 / 6, den: 6, want: Label{Kind: LabelFraction, Numerator: 2, Denominator: 6}, text: "2/6"},
		{name: "negative mixed", value: -1.75, den: 4, simplify: true, want: Label{Kind: LabelMixed, Negative: true, Whole: 1, Numerator: 3, Denominator: 4}, text: "-1 3/4"},
		{name: "mixed unreduced", value: 1.5, den: 4, want: Label{Kind: LabelMixed, Whole: 1, Numerator: 2, Denominator: 4}, text: "1 2/4"},
		{name: "mixed reduced", value: 1.5, den: 4, simplify: true, want: Label{Kind: LabelMixed, Whole: 1, Numerator: 1, Denominator: 2}, text: "1 1/2"},
		{name: "whole multiple", value: 3, den: 4, want: Label{Kind: LabelWhole, Whole: 3, Denominator: 1}, text: "3"},
		{name: "negative whole", value: -2, den: 5, want: Label{Kind: LabelWhole, Negative: true, Whole: 2, Denominator: 1}, text: "-2"},
		{name: "just below one", value: 0.9999999999, den: 4, want: Label{Kind: LabelWhole, Whole: 1, Denominator: 1}, text: "1"},
		{name: "nearest quarter", value: 0.3, den: 4, want: Label{Kind: LabelFraction, Numerator: 1, Denominator: 4}, text: "1/4"},
		{name: "carry into whole", value: 1.9, den: 4, want: Label{Kind: LabelWhole, Whole: 2, Denominator: 1}, text: "2"},
		{name: "tiny value", value: 0.0000000001, den: 7, simplify: true, want: Label{Kind: LabelZero, Denominator: 1}, text: "0"},
		{name: "tiny whole number", value: 0.0000000001, den: 1, want: Label{Kind: LabelZero, Denominator: 1}, text: "0"},
		{name: "snapped whole number", value: 2.0000000001, den: 1, want: Label{Kind: LabelWhole, Whole: 2, Denominator: 1}, text: "2"},
		{name: "decimal whole number", value: 2.5, den: 1, want: Label{Kind: LabelDecimal, Decimal: 2.5, Denominator: 1}, text: "2.5"},
		{name: "negative decimal", value: -0.25, den: 1, want: Label{Kind: LabelDecimal, Negative: true, Decimal: -0.25, Denominator: 1}, text: "-0.25"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatLabel(tc.value, tc.den, tc.simplify)
			if got != tc.want {
				t.Fatalf("FormatLabel(%v, %d, %v)=%+v, want %+v", tc.value, tc.den, tc.simplify, got, tc.want)
			}
			if got.String() != tc.text {
				t.Fatalf("String()=%q, want %q", got.String(), tc.text)
			}
		})
	}
}

func TestFormatLabelBeyondExactIntegers(t *testing.T) {
	cases := []struct {
		value float64
		den   int
	}{
		{value: 1e300, den: 4},
		{value: -1e300, den: 100},
		{value: 1e17, den: 1},
		{value: -1e16, den: 2},
	}
	for _, tc := range cases {
		got := FormatLabel(tc.value, tc.den, true)
		want := Label{Kind: LabelDecimal, Negative: tc.value < 0, Decimal: tc.value, Denominator: 1}
		if got != want {
			t.Fatalf("FormatLabel(%v, %d)=%+v, want %+v", tc.value, tc.den, got, want)
		}
	}
}

func TestFormatLabelSignAttachedOnce(t *testing.T) {
	l := FormatLabel(-0.5, 2, true)
	if l.Sign() != "-" || l.Whole != 0 || l.Numerator != 1 || l.Denominator != 2 {
		t.Fatalf("unexpected label %+v", l)
	}
	l = FormatLabel(-2.25, 4, true)
	if l.Sign() != "-" || l.Whole != 2 || l.Numerator != 1 {
		t.Fatalf("unexpected label %+v", l)
	}
}

func TestFormatLabelIdempotent(t *testing.T) {
	for _, v := range []float64{-2.5, -0.125, 0, 0.4, 1.6, 7.75} {
		for _, den := range []int{1, 2, 5, 8, 100} {
			a := FormatLabel(v, den, true)
			b := FormatLabel(v, den, true)
			if a != b {
				t.Fatalf("FormatLabel(%v, %d) not stable: %+v vs %+v", v, den, a, b)
			}
		}
	}
}

func TestFormatLabelRoundTrip(t *testing.T) {
	r := Range{Low: -3, High: 3}
	for _, den := range AllowedDenominators() {
		for _, v := range FractionTicks(r, den) {
			for _, simplify := range []bool{false, true} {
				l := FormatLabel(v, den, simplify)
				if math.Abs(l.Value()-v) > Tolerance {
					t.Fatalf("den %d value %v: label %s recombines to %v", den, v, l, l.Value())
				}
				if simplify && l.HasFraction() && gcd(l.Numerator, l.Denominator) != 1 {
					t.Fatalf("den %d value %v: %s not in lowest terms", den, v, l)
				}
				if l.HasFraction() && (l.Numerator <= 0 || l.Numerator >= l.Denominator) {
					t.Fatalf("den %d value %v: improper fraction part %s", den, v, l)
				}
			}
		}
	}
}

func TestLabelMathML(t *testing.T) {
	cases := []struct {
		label Label
		want  string
	}{
		{label: FormatLabel(-0.5, 2, true), want: "<mo>-</mo><mfrac><mn>1</mn><mn>2</mn></mfrac>"},
		{label: FormatLabel(-1.75, 4, true), want: "<mo>-</mo><mn>1</mn><mfrac><mn>3</mn><mn>4</mn></mfrac>"},
		{label: FormatLabel(0.75, 4, true), want: "<mfrac><mn>3</mn><mn>4</mn></mfrac>"},
		{label: FormatLabel(-2, 4, true), want: "<mn>-2</mn>"},
		{label: FormatLabel(0, 4, true), want: "<mn>0</mn>"},
	}
	for _, tc := range cases {
		want := `<math xmlns="http://www.w3.org/1998/Math/MathML">` + tc.want + "</math>"
		if got := tc.label.MathML(); got != want {
			t.Fatalf("MathML()=%q, want %q", got, want)
		}
	}
}

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{a: 12, b: 18, want: 6},
		{a: 7, b: 3, want: 1},
		{a: 0, b: 5, want: 5},
		{a: -4, b: 6, want: 2},
	}
	for _, tc := range cases {
		if got := gcd(tc.a, tc.b); got != tc.want {
			t.Fatalf("gcd(%d, %d)=%d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
	if n, d := reduce(2, 6); n != 1 || d != 3 {
		t.Fatalf("reduce(2, 6)=%d/%d, want 1/3", n, d)
	}
}

func TestFormatCompact(t *testing.T) {
	cases := map[float64]string{0: "0", 0.25: "0.25", 1.5: "1.5", 1e-12: "0", 100: "100"}
	for v, want := range cases {
		if got := formatCompact(v); got != want {
			t.Fatalf("formatCompact(%v)=%q, want %q", v, got, want)
		}
	}
}
