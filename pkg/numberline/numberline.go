package numberline

import (
	"github.com/autobrr/go-numberline/internal/numberline"
)

// Types
type Range = numberline.Range
type View = numberline.View
type Frame = numberline.Frame
type Tick = numberline.Tick
type DecimalTick = numberline.DecimalTick
type Label = numberline.Label
type LabelKind = numberline.LabelKind
type Rod = numberline.Rod
type Output = numberline.Output

// Constants
const (
	Tolerance        = numberline.Tolerance
	MinFractionTicks = numberline.MinFractionTicks
	MaxFractionTicks = numberline.MaxFractionTicks
	MaxLabels        = numberline.MaxLabels

	LabelZero     = numberline.LabelZero
	LabelWhole    = numberline.LabelWhole
	LabelDecimal  = numberline.LabelDecimal
	LabelFraction = numberline.LabelFraction
	LabelMixed    = numberline.LabelMixed

	OutputText   = numberline.OutputText
	OutputJSON   = numberline.OutputJSON
	OutputXML    = numberline.OutputXML
	OutputCSV    = numberline.OutputCSV
	OutputMathML = numberline.OutputMathML
	OutputSVG    = numberline.OutputSVG
)

// Errors
var (
	ErrInvalidRange  = numberline.ErrInvalidRange
	ErrUnknownOutput = numberline.ErrUnknownOutput
)

// Core
func NewRange(low, high float64) (Range, error) {
	return numberline.NewRange(low, high)
}

func DefaultView() View {
	return numberline.DefaultView()
}

func AllowedDenominators() []int {
	return numberline.AllowedDenominators()
}

func SelectDenominator(r Range, allowed []int, minTicks, maxTicks int) (int, bool) {
	return numberline.SelectDenominator(r, allowed, minTicks, maxTicks)
}

func FractionTicks(r Range, den int) []float64 {
	return numberline.FractionTicks(r, den)
}

func FormatLabel(value float64, den int, simplify bool) Label {
	return numberline.FormatLabel(value, den, simplify)
}

func Rods(r Range, den int) []Rod {
	return numberline.Rods(r, den)
}

func Render(view View) Frame {
	return numberline.Render(view)
}

// Rendering
func ParseOutput(name string) (Output, error) {
	return numberline.ParseOutput(name)
}

func RenderOutput(frame Frame, out Output) (string, error) {
	return numberline.RenderOutput(frame, out)
}

func RenderText(frame Frame) string {
	return numberline.RenderText(frame)
}

func RenderJSON(frame Frame) string {
	return numberline.RenderJSON(frame)
}

func RenderSVG(frame Frame) string {
	return numberline.RenderSVG(frame)
}

func FormatVersion(version string) string {
	return numberline.FormatVersion(version)
}
