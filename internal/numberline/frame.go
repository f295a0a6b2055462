package numberline

// Tick is one labelled axis mark.
type Tick struct {
	Value float64
	Label Label
}

// DecimalTick is a mark on the secondary decimal axis.
type DecimalTick struct {
	Value float64
	Text  string
}

// Frame is the fully resolved output of a render pass.
type Frame struct {
	View View
	// Domain is the padded range used for drawing.
	Domain Range
	// Denominator is the shared unit of Ticks; 1 means whole numbers.
	Denominator  int
	Forced       bool
	Fractions    bool
	Ticks        []Tick
	DecimalTicks []DecimalTick
	Rods         []Rod
}

// Render resolves view into ticks, labels, decimal marks and rods. It is a
// pure function of view.
func Render(view View) Frame {
	view = normalizeView(view)
	frame := Frame{
		View:   view,
		Domain: view.Range.Padded(),
	}

	values, den := chooseTicks(view)
	frame.Forced = view.Denominator != 0 && den == view.Denominator
	frame.Fractions = den > 1
	frame.Denominator = den
	frame.Ticks = make([]Tick, 0, len(values))
	for _, v := range values {
		frame.Ticks = append(frame.Ticks, Tick{Value: v, Label: FormatLabel(v, den, view.Simplify)})
	}

	for _, v := range DecimalTicks(frame.Domain, decimalLabelCount(view.Width)) {
		frame.DecimalTicks = append(frame.DecimalTicks, DecimalTick{Value: v, Text: formatCompact(v)})
	}

	if view.Rods && frame.Fractions {
		frame.Rods = Rods(view.Range, den)
	}
	return frame
}

// chooseTicks returns the tick values of view and their shared denominator.
func chooseTicks(view View) ([]float64, int) {
	r := view.Range
	if forced := view.Denominator; forced > 1 {
		if n := TickCount(r, forced); n > 0 && n <= maxRenderTicks {
			return FractionTicks(r, forced), forced
		}
		return wholeNumberTicks(view), 1
	}
	den, ok := SelectDenominator(r, allowedDenominators[:], MinFractionTicks, MaxFractionTicks)
	if ok {
		if n := TickCount(r, den); n >= MinFractionTicks && n <= MaxFractionTicks {
			return FractionTicks(r, den), den
		}
	}
	return wholeNumberTicks(view), 1
}

func wholeNumberTicks(view View) []float64 {
	r := view.Range
	if n := TickCount(r, 1); n >= 2 && n <= maxRenderTicks {
		return IntegerTicks(r)
	}
	return wholeTicks(DecimalTicks(r.Padded(), decimalLabelCount(view.Width)))
}
