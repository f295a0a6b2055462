package numberline

// View is the complete input of one render pass.
type View struct {
	Range Range
	// Denominator forces a denominator; 0 selects automatically. Values
	// outside the allowed set fall back to automatic selection.
	Denominator int
	Simplify    bool
	Rods        bool
	// Width and Height size the drawing in pixels.
	Width  float64
	Height float64
}

const (
	defaultWidth  = 800
	defaultHeight = 400
)

func DefaultView() View {
	return View{
		Range:    DefaultRange(),
		Simplify: true,
		Width:    defaultWidth,
		Height:   defaultHeight,
	}
}

func normalizeView(view View) View {
	if !isFinite(view.Width) || view.Width <= 0 {
		view.Width = defaultWidth
	}
	if !isFinite(view.Height) || view.Height <= 0 {
		view.Height = defaultHeight
	}
	if view.Denominator != 0 && !IsAllowed(view.Denominator) {
		view.Denominator = 0
	}
	return view
}

// decimalLabelCount is the number of labels requested for the decimal axis.
func decimalLabelCount(width float64) int {
	n := int(width / labelPitch)
	if n < 2 {
		n = 2
	}
	if n > MaxLabels {
		n = MaxLabels
	}
	return n
}
