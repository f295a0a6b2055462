package numberline

import (
	"bytes"
	"fmt"
)

type margins struct {
	top, right, bottom, left float64
}

var chartMargins = margins{top: 120, right: 60, bottom: 60, left: 30}

const (
	labelBoxWidth   = 70
	labelBoxHeight  = 40
	labelOffset     = 10
	decimalAxisLift = 80
	tickLength      = 6
	rodOffset       = 56
	rodHeight       = 16
)

// RenderSVG draws the frame: grid lines, the fraction axis with MathML labels
// in foreignObject boxes, the decimal axis above it and optional rods below.
func RenderSVG(frame Frame) string {
	width, height := frame.View.Width, frame.View.Height
	chartWidth := width - chartMargins.left - chartMargins.right
	chartHeight := height - chartMargins.top - chartMargins.bottom

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s">`, svgNum(width), svgNum(height))
	if chartWidth <= 0 || chartHeight <= 0 || frame.Domain.Degenerate() {
		buf.WriteString("</svg>\n")
		return buf.String()
	}

	scale := func(v float64) float64 {
		return (v - frame.Domain.Low) / frame.Domain.Span() * chartWidth
	}
	axisY := chartHeight / 2
	decimalY := axisY - decimalAxisLift

	fmt.Fprintf(&buf, `<g transform="translate(%s,%s)">`, svgNum(chartMargins.left), svgNum(chartMargins.top))

	buf.WriteString(`<g class="grid-lines">`)
	for _, tick := range frame.Ticks {
		x := svgNum(scale(tick.Value))
		fmt.Fprintf(&buf, `<line class="grid-line" x1="%s" x2="%s" y1="%s" y2="%s" stroke="#e0e0e0"/>`, x, x, svgNum(-axisY), svgNum(axisY))
	}
	buf.WriteString("</g>")

	fmt.Fprintf(&buf, `<g class="axis" transform="translate(0,%s)">`, svgNum(axisY))
	fmt.Fprintf(&buf, `<path class="domain" d="M0,0H%s" stroke="currentColor"/>`, svgNum(chartWidth))
	for _, tick := range frame.Ticks {
		fmt.Fprintf(&buf, `<g class="tick" transform="translate(%s,0)">`, svgNum(scale(tick.Value)))
		fmt.Fprintf(&buf, `<line y2="%d" stroke="currentColor"/>`, tickLength)
		fmt.Fprintf(&buf, `<foreignObject width="%d" height="%d" x="%d" y="%d" style="overflow:visible">`, labelBoxWidth, labelBoxHeight, -labelBoxWidth/2, labelOffset)
		buf.WriteString(`<div xmlns="http://www.w3.org/1999/xhtml" class="mathml-label-container">`)
		buf.WriteString(tick.Label.MathML())
		buf.WriteString("</div></foreignObject></g>")
	}
	buf.WriteString("</g>")

	fmt.Fprintf(&buf, `<g class="axis axis-decimal" transform="translate(0,%s)">`, svgNum(decimalY))
	fmt.Fprintf(&buf, `<path class="domain" d="M0,0H%s" stroke="currentColor"/>`, svgNum(chartWidth))
	for _, tick := range frame.DecimalTicks {
		fmt.Fprintf(&buf, `<g class="tick" transform="translate(%s,0)">`, svgNum(scale(tick.Value)))
		fmt.Fprintf(&buf, `<line y2="%d" stroke="currentColor"/>`, -tickLength)
		fmt.Fprintf(&buf, `<text class="mathml-like-label" y="%d" dy="-0.3em" text-anchor="middle">%s</text></g>`, -tickLength-3, tick.Text)
	}
	buf.WriteString("</g>")

	if len(frame.Rods) > 0 {
		writeSVGRods(&buf, frame, scale, axisY+rodOffset, chartWidth)
	}

	buf.WriteString("</g></svg>\n")
	return buf.String()
}

func writeSVGRods(buf *bytes.Buffer, frame Frame, scale func(float64) float64, y, chartWidth float64) {
	buf.WriteString(`<g class="rods">`)
	for _, rod := range frame.Rods {
		x0 := clampFloat(scale(rod.Start), 0, chartWidth)
		x1 := clampFloat(scale(rod.End), 0, chartWidth)
		if x1 <= x0 {
			continue
		}
		class := "rod"
		if rod.Index%2 != 0 {
			class += " rod-odd"
		}
		fmt.Fprintf(buf, `<rect class="%s" data-index="%d" x="%s" y="%s" width="%s" height="%d"/>`, class, rod.Index, svgNum(x0), svgNum(y), svgNum(x1-x0), rodHeight)
	}
	buf.WriteString("</g>")
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func svgNum(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
