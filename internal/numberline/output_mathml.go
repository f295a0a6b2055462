package numberline

import (
	"bytes"
	"strconv"
)

const mathMLNamespace = "http://www.w3.org/1998/Math/MathML"

// MathML renders the label as a standalone <math> element.
func (l Label) MathML() string {
	var buf bytes.Buffer
	buf.WriteString(`<math xmlns="`)
	buf.WriteString(mathMLNamespace)
	buf.WriteString(`">`)
	writeMathMLBody(&buf, l)
	buf.WriteString("</math>")
	return buf.String()
}

func writeMathMLBody(buf *bytes.Buffer, l Label) {
	switch l.Kind {
	case LabelZero, LabelWhole, LabelDecimal:
		writeMN(buf, l.String())
		return
	}
	if l.Negative {
		buf.WriteString("<mo>-</mo>")
	}
	if l.Kind == LabelMixed {
		writeMN(buf, strconv.Itoa(l.Whole))
	}
	buf.WriteString("<mfrac>")
	writeMN(buf, strconv.Itoa(l.Numerator))
	writeMN(buf, strconv.Itoa(l.Denominator))
	buf.WriteString("</mfrac>")
}

func writeMN(buf *bytes.Buffer, text string) {
	buf.WriteString("<mn>")
	buf.WriteString(text)
	buf.WriteString("</mn>")
}

// RenderMathML writes one <math> element per tick, in tick order.
func RenderMathML(frame Frame) string {
	var buf bytes.Buffer
	for _, tick := range frame.Ticks {
		buf.WriteString(tick.Label.MathML())
		buf.WriteString("\n")
	}
	return buf.String()
}
