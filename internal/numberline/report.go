package numberline

import (
	"fmt"
	"strconv"
)

type SectionKind string

const (
	SectionGeneral SectionKind = "General"
	SectionTicks   SectionKind = "Ticks"
	SectionDecimal SectionKind = "Decimal"
	SectionRods    SectionKind = "Rods"
)

type Field struct {
	Name  string
	Value string
}

type Section struct {
	Kind   SectionKind
	Fields []Field
}

// sections flattens a frame into ordered name/value sections shared by the
// text, CSV and XML renderers. Empty sections are omitted.
func sections(frame Frame) []Section {
	out := []Section{{Kind: SectionGeneral, Fields: generalFields(frame)}}

	if len(frame.Ticks) > 0 {
		ticks := Section{Kind: SectionTicks}
		for _, tick := range frame.Ticks {
			ticks.Fields = append(ticks.Fields, Field{Name: formatDecimal(tick.Value), Value: tick.Label.String()})
		}
		out = append(out, ticks)
	}

	if len(frame.DecimalTicks) > 0 {
		decimal := Section{Kind: SectionDecimal}
		for _, tick := range frame.DecimalTicks {
			decimal.Fields = append(decimal.Fields, Field{Name: formatDecimal(tick.Value), Value: tick.Text})
		}
		out = append(out, decimal)
	}

	if len(frame.Rods) > 0 {
		rods := Section{Kind: SectionRods}
		for _, rod := range frame.Rods {
			rods.Fields = append(rods.Fields, Field{Name: strconv.Itoa(rod.Index), Value: rodSpan(rod)})
		}
		out = append(out, rods)
	}
	return out
}

func generalFields(frame Frame) []Field {
	fields := []Field{
		{Name: "Range", Value: formatRange(frame.View.Range)},
		{Name: "Denominator", Value: denominatorValue(frame)},
		{Name: "Simplify", Value: yesNo(frame.View.Simplify)},
		{Name: "Tick count", Value: strconv.Itoa(len(frame.Ticks))},
	}
	if frame.View.Rods {
		fields = append(fields, Field{Name: "Rod count", Value: strconv.Itoa(len(frame.Rods))})
	}
	return fields
}

func denominatorValue(frame Frame) string {
	if !frame.Fractions {
		return "1 (whole numbers)"
	}
	mode := "auto"
	if frame.Forced {
		mode = "forced"
	}
	return fmt.Sprintf("%d (%s)", frame.Denominator, mode)
}

func formatRange(r Range) string {
	return formatDecimal(r.Low) + " .. " + formatDecimal(r.High)
}

func rodSpan(rod Rod) string {
	text := formatDecimal(rod.Start) + " .. " + formatDecimal(rod.End)
	if rod.Clipped {
		text += " (clipped)"
	}
	return text
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
