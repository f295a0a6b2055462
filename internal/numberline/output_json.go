package numberline

import "encoding/json"

type jsonFrame struct {
	CreatingLibrary jsonLibrary   `json:"creatingLibrary"`
	Range           jsonRange     `json:"range"`
	Domain          jsonRange     `json:"domain"`
	Denominator     int           `json:"denominator"`
	Forced          bool          `json:"forced"`
	Fractions       bool          `json:"fractions"`
	Simplify        bool          `json:"simplify"`
	Ticks           []jsonTick    `json:"ticks"`
	DecimalTicks    []jsonDecimal `json:"decimalTicks"`
	Rods            []jsonRod     `json:"rods,omitempty"`
}

type jsonLibrary struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	URL     string `json:"url"`
}

type jsonRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type jsonTick struct {
	Value       float64 `json:"value"`
	Kind        string  `json:"kind"`
	Sign        string  `json:"sign"`
	Whole       int     `json:"whole"`
	Numerator   int     `json:"numerator"`
	Denominator int     `json:"denominator"`
	Text        string  `json:"text"`
}

type jsonDecimal struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

type jsonRod struct {
	Index       int     `json:"index"`
	Denominator int     `json:"denominator"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Clipped     bool    `json:"clipped"`
}

func RenderJSON(frame Frame) string {
	data, err := json.MarshalIndent(buildJSONFrame(frame), "", "  ")
	if err != nil {
		return "{}\n"
	}
	return string(data) + "\n"
}

func buildJSONFrame(frame Frame) jsonFrame {
	out := jsonFrame{
		CreatingLibrary: jsonLibrary{Name: AppName, Version: FormatVersion(AppVersion), URL: AppURL},
		Range:           jsonRange{Low: frame.View.Range.Low, High: frame.View.Range.High},
		Domain:          jsonRange{Low: frame.Domain.Low, High: frame.Domain.High},
		Denominator:     frame.Denominator,
		Forced:          frame.Forced,
		Fractions:       frame.Fractions,
		Simplify:        frame.View.Simplify,
		Ticks:           make([]jsonTick, 0, len(frame.Ticks)),
		DecimalTicks:    make([]jsonDecimal, 0, len(frame.DecimalTicks)),
	}
	for _, tick := range frame.Ticks {
		l := tick.Label
		out.Ticks = append(out.Ticks, jsonTick{
			Value:       tick.Value,
			Kind:        string(l.Kind),
			Sign:        l.Sign(),
			Whole:       l.Whole,
			Numerator:   l.Numerator,
			Denominator: l.Denominator,
			Text:        l.String(),
		})
	}
	for _, tick := range frame.DecimalTicks {
		out.DecimalTicks = append(out.DecimalTicks, jsonDecimal{Value: tick.Value, Text: tick.Text})
	}
	for _, rod := range frame.Rods {
		out.Rods = append(out.Rods, jsonRod{
			Index:       rod.Index,
			Denominator: rod.Denominator,
			Start:       rod.Start,
			End:         rod.End,
			Clipped:     rod.Clipped,
		})
	}
	return out
}
