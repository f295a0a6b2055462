package numberline

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownOutput = errors.New("output format not implemented")

type Output string

const (
	OutputText   Output = "Text"
	OutputJSON   Output = "JSON"
	OutputXML    Output = "XML"
	OutputCSV    Output = "CSV"
	OutputMathML Output = "MathML"
	OutputSVG    Output = "SVG"
)

var outputs = []Output{OutputText, OutputJSON, OutputXML, OutputCSV, OutputMathML, OutputSVG}

// Outputs lists the supported output formats.
func Outputs() []Output {
	return append([]Output(nil), outputs...)
}

// ParseOutput matches name case-insensitively. An empty name is Text.
func ParseOutput(name string) (Output, error) {
	if strings.TrimSpace(name) == "" {
		return OutputText, nil
	}
	for _, out := range outputs {
		if strings.EqualFold(name, string(out)) {
			return out, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownOutput, name)
}

// RenderOutput renders frame in the given format.
func RenderOutput(frame Frame, out Output) (string, error) {
	switch out {
	case OutputText, "":
		return RenderText(frame), nil
	case OutputJSON:
		return RenderJSON(frame), nil
	case OutputXML:
		return RenderXML(frame), nil
	case OutputCSV:
		return RenderCSV(frame), nil
	case OutputMathML:
		return RenderMathML(frame), nil
	case OutputSVG:
		return RenderSVG(frame), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownOutput, out)
}
