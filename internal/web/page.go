package web

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/autobrr/go-numberline/internal/numberline"
)

// zoomStep is the wheel delta applied by the zoom links.
const zoomStep = 200

// panFraction is the share of the span moved by the pan links.
const panFraction = 0.25

func page(frame numberline.Frame) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		view := frame.View
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Numberline</title>`+pageStyle+`</head><body>`); err != nil {
			return err
		}
		if err := controls(view).Render(ctx, w); err != nil {
			return err
		}
		if err := navigation(view).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<div id="chartContainer">%s</div>`, numberline.RenderSVG(frame)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<p class="summary">%s</p>`, templ.EscapeString(summary(frame))); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

const pageStyle = `<style>
body{font-family:serif;margin:1rem}
#chartContainer{width:100%;overflow:visible}
.grid-line{stroke:#e0e0e0}
.rod{fill:#9ecae1;stroke:#3182bd}
.rod-odd{fill:#c6dbef}
nav a{margin-right:1rem}
</style>`

func controls(view numberline.View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		q := viewQuery(view)
		var buf []byte
		buf = append(buf, `<form method="get" action="/">`...)
		buf = appendHidden(buf, "low", q.Get("low"))
		buf = appendHidden(buf, "high", q.Get("high"))
		buf = append(buf, `<label for="denominatorSelect">Denominator</label><select id="denominatorSelect" name="den">`...)
		buf = appendOption(buf, "auto", "Auto", view.Denominator == 0)
		for _, den := range numberline.AllowedDenominators() {
			value := strconv.Itoa(den)
			buf = appendOption(buf, value, "1/"+value, view.Denominator == den)
		}
		buf = append(buf, `</select>`...)
		buf = appendCheckbox(buf, "simplify", "Simplify fractions", view.Simplify)
		buf = appendCheckbox(buf, "rods", "Show rods", view.Rods)
		buf = append(buf, `<button type="submit">Apply</button></form>`...)
		_, err := w.Write(buf)
		return err
	})
}

func navigation(view numberline.View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		step := strconv.FormatFloat(view.Range.Span()*panFraction, 'g', -1, 64)
		links := []struct {
			label string
			key   string
			value string
		}{
			{label: "Zoom in", key: "zoom", value: strconv.Itoa(-zoomStep)},
			{label: "Zoom out", key: "zoom", value: strconv.Itoa(zoomStep)},
			{label: "Pan left", key: "pan", value: "-" + step},
			{label: "Pan right", key: "pan", value: step},
		}
		if _, err := io.WriteString(w, "<nav>"); err != nil {
			return err
		}
		for _, link := range links {
			q := viewQuery(view)
			q.Set(link.key, link.value)
			if _, err := fmt.Fprintf(w, `<a href="/?%s">%s</a>`, templ.EscapeString(q.Encode()), templ.EscapeString(link.label)); err != nil {
				return err
			}
		}
		q := viewQuery(view)
		if _, err := fmt.Fprintf(w, `<a href="/frame.json?%s">JSON</a><a href="/numberline.svg?%s">SVG</a>`, templ.EscapeString(q.Encode()), templ.EscapeString(q.Encode())); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</nav>")
		return err
	})
}

func appendHidden(buf []byte, name, value string) []byte {
	return fmt.Appendf(buf, `<input type="hidden" name="%s" value="%s">`, templ.EscapeString(name), templ.EscapeString(value))
}

func appendOption(buf []byte, value, label string, selected bool) []byte {
	attr := ""
	if selected {
		attr = " selected"
	}
	return fmt.Appendf(buf, `<option value="%s"%s>%s</option>`, templ.EscapeString(value), attr, templ.EscapeString(label))
}

// appendCheckbox writes the checkbox before a hidden "false" so an unchecked
// box still overrides the server default.
func appendCheckbox(buf []byte, name, label string, checked bool) []byte {
	attr := ""
	if checked {
		attr = " checked"
	}
	buf = fmt.Appendf(buf, `<label><input type="checkbox" name="%s" value="true"%s>%s</label>`, name, attr, templ.EscapeString(label))
	return appendHidden(buf, name, "false")
}

func summary(frame numberline.Frame) string {
	r := frame.View.Range
	unit := "whole numbers"
	if frame.Fractions {
		unit = "1/" + strconv.Itoa(frame.Denominator)
		if frame.Forced {
			unit += " (forced)"
		}
	}
	return fmt.Sprintf("%s to %s in %s, %d ticks",
		strconv.FormatFloat(r.Low, 'g', 6, 64), strconv.FormatFloat(r.High, 'g', 6, 64), unit, len(frame.Ticks))
}
