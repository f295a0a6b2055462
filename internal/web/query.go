package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/autobrr/go-numberline/internal/config"
	"github.com/autobrr/go-numberline/internal/numberline"
)

// viewFromQuery rebuilds the full view state from request parameters. Zoom
// and pan are applied on top of low/high so every link carries the complete
// state of the next render.
func viewFromQuery(q url.Values, defaults config.Defaults) (numberline.View, error) {
	view := numberline.DefaultView()
	view.Simplify = defaults.Simplify
	view.Width = defaults.Width
	view.Height = defaults.Height

	low, high := view.Range.Low, view.Range.High
	var err error
	if low, err = floatParam(q, "low", low); err != nil {
		return numberline.View{}, err
	}
	if high, err = floatParam(q, "high", high); err != nil {
		return numberline.View{}, err
	}
	if view.Range, err = numberline.NewRange(low, high); err != nil {
		return numberline.View{}, err
	}

	if raw := q.Get("den"); raw != "" && !strings.EqualFold(raw, "auto") {
		den, err := strconv.Atoi(raw)
		if err != nil {
			return numberline.View{}, fmt.Errorf("invalid den %q", raw)
		}
		view.Denominator = den
	}
	if view.Simplify, err = boolParam(q, "simplify", view.Simplify); err != nil {
		return numberline.View{}, err
	}
	if view.Rods, err = boolParam(q, "rods", false); err != nil {
		return numberline.View{}, err
	}
	if view.Width, err = floatParam(q, "width", view.Width); err != nil {
		return numberline.View{}, err
	}
	if view.Height, err = floatParam(q, "height", view.Height); err != nil {
		return numberline.View{}, err
	}

	zoom, err := floatParam(q, "zoom", 0)
	if err != nil {
		return numberline.View{}, err
	}
	at, err := floatParam(q, "at", view.Range.Low+view.Range.Span()/2)
	if err != nil {
		return numberline.View{}, err
	}
	if zoom != 0 {
		if zoomed, ok := view.Range.Zoom(at, zoom); ok {
			view.Range = zoomed
		}
	}
	pan, err := floatParam(q, "pan", 0)
	if err != nil {
		return numberline.View{}, err
	}
	if panned, ok := view.Range.Pan(pan); ok {
		view.Range = panned
	}
	return view, nil
}

// viewQuery encodes view as the parameters viewFromQuery reads.
func viewQuery(view numberline.View) url.Values {
	q := url.Values{}
	q.Set("low", strconv.FormatFloat(view.Range.Low, 'g', -1, 64))
	q.Set("high", strconv.FormatFloat(view.Range.High, 'g', -1, 64))
	if view.Denominator != 0 {
		q.Set("den", strconv.Itoa(view.Denominator))
	}
	q.Set("simplify", strconv.FormatBool(view.Simplify))
	if view.Rods {
		q.Set("rods", "true")
	}
	return q
}

func floatParam(q url.Values, name string, fallback float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

func boolParam(q url.Values, name string, fallback bool) (bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return fallback, nil
	}
	if raw == "on" {
		return true, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}
