package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/autobrr/go-numberline/internal/config"
	"github.com/autobrr/go-numberline/internal/numberline"
)

const (
	exitOK    = 0
	exitError = 1
)

var errUsage = errors.New("usage")

type Options struct {
	Output      string
	Denominator int
	Simplify    bool
	Rods        bool
	Width       float64
	Height      float64
	Zoom        float64
	ZoomAt      float64
	HasZoomAt   bool
	Pan         float64
	LogFile     string
	Bom         bool
}

func optionsFromDefaults(defaults config.Defaults) Options {
	return Options{
		Output:   defaults.Output,
		Simplify: defaults.Simplify,
		Width:    defaults.Width,
		Height:   defaults.Height,
	}
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return exitError
	}

	program := programName(args[0])
	defaults, err := config.LoadDefaults()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}
	opts := optionsFromDefaults(defaults)
	bounds := make([]string, 0, 2)

	for i := 1; i < len(args); i++ {
		original := args[i]
		normalized := normalizeArg(original)

		switch {
		case normalized == "--help" || normalized == "-h":
			Help(program, stdout)
			return exitOK
		case normalized == "--help-output":
			HelpOutput(program, stdout)
			return exitOK
		case normalized == "--version":
			Version(stdout)
			return exitOK
		case normalized == "--simplify":
			opts.Simplify = true
		case normalized == "--no-simplify":
			opts.Simplify = false
		case normalized == "--rods":
			opts.Rods = true
		case normalized == "--bom":
			opts.Bom = true
		case normalized == "--":
			bounds = append(bounds, args[i+1:]...)
			i = len(args)
		case strings.HasPrefix(normalized, "--output="):
			opts.Output = mustValue(original)
		case strings.HasPrefix(normalized, "--denominator="), strings.HasPrefix(normalized, "-d="):
			den, err := parseDenominator(mustValue(original))
			if err != nil {
				fmt.Fprintln(stderr, err.Error())
				return exitError
			}
			opts.Denominator = den
		case strings.HasPrefix(normalized, "--logfile="):
			opts.LogFile = mustValue(original)
		case strings.HasPrefix(normalized, "--width="),
			strings.HasPrefix(normalized, "--height="),
			strings.HasPrefix(normalized, "--zoom="),
			strings.HasPrefix(normalized, "--at="),
			strings.HasPrefix(normalized, "--pan="):
			if err := setNumericOption(&opts, normalized, original); err != nil {
				fmt.Fprintln(stderr, err.Error())
				return exitError
			}
		case strings.HasPrefix(normalized, "--"):
			fmt.Fprintf(stderr, "unknown option: %s\n", original)
			return Usage(program, stderr)
		default:
			bounds = append(bounds, original)
		}
	}

	if len(bounds) != 0 && len(bounds) != 2 {
		return Usage(program, stderr)
	}

	if opts.Bom {
		writeBOM(stdout, stderr)
	}

	output, err := runCore(opts, bounds)
	if err != nil {
		if errors.Is(err, errUsage) {
			return Usage(program, stderr)
		}
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	fmt.Fprint(stdout, output)

	if opts.LogFile != "" {
		if err := writeLogFile(opts.LogFile, output, opts.Bom); err != nil {
			fmt.Fprintln(stderr, err.Error())
			return exitError
		}
	}
	return exitOK
}

func programName(arg0 string) string {
	name := filepath.Base(arg0)
	if runtime.GOOS == "windows" {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

func normalizeArg(arg string) string {
	eq := strings.IndexByte(arg, '=')
	if eq == -1 {
		eq = len(arg)
	}

	lower := strings.ToLower(arg[:eq])
	return lower + arg[eq:]
}

func valueAfterEqual(arg string) (string, bool) {
	eq := strings.IndexByte(arg, '=')
	if eq == -1 {
		return "", false
	}
	return arg[eq+1:], true
}

func mustValue(arg string) string {
	value, _ := valueAfterEqual(arg)
	return value
}

// parseDenominator accepts "auto" or an integer. Integers outside the
// allowed set are kept and later fall back to automatic selection.
func parseDenominator(value string) (int, error) {
	if strings.EqualFold(value, "auto") || value == "" {
		return 0, nil
	}
	den, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid denominator %q: %w", value, err)
	}
	return den, nil
}

func setNumericOption(opts *Options, normalized, original string) error {
	name := normalized[:strings.IndexByte(normalized, '=')]
	raw := mustValue(original)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q", name, raw)
	}
	switch name {
	case "--width":
		opts.Width = value
	case "--height":
		opts.Height = value
	case "--zoom":
		opts.Zoom = value
	case "--at":
		opts.ZoomAt = value
		opts.HasZoomAt = true
	case "--pan":
		opts.Pan = value
	}
	return nil
}

func writeBOM(stdout, stderr io.Writer) {
	if runtime.GOOS != "windows" {
		return
	}

	bom := []byte{0xEF, 0xBB, 0xBF}
	_, _ = stdout.Write(bom)
	_, _ = stderr.Write(bom)
}

func writeLogFile(path, output string, includeBOM bool) error {
	data := []byte(output)
	if includeBOM && runtime.GOOS == "windows" {
		data = append([]byte{0xEF, 0xBB, 0xBF}, data...)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write log file: %w", err)
	}
	return nil
}

func runCore(opts Options, bounds []string) (string, error) {
	out, err := numberline.ParseOutput(opts.Output)
	if err != nil {
		return "", err
	}

	view, err := buildView(opts, bounds)
	if err != nil {
		return "", err
	}
	return numberline.RenderOutput(numberline.Render(view), out)
}

func buildView(opts Options, bounds []string) (numberline.View, error) {
	view := numberline.DefaultView()
	view.Denominator = opts.Denominator
	view.Simplify = opts.Simplify
	view.Rods = opts.Rods
	view.Width = opts.Width
	view.Height = opts.Height

	if len(bounds) == 2 {
		r, err := parseRange(bounds[0], bounds[1])
		if err != nil {
			return numberline.View{}, err
		}
		view.Range = r
	} else if len(bounds) != 0 {
		return numberline.View{}, errUsage
	}

	if opts.Zoom != 0 {
		at := view.Range.Low + view.Range.Span()/2
		if opts.HasZoomAt {
			at = opts.ZoomAt
		}
		if zoomed, ok := view.Range.Zoom(at, opts.Zoom); ok {
			view.Range = zoomed
		}
	}
	if opts.Pan != 0 {
		if panned, ok := view.Range.Pan(opts.Pan); ok {
			view.Range = panned
		}
	}
	return view, nil
}

func parseRange(lowText, highText string) (numberline.Range, error) {
	low, err := strconv.ParseFloat(lowText, 64)
	if err != nil {
		return numberline.Range{}, fmt.Errorf("%w: low %q is not a number", numberline.ErrInvalidRange, lowText)
	}
	high, err := strconv.ParseFloat(highText, 64)
	if err != nil {
		return numberline.Range{}, fmt.Errorf("%w: high %q is not a number", numberline.ErrInvalidRange, highText)
	}
	return numberline.NewRange(low, high)
}
