package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/autobrr/go-numberline/internal/numberline"
)

// Version prints the banner shared by --Version and --Help.
func Version(stdout io.Writer) {
	fmt.Fprintf(stdout, "%s, %s\n", numberline.AppName, numberline.FormatVersion(numberline.AppVersion))
}

func Help(program string, stdout io.Writer) {
	Version(stdout)
	fmt.Fprintf(stdout, "Usage: \"%s [-Options...] [Low High]\"\n", program)
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Without Low and High the initial view -0.01 .. 1.01 is used.")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Options:")
	fmt.Fprintln(stdout, "--Help, -h")
	fmt.Fprintln(stdout, "                    Display this help and exit")
	fmt.Fprintln(stdout, "--Version")
	fmt.Fprintln(stdout, "                    Display version information and exit")
	fmt.Fprintln(stdout, "--Help-Output")
	fmt.Fprintln(stdout, "                    Display help for Output= option")
	fmt.Fprintln(stdout, "")
	fmt.Fprintf(stdout, "--Output=%s\n", strings.ToUpper(outputList("|")))
	fmt.Fprintln(stdout, "                    Select output format (default TEXT, env NUMBERLINE_OUTPUT)")
	fmt.Fprintln(stdout, "--Denominator=auto|N, -d=N")
	fmt.Fprintln(stdout, "                    Force a denominator from the allowed set (unknown values mean auto)")
	fmt.Fprintln(stdout, "--Simplify, --No-Simplify")
	fmt.Fprintln(stdout, "                    Reduce fractions to lowest terms (default on, env NUMBERLINE_SIMPLIFY)")
	fmt.Fprintln(stdout, "--Rods")
	fmt.Fprintln(stdout, "                    Include unit-fraction rods")
	fmt.Fprintln(stdout, "--Zoom=DeltaY, --At=Value")
	fmt.Fprintln(stdout, "                    Apply one wheel step around Value (default: middle of the range)")
	fmt.Fprintln(stdout, "--Pan=Delta")
	fmt.Fprintln(stdout, "                    Shift the range by Delta")
	fmt.Fprintln(stdout, "--Width=..., --Height=...")
	fmt.Fprintln(stdout, "                    Drawing size in pixels (SVG output and decimal label count)")
	fmt.Fprintln(stdout, "--LogFile=...")
	fmt.Fprintln(stdout, "                    Save the output in the specified file")
	fmt.Fprintln(stdout, "--BOM")
	fmt.Fprintln(stdout, "                    Byte order mark for UTF-8 output (Windows only)")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Commands:")
	fmt.Fprintln(stdout, "completion           Generate the autocompletion script for the specified shell")
	fmt.Fprintln(stdout, "help                 Help about any command")
	fmt.Fprintln(stdout, "serve                Serve the interactive numberline over HTTP")
	fmt.Fprintln(stdout, "version              Print go-numberline version information")
	fmt.Fprintln(stdout, "update               Update numberline to latest version (release builds only)")
}

func HelpNothing(program string, stdout io.Writer) {
	fmt.Fprintf(stdout, "Usage: \"%s [-Options...] [Low High]\"\n", program)
	fmt.Fprintf(stdout, "\"%s --help\" for displaying more information\n", program)
}

func HelpOutput(program string, stdout io.Writer) {
	fmt.Fprintln(stdout, "--Output=...  Select an output format")
	fmt.Fprintf(stdout, "Usage: \"%s --Output=JSON 0 1\"\n", program)
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Supported formats:")
	fmt.Fprintln(stdout, strings.ToUpper(outputList(", ")))
}

func Usage(program string, stdout io.Writer) int {
	HelpNothing(program, stdout)
	return exitError
}

func outputList(sep string) string {
	names := make([]string, 0, len(numberline.Outputs()))
	for _, out := range numberline.Outputs() {
		names = append(names, string(out))
	}
	return strings.Join(names, sep)
}
