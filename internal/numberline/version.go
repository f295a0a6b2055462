package numberline

import "strings"

const (
	AppName = "go-numberline"
	AppURL  = "https://github.com/autobrr/go-numberline"
)

var AppVersion = "dev"

func SetAppVersion(version string) {
	if version != "" {
		AppVersion = version
	}
}

// FormatVersion prefixes release versions with "v" and leaves "dev" alone.
func FormatVersion(version string) string {
	version = strings.TrimSpace(version)
	if version == "" || version == "dev" {
		return "dev"
	}
	return "v" + strings.TrimPrefix(version, "v")
}
