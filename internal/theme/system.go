package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// SchemeEnv overrides terminal detection of the host color scheme.
const SchemeEnv = "FROTA_COLOR_SCHEME"

// SystemScheme reads FROTA_COLOR_SCHEME when set and otherwise asks the
// terminal whether its background is dark.
func SystemScheme() string {
	return detect(os.LookupEnv, lipgloss.HasDarkBackground)
}

func detect(lookup func(string) (string, bool), hasDarkBackground func() bool) string {
	if value, ok := lookup(SchemeEnv); ok && value != "" {
		return Parse(value).String()
	}
	if hasDarkBackground() {
		return Dark.String()
	}
	return Light.String()
}
