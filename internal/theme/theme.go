// Package theme owns the process-wide light/dark preference and keeps it
// durable across restarts.
package theme

import "strings"

// Theme is the two-valued UI color mode.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the preference key the theme is persisted under.
const StorageKey = "theme"

// Parse maps a stored or host-reported value to a Theme. Anything other than
// "dark" is Light.
func Parse(value string) Theme {
	if strings.EqualFold(strings.TrimSpace(value), string(Dark)) {
		return Dark
	}
	return Light
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is Dark.
func (t Theme) IsDark() bool {
	return t == Dark
}

func (t Theme) String() string {
	return string(t)
}
