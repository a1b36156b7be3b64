// Package detector inspects the process environment to choose console behaviour.
package detector

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsCI reports whether a CI environment variable is set.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ColorEnabled reports whether coloured output should be written to f.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(f) && !IsCI()
}

// LogFormat returns the log format requested through OUTFIT_LOG_FORMAT.
// Only "json" and "pretty" are recognised; anything else means "pretty".
func LogFormat() string {
	if os.Getenv("OUTFIT_LOG_FORMAT") == "json" {
		return "json"
	}
	return "pretty"
}
