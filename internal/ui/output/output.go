// Package output creates termenv outputs with a consistent colour profile.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns Ascii when NO_COLOR is set or tty is false, and the detected profile otherwise.
func Profile(tty bool) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" || !tty {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output for w.
// tty reports whether w is an interactive terminal; colour is disabled otherwise.
func New(w io.Writer, tty bool) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(Profile(tty)),
		termenv.WithTTY(tty),
	)
}

// Colour converts a hex colour string into a termenv colour.
func Colour(hex string) termenv.Color {
	return termenv.RGBColor(hex)
}
