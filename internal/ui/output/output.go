// Package output creates termenv outputs with a consistent color profile.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns Ascii when NO_COLOR is set and the detected terminal
// profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output writing to w. A nil writer selects os.Stdout.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stdout
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)
}
