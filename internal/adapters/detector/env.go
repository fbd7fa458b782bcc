// Package detector inspects the host the release runs on.
package detector

import (
	"io"
	"os"
	"runtime"

	"go.trai.ch/ship/internal/core/domain"
	"golang.org/x/term"
)

// Host returns the platform of the running process.
func Host() domain.Platform {
	return domain.Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// IsTerminal reports whether w is a file attached to a terminal.
// CI=true or CI=1 forces false so CI logs stay free of terminal control sequences.
func IsTerminal(w io.Writer) bool {
	if ci := os.Getenv("CI"); ci == "true" || ci == "1" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
