package domain

import (
	"strconv"
	"strings"
)

// Phase groups steps into the stages of a release.
type Phase string

const (
	// PhaseBuild compiles the native library and rebuilds the addon.
	PhaseBuild Phase = "build"
	// PhaseTest runs the test suite.
	PhaseTest Phase = "test"
	// PhaseArchive compresses the artifact directory.
	PhaseArchive Phase = "archive"
	// PhasePack produces the package tarball.
	PhasePack Phase = "pack"
)

// Step is a single external command invocation.
type Step struct {
	Name        string
	Phase       Phase
	Command     []string
	Dir         string
	Environment map[string]string
}

// CommandLine renders the command for display. Arguments containing
// whitespace or quotes are quoted.
func (s Step) CommandLine() string {
	parts := make([]string, len(s.Command))
	for i, arg := range s.Command {
		if arg == "" || strings.ContainsAny(arg, " \t\n\"'") {
			parts[i] = strconv.Quote(arg)
			continue
		}
		parts[i] = arg
	}
	return strings.Join(parts, " ")
}

// WithDir returns a copy of the step running in dir when no directory is set.
func (s Step) WithDir(dir string) Step {
	if s.Dir == "" {
		s.Dir = dir
	}
	return s
}

// Expand returns a copy of the step with every occurrence of token in its
// arguments replaced by value.
func (s Step) Expand(token, value string) Step {
	cmd := make([]string, len(s.Command))
	for i, arg := range s.Command {
		cmd[i] = strings.ReplaceAll(arg, token, value)
	}
	s.Command = cmd
	return s
}
