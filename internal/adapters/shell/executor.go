// Package shell provides the executor that runs release steps as child processes.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/ship/internal/adapters/detector"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
// Steps inherit the caller's console: when stdout is a terminal the child
// runs under a pseudo-terminal so build tools keep their colored output,
// otherwise its streams are connected directly.
type Executor struct {
	usePTY func(w io.Writer) bool
}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{usePTY: detector.IsTerminal}
}

// WithoutPTY disables pseudo-terminal execution.
func (e *Executor) WithoutPTY() *Executor {
	e.usePTY = func(io.Writer) bool { return false }
	return e
}

// Execute runs the step's command and waits for it to complete.
func (e *Executor) Execute(ctx context.Context, step *domain.Step, stdout, stderr io.Writer) error {
	if len(step.Command) == 0 {
		return zerr.With(domain.Fail(domain.ErrEmptyCommand, nil), "step", step.Name)
	}

	newCmd := func() *exec.Cmd {
		cmd := exec.CommandContext(ctx, step.Command[0], step.Command[1:]...) //nolint:gosec // configured release command
		cmd.Dir = step.Dir
		cmd.Env = resolveEnvironment(os.Environ(), step.Environment)
		return cmd
	}

	var err error
	if e.usePTY(stdout) {
		err = runPTY(newCmd(), stdout)
		if errors.Is(err, pty.ErrUnsupported) {
			err = runPiped(newCmd(), stdout, stderr)
		}
	} else {
		err = runPiped(newCmd(), stdout, stderr)
	}

	if err != nil {
		return zerr.With(err, "command", step.CommandLine())
	}
	return nil
}

func runPiped(cmd *exec.Cmd, stdout, stderr io.Writer) error {
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return zerr.Wrap(err, "failed to start command")
	}
	return wait(cmd.Wait())
}

func runPTY(cmd *exec.Cmd, stdout io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		if errors.Is(err, pty.ErrUnsupported) {
			return err
		}
		return zerr.Wrap(err, "failed to start pty")
	}

	if f, ok := stdout.(*os.File); ok {
		_ = pty.InheritSize(f, ptmx)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// The read side returns EIO once the child exits; that ends the copy.
		_, _ = io.Copy(stdout, ptmx)
	}()

	waitErr := cmd.Wait()
	<-ioDone
	_ = ptmx.Close()

	return wait(waitErr)
}

func wait(err error) error {
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
}

// resolveEnvironment returns the system environment with the step's
// overrides applied, sorted by key.
func resolveEnvironment(sysEnv []string, stepEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(stepEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range stepEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}
