// Package linear provides a synchronous, line-oriented renderer for release phases.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/ship/internal/ui/output"
	"go.trai.ch/ship/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer by printing a numbered banner for every
// phase and a "$ <command>" echo for every step.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu     sync.Mutex
	count  int
	phases map[string]*phaseState // spanID -> running phase
}

type phaseState struct {
	startTime time.Time
	steps     int
}

// NewRenderer creates a new Renderer writing to w. A nil writer selects os.Stdout.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{
		w:      w,
		output: output.New(w),
		phases: make(map[string]*phaseState),
	}
}

// OnPlanEmit restarts banner numbering for a new run.
func (r *Renderer) OnPlanEmit(_ []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.count = 0
}

// OnPhaseStart prints the numbered phase banner.
func (r *Renderer) OnPhaseStart(spanID, title string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.phases[spanID] = &phaseState{startTime: startTime}

	r.count++
	label := r.output.String(fmt.Sprintf("[%d]", r.count)).Foreground(termenv.RGBColor(string(style.Iris))).String()
	_, _ = fmt.Fprintf(r.w, "\n%s %s\n", label, title)
}

// OnStepStart echoes the command line of a step.
func (r *Renderer) OnStepStart(_, phaseID string, step ports.StepSpan, _ time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if phase, ok := r.phases[phaseID]; ok {
		phase.steps++
	}

	prompt := r.output.String(style.Prompt).Foreground(termenv.RGBColor(string(style.Slate))).String()
	_, _ = fmt.Fprintf(r.w, "%s %s\n", prompt, step.CommandLine)
}

// OnSpanEnd prints the phase outcome. Step spans end silently since the
// phase reports their failure.
func (r *Renderer) OnSpanEnd(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	phase, ok := r.phases[spanID]
	if !ok {
		return
	}
	delete(r.phases, spanID)

	duration := endTime.Sub(phase.startTime).Round(time.Millisecond)
	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String()
		_, _ = fmt.Fprintf(r.w, "%s Failed after %v: %v\n", symbol, duration, err)
		return
	}

	symbol := r.output.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
	_, _ = fmt.Fprintf(r.w, "%s Completed in %v%s\n", symbol, duration, stepSuffix(phase.steps))
}

func stepSuffix(steps int) string {
	switch steps {
	case 0:
		return ""
	case 1:
		return " (1 step)"
	default:
		return fmt.Sprintf(" (%d steps)", steps)
	}
}
