package ports

import "time"

// Renderer is the abstraction for output rendering.
// It decouples telemetry collection from presentation, so the release
// pipeline reports progress through spans and never prints directly.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called once before the first phase starts.
	OnPlanEmit(phases []string)

	// OnPhaseStart is called when a release phase begins.
	OnPhaseStart(spanID, title string, startTime time.Time)

	// OnStepStart is called when an external command starts inside the
	// phase identified by phaseID. phaseID is empty for a step run outside any phase.
	OnStepStart(spanID, phaseID string, step StepSpan, startTime time.Time)

	// OnSpanEnd is called when a phase or step span ends.
	// err is nil if successful.
	OnSpanEnd(spanID string, endTime time.Time, err error)
}

// StepSpan describes the step a span was started for.
type StepSpan struct {
	Name        string
	Phase       string
	CommandLine string
}
