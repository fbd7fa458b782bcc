package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Span attributes the pipeline sets and the renderer bridge reads.
const (
	AttrSpanKind  = "ship.span.kind"
	AttrStepName  = "ship.step.name"
	AttrStepPhase = "ship.step.phase"

	SpanKindPhase = "phase"
	SpanKindStep  = "step"
)

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span. Spans started from a context that already
	// carries a span become its children.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan signals which phases the run is about to execute.
	EmitPlan(ctx context.Context, phases []string)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	Attributes map[string]string
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithAttribute attaches a string attribute when the span starts.
func WithAttribute(key, value string) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]string)
		}
		c.Attributes[key] = value
	}
}
