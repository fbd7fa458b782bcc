package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/ship/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge is an sdktrace.SpanProcessor that turns release phase and step
// spans into renderer callbacks. Spans without a ship kind attribute are
// not rendered.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a Bridge reporting to renderer.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// OnStart announces a phase banner or a step command to the renderer.
func (b *Bridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	attrs := spanAttrs(s.Attributes())
	switch attrs[ports.AttrSpanKind] {
	case ports.SpanKindPhase:
		b.renderer.OnPhaseStart(sc.SpanID().String(), s.Name(), s.StartTime())
	case ports.SpanKindStep:
		var phaseID string
		if parentSpan := trace.SpanFromContext(parent); parentSpan.SpanContext().IsValid() {
			phaseID = parentSpan.SpanContext().SpanID().String()
		}
		b.renderer.OnStepStart(sc.SpanID().String(), phaseID, ports.StepSpan{
			Name:        attrs[ports.AttrStepName],
			Phase:       attrs[ports.AttrStepPhase],
			CommandLine: s.Name(),
		}, s.StartTime())
	}
}

// OnEnd reports the outcome of a phase or step span.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	attrs := spanAttrs(s.Attributes())
	kind := attrs[ports.AttrSpanKind]
	if kind != ports.SpanKindPhase && kind != ports.SpanKindStep {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		err = errors.New(failureDescription(s, kind, attrs))
	}

	b.renderer.OnSpanEnd(sc.SpanID().String(), s.EndTime(), err)
}

func failureDescription(s sdktrace.ReadOnlySpan, kind string, attrs map[string]string) string {
	if desc := s.Status().Description; desc != "" {
		return desc
	}
	if kind == ports.SpanKindStep && attrs[ports.AttrStepName] != "" {
		return fmt.Sprintf("step %s failed", attrs[ports.AttrStepName])
	}
	return kind + " failed"
}

func spanAttrs(kvs []attribute.KeyValue) map[string]string {
	attrs := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		if kv.Value.Type() == attribute.STRING {
			attrs[string(kv.Key)] = kv.Value.AsString()
		}
	}
	return attrs
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
