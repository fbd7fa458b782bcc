// Package pipeline runs release phases and their steps in order.
package pipeline

import (
	"context"
	"io"
	"os"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline executes steps one at a time and stops at the first failure.
// Every phase is a span and every step a child span of its phase, so the
// renderer sees the banner before the commands it contains.
type Pipeline struct {
	executor ports.Executor
	tracer   ports.Tracer
	stdout   io.Writer
	stderr   io.Writer
}

// New creates a Pipeline that runs steps through executor.
func New(executor ports.Executor, tracer ports.Tracer) *Pipeline {
	return &Pipeline{
		executor: executor,
		tracer:   tracer,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithOutput sets the streams child processes write to.
func (p *Pipeline) WithOutput(stdout, stderr io.Writer) *Pipeline {
	p.stdout = stdout
	p.stderr = stderr
	return p
}

// Plan announces the titles of the phases about to run.
func (p *Pipeline) Plan(ctx context.Context, titles []string) {
	p.tracer.EmitPlan(ctx, titles)
}

// Phase runs fn inside a span named title.
func (p *Pipeline) Phase(ctx context.Context, title string, fn func(ctx context.Context) error) error {
	ctx, span := p.tracer.Start(ctx, title, ports.WithAttribute(ports.AttrSpanKind, ports.SpanKindPhase))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// RunPhase runs steps in order inside a span named title.
func (p *Pipeline) RunPhase(ctx context.Context, title string, steps []domain.Step) error {
	return p.Phase(ctx, title, func(ctx context.Context) error {
		for i := range steps {
			if err := p.Run(ctx, &steps[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Run executes a single step inside a span named after its command line.
func (p *Pipeline) Run(ctx context.Context, step *domain.Step) error {
	ctx, span := p.tracer.Start(ctx, step.CommandLine(),
		ports.WithAttribute(ports.AttrSpanKind, ports.SpanKindStep),
		ports.WithAttribute(ports.AttrStepName, step.Name),
		ports.WithAttribute(ports.AttrStepPhase, string(step.Phase)),
	)
	defer span.End()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		return zerr.With(domain.Fail(domain.ErrStepFailed, err), "step", step.Name)
	}

	if err := p.executor.Execute(ctx, step, p.stdout, p.stderr); err != nil {
		span.RecordError(err)
		return zerr.With(domain.Fail(domain.ErrStepFailed, err), "step", step.Name)
	}
	return nil
}
