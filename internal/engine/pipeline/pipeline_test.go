package pipeline_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/telemetry"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/ship/internal/core/ports/mocks"
	"go.trai.ch/ship/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func buildSteps() []domain.Step {
	return domain.DefaultConfig().StepsFor(domain.PhaseBuild)
}

func TestPipeline_RunPhase_InOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	var ran []string
	record := func(_ context.Context, step *domain.Step, _, _ io.Writer) error {
		ran = append(ran, step.Name)
		return nil
	}
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(record).Times(2)

	p := pipeline.New(executor, telemetry.NewNoOpTracer()).WithOutput(io.Discard, io.Discard)
	require.NoError(t, p.RunPhase(context.Background(), "Building StormLib and native addon", buildSteps()))
	assert.Equal(t, []string{"compile", "rebuild"}, ran)
}

func TestPipeline_RunPhase_StopsAtFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("exit status 2")).
		Times(1)

	p := pipeline.New(executor, telemetry.NewNoOpTracer()).WithOutput(io.Discard, io.Discard)
	err := p.RunPhase(context.Background(), "Building StormLib and native addon", buildSteps())
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrStepFailed)
	assert.ErrorContains(t, err, "exit status 2")
}

func TestPipeline_Run_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	step := domain.Step{Name: "test", Phase: domain.PhaseTest, Command: []string{"npm", "test"}}
	err := pipeline.New(executor, telemetry.NewNoOpTracer()).Run(ctx, &step)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrStepFailed)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_Run_PassesOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	stdout, stderr := io.Discard, io.Discard
	step := domain.Step{Name: "test", Command: []string{"npm", "test"}}
	executor.EXPECT().Execute(gomock.Any(), &step, stdout, stderr).Return(nil)

	require.NoError(t, pipeline.New(executor, telemetry.NewNoOpTracer()).WithOutput(stdout, stderr).Run(context.Background(), &step))
}

func TestPipeline_Spans(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	phaseSpan := mocks.NewMockSpan(ctrl)
	stepSpan := mocks.NewMockSpan(ctrl)

	phaseCtx := context.WithValue(context.Background(), ctxKey{}, "phase")
	failure := errors.New("exit status 1")

	gomock.InOrder(
		tracer.EXPECT().EmitPlan(gomock.Any(), []string{"Running tests"}),
		tracer.EXPECT().Start(gomock.Any(), "Running tests", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, opts ...ports.SpanOption) (context.Context, ports.Span) {
				assert.Equal(t, map[string]string{ports.AttrSpanKind: ports.SpanKindPhase}, spanAttrs(opts))
				return phaseCtx, phaseSpan
			}),
		tracer.EXPECT().Start(phaseCtx, "npm test", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, opts ...ports.SpanOption) (context.Context, ports.Span) {
				assert.Equal(t, map[string]string{
					ports.AttrSpanKind:  ports.SpanKindStep,
					ports.AttrStepName:  "test",
					ports.AttrStepPhase: "test",
				}, spanAttrs(opts))
				return phaseCtx, stepSpan
			}),
		executor.EXPECT().Execute(phaseCtx, gomock.Any(), gomock.Any(), gomock.Any()).Return(failure),
		stepSpan.EXPECT().RecordError(failure),
		stepSpan.EXPECT().End(),
		phaseSpan.EXPECT().RecordError(gomock.Any()),
		phaseSpan.EXPECT().End(),
	)

	p := pipeline.New(executor, tracer).WithOutput(io.Discard, io.Discard)
	p.Plan(context.Background(), []string{"Running tests"})
	err := p.RunPhase(context.Background(), "Running tests", domain.DefaultConfig().StepsFor(domain.PhaseTest))
	require.Error(t, err)
}

func TestPipeline_Phase(t *testing.T) {
	p := pipeline.New(nil, telemetry.NewNoOpTracer())

	called := false
	require.NoError(t, p.Phase(context.Background(), "Collecting artifacts", func(context.Context) error {
		called = true
		return nil
	}))
	assert.True(t, called)

	err := p.Phase(context.Background(), "Collecting artifacts", func(context.Context) error {
		return domain.ErrNoArtifactsCopied
	})
	require.ErrorIs(t, err, domain.ErrNoArtifactsCopied)
}

type ctxKey struct{}

func spanAttrs(opts []ports.SpanOption) map[string]string {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Attributes
}

func TestPipeline_Run_FailureMatchesSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	cause := errors.New("exit status 2")
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(cause)

	step := domain.Step{Name: "test", Phase: domain.PhaseTest, Command: []string{"npm", "test"}}
	err := pipeline.New(executor, telemetry.NewNoOpTracer()).WithOutput(io.Discard, io.Discard).Run(context.Background(), &step)

	require.ErrorIs(t, err, domain.ErrStepFailed)
	require.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "release step failed: exit status 2")
}
