package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ship/internal/adapters/linear"
	"go.trai.ch/ship/internal/core/ports"
)

func newRenderer(t *testing.T) (*linear.Renderer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	return linear.NewRenderer(&buf), &buf
}

func step(name, phase, commandLine string) ports.StepSpan {
	return ports.StepSpan{Name: name, Phase: phase, CommandLine: commandLine}
}

func TestRenderer_PhaseLifecycle(t *testing.T) {
	r, buf := newRenderer(t)
	start := time.Now()

	r.OnPlanEmit([]string{"Building StormLib and native addon", "Running tests", "Collecting artifacts"})
	r.OnPhaseStart("p1", "Building StormLib and native addon", start)
	r.OnStepStart("c1", "p1", step("compile", "build", "npm run compile"), start)
	r.OnSpanEnd("c1", start.Add(time.Second), nil)
	r.OnStepStart("c2", "p1", step("rebuild", "build", "npx node-gyp rebuild"), start)
	r.OnSpanEnd("c2", start.Add(time.Second), nil)
	r.OnSpanEnd("p1", start.Add(1500*time.Millisecond), nil)
	r.OnPhaseStart("p2", "Running tests", start)
	r.OnStepStart("c3", "p2", step("test", "test", "npm test"), start)
	r.OnSpanEnd("c3", start.Add(time.Second), nil)
	r.OnSpanEnd("p2", start.Add(2*time.Second), nil)
	r.OnPhaseStart("p3", "Collecting artifacts", start)
	r.OnSpanEnd("p3", start.Add(time.Millisecond), nil)

	assert.Equal(t,
		"\n[1] Building StormLib and native addon\n"+
			"$ npm run compile\n"+
			"$ npx node-gyp rebuild\n"+
			"✓ Completed in 1.5s (2 steps)\n"+
			"\n[2] Running tests\n"+
			"$ npm test\n"+
			"✓ Completed in 2s (1 step)\n"+
			"\n[3] Collecting artifacts\n"+
			"✓ Completed in 1ms\n",
		buf.String())
}

func TestRenderer_PhaseFailure(t *testing.T) {
	r, buf := newRenderer(t)
	start := time.Now()

	r.OnPhaseStart("p1", "Running tests", start)
	r.OnStepStart("c1", "p1", step("test", "test", "npm test"), start)
	r.OnSpanEnd("c1", start.Add(time.Second), errors.New("exit status 1"))
	r.OnSpanEnd("p1", start.Add(time.Second), errors.New("exit status 1"))

	out := buf.String()
	assert.Contains(t, out, "$ npm test\n")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Failed after")))
	assert.Contains(t, out, "✗ Failed after 1s: exit status 1\n")
	assert.NotContains(t, out, "Completed")
}

func TestRenderer_PlanResetsNumbering(t *testing.T) {
	r, buf := newRenderer(t)
	start := time.Now()

	r.OnPhaseStart("p1", "Running tests", start)
	r.OnSpanEnd("p1", start, nil)
	r.OnPlanEmit(nil)
	r.OnPhaseStart("p2", "Running tests", start)

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("[1] Running tests")))
}

func TestRenderer_StepNeverNumbered(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnStepStart("c1", "", step("compress", "archive", "zip -r out.zip ."), time.Now())
	r.OnSpanEnd("c1", time.Now(), nil)

	assert.Equal(t, "$ zip -r out.zip .\n", buf.String())
}

func TestRenderer_UnknownSpanEnd(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnSpanEnd("missing", time.Now(), nil)

	assert.Empty(t, buf.String())
}

func TestRenderer_DefaultWriter(t *testing.T) {
	assert.NotNil(t, linear.NewRenderer(nil))
}
