package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ship/internal/core/domain"
)

func TestStep_CommandLine(t *testing.T) {
	tests := []struct {
		name string
		cmd  []string
		want string
	}{
		{"plain", []string{"npm", "run", "compile"}, "npm run compile"},
		{"spaces", []string{"npm", "pack", "--pack-destination", "/tmp/my dist"}, `npm pack --pack-destination "/tmp/my dist"`},
		{"empty arg", []string{"echo", ""}, `echo ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := domain.Step{Command: tt.cmd}
			assert.Equal(t, tt.want, step.CommandLine())
		})
	}
}

func TestStep_Expand(t *testing.T) {
	step := domain.Step{Command: []string{"npm", "pack", "--pack-destination", domain.DistToken}}

	expanded := step.Expand(domain.DistToken, "/work/dist")

	assert.Equal(t, []string{"npm", "pack", "--pack-destination", "/work/dist"}, expanded.Command)
	assert.Equal(t, domain.DistToken, step.Command[3], "original step must not change")
}

func TestStep_WithDir(t *testing.T) {
	assert.Equal(t, "/root", domain.Step{}.WithDir("/root").Dir)
	assert.Equal(t, "/own", domain.Step{Dir: "/own"}.WithDir("/root").Dir)
}

func TestConfig_StepsFor(t *testing.T) {
	cfg := domain.DefaultConfig()

	build := cfg.StepsFor(domain.PhaseBuild)
	if assert.Len(t, build, 2) {
		assert.Equal(t, "npm run compile", build[0].CommandLine())
		assert.Equal(t, "npx node-gyp rebuild", build[1].CommandLine())
	}

	test := cfg.StepsFor(domain.PhaseTest)
	if assert.Len(t, test, 1) {
		assert.Equal(t, "npm test", test[0].CommandLine())
	}
}
