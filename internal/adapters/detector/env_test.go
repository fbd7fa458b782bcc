package detector_test

import (
	"bytes"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ship/internal/adapters/detector"
)

func TestHost(t *testing.T) {
	host := detector.Host()
	assert.Equal(t, runtime.GOOS, host.OS)
	assert.Equal(t, runtime.GOARCH, host.Arch)
	assert.NotEmpty(t, host.Label())
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, detector.IsTerminal(&bytes.Buffer{}))
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer func() { _ = f.Close() }()

	assert.False(t, detector.IsTerminal(f))
}

func TestIsTerminal_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.False(t, detector.IsTerminal(os.Stdout))
}
