package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ship/internal/core/domain"
)

func TestPlatform_Label(t *testing.T) {
	tests := []struct {
		os, arch string
		want     string
	}{
		{"linux", "amd64", "linux-x64"},
		{"linux", "arm64", "linux-arm64"},
		{"darwin", "arm64", "darwin-arm64"},
		{"darwin", "amd64", "darwin-x64"},
		{"windows", "amd64", "win32-x64"},
		{"windows", "386", "win32-ia32"},
		{"freebsd", "arm", "freebsd-arm"},
		{"solaris", "amd64", "sunos-x64"},
		{"illumos", "amd64", "sunos-x64"},
		{"linux", "ppc64le", "linux-ppc64"},
		{"linux", "mips64le", "linux-mips64el"},
		{"linux", "s390x", "linux-s390x"},
	}

	for _, tt := range tests {
		t.Run(tt.os+"_"+tt.arch, func(t *testing.T) {
			p := domain.Platform{OS: tt.os, Arch: tt.arch}
			assert.Equal(t, tt.want, p.Label())
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestPackage_VersionLabel(t *testing.T) {
	assert.Equal(t, "v1.2.3", domain.Package{Name: "stormlib-node", Version: "1.2.3"}.VersionLabel())
}
