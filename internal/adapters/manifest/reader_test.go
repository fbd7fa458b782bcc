package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/manifest"
	"go.trai.ch/ship/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestReader_Read(t *testing.T) {
	path := writeManifest(t, `{"name": "stormlib-node", "version": "1.2.3", "main": "index.js"}`)

	pkg, err := manifest.NewReader().Read(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Package{Name: "stormlib-node", Version: "1.2.3"}, pkg)
}

func TestReader_Read_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		wantErr error
	}{
		{
			name:    "missing file",
			wantErr: domain.ErrManifestReadFailed,
		},
		{
			name:    "invalid json",
			content: ptr(`{"version": `),
			wantErr: domain.ErrManifestParseFailed,
		},
		{
			name:    "missing version",
			content: ptr(`{"name": "stormlib-node"}`),
			wantErr: domain.ErrMissingVersion,
		},
		{
			name:    "version escaping dist",
			content: ptr(`{"name": "stormlib-node", "version": "1/../../src"}`),
			wantErr: domain.ErrInvalidVersion,
		},
		{
			name:    "version with backslash",
			content: ptr(`{"name": "stormlib-node", "version": "1.0.0\\..\\x"}`),
			wantErr: domain.ErrInvalidVersion,
		},
		{
			name:    "blank version",
			content: ptr(`{"name": "stormlib-node", "version": "  "}`),
			wantErr: domain.ErrMissingVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), domain.ManifestFileName)
			if tt.content != nil {
				path = writeManifest(t, *tt.content)
			}

			_, err := manifest.NewReader().Read(path)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func ptr(s string) *string { return &s }
