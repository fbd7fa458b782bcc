// Package manifest reads project metadata from package.json.
package manifest

import (
	"encoding/json"
	"os"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/zerr"
)

// packageJSON holds the package.json fields a release needs.
type packageJSON struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Reader implements ports.ManifestReader for npm package manifests.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the manifest at path.
func (*Reader) Read(path string) (domain.Package, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the configured manifest location
	if err != nil {
		return domain.Package{}, zerr.With(domain.Fail(domain.ErrManifestReadFailed, err), "path", path)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return domain.Package{}, zerr.With(domain.Fail(domain.ErrManifestParseFailed, err), "path", path)
	}

	version := strings.TrimSpace(pkg.Version)
	if version == "" {
		return domain.Package{}, zerr.With(domain.Fail(domain.ErrMissingVersion, nil), "path", path)
	}
	if err := domain.ValidateVersion(version); err != nil {
		return domain.Package{}, zerr.With(err, "path", path)
	}

	return domain.Package{Name: pkg.Name, Version: version}, nil
}
