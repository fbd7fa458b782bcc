package ports

import "go.trai.ch/ship/internal/core/domain"

// ManifestReader reads the project metadata a release is cut from.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// Read parses the manifest at path. The version field is required.
	Read(path string) (domain.Package, error)
}
