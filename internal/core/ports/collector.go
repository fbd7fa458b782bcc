package ports

// ArtifactCollector performs the filesystem bookkeeping of a release.
//
//go:generate mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks
type ArtifactCollector interface {
	// ResetDir removes dir and everything below it, then recreates it empty.
	ResetDir(dir string) error

	// EnsureDir creates dir and any missing parents.
	EnsureDir(dir string) error

	// RemoveDir removes dir and everything below it. A missing dir is not an error.
	RemoveDir(dir string) error

	// RemoveFile deletes path. A missing file is not an error.
	RemoveFile(path string) error

	// CopyIfExists copies src into dir under its base name.
	// It reports false without error when src does not exist.
	CopyIfExists(src, dir string) (string, bool, error)

	// FindByExt lists the names of regular files in dir ending in ext, sorted.
	FindByExt(dir, ext string) ([]string, error)
}
