package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// ConfigFileName is the name of the optional release configuration file.
	ConfigFileName = "ship.yaml"

	// ManifestFileName is the default project metadata file.
	ManifestFileName = "package.json"

	// DistDirName is the default shared output directory.
	DistDirName = "dist"

	// RecordDirName is the directory under dist holding release records.
	RecordDirName = ".ship"

	// ArchivePrefix is the default archive name prefix.
	ArchivePrefix = "stormlib-node"

	// ArchiveExt is the extension of the archive bundle.
	ArchiveExt = ".zip"

	// PackageExt is the default extension of package tarballs.
	PackageExt = ".tgz"

	// DistToken is replaced by the absolute dist path in the pack command.
	DistToken = "{{dist}}"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout resolves every path a release run reads or writes.
// All paths derive from the project root, the dist directory name, and the
// version and platform labels, so two layouts with equal inputs are equal.
type Layout struct {
	Root          string
	Dist          string
	ArchivePrefix string
	Version       string
	Platform      string
}

// NewLayout creates a Layout for the given package and platform label.
func NewLayout(root, dist, archivePrefix string, pkg Package, platform string) Layout {
	return Layout{
		Root:          root,
		Dist:          dist,
		ArchivePrefix: archivePrefix,
		Version:       pkg.VersionLabel(),
		Platform:      platform,
	}
}

// ValidateVersion reports whether version can name the artifact directory.
// The directory is reset on every release, so a version must stay a single
// path element below dist.
func ValidateVersion(version string) error {
	if !isPathElement(version) {
		return zerr.With(Fail(ErrInvalidVersion, nil), "version", version)
	}
	return nil
}

// ValidateDist reports whether dist stays inside the project root.
func ValidateDist(dist string) error {
	if !filepath.IsLocal(dist) {
		return zerr.With(Fail(ErrInvalidDistPath, nil), "dist", dist)
	}
	return nil
}

// ValidateArchivePrefix reports whether prefix keeps the archive directly in dist.
func ValidateArchivePrefix(prefix string) error {
	if !isPathElement(prefix) {
		return zerr.With(Fail(ErrInvalidArchivePrefix, nil), "archive_prefix", prefix)
	}
	return nil
}

// Validate checks every input a release deletes or overwrites paths with.
func (l Layout) Validate() error {
	if err := ValidateDist(l.Dist); err != nil {
		return err
	}
	if err := ValidateArchivePrefix(l.ArchivePrefix); err != nil {
		return err
	}
	if !isPathElement(strings.TrimPrefix(l.Version, "v")) {
		return zerr.With(Fail(ErrInvalidVersion, nil), "version", l.Version)
	}
	if !isPathElement(l.Platform) {
		return zerr.With(Fail(ErrInvalidPlatformLabel, nil), "platform", l.Platform)
	}
	return nil
}

func isPathElement(s string) bool {
	return s != "" && !strings.ContainsAny(s, `/\`) && !strings.Contains(s, "..") && filepath.IsLocal(s)
}

// DistDir returns the shared output directory.
func (l Layout) DistDir() string {
	return filepath.Join(l.Root, l.Dist)
}

// ArtifactDir returns dist/<version>/<platform>.
func (l Layout) ArtifactDir() string {
	return filepath.Join(l.DistDir(), l.Version, l.Platform)
}

// ArchiveName returns <prefix>-<version>-<platform>.zip.
func (l Layout) ArchiveName() string {
	return l.ArchivePrefix + "-" + l.Version + "-" + l.Platform + ArchiveExt
}

// ArchivePath returns the archive bundle location under dist.
func (l Layout) ArchivePath() string {
	return filepath.Join(l.DistDir(), l.ArchiveName())
}

// RecordPath returns the release record location for this version and platform.
func (l Layout) RecordPath() string {
	return filepath.Join(l.DistDir(), RecordDirName, l.Version+"-"+l.Platform+".json")
}

// Rel returns path relative to the project root using forward slashes.
// Paths outside the root are returned unchanged.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
