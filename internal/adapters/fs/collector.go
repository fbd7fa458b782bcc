// Package fs provides the filesystem adapters used to collect release artifacts.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactCollector = (*Collector)(nil)

// Collector implements ports.ArtifactCollector on the local filesystem.
type Collector struct{}

// NewCollector creates a new Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// ResetDir removes dir recursively and recreates it empty.
func (c *Collector) ResetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(domain.Fail(domain.ErrDirResetFailed, err), "path", dir)
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(domain.Fail(domain.ErrDirResetFailed, err), "path", dir)
	}
	return nil
}

// EnsureDir creates dir and any missing parents.
func (c *Collector) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(domain.Fail(domain.ErrDirCreateFailed, err), "path", dir)
	}
	return nil
}

// RemoveDir removes dir recursively.
func (c *Collector) RemoveDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(domain.Fail(domain.ErrFileRemoveFailed, err), "path", dir)
	}
	return nil
}

// RemoveFile deletes path, ignoring a file that is already gone.
func (c *Collector) RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(domain.Fail(domain.ErrFileRemoveFailed, err), "path", path)
	}
	return nil
}

// CopyIfExists copies src into dir, keeping its base name and permission bits.
func (c *Collector) CopyIfExists(src, dir string) (string, bool, error) {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.With(domain.Fail(domain.ErrArtifactCopyFailed, err), "source", src)
	}
	if info.IsDir() {
		return "", false, zerr.With(zerr.With(domain.Fail(domain.ErrArtifactCopyFailed, nil), "source", src), "reason", "is a directory")
	}

	dst := filepath.Join(dir, filepath.Base(src))
	if err := copyFile(src, dst, info.Mode().Perm()); err != nil {
		return "", false, zerr.With(zerr.With(domain.Fail(domain.ErrArtifactCopyFailed, err), "source", src), "destination", dst)
	}
	return dst, true, nil
}

func copyFile(src, dst string, perm iofs.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm) //nolint:gosec // Destination is inside the artifact dir
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// FindByExt lists the regular files directly inside dir whose name ends in ext.
// A missing dir yields no files.
func (c *Collector) FindByExt(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(domain.Fail(domain.ErrDirScanFailed, err), "path", dir)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
