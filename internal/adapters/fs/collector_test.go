package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/fs"
	"go.trai.ch/ship/internal/core/domain"
)

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
}

func TestCollector_ResetDir_EmptiesStaleDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist", "v1.0.0", "linux-x64")
	writeFile(t, filepath.Join(dir, "stale.node"), "old", domain.FilePerm)
	writeFile(t, filepath.Join(dir, "nested", "leftover"), "old", domain.FilePerm)

	c := fs.NewCollector()
	require.NoError(t, c.ResetDir(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCollector_ResetDir_CreatesMissingParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, fs.NewCollector().ResetDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCollector_EnsureDir_KeepsContents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.tgz"), "x", domain.FilePerm)

	require.NoError(t, fs.NewCollector().EnsureDir(dir))
	assert.FileExists(t, filepath.Join(dir, "keep.tgz"))
}

func TestCollector_RemoveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stormlib-node-v1.0.0-linux-x64.zip")
	writeFile(t, path, "zip", domain.FilePerm)

	c := fs.NewCollector()
	require.NoError(t, c.RemoveFile(path))
	assert.NoFileExists(t, path)

	// Removing again is a no-op.
	require.NoError(t, c.RemoveFile(path))
}

func TestCollector_CopyIfExists(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "build", "Release", "stormlib.node")
	writeFile(t, src, "binary", 0o755)
	dir := filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))

	dst, copied, err := fs.NewCollector().CopyIfExists(src, dir)
	require.NoError(t, err)
	assert.True(t, copied)
	assert.Equal(t, filepath.Join(dir, "stormlib.node"), dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "binary", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(dst)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	}
}

func TestCollector_CopyIfExists_Missing(t *testing.T) {
	root := t.TempDir()

	dst, copied, err := fs.NewCollector().CopyIfExists(filepath.Join(root, "missing.lib"), root)
	require.NoError(t, err)
	assert.False(t, copied)
	assert.Empty(t, dst)
}

func TestCollector_CopyIfExists_Directory(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "Release")
	require.NoError(t, os.MkdirAll(src, domain.DirPerm))

	_, copied, err := fs.NewCollector().CopyIfExists(src, t.TempDir())
	require.Error(t, err)
	assert.False(t, copied)
	require.ErrorIs(t, err, domain.ErrArtifactCopyFailed)
}

func TestCollector_FindByExt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "stormlib-node-1.0.0.tgz"), "b", domain.FilePerm)
	writeFile(t, filepath.Join(dir, "older-0.9.0.tgz"), "a", domain.FilePerm)
	writeFile(t, filepath.Join(dir, "stormlib-node-v1.0.0-linux-x64.zip"), "z", domain.FilePerm)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.tgz"), domain.DirPerm))

	names, err := fs.NewCollector().FindByExt(dir, ".tgz")
	require.NoError(t, err)
	assert.Equal(t, []string{"older-0.9.0.tgz", "stormlib-node-1.0.0.tgz"}, names)
}

func TestCollector_FindByExt_MissingDir(t *testing.T) {
	names, err := fs.NewCollector().FindByExt(filepath.Join(t.TempDir(), "nope"), ".tgz")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCollector_RemoveDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "v1.0.0", "linux-x64")
	writeFile(t, filepath.Join(dir, "stormlib.node"), "x", domain.FilePerm)
	sibling := filepath.Join(root, "v0.9.0", "linux-x64", "stormlib.node")
	writeFile(t, sibling, "x", domain.FilePerm)

	c := fs.NewCollector()
	require.NoError(t, c.RemoveDir(dir))
	assert.NoDirExists(t, dir)
	assert.FileExists(t, sibling)

	require.NoError(t, c.RemoveDir(dir))
}
