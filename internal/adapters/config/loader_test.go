package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/config"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func TestLoader_Load_DefaultsWithoutFile(t *testing.T) {
	root := t.TempDir()

	cfg, err := newLoader(t).Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "")

	cfg, err := newLoader(t).Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_Overrides(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, `
version: "1"
manifest: addon/package.json
dist: out
archivePrefix: addon
steps:
  - name: compile
    phase: build
    cmd: ["make", "-j4"]
    env:
      CC: clang
  - name: unit
    phase: test
    cmd: ["ctest"]
    workingDir: build
pack: ["npm", "pack", "--pack-destination", "{{dist}}", "--silent"]
artifacts:
  - path: build/addon.node
    required: true
  - path: build/libaddon.a
`)

	cfg, err := newLoader(t).Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, "addon/package.json", cfg.Manifest)
	assert.Equal(t, "out", cfg.Dist)
	assert.Equal(t, "addon", cfg.ArchivePrefix)
	assert.Equal(t, domain.PackageExt, cfg.PackageExt)

	require.Len(t, cfg.Steps, 2)
	assert.Equal(t, domain.Step{
		Name:        "compile",
		Phase:       domain.PhaseBuild,
		Command:     []string{"make", "-j4"},
		Environment: map[string]string{"CC": "clang"},
	}, cfg.Steps[0])
	assert.Equal(t, domain.PhaseTest, cfg.Steps[1].Phase)
	assert.Equal(t, filepath.Join(root, "build"), cfg.Steps[1].Dir)

	assert.Equal(t, []string{"npm", "pack", "--pack-destination", "{{dist}}", "--silent"}, cfg.Pack.Command)
	assert.Equal(t, "pack", cfg.Pack.Name)

	assert.Equal(t, []domain.ArtifactSource{
		{Path: filepath.FromSlash("build/addon.node"), Required: true},
		{Path: filepath.FromSlash("build/libaddon.a")},
	}, cfg.Artifacts)
}

func TestLoader_Load_EmptyStepsDisablesBuild(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "steps: []\n")

	cfg, err := newLoader(t).Load(root, "")
	require.NoError(t, err)
	assert.Empty(t, cfg.Steps)
	assert.Equal(t, domain.DefaultConfig().Artifacts, cfg.Artifacts)
}

func TestLoader_Load_PackageExtWithoutDot(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "packageExt: tgz\n")

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	cfg, err := config.NewLoader(mockLogger).Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, ".tgz", cfg.PackageExt)
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	path := createFile(t, other, "release.yaml", "dist: build-output\n")

	cfg, err := newLoader(t).Load(root, path)
	require.NoError(t, err)
	assert.Equal(t, "build-output", cfg.Dist)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unsupported version",
			content: `version: "2"`,
			wantErr: domain.ErrUnsupportedConfigVersion,
		},
		{
			name:    "invalid yaml",
			content: "steps: [",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unknown field",
			content: "archive_prefix: nope\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name: "invalid phase",
			content: `
steps:
  - name: deploy
    phase: publish
    cmd: ["npm", "publish"]
`,
			wantErr: domain.ErrInvalidPhase,
		},
		{
			name: "empty step command",
			content: `
steps:
  - name: compile
`,
			wantErr: domain.ErrEmptyCommand,
		},
		{
			name:    "empty pack command",
			content: "pack: []\n",
			wantErr: domain.ErrEmptyCommand,
		},
		{
			name:    "no artifacts",
			content: "artifacts: []\n",
			wantErr: domain.ErrNoArtifactsDeclared,
		},
		{
			name:    "escaping dist",
			content: "dist: ../out\n",
			wantErr: domain.ErrInvalidDistPath,
		},
		{
			name:    "absolute dist",
			content: "dist: /tmp/out\n",
			wantErr: domain.ErrInvalidDistPath,
		},
		{
			name:    "archive prefix with separator",
			content: "archivePrefix: ../stormlib\n",
			wantErr: domain.ErrInvalidArchivePrefix,
		},
		{
			name: "escaping artifact",
			content: `
artifacts:
  - path: ../outside/addon.node
`,
			wantErr: domain.ErrInvalidArtifactPath,
		},
		{
			name: "absolute artifact",
			content: `
artifacts:
  - path: /usr/lib/addon.node
`,
			wantErr: domain.ErrInvalidArtifactPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			createFile(t, root, domain.ConfigFileName, tt.content)

			_, err := newLoader(t).Load(root, "")
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_ExplicitMissing(t *testing.T) {
	root := t.TempDir()

	_, err := newLoader(t).Load(root, filepath.Join(root, "missing.yaml"))
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}
