// Package config provides the release configuration loader for ship.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the only supported ship.yaml version.
const SchemaVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the release configuration for the project at root.
func (l *Loader) Load(root, path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, domain.ConfigFileName)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is the configured release file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, zerr.With(domain.Fail(domain.ErrConfigNotFound, nil), "path", path)
			}
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.With(domain.Fail(domain.ErrConfigReadFailed, err), "path", path)
	}

	var shipfile Shipfile
	if err := decodeStrict(data, &shipfile); err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrConfigParseFailed, err), "path", path)
	}

	cfg, err := l.toDomain(root, &shipfile)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// decodeStrict unmarshals YAML and rejects unknown keys. An empty document
// leaves out untouched.
func decodeStrict(data []byte, out *Shipfile) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (l *Loader) toDomain(root string, sf *Shipfile) (*domain.Config, error) {
	if sf.Version != "" && sf.Version != SchemaVersion {
		return nil, zerr.With(domain.Fail(domain.ErrUnsupportedConfigVersion, nil), "version", sf.Version)
	}

	cfg := domain.DefaultConfig()
	setIfNotEmpty(&cfg.Manifest, sf.Manifest)
	setIfNotEmpty(&cfg.Dist, filepath.FromSlash(sf.Dist))
	setIfNotEmpty(&cfg.ArchivePrefix, sf.ArchivePrefix)

	if err := domain.ValidateDist(cfg.Dist); err != nil {
		return nil, err
	}
	if err := domain.ValidateArchivePrefix(cfg.ArchivePrefix); err != nil {
		return nil, err
	}

	if sf.PackageExt != "" {
		ext := sf.PackageExt
		if !strings.HasPrefix(ext, ".") {
			l.Logger.Warn(fmt.Sprintf("packageExt %q has no leading dot, using %q", ext, "."+ext))
			ext = "." + ext
		}
		cfg.PackageExt = ext
	}

	if sf.Steps != nil {
		steps, err := buildSteps(root, sf.Steps)
		if err != nil {
			return nil, err
		}
		cfg.Steps = steps
	}

	if sf.Pack != nil {
		if len(sf.Pack) == 0 {
			return nil, zerr.With(domain.Fail(domain.ErrEmptyCommand, nil), "step", "pack")
		}
		cfg.Pack.Command = sf.Pack
	}

	if sf.Artifacts != nil {
		artifacts, err := buildArtifacts(sf.Artifacts)
		if err != nil {
			return nil, err
		}
		cfg.Artifacts = artifacts
	}

	return cfg, nil
}

func buildSteps(root string, dtos []StepDTO) ([]domain.Step, error) {
	steps := make([]domain.Step, 0, len(dtos))
	for i, dto := range dtos {
		name := dto.Name
		if name == "" {
			name = fmt.Sprintf("step-%d", i+1)
		}

		phase := domain.Phase(dto.Phase)
		if phase == "" {
			phase = domain.PhaseBuild
		}
		if phase != domain.PhaseBuild && phase != domain.PhaseTest {
			return nil, zerr.With(zerr.With(domain.Fail(domain.ErrInvalidPhase, nil), "step", name), "phase", dto.Phase)
		}

		if len(dto.Cmd) == 0 {
			return nil, zerr.With(domain.Fail(domain.ErrEmptyCommand, nil), "step", name)
		}

		steps = append(steps, domain.Step{
			Name:        name,
			Phase:       phase,
			Command:     dto.Cmd,
			Dir:         resolveWorkingDir(root, dto.WorkingDir),
			Environment: dto.Environment,
		})
	}
	return steps, nil
}

func buildArtifacts(dtos []ArtifactDTO) ([]domain.ArtifactSource, error) {
	if len(dtos) == 0 {
		return nil, domain.ErrNoArtifactsDeclared
	}

	artifacts := make([]domain.ArtifactSource, 0, len(dtos))
	for _, dto := range dtos {
		if !filepath.IsLocal(filepath.FromSlash(dto.Path)) {
			return nil, zerr.With(domain.Fail(domain.ErrInvalidArtifactPath, nil), "artifact", dto.Path)
		}
		artifacts = append(artifacts, domain.ArtifactSource{
			Path:     filepath.FromSlash(dto.Path),
			Required: dto.Required,
		})
	}
	return artifacts, nil
}

func resolveWorkingDir(root, dir string) string {
	if dir == "" {
		return ""
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
