package config

// Shipfile represents the structure of the ship.yaml configuration file.
type Shipfile struct {
	Version       string        `yaml:"version"`
	Manifest      string        `yaml:"manifest"`
	Dist          string        `yaml:"dist"`
	ArchivePrefix string        `yaml:"archivePrefix"`
	PackageExt    string        `yaml:"packageExt"`
	Steps         []StepDTO     `yaml:"steps"`
	Pack          []string      `yaml:"pack"`
	Artifacts     []ArtifactDTO `yaml:"artifacts"`
}

// StepDTO represents a step definition in the configuration.
type StepDTO struct {
	Name        string            `yaml:"name"`
	Phase       string            `yaml:"phase"`
	Cmd         []string          `yaml:"cmd"`
	Environment map[string]string `yaml:"env"`
	WorkingDir  string            `yaml:"workingDir"`
}

// ArtifactDTO represents an artifact source in the configuration.
type ArtifactDTO struct {
	Path     string `yaml:"path"`
	Required bool   `yaml:"required"`
}
