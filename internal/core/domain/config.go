package domain

// Config describes how a project is released.
type Config struct {
	Manifest      string
	Dist          string
	ArchivePrefix string
	PackageExt    string
	Steps         []Step
	Pack          Step
	Artifacts     []ArtifactSource
}

// DefaultConfig returns the release configuration used when no ship.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Manifest:      ManifestFileName,
		Dist:          DistDirName,
		ArchivePrefix: ArchivePrefix,
		PackageExt:    PackageExt,
		Steps: []Step{
			{Name: "compile", Phase: PhaseBuild, Command: []string{"npm", "run", "compile"}},
			{Name: "rebuild", Phase: PhaseBuild, Command: []string{"npx", "node-gyp", "rebuild"}},
			{Name: "test", Phase: PhaseTest, Command: []string{"npm", "test"}},
		},
		Pack: Step{
			Name:    "pack",
			Phase:   PhasePack,
			Command: []string{"npm", "pack", "--pack-destination", DistToken},
		},
		Artifacts: []ArtifactSource{
			{Path: "build/Release/stormlib.node"},
			{Path: "StormLib/build/Release/StormLib.lib"},
		},
	}
}

// StepsFor returns the configured steps of the given phase in declaration order.
func (c *Config) StepsFor(phase Phase) []Step {
	var steps []Step
	for _, s := range c.Steps {
		if s.Phase == phase {
			steps = append(steps, s)
		}
	}
	return steps
}
