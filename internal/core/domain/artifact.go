package domain

import "time"

// ArtifactSource is a build output the release collects, relative to the project root.
type ArtifactSource struct {
	Path string
	// Required turns a missing artifact into a fatal error instead of a warning.
	Required bool
}

// Artifact is an artifact that was copied into the artifact directory.
type Artifact struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Size   int64  `json:"size"`
	Digest string `json:"digest"`
}

// ReleaseRecord summarizes a successful release run.
type ReleaseRecord struct {
	Package    string     `json:"package,omitempty"`
	Version    string     `json:"version"`
	Platform   string     `json:"platform"`
	Archive    string     `json:"archive"`
	Artifacts  []Artifact `json:"artifacts"`
	Tarballs   []string   `json:"tarballs"`
	FinishedAt time.Time  `json:"finishedAt"`
}
