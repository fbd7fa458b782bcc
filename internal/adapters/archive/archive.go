// Package archive provides the per-platform compression strategies.
package archive

import (
	"path/filepath"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Archiver = (*Zip)(nil)
	_ ports.Archiver = (*PowerShell)(nil)
	_ ports.Archiver = (*Unsupported)(nil)
)

// ForPlatform selects the compression strategy for goos.
func ForPlatform(goos string) ports.Archiver {
	switch goos {
	case "linux", "darwin":
		return &Zip{}
	case "windows":
		return &PowerShell{}
	default:
		return &Unsupported{Platform: goos}
	}
}

// Zip compresses with the zip command line tool.
type Zip struct{}

// Name implements ports.Archiver.
func (z *Zip) Name() string { return "zip" }

// CompressStep runs `zip -r <archive> .` from inside srcDir so entries are
// stored relative to it.
func (z *Zip) CompressStep(srcDir, archivePath string) (domain.Step, error) {
	return domain.Step{
		Name:    "compress",
		Phase:   domain.PhaseArchive,
		Command: []string{"zip", "-r", absolute(archivePath), "."},
		Dir:     srcDir,
	}, nil
}

// PowerShell compresses with Compress-Archive.
type PowerShell struct{}

// Name implements ports.Archiver.
func (p *PowerShell) Name() string { return "powershell" }

// CompressStep returns the Compress-Archive invocation for srcDir.
func (p *PowerShell) CompressStep(srcDir, archivePath string) (domain.Step, error) {
	script := "Compress-Archive -Path " + quote(srcDir+`\*`) +
		" -DestinationPath " + quote(archivePath) + " -Force"
	return domain.Step{
		Name:    "compress",
		Phase:   domain.PhaseArchive,
		Command: []string{"powershell", "-NoProfile", "-Command", script},
	}, nil
}

// quote renders s as a PowerShell single-quoted literal.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Unsupported is selected on hosts without a known compression tool.
type Unsupported struct {
	Platform string
}

// Name implements ports.Archiver.
func (u *Unsupported) Name() string { return "unsupported" }

// CompressStep always fails with domain.ErrUnsupportedPlatform.
func (u *Unsupported) CompressStep(_, _ string) (domain.Step, error) {
	return domain.Step{}, zerr.With(domain.Fail(domain.ErrUnsupportedPlatform, nil), "platform", u.Platform)
}

func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
