package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/ui/style"
)

// Plan prints what Release would do without running anything.
func (a *App) Plan(_ context.Context, opts Options) error {
	proj, err := a.load(opts)
	if err != nil {
		return err
	}
	layout := proj.layout
	w := a.stdout

	name := proj.pkg.Name
	if name == "" {
		name = "(unnamed)"
	}
	_, _ = fmt.Fprintf(w, "Package:   %s %s\n", name, layout.Version)
	_, _ = fmt.Fprintf(w, "Platform:  %s\n", layout.Platform)
	_, _ = fmt.Fprintf(w, "Artifacts: %s\n", layout.ArtifactDir())
	_, _ = fmt.Fprintf(w, "Archive:   %s\n", layout.ArchivePath())
	_, _ = fmt.Fprintf(w, "Archiver:  %s\n", a.archiver.Name())

	_, _ = fmt.Fprintln(w, "\nSteps:")
	for _, step := range proj.steps(domain.PhaseBuild) {
		a.printStep(step)
	}
	for _, step := range proj.steps(domain.PhaseTest) {
		a.printStep(step)
	}
	compress, err := a.archiver.CompressStep(layout.ArtifactDir(), layout.ArchivePath())
	if err != nil {
		_, _ = fmt.Fprintf(w, "  %-8s %s\n", "archive", domain.ErrUnsupportedPlatform.Error())
	} else {
		a.printStep(compress)
	}
	a.printStep(proj.packStep())

	_, _ = fmt.Fprintln(w, "\nSources:")
	for _, source := range proj.cfg.Artifacts {
		suffix := ""
		if source.Required {
			suffix = " (required)"
		}
		_, _ = fmt.Fprintf(w, "  %s %s%s\n", style.Bullet, filepath.ToSlash(source.Path), suffix)
	}
	return nil
}

func (a *App) printStep(step domain.Step) {
	_, _ = fmt.Fprintf(a.stdout, "  %-8s $ %s\n", step.Phase, step.CommandLine())
}

// Status prints the release record of the current version and platform and
// checks the collected artifacts against their recorded digests.
func (a *App) Status(_ context.Context, opts Options) error {
	proj, err := a.load(opts)
	if err != nil {
		return err
	}
	layout := proj.layout

	record, err := a.store.Get(layout.RecordPath())
	if err != nil {
		return err
	}
	if record == nil {
		a.logger.Info(fmt.Sprintf("no release recorded for %s on %s", layout.Version, layout.Platform))
		return nil
	}

	w := a.stdout
	_, _ = fmt.Fprintf(w, "Release %s (%s), finished %s\n",
		record.Version, record.Platform, record.FinishedAt.Format("2006-01-02 15:04:05 MST"))
	_, _ = fmt.Fprintf(w, "Archive: %s\n", record.Archive)

	_, _ = fmt.Fprintln(w, "Artifacts:")
	for _, artifact := range record.Artifacts {
		state := a.verify(filepath.Join(layout.ArtifactDir(), artifact.Name), artifact.Digest)
		_, _ = fmt.Fprintf(w, "  %s %s  %d bytes  %s  %s\n", style.Bullet, artifact.Name, artifact.Size, artifact.Digest, state)
	}

	_, _ = fmt.Fprintln(w, "Tarballs:")
	for _, tarball := range record.Tarballs {
		_, _ = fmt.Fprintf(w, "  %s %s\n", style.Bullet, tarball)
	}
	return nil
}

// verify reports whether the collected file still matches digest.
func (a *App) verify(path, digest string) string {
	got, _, err := a.hasher.HashFile(path)
	switch {
	case err != nil:
		return "missing"
	case got != digest:
		return "modified"
	default:
		return "ok"
	}
}
