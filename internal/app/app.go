// Package app implements the release use cases for ship.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/ship/internal/adapters/linear"
	"go.trai.ch/ship/internal/adapters/telemetry"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/ship/internal/engine/pipeline"
	"go.trai.ch/ship/internal/ui/style"
	"go.trai.ch/zerr"
)

// Phase banners, in run order.
const (
	TitleBuild   = "Building StormLib and native addon"
	TitleTest    = "Running tests"
	TitleCollect = "Collecting artifacts into %s"
	TitleArchive = "Compressing artifacts to %s"
	TitlePack    = "Creating npm package tarball via npm pack"
)

// App represents the main application logic.
type App struct {
	logger    ports.Logger
	executor  ports.Executor
	manifest  ports.ManifestReader
	loader    ports.ConfigLoader
	archiver  ports.Archiver
	collector ports.ArtifactCollector
	hasher    ports.Hasher
	store     ports.RecordStore
	platform  domain.Platform

	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
}

// New creates a new App instance.
func New(
	log ports.Logger,
	executor ports.Executor,
	manifest ports.ManifestReader,
	loader ports.ConfigLoader,
	archiver ports.Archiver,
	collector ports.ArtifactCollector,
	hasher ports.Hasher,
	store ports.RecordStore,
	platform domain.Platform,
) *App {
	return &App{
		logger:    log,
		executor:  executor,
		manifest:  manifest,
		loader:    loader,
		archiver:  archiver,
		collector: collector,
		hasher:    hasher,
		store:     store,
		platform:  platform,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		now:       time.Now,
	}
}

// WithOutput sets the streams used for progress, summaries and child processes.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithClock overrides the clock used to stamp release records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Options locates the project a command operates on.
type Options struct {
	Root       string
	ConfigPath string
}

// ReleaseOptions configuration for the Release method.
type ReleaseOptions struct {
	Options
	SkipBuild bool
	SkipTests bool
	NoPack    bool
}

// project is the resolved input of every use case.
type project struct {
	cfg    *domain.Config
	pkg    domain.Package
	layout domain.Layout
}

func (a *App) load(opts Options) (*project, error) {
	rootArg := opts.Root
	if rootArg == "" {
		rootArg = "."
	}
	root, err := filepath.Abs(rootArg)
	if err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrFailedToGetRoot, err), "root", rootArg)
	}

	cfg, err := a.loader.Load(root, opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	pkg, err := a.manifest.Read(filepath.Join(root, cfg.Manifest))
	if err != nil {
		return nil, err
	}

	layout := domain.NewLayout(root, cfg.Dist, cfg.ArchivePrefix, pkg, a.platform.Label())
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	return &project{
		cfg:    cfg,
		pkg:    pkg,
		layout: layout,
	}, nil
}

// steps returns the configured steps of phase, running in the project root
// unless they declare their own directory.
func (p *project) steps(phase domain.Phase) []domain.Step {
	steps := p.cfg.StepsFor(phase)
	for i := range steps {
		steps[i] = steps[i].WithDir(p.layout.Root)
	}
	return steps
}

func (p *project) packStep() domain.Step {
	return p.cfg.Pack.Expand(domain.DistToken, p.layout.DistDir()).WithDir(p.layout.Root)
}

// Release builds, tests and packages the project.
//
//nolint:cyclop // orchestration function
func (a *App) Release(ctx context.Context, opts ReleaseOptions) error {
	proj, err := a.load(opts.Options)
	if err != nil {
		return err
	}
	layout := proj.layout

	renderer := linear.NewRenderer(a.stdout)
	setupOTel(telemetry.NewBridge(renderer))
	tracer := telemetry.NewOTelTracer("ship").WithRenderer(renderer)
	pipe := pipeline.New(a.executor, tracer).WithOutput(a.stdout, a.stderr)

	buildSteps := proj.steps(domain.PhaseBuild)
	testSteps := proj.steps(domain.PhaseTest)
	runBuild := !opts.SkipBuild && len(buildSteps) > 0
	runTests := !opts.SkipTests && len(testSteps) > 0

	collectTitle := fmt.Sprintf(TitleCollect, layout.ArtifactDir())
	archiveTitle := fmt.Sprintf(TitleArchive, layout.ArchivePath())

	var titles []string
	if runBuild {
		titles = append(titles, TitleBuild)
	}
	if runTests {
		titles = append(titles, TitleTest)
	}
	titles = append(titles, collectTitle, archiveTitle)
	if !opts.NoPack {
		titles = append(titles, TitlePack)
	}
	pipe.Plan(ctx, titles)

	// 1. Build
	if runBuild {
		if err := pipe.RunPhase(ctx, TitleBuild, buildSteps); err != nil {
			return err
		}
	}

	// 2. Test
	if runTests {
		if err := pipe.RunPhase(ctx, TitleTest, testSteps); err != nil {
			return err
		}
	}

	// 3. Collect
	var artifacts []domain.Artifact
	err = pipe.Phase(ctx, collectTitle, func(context.Context) error {
		var collectErr error
		artifacts, collectErr = a.collect(proj)
		return collectErr
	})
	if err != nil {
		return err
	}

	// 4. Compress
	err = pipe.Phase(ctx, archiveTitle, func(ctx context.Context) error {
		return a.compress(ctx, pipe, layout)
	})
	if err != nil {
		return err
	}

	// 5. Pack
	if !opts.NoPack {
		pack := proj.packStep()
		if err := pipe.RunPhase(ctx, TitlePack, []domain.Step{pack}); err != nil {
			return err
		}
	}

	tarballs, err := a.collector.FindByExt(layout.DistDir(), proj.cfg.PackageExt)
	if err != nil {
		return err
	}

	a.printSummary(proj, tarballs)
	a.saveRecord(proj, artifacts, tarballs)
	return nil
}

// collect resets the artifact directory and copies every declared artifact
// that exists into it.
func (a *App) collect(proj *project) ([]domain.Artifact, error) {
	layout := proj.layout
	dir := layout.ArtifactDir()
	if err := a.collector.ResetDir(dir); err != nil {
		return nil, err
	}

	var artifacts []domain.Artifact
	for _, source := range proj.cfg.Artifacts {
		src := filepath.Join(layout.Root, source.Path)
		dst, copied, err := a.collector.CopyIfExists(src, dir)
		if err != nil {
			return nil, err
		}
		if !copied {
			if source.Required {
				return nil, zerr.With(domain.Fail(domain.ErrRequiredArtifactMissing, nil), "path", src)
			}
			a.logger.Warn(fmt.Sprintf("%s not found, skipping", src))
			continue
		}

		digest, size, err := a.hasher.HashFile(dst)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, domain.Artifact{
			Name:   filepath.Base(dst),
			Source: filepath.ToSlash(source.Path),
			Size:   size,
			Digest: digest,
		})
	}

	if len(artifacts) == 0 {
		return nil, zerr.With(domain.Fail(domain.ErrNoArtifactsCopied, nil), "dir", dir)
	}
	return artifacts, nil
}

// compress replaces the archive bundle with a fresh one built from the
// artifact directory.
func (a *App) compress(ctx context.Context, pipe *pipeline.Pipeline, layout domain.Layout) error {
	if err := a.collector.EnsureDir(layout.DistDir()); err != nil {
		return err
	}
	if err := a.collector.RemoveFile(layout.ArchivePath()); err != nil {
		return err
	}

	step, err := a.archiver.CompressStep(layout.ArtifactDir(), layout.ArchivePath())
	if err != nil {
		return err
	}
	return pipe.Run(ctx, &step)
}

func (a *App) printSummary(proj *project, tarballs []string) {
	w := a.stdout
	_, _ = fmt.Fprintln(w, "\nRelease artifacts ready:")
	_, _ = fmt.Fprintf(w, " %s Binary bundle: %s\n", style.Bullet, proj.layout.ArchivePath())
	_, _ = fmt.Fprintf(w, " %s npm tarball:\n", style.Bullet)
	for _, name := range tarballs {
		_, _ = fmt.Fprintf(w, "     %s/%s\n", filepath.ToSlash(proj.cfg.Dist), name)
	}
}

// saveRecord writes the release record. A failure only warns since every
// release output already exists at this point.
func (a *App) saveRecord(proj *project, artifacts []domain.Artifact, tarballs []string) {
	layout := proj.layout
	paths := make([]string, len(tarballs))
	for i, name := range tarballs {
		paths[i] = layout.Rel(filepath.Join(layout.DistDir(), name))
	}

	record := &domain.ReleaseRecord{
		Package:    proj.pkg.Name,
		Version:    layout.Version,
		Platform:   layout.Platform,
		Archive:    layout.Rel(layout.ArchivePath()),
		Artifacts:  artifacts,
		Tarballs:   paths,
		FinishedAt: a.now().UTC(),
	}
	if err := a.store.Put(layout.RecordPath(), record); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to write release record: %v", err))
	}
}

// Clean removes the artifact directory, archive bundle and release record of
// the current version and platform.
func (a *App) Clean(_ context.Context, opts Options) error {
	proj, err := a.load(opts)
	if err != nil {
		return err
	}
	layout := proj.layout

	var errs error
	remove := func(name, path string, fn func(string) error) {
		if err := fn(path); err != nil {
			errs = errors.Join(errs, err)
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s %s", name, layout.Rel(path)))
	}

	remove("artifact directory", layout.ArtifactDir(), a.collector.RemoveDir)
	remove("archive", layout.ArchivePath(), a.collector.RemoveFile)
	remove("release record", layout.RecordPath(), a.store.Delete)

	return errs
}

// setupOTel configures the OpenTelemetry SDK with the renderer bridge.
func setupOTel(bridge *telemetry.Bridge) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
}
