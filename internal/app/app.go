// Package app implements the application layer for bundle.
package app

import (
	"context"
	"io"
	"path/filepath"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/bundle/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	constantsLoader ports.ConstantsLoader
	verifier        ports.Verifier
	scheduler       *scheduler.Scheduler
	writer          ports.ArtifactWriter
	hasher          ports.Hasher
	store           ports.BuildInfoStore
	walker          ports.FileWalker
	logger          ports.Logger
	telemetry       ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConstantsLoader,
	verifier ports.Verifier,
	sched *scheduler.Scheduler,
	writer ports.ArtifactWriter,
	hasher ports.Hasher,
	store ports.BuildInfoStore,
	walker ports.FileWalker,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		constantsLoader: loader,
		verifier:        verifier,
		scheduler:       sched,
		writer:          writer,
		hasher:          hasher,
		store:           store,
		walker:          walker,
		logger:          log,
		telemetry:       telemetry,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Root is the project directory the constants table is joined to.
	Root string
	// Debug embeds source maps and suppresses minified siblings.
	Debug bool
	// Jobs bounds the number of bundle jobs in flight. Zero uses the number of CPUs.
	Jobs int
	// Progress receives per-job progress lines. Nil prints none.
	Progress io.Writer
}

// Run checks the preprocess outputs and builds every planned bundle.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Load the constants table
	constants, err := a.constantsLoader.Load(opts.Root)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Fail fast when the preprocess step has not run
	if err := a.checkPreconditions(constants); err != nil {
		return err
	}

	// 3. Run the scheduler
	if opts.Progress != nil {
		a.telemetry.SetOutput(opts.Progress)
	}
	defer func() {
		_ = a.telemetry.Close()
	}()

	jobs := domain.PlanJobs(constants, opts.Debug)
	if err := a.scheduler.Run(ctx, constants.Root, jobs, constants.Minify, opts.Jobs); err != nil {
		return zerr.Wrap(err, domain.ErrBuildExecutionFailed.Error())
	}

	return nil
}

func (a *App) checkPreconditions(constants domain.Constants) error {
	missing, err := a.verifier.Missing(constants.Preconditions())
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	for _, path := range missing {
		a.logger.Warn("missing " + relativeTo(constants.Root, path))
	}
	return zerr.With(domain.ErrMissingBuildArtifacts, "missing", missing)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Root is the project directory the constants table is joined to.
	Root string
}

// Clean removes every planned output and the build info store.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	constants, err := a.constantsLoader.Load(opts.Root)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	for _, path := range domain.PlanOutputs(constants) {
		removed, err := a.writer.Remove(path)
		if err != nil {
			return err
		}
		if removed {
			a.logger.Info("removed " + filepath.Base(path))
		}
	}

	if err := a.store.Reset(constants.Root); err != nil {
		return zerr.Wrap(err, "failed to reset build info store")
	}

	return nil
}

// relativeTo returns path relative to root, or path itself when it is not below root.
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
