// Package scheduler implements the bundle job scheduler.
package scheduler

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Scheduler runs bundle jobs and writes their outputs.
type Scheduler struct {
	bundler    ports.Bundler
	minifier   ports.Minifier
	writer     ports.ArtifactWriter
	hasher     ports.Hasher
	store      ports.BuildInfoStore
	logger     ports.Logger
	telemetry  ports.Telemetry
	transforms []ports.Transform

	mu        sync.RWMutex
	jobStatus map[string]domain.JobStatus
}

// NewScheduler creates a new Scheduler with the given dependencies.
// transforms are applied by the bundler to jobs that produce a minified sibling.
func NewScheduler(
	bundler ports.Bundler,
	minifier ports.Minifier,
	writer ports.ArtifactWriter,
	hasher ports.Hasher,
	store ports.BuildInfoStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
	transforms []ports.Transform,
) *Scheduler {
	return &Scheduler{
		bundler:    bundler,
		minifier:   minifier,
		writer:     writer,
		hasher:     hasher,
		store:      store,
		logger:     logger,
		telemetry:  telemetry,
		transforms: transforms,
		jobStatus:  make(map[string]domain.JobStatus),
	}
}

// initJobStatuses initializes the status of jobs to Pending.
func (s *Scheduler) initJobStatuses(jobs []domain.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range jobs {
		s.jobStatus[job.Name] = domain.JobStatusPending
	}
}

// updateStatus updates the status of a job.
func (s *Scheduler) updateStatus(name string, status domain.JobStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobStatus[name] = status
}

// Run executes jobs in order with at most parallelism jobs in flight.
// A parallelism below one uses the number of CPUs.
// The first failing job cancels every job that has not started yet.
func (s *Scheduler) Run(
	ctx context.Context,
	root string,
	jobs []domain.Job,
	minify domain.MinifyOptions,
	parallelism int,
) error {
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}

	s.initJobStatuses(jobs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for _, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			return s.runJob(gctx, root, job, minify)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (s *Scheduler) runJob(ctx context.Context, root string, job domain.Job, minify domain.MinifyOptions) error {
	s.updateStatus(job.Name, domain.JobStatusRunning)

	ctx, vertex := s.telemetry.Record(ctx, job.Name)

	err := s.executeJob(ctx, root, job, minify, vertex)
	vertex.Complete(err)

	if err != nil {
		s.updateStatus(job.Name, domain.JobStatusFailed)
		return zerr.With(zerr.Wrap(err, domain.ErrJobFailed.Error()), "job", job.Name)
	}

	s.updateStatus(job.Name, domain.JobStatusCompleted)
	return nil
}

func (s *Scheduler) executeJob(
	ctx context.Context,
	root string,
	job domain.Job,
	minify domain.MinifyOptions,
	vertex ports.Vertex,
) error {
	opts := ports.BundleOptions{
		Standalone: job.Standalone,
		Debug:      job.Debug,
	}
	if job.ShouldMinify() {
		opts.Transforms = s.transforms
	}

	vertex.Log(domain.LogLevelDebug, "bundling "+job.Entry)
	buf, err := s.bundler.Bundle(ctx, job.Entry, opts)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.emit(root, job, job.Output, buf, vertex)
	})

	if job.ShouldMinify() {
		g.Go(func() error {
			vertex.Log(domain.LogLevelDebug, "minifying "+filepath.Base(job.Output))
			minified, err := s.minifier.Minify(gctx, buf, minify)
			if err != nil {
				return zerr.With(err, "path", job.MinifiedOutput)
			}
			return s.emit(root, job, job.MinifiedOutput, minified, vertex)
		})
	}

	return g.Wait()
}

// emit writes one output, reports it and records its build info.
func (s *Scheduler) emit(root string, job domain.Job, path string, data []byte, vertex ports.Vertex) error {
	if err := s.writer.Write(path, data); err != nil {
		return err
	}

	line := "ok " + filepath.Base(path)
	s.logger.Info(line)
	vertex.Log(domain.LogLevelInfo, line)

	info := domain.ArtifactInfo{
		Path:      path,
		Hash:      s.hasher.HashBytes(data),
		Size:      int64(len(data)),
		Job:       job.Name,
		Timestamp: time.Now(),
	}
	if err := s.store.Put(root, info); err != nil {
		s.logger.Warn("could not record build info for " + filepath.Base(path) + ": " + err.Error())
	}

	return nil
}
