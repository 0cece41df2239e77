package scheduler_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/bundle/internal/core/ports/mocks"
	"go.trai.ch/bundle/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

var minifyOpts = domain.MinifyOptions{Mangle: true, ASCIIOnly: true}

func testConstants(partials ...string) domain.Constants {
	root := "proj"
	return domain.NewConstants(domain.Constants{
		Root:               root,
		Lib:                filepath.Join(root, "lib"),
		Dist:               filepath.Join(root, "dist"),
		PlotlyIndex:        filepath.Join(root, "lib", "index.js"),
		PlotlyDist:         filepath.Join(root, "dist", "plotly.js"),
		PlotlyDistMin:      filepath.Join(root, "dist", "plotly.min.js"),
		PlotlyDistWithMeta: filepath.Join(root, "dist", "plotly-with-meta.js"),
		GeoAssetsSrc:       filepath.Join(root, "src", "assets", "geo_assets.js"),
		GeoAssetsDist:      filepath.Join(root, "dist", "plotly-geo-assets.js"),
		Minify:             minifyOpts,
	}, partials)
}

// harness wires a Scheduler to mocks that record what the jobs did.
type harness struct {
	bundler  *mocks.MockBundler
	minifier *mocks.MockMinifier
	writer   *mocks.MockArtifactWriter
	store    *mocks.MockBuildInfoStore
	logger   *mocks.MockLogger
	sched    *scheduler.Scheduler

	mu      sync.Mutex
	written map[string]string
	infos   map[string]domain.ArtifactInfo
	okLines []string
	opts    map[string]ports.BundleOptions
}

func newHarness(t *testing.T, ctrl *gomock.Controller) *harness {
	t.Helper()

	h := &harness{
		bundler:  mocks.NewMockBundler(ctrl),
		minifier: mocks.NewMockMinifier(ctrl),
		writer:   mocks.NewMockArtifactWriter(ctrl),
		store:    mocks.NewMockBuildInfoStore(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		written:  make(map[string]string),
		infos:    make(map[string]domain.ArtifactInfo),
		opts:     make(map[string]ports.BundleOptions),
	}

	hasher := mocks.NewMockHasher(ctrl)
	hasher.EXPECT().HashBytes(gomock.Any()).Return("0123456789abcdef").AnyTimes()

	telemetry := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()

	h.writer.EXPECT().Write(gomock.Any(), gomock.Any()).
		DoAndReturn(func(path string, data []byte) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.written[path] = string(data)
			return nil
		}).AnyTimes()

	h.store.EXPECT().Put("proj", gomock.Any()).
		DoAndReturn(func(_ string, info domain.ArtifactInfo) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.infos[info.Path] = info
			return nil
		}).AnyTimes()

	h.logger.EXPECT().Info(gomock.Any()).
		Do(func(msg string) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.okLines = append(h.okLines, msg)
		}).AnyTimes()

	h.sched = scheduler.NewScheduler(
		h.bundler,
		h.minifier,
		h.writer,
		hasher,
		h.store,
		h.logger,
		telemetry,
		[]ports.Transform{mocks.NewMockTransform(ctrl)},
	)
	return h
}

// echoBundler makes the bundler return "bundle:<entry>" and records the options per entry.
func (h *harness) echoBundler() {
	h.bundler.EXPECT().Bundle(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry string, opts ports.BundleOptions) ([]byte, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.opts[entry+"|"+opts.Standalone+"|"+boolString(opts.Debug)] = opts
			return []byte("bundle:" + entry), nil
		}).AnyTimes()
}

func boolString(b bool) string {
	if b {
		return "debug"
	}
	return "release"
}

func TestScheduler_Run_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, ctrl)
	h.echoBundler()
	h.minifier.EXPECT().Minify(gomock.Any(), gomock.Any(), minifyOpts).
		DoAndReturn(func(_ context.Context, src []byte, _ domain.MinifyOptions) ([]byte, error) {
			return append([]byte("min:"), src...), nil
		}).AnyTimes()

	c := testConstants("basic", "gl3d")
	jobs := domain.PlanJobs(c, false)

	require.NoError(t, h.sched.Run(context.Background(), "proj", jobs, minifyOpts, 4))

	// Every planned output is written, minified siblings only where configured.
	assert.Len(t, h.written, len(domain.PlanOutputs(c)))
	assert.Equal(t, "bundle:"+c.PlotlyIndex, h.written[c.PlotlyDist])
	assert.Equal(t, "min:bundle:"+c.PlotlyIndex, h.written[c.PlotlyDistMin])
	assert.Equal(t, "bundle:"+c.GeoAssetsSrc, h.written[c.GeoAssetsDist])
	assert.Equal(t, "bundle:"+c.PlotlyIndex, h.written[c.PlotlyDistWithMeta])
	assert.Equal(t, "min:bundle:"+c.PartialIndex("gl3d"), h.written[c.PartialDistMin("gl3d")])

	// One ok line per written file.
	assert.ElementsMatch(t, []string{
		"ok plotly.js", "ok plotly.min.js",
		"ok plotly-geo-assets.js",
		"ok plotly-with-meta.js",
		"ok plotly-basic.js", "ok plotly-basic.min.js",
		"ok plotly-gl3d.js", "ok plotly-gl3d.min.js",
	}, h.okLines)

	// Build info is recorded for every output.
	require.Len(t, h.infos, len(h.written))
	info := h.infos[c.PlotlyDistMin]
	assert.Equal(t, "plotly", info.Job)
	assert.Equal(t, int64(len(h.written[c.PlotlyDistMin])), info.Size)
	assert.Equal(t, "0123456789abcdef", info.Hash)

	// Transforms are requested only by jobs that minify.
	assert.Len(t, h.opts[c.PlotlyIndex+"|Plotly|release"].Transforms, 1)
	assert.Empty(t, h.opts[c.GeoAssetsSrc+"|PlotlyGeoAssets|release"].Transforms)
	assert.Empty(t, h.opts[c.PlotlyIndex+"|Plotly|debug"].Transforms)

	for _, job := range jobs {
		assert.Equal(t, domain.JobStatusCompleted, h.sched.GetJobStatusMap()[job.Name], job.Name)
	}
}

func TestScheduler_Run_Debug(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, ctrl)
	h.echoBundler()
	h.minifier.EXPECT().Minify(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	c := testConstants("basic")
	jobs := domain.PlanJobs(c, true)

	require.NoError(t, h.sched.Run(context.Background(), "proj", jobs, minifyOpts, 2))

	assert.Len(t, h.written, len(jobs))
	assert.NotContains(t, h.written, c.PlotlyDistMin)
	assert.NotContains(t, h.written, c.PartialDistMin("basic"))
	assert.Len(t, h.okLines, len(jobs))

	for key, opts := range h.opts {
		assert.Empty(t, opts.Transforms, key)
	}
	assert.Contains(t, h.opts, c.PartialIndex("basic")+"|Plotly|debug")
	assert.Contains(t, h.opts, c.GeoAssetsSrc+"|PlotlyGeoAssets|release")
}

func TestScheduler_Run_BundleFailureCancelsPending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newHarness(t, ctrl)
		h.minifier.EXPECT().Minify(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("min"), nil).AnyTimes()

		c := testConstants("basic", "cartesian", "geo")
		jobs := domain.PlanJobs(c, false)

		bundleErr := errors.New("could not resolve ./traces")
		h.bundler.EXPECT().Bundle(gomock.Any(), c.PlotlyIndex, gomock.Any()).Return([]byte("ok"), nil).Times(1)
		h.bundler.EXPECT().Bundle(gomock.Any(), c.GeoAssetsSrc, gomock.Any()).Return(nil, bundleErr).Times(1)

		err := h.sched.Run(context.Background(), "proj", jobs, minifyOpts, 1)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrJobFailed.Error())

		status := h.sched.GetJobStatusMap()
		assert.Equal(t, domain.JobStatusCompleted, status["plotly"])
		assert.Equal(t, domain.JobStatusFailed, status["plotly-geo-assets"])
		for _, job := range jobs[2:] {
			assert.Equal(t, domain.JobStatusPending, status[job.Name], job.Name)
		}
		assert.NotContains(t, h.written, c.GeoAssetsDist)
	})
}

func TestScheduler_Run_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	bundler := mocks.NewMockBundler(ctrl)
	minifier := mocks.NewMockMinifier(ctrl)
	writer := mocks.NewMockArtifactWriter(ctrl)
	hasher := mocks.NewMockHasher(ctrl)
	store := mocks.NewMockBuildInfoStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	telemetry := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	c := testConstants()
	job := domain.PlanJobs(c, false)[0]
	writeErr := errors.New("disk full")

	telemetry.EXPECT().Record(gomock.Any(), "plotly").
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) { return ctx, vertex })
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	vertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	bundler.EXPECT().Bundle(gomock.Any(), c.PlotlyIndex, gomock.Any()).Return([]byte("bundle"), nil)
	minifier.EXPECT().Minify(gomock.Any(), []byte("bundle"), minifyOpts).Return([]byte("min"), nil)
	writer.EXPECT().Write(c.PlotlyDist, []byte("bundle")).Return(nil)
	writer.EXPECT().Write(c.PlotlyDistMin, []byte("min")).Return(writeErr)
	hasher.EXPECT().HashBytes(gomock.Any()).Return("h")
	store.EXPECT().Put("proj", gomock.Any()).Return(nil)
	logger.EXPECT().Info("ok plotly.js")

	s := scheduler.NewScheduler(bundler, minifier, writer, hasher, store, logger, telemetry, nil)

	err := s.Run(context.Background(), "proj", []domain.Job{job}, minifyOpts, 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrJobFailed.Error())
	assert.Equal(t, domain.JobStatusFailed, s.GetJobStatusMap()["plotly"])
}

func TestScheduler_Run_MinifyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, ctrl)
	h.echoBundler()

	c := testConstants()
	job := domain.PlanJobs(c, false)[0]
	h.minifier.EXPECT().Minify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("unexpected token"))

	err := h.sched.Run(context.Background(), "proj", []domain.Job{job}, minifyOpts, 1)
	require.Error(t, err)
	assert.NotContains(t, h.written, c.PlotlyDistMin)
}

func TestScheduler_Run_StoreFailureWarns(t *testing.T) {
	ctrl := gomock.NewController(t)

	bundler := mocks.NewMockBundler(ctrl)
	writer := mocks.NewMockArtifactWriter(ctrl)
	hasher := mocks.NewMockHasher(ctrl)
	store := mocks.NewMockBuildInfoStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	telemetry := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	c := testConstants()
	job := domain.PlanJobs(c, false)[1] // geo assets, primary only

	telemetry.EXPECT().Record(gomock.Any(), job.Name).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) { return ctx, vertex })
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	vertex.EXPECT().Complete(nil)

	bundler.EXPECT().Bundle(gomock.Any(), job.Entry, gomock.Any()).Return([]byte("geo"), nil)
	writer.EXPECT().Write(job.Output, []byte("geo")).Return(nil)
	hasher.EXPECT().HashBytes([]byte("geo")).Return("h")
	store.EXPECT().Put("proj", gomock.Any()).Return(errors.New("read-only"))
	logger.EXPECT().Info("ok plotly-geo-assets.js")
	logger.EXPECT().Warn(gomock.Any())

	s := scheduler.NewScheduler(bundler, nil, writer, hasher, store, logger, telemetry, nil)

	require.NoError(t, s.Run(context.Background(), "proj", []domain.Job{job}, minifyOpts, 1))
}

func TestScheduler_Run_Parallelism(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newHarness(t, ctrl)
		h.minifier.EXPECT().Minify(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("min"), nil).AnyTimes()

		release := make(chan struct{})
		h.bundler.EXPECT().Bundle(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry string, _ ports.BundleOptions) ([]byte, error) {
				<-release
				return []byte(entry), nil
			}).AnyTimes()

		c := testConstants("basic")
		jobs := domain.PlanJobs(c, false)

		done := make(chan error, 1)
		go func() {
			done <- h.sched.Run(context.Background(), "proj", jobs, minifyOpts, 2)
		}()

		synctest.Wait()

		// The first two jobs are in flight, the rest wait for a slot in order.
		status := h.sched.GetJobStatusMap()
		assert.Equal(t, domain.JobStatusRunning, status["plotly"])
		assert.Equal(t, domain.JobStatusRunning, status["plotly-geo-assets"])
		assert.Equal(t, domain.JobStatusPending, status["plotly-with-meta"])
		assert.Equal(t, domain.JobStatusPending, status["plotly-basic"])

		close(release)
		require.NoError(t, <-done)

		for _, job := range jobs {
			assert.Equal(t, domain.JobStatusCompleted, h.sched.GetJobStatusMap()[job.Name], job.Name)
		}
	})
}

func TestScheduler_Run_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, ctrl)
	h.bundler.EXPECT().Bundle(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := domain.PlanJobs(testConstants(), false)
	err := h.sched.Run(ctx, "proj", jobs, minifyOpts, 1)
	require.ErrorIs(t, err, context.Canceled)

	for _, job := range jobs {
		assert.Equal(t, domain.JobStatusPending, h.sched.GetJobStatusMap()[job.Name], job.Name)
	}
}
