package domain

// JobStatus represents the lifecycle state of a bundle job.
type JobStatus string

const (
	// JobStatusPending indicates the job has not started yet.
	JobStatusPending JobStatus = "pending"
	// JobStatusRunning indicates the job is bundling or writing.
	JobStatusRunning JobStatus = "running"
	// JobStatusCompleted indicates every output of the job was written.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusFailed indicates the job aborted.
	JobStatusFailed JobStatus = "failed"
)

// IsTerminal reports whether the status is final.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Job describes one bundle to produce.
type Job struct {
	// Name identifies the job in logs and telemetry.
	Name string
	// Entry is the entry module handed to the bundler.
	Entry string
	// Output is where the bundle is written.
	Output string
	// MinifiedOutput is where the minified bundle is written. Empty means no minified sibling.
	MinifiedOutput string
	// Standalone is the global name the bundle's exports are exposed under.
	Standalone string
	// Debug embeds a source map and suppresses minification.
	Debug bool
}

// ShouldMinify reports whether the job writes a minified sibling.
func (j Job) ShouldMinify() bool {
	return j.MinifiedOutput != "" && !j.Debug
}

// Outputs returns the files the job writes, primary first.
func (j Job) Outputs() []string {
	if j.ShouldMinify() {
		return []string{j.Output, j.MinifiedOutput}
	}
	return []string{j.Output}
}

// PlanJobs returns the fixed sequence of bundle jobs in declaration order:
// the full library, the geo assets, the library with metadata, then one job per partial bundle.
func PlanJobs(c Constants, debug bool) []Job {
	partials := c.PartialNames()
	jobs := make([]Job, 0, 3+len(partials))

	jobs = append(jobs,
		Job{
			Name:           "plotly",
			Entry:          c.PlotlyIndex,
			Output:         c.PlotlyDist,
			MinifiedOutput: c.PlotlyDistMin,
			Standalone:     StandalonePlotly,
			Debug:          debug,
		},
		Job{
			Name:       "plotly-geo-assets",
			Entry:      c.GeoAssetsSrc,
			Output:     c.GeoAssetsDist,
			Standalone: StandaloneGeoAssets,
		},
		Job{
			Name:       "plotly-with-meta",
			Entry:      c.PlotlyIndex,
			Output:     c.PlotlyDistWithMeta,
			Standalone: StandalonePlotly,
			Debug:      true,
		},
	)

	for _, name := range partials {
		jobs = append(jobs, Job{
			Name:           "plotly-" + name,
			Entry:          c.PartialIndex(name),
			Output:         c.PartialDist(name),
			MinifiedOutput: c.PartialDistMin(name),
			Standalone:     StandalonePlotly,
			Debug:          debug,
		})
	}

	return jobs
}

// PlanOutputs returns every file a non-debug run may write, in plan order.
func PlanOutputs(c Constants) []string {
	var outputs []string
	for _, job := range PlanJobs(c, false) {
		outputs = append(outputs, job.Outputs()...)
	}
	return outputs
}
