package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/app"
	"go.trai.ch/bundle/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func statesByPath(reports []app.ArtifactReport) map[string]domain.ArtifactState {
	states := make(map[string]domain.ArtifactState, len(reports))
	for _, r := range reports {
		states[r.Path] = r.State
	}
	return states
}

func TestApp_Inspect_BeforeBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)

	reports, err := f.app.Inspect(context.Background(), app.ReportOptions{Root: f.root})
	require.NoError(t, err)

	require.Len(t, reports, 4+2*len(partials))
	assert.Equal(t, "dist/plotly.js", reports[0].Path)
	assert.Equal(t, "dist/plotly.min.js", reports[1].Path)
	for _, r := range reports {
		assert.Equal(t, domain.ArtifactStateMissing, r.State, r.Path)
		assert.Nil(t, r.Info, r.Path)
	}
}

func TestApp_Inspect_States(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	f.preprocess(t)
	f.echo()
	f.telemetry.EXPECT().Close().Return(nil)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{Root: f.root}))

	f.writeFile(t, "dist/plotly.js", "edited by hand")
	require.NoError(t, os.Remove(filepath.Join(f.root, "dist", "plotly-geo.min.js")))
	f.writeFile(t, "dist/plotly-custom.js", "stray")
	f.writeFile(t, "dist/notes.txt", "not a bundle")

	reports, err := f.app.Inspect(context.Background(), app.ReportOptions{Root: f.root})
	require.NoError(t, err)
	require.Len(t, reports, 4+2*len(partials)+1)

	states := statesByPath(reports)
	assert.Equal(t, domain.ArtifactStateModified, states["dist/plotly.js"])
	assert.Equal(t, domain.ArtifactStateOK, states["dist/plotly.min.js"])
	assert.Equal(t, domain.ArtifactStateMissing, states["dist/plotly-geo.min.js"])
	assert.Equal(t, domain.ArtifactStateOK, states["dist/plotly-with-meta.js"])
	assert.Equal(t, domain.ArtifactStateUnknown, states["dist/plotly-custom.js"])
	assert.NotContains(t, states, "dist/notes.txt")

	last := reports[len(reports)-1]
	assert.Equal(t, "dist/plotly-custom.js", last.Path)
	assert.Nil(t, last.Info)

	require.NotNil(t, reports[1].Info)
	assert.Equal(t, int64(len("min:bundle:index.js")), reports[1].Info.Size)
	assert.Equal(t, "plotly", reports[1].Info.Job)
}

func TestApp_Inspect_AfterClean(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	f.preprocess(t)
	f.echo()
	f.telemetry.EXPECT().Close().Return(nil)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{Root: f.root}))
	require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{Root: f.root}))

	// Outputs rebuilt by hand have no recorded info.
	f.writeFile(t, "dist/plotly.js", "hand made")

	reports, err := f.app.Inspect(context.Background(), app.ReportOptions{Root: f.root})
	require.NoError(t, err)

	states := statesByPath(reports)
	assert.Equal(t, domain.ArtifactStateUnknown, states["dist/plotly.js"])
	assert.Equal(t, domain.ArtifactStateMissing, states["dist/plotly.min.js"])
}

func TestApp_Inspect_RootSpelledDifferently(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	f.preprocess(t)
	f.echo()
	f.telemetry.EXPECT().Close().Return(nil)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{Root: f.root}))

	t.Chdir(f.root)
	reports, err := f.app.Inspect(context.Background(), app.ReportOptions{Root: "."})
	require.NoError(t, err)

	require.Len(t, reports, 4+2*len(partials))
	for _, r := range reports {
		assert.Equal(t, domain.ArtifactStateOK, r.State, r.Path)
		require.NotNil(t, r.Info, r.Path)
		assert.Equal(t, r.Path, r.Info.Path)
	}
}

func TestApp_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	f.preprocess(t)
	f.echo()
	f.telemetry.EXPECT().Close().Return(nil)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{Root: f.root, Debug: true}))

	var buf bytes.Buffer
	require.NoError(t, f.app.Report(context.Background(), &buf, app.ReportOptions{Root: f.root}))

	out := buf.String()
	assert.Contains(t, out, "ARTIFACT")
	assert.Contains(t, out, "dist/plotly.js")
	assert.Contains(t, out, "✓ ok")
	assert.Contains(t, out, "✗ missing")
	assert.Contains(t, out, "dist/plotly-finance.min.js")
}
