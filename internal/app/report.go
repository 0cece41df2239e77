package app

import (
	"context"
	"io"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/ui/style"
	"go.trai.ch/zerr"
)

// ReportOptions configuration for the Report method.
type ReportOptions struct {
	// Root is the project directory the constants table is joined to.
	Root string
}

// ArtifactReport describes one output file and how it compares to its recorded build info.
type ArtifactReport struct {
	// Path is relative to the project root, slash separated.
	Path  string
	State domain.ArtifactState
	// Info is the recorded build info, nil when none was recorded.
	Info *domain.ArtifactInfo
}

// Inspect compares every planned output and every stray bundle in dist/ to the build info store.
// Planned outputs come first in plan order, followed by stray files in lexical order.
func (a *App) Inspect(_ context.Context, opts ReportOptions) ([]ArtifactReport, error) {
	constants, err := a.constantsLoader.Load(opts.Root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	planned := domain.PlanOutputs(constants)
	missing, err := a.verifier.Missing(planned)
	if err != nil {
		return nil, err
	}

	absent := make(map[string]bool, len(missing))
	for _, path := range missing {
		absent[path] = true
	}

	known := make(map[string]bool, len(planned))
	reports := make([]ArtifactReport, 0, len(planned))
	for _, path := range planned {
		known[filepath.Clean(path)] = true

		report, err := a.inspectArtifact(constants.Root, path, absent[path])
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	for path := range a.walker.WalkFiles(constants.Dist, []string{"*.js"}) {
		if known[filepath.Clean(path)] {
			continue
		}
		reports = append(reports, ArtifactReport{
			Path:  relativeTo(constants.Root, path),
			State: domain.ArtifactStateUnknown,
		})
	}

	return reports, nil
}

func (a *App) inspectArtifact(root, path string, absent bool) (ArtifactReport, error) {
	report := ArtifactReport{Path: relativeTo(root, path)}

	info, err := a.store.Get(root, path)
	if err != nil {
		return report, err
	}
	report.Info = info

	switch {
	case absent:
		report.State = domain.ArtifactStateMissing
	case info == nil:
		report.State = domain.ArtifactStateUnknown
	default:
		hash, err := a.hasher.ComputeFileHash(path)
		if err != nil {
			return report, err
		}
		if hash == info.Hash {
			report.State = domain.ArtifactStateOK
		} else {
			report.State = domain.ArtifactStateModified
		}
	}

	return report, nil
}

// Report writes a table of every artifact and its state to w.
func (a *App) Report(ctx context.Context, w io.Writer, opts ReportOptions) error {
	reports, err := a.Inspect(ctx, opts)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Artifact", "State", "Size", "Hash"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	for _, report := range reports {
		size, hash := "-", "-"
		if report.Info != nil {
			size = strconv.FormatInt(report.Info.Size, 10)
			hash = report.Info.Hash
		}
		table.Append([]string{report.Path, stateIcon(report.State) + " " + string(report.State), size, hash})
	}

	table.Render()
	return nil
}

func stateIcon(state domain.ArtifactState) string {
	switch state {
	case domain.ArtifactStateOK:
		return style.Check
	case domain.ArtifactStateModified:
		return style.Tilde
	case domain.ArtifactStateMissing:
		return style.Cross
	default:
		return style.Circle
	}
}
