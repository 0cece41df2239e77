package domain

import (
	"path/filepath"
	"slices"
)

// Standalone export names under which bundles expose their API to the page.
const (
	StandalonePlotly    = "Plotly"
	StandaloneGeoAssets = "PlotlyGeoAssets"
)

// MinifyOptions configures the minifier. The values come from the constants table
// and stay fixed for the whole run.
type MinifyOptions struct {
	// Mangle renames local identifiers to shorter names.
	Mangle bool
	// ASCIIOnly escapes every non-ASCII character in the output.
	ASCIIOnly bool
	// Precision is the number of significant digits kept for numbers. Zero keeps all.
	Precision int
}

// Constants is the immutable table of paths and options the build runs against.
// All paths are absolute or relative to the directory the build was started from,
// already joined with the project root.
//
// A Constants value is built once by the constants loader and passed by value.
// The partial bundle names are only exposed through PartialNames, which returns a copy.
type Constants struct {
	Root  string
	Src   string
	Lib   string
	Build string
	Dist  string

	// PlotlyIndex is the entry of the full library.
	PlotlyIndex string
	// PlotlyDist and PlotlyDistMin are the full library outputs.
	PlotlyDist    string
	PlotlyDistMin string
	// PlotlyDistWithMeta is the full library output that keeps attribute metadata.
	PlotlyDistWithMeta string

	GeoAssetsSrc  string
	GeoAssetsDist string

	// CSSBuild and FontSVGBuild are produced by the preprocess step.
	CSSBuild     string
	FontSVGBuild string

	Minify MinifyOptions

	partialNames []string
}

// NewConstants returns a Constants table holding a private copy of partialNames.
func NewConstants(c Constants, partialNames []string) Constants {
	c.partialNames = slices.Clone(partialNames)
	return c
}

// PartialNames returns the partial bundle names in declaration order.
func (c Constants) PartialNames() []string {
	return slices.Clone(c.partialNames)
}

// Preconditions returns the build artifacts that must exist before bundling.
func (c Constants) Preconditions() []string {
	return []string{c.CSSBuild, c.FontSVGBuild}
}

// PartialIndex returns the entry point of the named partial bundle.
func (c Constants) PartialIndex(name string) string {
	return filepath.Join(c.Lib, "index-"+name+".js")
}

// PartialDist returns the output path of the named partial bundle.
func (c Constants) PartialDist(name string) string {
	return filepath.Join(c.Dist, "plotly-"+name+".js")
}

// PartialDistMin returns the minified output path of the named partial bundle.
func (c Constants) PartialDistMin(name string) string {
	return filepath.Join(c.Dist, "plotly-"+name+".min.js")
}
