// Package config provides the loader for the constants table.
package config

import (
	_ "embed"
	"path/filepath"
	"regexp"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed constants.yaml
var embeddedConstants []byte

var partialNamePattern = regexp.MustCompile(`^[a-z0-9]+$`)

var _ ports.ConstantsLoader = (*Loader)(nil)

// Loader implements ports.ConstantsLoader over a YAML document.
type Loader struct {
	data []byte
}

// NewLoader creates a Loader for the embedded constants table.
func NewLoader() *Loader {
	return &Loader{data: embeddedConstants}
}

// NewLoaderFromBytes creates a Loader for the given YAML document.
func NewLoaderFromBytes(data []byte) *Loader {
	return &Loader{data: data}
}

// Load parses the constants table and joins every path to root.
func (l *Loader) Load(root string) (domain.Constants, error) {
	var file ConstantsFile
	if err := yaml.Unmarshal(l.data, &file); err != nil {
		return domain.Constants{}, zerr.Wrap(err, domain.ErrConstantsParseFailed.Error())
	}

	if err := validate(&file); err != nil {
		return domain.Constants{}, err
	}

	if root == "" {
		root = "."
	}
	join := func(p string) string {
		return filepath.Join(root, filepath.FromSlash(p))
	}

	c := domain.Constants{
		Root:               filepath.Clean(root),
		Src:                join(file.Dirs.Src),
		Lib:                join(file.Dirs.Lib),
		Build:              join(file.Dirs.Build),
		Dist:               join(file.Dirs.Dist),
		PlotlyIndex:        join(file.Plotly.Index),
		PlotlyDist:         join(file.Plotly.Dist),
		PlotlyDistMin:      join(file.Plotly.DistMin),
		PlotlyDistWithMeta: join(file.Plotly.DistWithMeta),
		GeoAssetsSrc:       join(file.GeoAssets.Src),
		GeoAssetsDist:      join(file.GeoAssets.Dist),
		CSSBuild:           join(file.Preprocess.CSS),
		FontSVGBuild:       join(file.Preprocess.FontSVG),
		Minify: domain.MinifyOptions{
			Mangle:    file.Minify.Mangle,
			ASCIIOnly: file.Minify.ASCIIOnly,
			Precision: file.Minify.Precision,
		},
	}

	return domain.NewConstants(c, file.PartialBundles), nil
}

func validate(file *ConstantsFile) error {
	required := []struct {
		key   string
		value string
	}{
		{"dirs.lib", file.Dirs.Lib},
		{"dirs.dist", file.Dirs.Dist},
		{"plotly.index", file.Plotly.Index},
		{"plotly.dist", file.Plotly.Dist},
		{"plotly.distMin", file.Plotly.DistMin},
		{"plotly.distWithMeta", file.Plotly.DistWithMeta},
		{"geoAssets.src", file.GeoAssets.Src},
		{"geoAssets.dist", file.GeoAssets.Dist},
		{"preprocess.css", file.Preprocess.CSS},
		{"preprocess.fontSVG", file.Preprocess.FontSVG},
	}
	for _, r := range required {
		if r.value == "" {
			return zerr.With(domain.ErrConstantsInvalid, "missing_key", r.key)
		}
	}

	seen := make(map[string]bool, len(file.PartialBundles))
	for _, name := range file.PartialBundles {
		if !partialNamePattern.MatchString(name) {
			return zerr.With(domain.ErrConstantsInvalid, "invalid_partial_name", name)
		}
		if seen[name] {
			return zerr.With(domain.ErrConstantsInvalid, "duplicate_partial_name", name)
		}
		seen[name] = true
	}

	if file.Minify.Precision < 0 {
		return zerr.With(domain.ErrConstantsInvalid, "precision", file.Minify.Precision)
	}

	return nil
}
