package esbuild

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
)

const pluginName = "source-transforms"

// transformPlugin applies transforms, in order, to every local JavaScript module.
// Modules under node_modules are left to esbuild's default loader.
func transformPlugin(transforms []ports.Transform) api.Plugin {
	return api.Plugin{
		Name: pluginName,
		Setup: func(build api.PluginBuild) {
			build.OnLoad(api.OnLoadOptions{Filter: `\.js$`, Namespace: "file"},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					if isVendored(args.Path) {
						return api.OnLoadResult{}, nil
					}

					src, err := os.ReadFile(args.Path)
					if err != nil {
						return api.OnLoadResult{}, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", args.Path)
					}

					src, err = applyTransforms(transforms, args.Path, src)
					if err != nil {
						return api.OnLoadResult{}, err
					}

					contents := string(src)
					return api.OnLoadResult{
						Contents:   &contents,
						Loader:     api.LoaderJS,
						ResolveDir: filepath.Dir(args.Path),
					}, nil
				})
		},
	}
}

func applyTransforms(transforms []ports.Transform, path string, src []byte) ([]byte, error) {
	for _, t := range transforms {
		out, err := t.Apply(path, src)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrTransformFailed.Error()), "transform", t.Name())
			return nil, zerr.With(err, "path", path)
		}
		src = out
	}
	return src, nil
}

func isVendored(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "node_modules" {
			return true
		}
	}
	return false
}
