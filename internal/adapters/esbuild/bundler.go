// Package esbuild implements the bundler port on top of the esbuild Go API.
package esbuild

import (
	"context"
	"errors"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Bundler = (*Bundler)(nil)

// Bundler produces browser bundles with esbuild.
type Bundler struct{}

// NewBundler creates a new Bundler.
func NewBundler() *Bundler {
	return &Bundler{}
}

// Bundle bundles entry and its dependency closure into a single IIFE that
// assigns the entry's exports to the global opts.Standalone.
func (b *Bundler) Bundle(ctx context.Context, entry string, opts ports.BundleOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buildCtx, ctxErr := api.Context(buildOptions(entry, opts))
	if ctxErr != nil {
		return nil, messagesErr(ctxErr.Errors, entry)
	}
	defer buildCtx.Dispose()

	stop := context.AfterFunc(ctx, buildCtx.Cancel)
	defer stop()

	result := buildCtx.Rebuild()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(result.Errors) > 0 {
		return nil, messagesErr(result.Errors, entry)
	}
	if len(result.OutputFiles) == 0 {
		return nil, zerr.With(domain.ErrEmptyBundle, "entry", entry)
	}

	return result.OutputFiles[0].Contents, nil
}

func buildOptions(entry string, opts ports.BundleOptions) api.BuildOptions {
	options := api.BuildOptions{
		EntryPoints: []string{entry},
		Bundle:      true,
		Write:       false,
		Format:      api.FormatIIFE,
		GlobalName:  opts.Standalone,
		Platform:    api.PlatformBrowser,
		LogLevel:    api.LogLevelSilent,
	}
	if opts.Debug {
		options.Sourcemap = api.SourceMapInline
	}
	if len(opts.Transforms) > 0 {
		options.Plugins = []api.Plugin{transformPlugin(opts.Transforms)}
	}
	return options
}

// messagesErr turns esbuild messages into one error caused by the first message,
// carrying its location and the total count.
func messagesErr(msgs []api.Message, entry string) error {
	if len(msgs) == 0 {
		return zerr.With(domain.ErrBundleFailed, "entry", entry)
	}

	first := msgs[0]
	err := zerr.With(zerr.Wrap(errors.New(first.Text), domain.ErrBundleFailed.Error()), "entry", entry)
	if loc := first.Location; loc != nil {
		err = zerr.With(err, "file", loc.File)
		err = zerr.With(err, "line", loc.Line)
		err = zerr.With(err, "column", loc.Column)
	}
	if len(msgs) > 1 {
		err = zerr.With(err, "errors", len(msgs))
	}
	return err
}
