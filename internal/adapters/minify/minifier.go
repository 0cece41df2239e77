// Package minify implements the minifier port with tdewolff/minify.
package minify

import (
	"context"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/js"
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
)

const mediaType = "application/javascript"

var _ ports.Minifier = (*Minifier)(nil)

// Minifier compresses JavaScript bundles.
type Minifier struct{}

// NewMinifier creates a new Minifier.
func NewMinifier() *Minifier {
	return &Minifier{}
}

// Minify returns the minified form of src.
func (m *Minifier) Minify(ctx context.Context, src []byte, opts domain.MinifyOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mm := minify.New()
	mm.Add(mediaType, &js.Minifier{
		KeepVarNames: !opts.Mangle,
		Precision:    opts.Precision,
	})

	out, err := mm.Bytes(mediaType, src)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrMinifyFailed.Error())
	}

	if opts.ASCIIOnly {
		out = EscapeNonASCII(out)
	}
	return out, nil
}
