// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/bundle/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder that reports through a ProgressWriter.
func New() *Recorder {
	return NewRecorder(NewProgressWriter())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex for the named job.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// SetOutput streams job progress to w when the writer supports it. A nil w silences it.
func (r *Recorder) SetOutput(w io.Writer) {
	if o, ok := r.w.(interface{ SetOutput(w io.Writer) }); ok {
		o.SetOutput(w)
	}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	// If the writer implements Close, call it.
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
