package ports

import (
	"context"
	"io"

	"go.trai.ch/bundle/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of bundle jobs.
type Telemetry interface {
	// Record starts recording a new vertex for the named unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// SetOutput streams job progress to w. A nil w silences it.
	SetOutput(w io.Writer)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the vertex's output stream.
	Stdout() io.Writer
	// Stderr returns a writer for the vertex's error stream.
	Stderr() io.Writer
	// Log records a message at the given level.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
}
