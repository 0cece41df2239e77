package progrock

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/bundle/internal/ui/style"
)

var _ progrock.Writer = (*ProgressWriter)(nil)

// ProgressWriter is a progrock.Writer that prints vertex logs and outcomes as plain lines.
// Nothing is printed until an output is set.
type ProgressWriter struct {
	mu       sync.Mutex
	out      io.Writer
	names    map[string]string
	finished map[string]bool
}

// NewProgressWriter creates a ProgressWriter with no output.
func NewProgressWriter() *ProgressWriter {
	return &ProgressWriter{
		names:    make(map[string]string),
		finished: make(map[string]bool),
	}
}

// SetOutput sets where progress lines are written. A nil w silences the writer.
func (p *ProgressWriter) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out = w
}

// WriteStatus prints every log line prefixed with its vertex name,
// then one line per vertex that completed in this update.
func (p *ProgressWriter) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range update.Vertexes {
		p.names[v.Id] = v.Name
	}

	if p.out == nil {
		return nil
	}

	for _, l := range update.Logs {
		name := p.names[l.Vertex]
		for _, line := range strings.Split(strings.TrimRight(string(l.Data), "\n"), "\n") {
			if line == "" {
				continue
			}
			if _, err := fmt.Fprintf(p.out, "%s %s\n", name, line); err != nil {
				return err
			}
		}
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil || p.finished[v.Id] {
			continue
		}
		p.finished[v.Id] = true

		var err error
		if v.Error != nil {
			_, err = fmt.Fprintf(p.out, "%s %s: %s\n", style.Cross, v.Name, *v.Error)
		} else {
			_, err = fmt.Fprintf(p.out, "%s %s\n", style.Check, v.Name)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Close implements progrock.Writer.
func (p *ProgressWriter) Close() error {
	return nil
}
