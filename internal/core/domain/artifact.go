package domain

import "time"

// ArtifactInfo records what was written to an output path.
type ArtifactInfo struct {
	// Path is the output path relative to the project root, slash separated.
	Path      string    `json:"path,omitzero"`
	Hash      string    `json:"hash,omitzero"`
	Size      int64     `json:"size,omitzero"`
	Job       string    `json:"job,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// ArtifactState describes how an output on disk compares to its stored info.
type ArtifactState string

const (
	// ArtifactStateOK indicates the file matches the stored hash.
	ArtifactStateOK ArtifactState = "ok"
	// ArtifactStateModified indicates the file changed since it was written.
	ArtifactStateModified ArtifactState = "modified"
	// ArtifactStateMissing indicates the file does not exist.
	ArtifactStateMissing ArtifactState = "missing"
	// ArtifactStateUnknown indicates the file exists but was not written by a recorded build.
	ArtifactStateUnknown ArtifactState = "unknown"
)
