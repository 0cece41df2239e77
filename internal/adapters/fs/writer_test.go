package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/adapters/fs"
	"go.trai.ch/bundle/internal/core/domain"
)

func TestWriter_Write(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "dist", "plotly.js")
	writer := fs.NewWriter()

	require.NoError(t, writer.Write(path, []byte("var Plotly;")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "var Plotly;", string(got))

	// Overwrite replaces the content.
	require.NoError(t, writer.Write(path, []byte("v2")))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))

	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriter_Write_ParentIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "dist")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := fs.NewWriter().Write(filepath.Join(blocker, "plotly.js"), []byte("x"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArtifactWriteFailed.Error())
}

func TestWriter_Remove(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "plotly.min.js")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	writer := fs.NewWriter()

	removed, err := writer.Remove(path)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.NoFileExists(t, path)

	removed, err = writer.Remove(path)
	require.NoError(t, err)
	assert.False(t, removed)
}
