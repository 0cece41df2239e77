package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/adapters/fs"
	"go.trai.ch/bundle/internal/core/domain"
)

func TestHasher_HashBytes(t *testing.T) {
	hasher := fs.NewHasher()

	h := hasher.HashBytes([]byte("var Plotly;"))
	assert.Len(t, h, 16)
	assert.Equal(t, h, hasher.HashBytes([]byte("var Plotly;")))
	assert.NotEqual(t, h, hasher.HashBytes([]byte("var Plotly ;")))
}

func TestHasher_ComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "plotly.js")
	content := []byte("var Plotly = {};")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	hasher := fs.NewHasher()
	got, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)

	assert.Equal(t, hasher.HashBytes(content), got)
	assert.Equal(t, xxhash.Sum64(content), mustParseHex(t, got))
}

func TestHasher_ComputeFileHash_Missing(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "absent.js"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileOpenFailed.Error())
}

func mustParseHex(t *testing.T, s string) uint64 {
	t.Helper()
	var v uint64
	for _, c := range s {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint64(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint64(c-'a') + 10
		default:
			t.Fatalf("invalid hex digit %q", c)
		}
	}
	return v
}
