package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	// --- Arrange ---
	root := t.TempDir()
	for _, name := range []string{
		"b.hcl",
		"a/fields.hcl",
		"a/notes.txt",
		".git/config.hcl",
		"a/.hidden/skip.hcl",
	} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("# test"), 0o644))
	}

	// --- Act ---
	files, err := FindFilesByExtension(root, ".hcl")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a", "fields.hcl"),
		filepath.Join(root, "b.hcl"),
	}, files)
}

func TestFindFilesByExtension_Errors(t *testing.T) {
	_, err := FindFilesByExtension(t.TempDir(), "")
	require.Error(t, err)

	_, err = FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".hcl")
	require.Error(t, err)
}
