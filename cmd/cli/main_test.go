package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/samudra/internal/cli"
	"github.com/vk/samudra/internal/testutil"
)

func TestRun_ConfigError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A syntax error in the config must stop startup with a clear message.
	invalidHCL := `
		namespace "meta" {
			subkeys = ["gol"]
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-c", filePath, "konsep"}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), strings.NewReader(""), out, &testutil.SafeBuffer{}, args)

	// --- Assert ---
	require.Error(t, runErr)
	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "startup failed"), "The error message should indicate that startup failed.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), out, &testutil.SafeBuffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(context.Background(), strings.NewReader(""), out, &testutil.SafeBuffer{}, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := testutil.WriteFiles(t, map[string]string{"samudra.hcl": testutil.ConfigHCL})
	stdin := strings.NewReader("Ini adalah konsep cubaan #tag_1 {lang.en:concept} {meta.gol:nama}\n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), stdin, out, &testutil.SafeBuffer{}, []string{"-c", root, "-lemma", "cubaan"})

	// --- Assert ---
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"lemma": "cubaan",
		"keterangan": "Ini adalah konsep cubaan",
		"golongan": "NAMA",
		"cakupan": ["tag 1"],
		"kata_asing": [{"nama": "concept", "bahasa": "en"}]
	}`, out.String())
}

func TestRun_MalformedInputFails(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(context.Background(), strings.NewReader(""), out, &testutil.SafeBuffer{}, []string{"Ini adalah # konsep"})

	require.Error(t, err)
	assert.Contains(t, out.String(), `"kind":"ambiguous_content"`)
}
