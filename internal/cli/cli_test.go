package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/samudra/internal/app"
	"github.com/vk/samudra/internal/testutil"
)

func TestParse(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"samudra.hcl": testutil.ConfigHCL})

	testCases := []struct {
		name         string
		args         []string
		expected     *app.Config
		expectedText []string
	}{
		{
			name:     "defaults",
			args:     nil,
			expected: &app.Config{WorkerCount: 10, LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "all flags",
			args: []string{"-config", root, "-lemma", " cubaan ", "-strict", "-log-format", "JSON", "-log-level", "debug", "-workers", "2", "Ini", "konsep"},
			expected: &app.Config{
				ConfigPath:  root,
				Lemma:       "cubaan",
				Strict:      true,
				WorkerCount: 2,
				LogFormat:   "json",
				LogLevel:    "debug",
			},
			expectedText: []string{"Ini", "konsep"},
		},
		{
			name:     "shorthand config and serve port",
			args:     []string{"-c", filepath.Join(root, "samudra.hcl"), "-serve-port", "8080"},
			expected: &app.Config{ConfigPath: filepath.Join(root, "samudra.hcl"), ServePort: 8080, WorkerCount: 10, LogFormat: "text", LogLevel: "info"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, text, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, tc.expected, cfg)
			if tc.expectedText == nil {
				assert.Empty(t, text)
			} else {
				assert.Equal(t, tc.expectedText, text)
			}
		})
	}
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, _, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		errContains string
	}{
		{name: "unknown flag", args: []string{"-nope"}, errContains: "flag provided but not defined"},
		{name: "missing config path", args: []string{"-c", filepath.Join(t.TempDir(), "missing.hcl")}, errContains: "invalid config path"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, errContains: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "trace"}, errContains: "invalid log-level"},
		{name: "text with serve port", args: []string{"-serve-port", "8080", "konsep"}, errContains: "cannot be combined"},
		{name: "port out of range", args: []string{"-serve-port", "70000"}, errContains: "out of range"},
		{name: "negative workers", args: []string{"-workers", "-1"}, errContains: "cannot be negative"},
		{name: "blank lemma", args: []string{"-lemma", "  "}, errContains: "lemma cannot be blank"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			assert.False(t, shouldExit)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %v", err)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.errContains)
		})
	}
}
