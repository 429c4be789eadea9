// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteFiles creates a temporary root directory and writes every file into
// it. Names are relative paths such as "config/fields.hcl"; intermediate
// directories are created as needed. It returns the root.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return root
}

// LogOnFailure dumps buf into the test log when the test fails or when
// SAMUDRA_TEST_LOGS is "true".
func LogOnFailure(t *testing.T, buf *SafeBuffer) {
	t.Helper()
	t.Cleanup(func() {
		if t.Failed() || os.Getenv("SAMUDRA_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
		}
	})
}
