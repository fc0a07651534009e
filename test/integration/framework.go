// Package integration provides test utilities for integration testing.
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/keremk/renku/internal/app"
)

// TestHarness provides utilities for integration testing.
type TestHarness struct {
	T       *testing.T
	TempDir string
	Output  *bytes.Buffer

	renku *app.Renku
}

// NewHarness creates a new test harness.
func NewHarness(t *testing.T) *TestHarness {
	t.Helper()

	output := &bytes.Buffer{}

	return &TestHarness{
		T:       t,
		TempDir: t.TempDir(),
		Output:  output,
		renku:   app.New(output),
	}
}

// Renku returns the application instance.
func (h *TestHarness) Renku() *app.Renku {
	return h.renku
}

// WriteBlueprint writes a blueprint document into the temp directory and
// returns its path. Sibling imports resolve against the same directory.
func (h *TestHarness) WriteBlueprint(name, content string) string {
	h.T.Helper()

	path := filepath.Join(h.TempDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		h.T.Fatalf("failed to write blueprint %s: %v", name, err)
	}
	return path
}
