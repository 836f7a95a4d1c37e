// Package testutil provides shared test helpers used across packages.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mcpdeck/mcpdeck/internal/logger"
)

// DiscardLogger returns a slog.Logger that discards all output.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Quiet routes package-level log output to io.Discard for the duration of
// the test. Readers log warnings on every malformed fixture, which would
// otherwise drown test output.
func Quiet(t *testing.T) {
	t.Helper()
	prev := logger.Default()
	logger.SetOutput(DiscardLogger())
	t.Cleanup(func() { logger.SetOutput(prev) })
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fp := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(fp, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return fp
}
