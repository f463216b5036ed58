package testing

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// FixedTime is the clock used by tests that compare generated output.
var FixedTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// FixedClock returns FixedTime.
func FixedClock() time.Time { return FixedTime }

// TestContext returns a context with a reasonable timeout for tests.
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// WriteDocument writes content as ltm_config.yaml in a fresh temp dir and
// returns its path.
func WriteDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ltm_config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
