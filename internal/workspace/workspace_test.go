package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureAtCreatesLayout(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ws")

	got, err := EnsureAt(base)
	if err != nil {
		t.Fatalf("EnsureAt failed: %v", err)
	}
	if got != base {
		t.Fatalf("expected base %q, got %q", base, got)
	}

	info, err := os.Stat(DataDir(base))
	if err != nil {
		t.Fatalf("stat data dir: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("expected data dir to be a directory")
	}
}

func TestEnsureAtIsIdempotent(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ws")
	if _, err := EnsureAt(base); err != nil {
		t.Fatalf("first EnsureAt: %v", err)
	}
	if _, err := EnsureAt(base); err != nil {
		t.Fatalf("second EnsureAt: %v", err)
	}
}

func TestWorkspacePaths(t *testing.T) {
	base := "/tmp/ws"
	if got := ConfigPath(base); got != filepath.Join(base, "config.yaml") {
		t.Fatalf("unexpected config path: %q", got)
	}
	if got := HistoryPath(base); got != filepath.Join(base, "history.db") {
		t.Fatalf("unexpected history path: %q", got)
	}
	if got := DataDir(base); got != filepath.Join(base, "data") {
		t.Fatalf("unexpected data dir: %q", got)
	}
}
