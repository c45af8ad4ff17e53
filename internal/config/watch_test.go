package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFileReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "leopard.yaml")
	if err := os.WriteFile(path, []byte("physics: {gravity: 0.8}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := WatchFile(path)
	if err != nil {
		t.Fatalf("WatchFile() failed: %v", err)
	}
	defer w.Close()

	// A sibling file must not be reported.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("physics: {gravity: 1.0}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "leopard.yaml" {
			t.Errorf("event for %q, expected leopard.yaml", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event within 5s")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first Close() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}

	select {
	case _, ok := <-w.Events:
		if ok {
			t.Error("Events should be closed after Close")
		}
	case <-time.After(time.Second):
		t.Error("Events not closed after Close")
	}
}

func TestIsYAMLFile(t *testing.T) {
	cases := map[string]bool{
		"a.yaml":  true,
		"a.YML":   true,
		"a.json":  false,
		"leopard": false,
	}
	for name, want := range cases {
		if got := isYAMLFile(name); got != want {
			t.Errorf("isYAMLFile(%q) = %v, expected %v", name, got, want)
		}
	}
}
