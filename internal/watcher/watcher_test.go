package watcher

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"favicongen/internal/ui"
)

func startWatcher(t *testing.T, path string) <-chan struct{} {
	t.Helper()

	changes := make(chan struct{}, 10)
	w, err := NewWatcher(path, 50*time.Millisecond, func() {
		changes <- struct{}{}
	}, ui.New(&bytes.Buffer{}, true))
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run returned error: %v", err)
		}
		w.Stop()
	})
	return changes
}

func TestWatcherFiresOnWrite(t *testing.T) {
	tmpDir := t.TempDir()
	logo := filepath.Join(tmpDir, "logo.png")
	if err := os.WriteFile(logo, []byte("v1"), 0644); err != nil {
		t.Fatalf("Failed to create logo: %v", err)
	}

	changes := startWatcher(t, logo)

	if err := os.WriteFile(logo, []byte("v2"), 0644); err != nil {
		t.Fatalf("Failed to rewrite logo: %v", err)
	}

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for change callback")
	}
}

func TestWatcherFiresOnCreate(t *testing.T) {
	tmpDir := t.TempDir()
	logo := filepath.Join(tmpDir, "logo.png")

	changes := startWatcher(t, logo)

	if err := os.WriteFile(logo, []byte("new"), 0644); err != nil {
		t.Fatalf("Failed to create logo: %v", err)
	}

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for change callback")
	}
}

func TestWatcherFiresOnRename(t *testing.T) {
	tmpDir := t.TempDir()
	logo := filepath.Join(tmpDir, "logo.png")
	if err := os.WriteFile(logo, []byte("v1"), 0644); err != nil {
		t.Fatalf("Failed to create logo: %v", err)
	}

	tmp := filepath.Join(tmpDir, ".logo.tmp")
	if err := os.WriteFile(tmp, []byte("v2"), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	changes := startWatcher(t, logo)

	// Atomic save: the new content is renamed over the logo.
	if err := os.Rename(tmp, logo); err != nil {
		t.Fatalf("Failed to rename onto logo: %v", err)
	}

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for change callback")
	}

	select {
	case <-changes:
		t.Error("A single rename should trigger a single callback")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	tmpDir := t.TempDir()
	logo := filepath.Join(tmpDir, "logo.png")

	changes := startWatcher(t, logo)

	if err := os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	select {
	case <-changes:
		t.Error("Unexpected change callback for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	tmpDir := t.TempDir()
	logo := filepath.Join(tmpDir, "logo.png")

	changes := startWatcher(t, logo)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(logo, []byte{byte(i)}, 0644); err != nil {
			t.Fatalf("Failed to write logo: %v", err)
		}
	}

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for change callback")
	}

	select {
	case <-changes:
		t.Error("Burst of writes should trigger a single callback")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "logo.png"), 0, func() {}, ui.New(&bytes.Buffer{}, true))
	if err == nil {
		t.Error("Expected error watching a missing directory")
	}
}
