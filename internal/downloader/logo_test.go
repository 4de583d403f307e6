package downloader

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"favicongen/internal/ui"
)

func TestDownloadLogo(t *testing.T) {
	payload := []byte("\x89PNG fake logo bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "logo.png")
	var out bytes.Buffer

	if err := DownloadLogo(context.Background(), srv.Client(), srv.URL, dest, ui.New(&out, true)); err != nil {
		t.Fatalf("DownloadLogo failed: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read logo: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Downloaded %q, want %q", got, payload)
	}
	if !bytes.Contains(out.Bytes(), []byte("[SUCCESS] Saved logo.png")) {
		t.Errorf("Missing success line: %q", out.String())
	}
}

func TestDownloadLogoBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	dest := filepath.Join(dir, "logo.png")

	err := DownloadLogo(context.Background(), srv.Client(), srv.URL, dest, ui.New(&bytes.Buffer{}, true))
	if err == nil {
		t.Fatal("Expected error for 404")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Failed download left %d files behind", len(entries))
	}
}

func TestDownloadLogoCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("logo"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dest := filepath.Join(t.TempDir(), "logo.png")
	if err := DownloadLogo(ctx, srv.Client(), srv.URL, dest, ui.New(&bytes.Buffer{}, true)); err == nil {
		t.Error("Expected error for cancelled context")
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("Cancelled download should not create the logo")
	}
}
