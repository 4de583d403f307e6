package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"favicongen/internal/ui"
)

// DownloadLogo fetches url into dest. The body goes to a temporary file next
// to dest first, so an interrupted download never leaves a truncated logo.
func DownloadLogo(ctx context.Context, client *http.Client, url, dest string, con *ui.Console) error {
	if client == nil {
		client = http.DefaultClient
	}

	con.Info(fmt.Sprintf("Downloading logo from %s...", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "building request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "downloading logo")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("bad status: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrap(err, "creating logo directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".logo-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrap(err, "writing logo")
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return errors.Wrap(err, "saving logo")
	}

	con.Success(fmt.Sprintf("Saved %s (%s)", filepath.Base(dest), humanize.Bytes(uint64(n))))
	return nil
}
