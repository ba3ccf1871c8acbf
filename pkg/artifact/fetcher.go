// Package artifact implements the content-verified artifact cache: single
// artifact fetching, whole-bundle download orchestration, pre-flash remote
// verification and bundle export.
package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/webfraggle/mbdflasher/internal/logger"
	"github.com/webfraggle/mbdflasher/pkg/checksum"
	"github.com/webfraggle/mbdflasher/pkg/errors"
	"github.com/webfraggle/mbdflasher/pkg/fsutil"
)

// HTTPFetcher downloads artifacts over HTTP. It is intentionally minimal:
// one request per fetch, no retries. A failed download is a single reported
// failure and the caller decides whether to try again.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string

	// progress receives a byte progress bar during downloads; nil disables
	// progress output.
	progress io.Writer
}

// NewHTTPFetcher creates a fetcher with the given timeout and user agent.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if userAgent == "" {
		userAgent = "mbdflasher/1.0"
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// WithProgress enables a progress bar written to w during downloads.
func (f *HTTPFetcher) WithProgress(w io.Writer) *HTTPFetcher {
	f.progress = w
	return f
}

// Fetch implements the Fetcher contract.
func (f *HTTPFetcher) Fetch(ctx context.Context, dest, srcURL, expectedChecksum string, verify, force bool) error {
	if _, err := os.Stat(dest); err == nil {
		switch {
		case force:
			if err := os.Remove(dest); err != nil {
				return errors.Wrapf(err, "failed to remove %s", dest)
			}
		case verify:
			ok, err := checksum.Matches(dest, expectedChecksum)
			if err == nil && ok {
				// Cached copy is valid, nothing to download.
				logger.Debug("Using cached artifact", logger.Fields{"path": dest})
				return nil
			}
			// Stale or unreadable cache entry, discard it.
			if err := os.Remove(dest); err != nil {
				return errors.Wrapf(err, "failed to remove stale %s", dest)
			}
		}
	}

	if len(srcURL) <= minValidURLLength {
		return errors.Wrapf(errors.ErrMissingURL, "%q", srcURL)
	}

	if err := f.download(ctx, dest, srcURL); err != nil {
		return err
	}

	if verify {
		ok, err := checksum.Matches(dest, expectedChecksum)
		if err != nil {
			return err
		}
		if !ok {
			_ = os.Remove(dest)
			return errors.Wrapf(errors.ErrChecksumMismatch, "downloaded %s", dest)
		}
	}
	return nil
}

// download streams srcURL to a temp file beside dest and moves it into
// place, so a failed transfer never leaves partial content at dest.
func (f *HTTPFetcher) download(ctx context.Context, dest, srcURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, http.NoBody)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrDownloadFailed, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, errors.ErrDownloadFailed)
	}

	if err := os.MkdirAll(filepath.Dir(dest), fsutil.DirModeDefault); err != nil {
		return errors.Wrap(err, "could not create artifact dir")
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), "dl-*.tmp")
	if err != nil {
		return errors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(f.destWriter(tmp, dest, resp.ContentLength), resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(errors.ErrDownloadFailed, err.Error())
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "could not sync file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "could not close file")
	}

	if err := fsutil.Move(tmpPath, dest); err != nil {
		return errors.Wrap(err, "could not finalize file")
	}
	if err := os.Chmod(dest, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(err, "could not set permissions")
	}
	return nil
}

// destWriter wraps the temp file with a progress bar when enabled.
func (f *HTTPFetcher) destWriter(tmp *os.File, dest string, contentLength int64) io.Writer {
	if f.progress == nil {
		return tmp
	}
	bar := progressbar.NewOptions64(
		contentLength,
		progressbar.OptionSetWriter(f.progress),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetDescription(filepath.Base(dest)),
		progressbar.OptionThrottle(200*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(f.progress)
		}),
	)
	return io.MultiWriter(tmp, bar)
}
