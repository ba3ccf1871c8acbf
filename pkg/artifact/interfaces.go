//go:generate mockgen -destination=mocks/fetcher.go -package=mocks . Fetcher

package artifact

import "context"

// Fetcher downloads a single named artifact to a deterministic local path,
// validating existing cached copies by checksum before re-downloading.
type Fetcher interface {
	// Fetch ensures a verified copy of srcURL exists at dest. With verify
	// set, a cached file matching expectedChecksum is reused without a
	// network call and a downloaded file failing verification is deleted.
	// With force set, any existing file is discarded first.
	Fetch(ctx context.Context, dest, srcURL, expectedChecksum string, verify, force bool) error
}
