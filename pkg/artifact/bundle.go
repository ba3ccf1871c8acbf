package artifact

import (
	"context"
	"os"
	"path/filepath"

	"github.com/webfraggle/mbdflasher/internal/logger"
	"github.com/webfraggle/mbdflasher/pkg/catalog"
	"github.com/webfraggle/mbdflasher/pkg/errors"
)

// DownloadOptions control a bundle download.
type DownloadOptions struct {
	// VerifyChecksum enables cache reuse and post-download verification.
	VerifyChecksum bool

	// ForceRedownload discards cached artifacts before fetching.
	ForceRedownload bool
}

// DefaultDownloadOptions verifies checksums and reuses the cache.
func DefaultDownloadOptions() DownloadOptions {
	return DownloadOptions{VerifyChecksum: true}
}

// Bundle binds a firmware record to its local artifact directory and
// orchestrates fetching all of its constituent artifacts.
type Bundle struct {
	fw      *catalog.Firmware
	dir     string
	fetcher Fetcher
}

// NewBundle creates a bundle for fw whose artifacts live in dir.
func NewBundle(fw *catalog.Firmware, dir string, fetcher Fetcher) *Bundle {
	return &Bundle{fw: fw, dir: dir, fetcher: fetcher}
}

// DefaultDir returns the artifact directory used when none is configured:
// the directory of the running executable, matching where the flashing
// collaborator expects the .bin files.
func DefaultDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "cannot resolve executable location")
	}
	return filepath.Dir(exe), nil
}

// Path returns the deterministic local path for one artifact kind.
func (b *Bundle) Path(kind Kind) string {
	return filepath.Join(b.dir, string(kind)+".bin")
}

// Download fetches every artifact of the bundle in dependency order,
// short-circuiting on the first failure. Dependent artifacts (partition
// table, filesystem image, bootloader, OTA data) come first so a missing
// prerequisite is detected before bandwidth is spent on the main image.
func (b *Bundle) Download(ctx context.Context, opts DownloadOptions) error {
	if len(b.fw.PartitionsURL) > minValidURLLength {
		logger.Info("Downloading partitions file...")
		if err := b.fetch(ctx, KindPartitions, b.fw.PartitionsURL, b.fw.PartitionsChecksum, opts); err != nil {
			return errors.Wrap(err, "partitions artifact")
		}
	}

	if len(b.fw.SpiffsURL) > minValidURLLength && len(b.fw.SpiffsAddress) > minValidAddressLength {
		logger.Info("Downloading SPIFFS/LittleFS file...")
		if err := b.fetch(ctx, KindSpiffs, b.fw.SpiffsURL, b.fw.SpiffsChecksum, opts); err != nil {
			return errors.Wrap(err, "spiffs artifact")
		}
	}

	// Bootloader and OTA data are sourced from the owning device family,
	// not the firmware record itself.
	if family := b.fw.Family; family != nil {
		if len(family.BootloaderURL) > minValidURLLength {
			logger.Info("Downloading bootloader file...")
			if err := b.fetch(ctx, KindBootloader, family.BootloaderURL, family.BootloaderChecksum, opts); err != nil {
				return errors.Wrap(err, "bootloader artifact")
			}
		}

		if len(family.OtadataURL) > minValidURLLength && len(family.OtadataAddress) > minValidAddressLength {
			logger.Info("Downloading otadata file...")
			if err := b.fetch(ctx, KindOtadata, family.OtadataURL, family.OtadataChecksum, opts); err != nil {
				return errors.Wrap(err, "otadata artifact")
			}
		}
	}

	// The main image is always attempted.
	logger.Info("Downloading main firmware file...")
	if err := b.fetch(ctx, KindFirmware, b.fw.DownloadURL, b.fw.Checksum, opts); err != nil {
		return errors.Wrap(err, "main firmware artifact")
	}
	return nil
}

func (b *Bundle) fetch(ctx context.Context, kind Kind, srcURL, sum string, opts DownloadOptions) error {
	return b.fetcher.Fetch(ctx, b.Path(kind), srcURL, sum, opts.VerifyChecksum, opts.ForceRedownload)
}

// Remove deletes every possible artifact file of the bundle, ignoring files
// that do not exist. Idempotent.
func (b *Bundle) Remove() error {
	return Clean(b.dir)
}

// Clean deletes every artifact file under dir, ignoring files that do not
// exist. Artifact paths are deterministic per kind, so no bundle is needed.
func Clean(dir string) error {
	var firstErr error
	for _, kind := range Kinds {
		path := filepath.Join(dir, string(kind)+".bin")
		err := os.Remove(path)
		if err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = errors.Wrapf(err, "failed to remove %s", path)
		}
	}
	return firstErr
}

// Files returns the paths of bundle artifacts currently present on disk,
// keyed by kind.
func (b *Bundle) Files() map[Kind]string {
	present := make(map[Kind]string)
	for _, kind := range Kinds {
		path := b.Path(kind)
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			present[kind] = path
		}
	}
	return present
}
