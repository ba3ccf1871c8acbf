package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mholt/archives"

	"github.com/webfraggle/mbdflasher/pkg/errors"
	"github.com/webfraggle/mbdflasher/pkg/fsutil"
)

// Export writes the bundle's downloaded artifacts into a tar.gz archive at
// archivePath, so a verified artifact set can be moved to an offline
// flashing machine. Fails when no artifact has been downloaded yet.
func (b *Bundle) Export(ctx context.Context, archivePath string) error {
	present := b.Files()
	if len(present) == 0 {
		return fmt.Errorf("no downloaded artifacts to export from %s", b.dir)
	}

	fileMap := make(map[string]string, len(present))
	for kind, path := range present {
		fileMap[path] = string(kind) + ".bin"
	}

	archiveFiles, err := archives.FilesFromDisk(ctx, nil, fileMap)
	if err != nil {
		return errors.Wrap(err, "failed to read artifacts from disk")
	}

	if err := os.MkdirAll(filepath.Dir(archivePath), fsutil.DirModeDefault); err != nil {
		return errors.Wrap(err, "failed to create archive directory")
	}
	file, err := os.Create(archivePath)
	if err != nil {
		return errors.Wrapf(err, "failed to create output file %s", archivePath)
	}
	defer func() {
		_ = file.Sync()
		_ = file.Close()
	}()

	format := archives.CompressedArchive{
		Compression: archives.Gz{},
		Archival:    archives.Tar{},
	}
	if err := format.Archive(ctx, file, archiveFiles); err != nil {
		return errors.Wrap(err, "failed to create archive")
	}
	return nil
}
