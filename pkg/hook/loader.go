package hook

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/webfraggle/mbdflasher/pkg/errors"
)

// scriptExtension is the only supported hook file extension.
const scriptExtension = ".tengo"

// LoadFromDir registers every hook script found in dir. Scripts are named
// after their event: <dir>/pre-download.tengo, <dir>/post-download.tengo,
// <dir>/pre-flash.tengo. A missing directory is not an error; hooks are
// optional.
func LoadFromDir(manager Manager, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read hooks directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != scriptExtension {
			continue
		}

		hookType := Type(strings.TrimSuffix(entry.Name(), scriptExtension))
		switch hookType {
		case PreDownload, PostDownload, PreFlash:
			// Valid event
		default:
			continue // Skip unknown events
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return errors.Wrapf(errors.ErrHookLoad, "%s: %v", entry.Name(), err)
		}

		if err := manager.AddHook(Hook{Type: hookType, Content: string(content)}); err != nil {
			return errors.Wrapf(err, "error adding hook %s", entry.Name())
		}
	}
	return nil
}
