package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webfraggle/mbdflasher/pkg/errors"
)

func TestExecuteNoHookRegistered(t *testing.T) {
	m := NewManager()
	assert.NoError(t, m.Execute(PreDownload, Context{}))
}

func TestAddAndExecuteHook(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddHook(Hook{
		Type:    PostDownload,
		Content: `ok := firmwareName + " " + firmwareVersion`,
	}))

	assert.True(t, m.HasHook(PostDownload))
	assert.False(t, m.HasHook(PreFlash))

	err := m.Execute(PostDownload, Context{FirmwareName: "FW1", FirmwareVersion: "1.0"})
	assert.NoError(t, err)
}

func TestHookScriptError(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddHook(Hook{
		Type:    PreFlash,
		Content: `err := "device not ready"`,
	}))

	err := m.Execute(PreFlash, Context{FirmwareName: "FW1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrHookScript)
	assert.Contains(t, err.Error(), "device not ready")
}

func TestHookCompileError(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddHook(Hook{
		Type:    PreDownload,
		Content: `this is not tengo ===`,
	}))

	err := m.Execute(PreDownload, Context{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrHookExecution)
}

func TestAddHookEmptyType(t *testing.T) {
	m := NewManager()
	assert.ErrorIs(t, m.AddHook(Hook{Content: "x := 1"}), ErrHookTypeEmpty)
}

func TestRemoveHook(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddHook(Hook{Type: PreDownload, Content: `x := 1`}))
	require.NoError(t, m.RemoveHook(PreDownload))
	assert.False(t, m.HasHook(PreDownload))

	assert.ErrorIs(t, m.RemoveHook(""), ErrHookTypeEmpty)
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pre-flash.tengo"), []byte(`x := 1`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post-download.tengo"), []byte(`y := 2`), 0o644))
	// Unknown events and foreign files are skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "on-boot.tengo"), []byte(`z := 3`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte(`docs`), 0o644))

	m := NewManager()
	require.NoError(t, LoadFromDir(m, dir))

	assert.True(t, m.HasHook(PreFlash))
	assert.True(t, m.HasHook(PostDownload))
	assert.False(t, m.HasHook(PreDownload))
	assert.False(t, m.HasHook(Type("on-boot")))
}

func TestLoadFromMissingDir(t *testing.T) {
	m := NewManager()
	assert.NoError(t, LoadFromDir(m, filepath.Join(t.TempDir(), "absent")))
}
