//go:build integration
// +build integration

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestBinary(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	binaryPath := filepath.Join(tmpDir, "mbdflasher")
	if runtime.GOOS == "windows" {
		binaryPath += ".exe"
	}

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cli/mbdflasher")
	cmd.Dir = filepath.Clean(filepath.Join("..", ".."))

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build test binary: %s", string(output))

	return binaryPath
}

// newCatalogServer serves a minimal but complete catalog.
func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/project_list/all/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"id": 1, "name": "Displays", "weight": 0, "show_in_standalone_flasher": true}]`)
	})
	mux.HandleFunc("/api/firmware_family_list/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"id": 7, "name": "ESP32", "flash_method": "esptool", "project_id": 1}]`)
	})
	mux.HandleFunc("/api/firmware_list/all/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"id": 42, "name": "Display FW", "version": "1.2.0", "family_id": 7, "project_id": 1}]`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func writeTestConfig(t *testing.T, baseURL string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("settings:\n  base_url: %s\n  log_level: error\n", baseURL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	binary := buildTestBinary(t)

	out, err := exec.Command(binary, "version").CombinedOutput()
	require.NoError(t, err, "version command failed: %s", string(out))
	assert.Contains(t, string(out), "mbdflasher version")
}

func TestProjectsCommand(t *testing.T) {
	binary := buildTestBinary(t)
	server := newCatalogServer(t)
	configPath := writeTestConfig(t, server.URL)

	out, err := exec.Command(binary, "--config", configPath, "projects").CombinedOutput()
	require.NoError(t, err, "projects command failed: %s", string(out))
	assert.Contains(t, string(out), "Displays")
}

func TestFirmwareCommand(t *testing.T) {
	binary := buildTestBinary(t)
	server := newCatalogServer(t)
	configPath := writeTestConfig(t, server.URL)

	out, err := exec.Command(binary,
		"--config", configPath,
		"firmware", "--project", "Displays", "--family", "ESP32").CombinedOutput()
	require.NoError(t, err, "firmware command failed: %s", string(out))
	assert.Contains(t, string(out), "Display FW - 1.2.0")
}

func TestUnknownProjectFails(t *testing.T) {
	binary := buildTestBinary(t)
	server := newCatalogServer(t)
	configPath := writeTestConfig(t, server.URL)

	out, err := exec.Command(binary,
		"--config", configPath,
		"families", "--project", "Nope").CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(string(out)), "unknown project")
}

func TestConfigInitAndShow(t *testing.T) {
	binary := buildTestBinary(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := exec.Command(binary, "--config", configPath, "config", "init").CombinedOutput()
	require.NoError(t, err, "config init failed: %s", string(out))

	out, err = exec.Command(binary, "--config", configPath, "config", "get", "base_url").CombinedOutput()
	require.NoError(t, err, "config get failed: %s", string(out))
	assert.Contains(t, string(out), "modellbahn-displays.de")
}
