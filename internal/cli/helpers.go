package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/webfraggle/mbdflasher/internal/logger"
	"github.com/webfraggle/mbdflasher/pkg/api"
	"github.com/webfraggle/mbdflasher/pkg/artifact"
	"github.com/webfraggle/mbdflasher/pkg/catalog"
	"github.com/webfraggle/mbdflasher/pkg/config"
	"github.com/webfraggle/mbdflasher/pkg/hook"
)

// These variables will be set by the main package.
var (
	ConfigPath *string
	Verbose    *bool
)

// loadConfig resolves the config file, loads it and initializes logging.
func loadConfig() (*config.Config, error) {
	path := ""
	if ConfigPath != nil {
		path = *ConfigPath
	}
	if path == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
		path = defaultPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	logger.InitLogger(cfg.Settings.LogLevel)

	return cfg, nil
}

func newAPIClient(cfg *config.Config) api.Client {
	return api.NewHTTPClient(cfg.Settings.BaseURL, cfg.Settings.HTTPTimeout, userAgent())
}

func userAgent() string {
	return "mbdflasher/" + Version
}

// loadCatalog runs a full load cycle against the remote service.
func loadCatalog(ctx context.Context, cfg *config.Config, esptoolOnly bool) (*catalog.Catalog, error) {
	loader := catalog.NewLoader(newAPIClient(cfg))
	cat, err := loader.Load(ctx, catalog.Options{EsptoolOnly: esptoolOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// resolveFirmware resolves project/family/firmware display names to a
// firmware record. An empty firmware name selects the newest version in
// the family.
func resolveFirmware(cat *catalog.Catalog, projectName, familyName, firmwareName string) (*catalog.Firmware, error) {
	projectID, ok := cat.ProjectID(projectName)
	if !ok {
		return nil, fmt.Errorf("unknown project %q", projectName)
	}
	familyID, ok := cat.FamilyID(projectID, familyName)
	if !ok {
		return nil, fmt.Errorf("unknown device family %q in project %q", familyName, projectName)
	}

	if firmwareName == "" {
		fw := cat.LatestFirmware(projectID, familyID)
		if fw == nil {
			return nil, fmt.Errorf("no firmware available for family %q", familyName)
		}
		return fw, nil
	}

	fw := cat.Firmware(projectID, familyID, firmwareName)
	if fw == nil {
		return nil, fmt.Errorf("unknown firmware %q in family %q", firmwareName, familyName)
	}
	return fw, nil
}

// artifactDir resolves the directory downloaded artifacts live in.
func artifactDir(cfg *config.Config) (string, error) {
	fallback, err := artifact.DefaultDir()
	if err != nil {
		return "", err
	}
	return cfg.ArtifactDir(fallback), nil
}

// newBundle wires a firmware record to the artifact cache.
func newBundle(cfg *config.Config, fw *catalog.Firmware) (*artifact.Bundle, error) {
	dir, err := artifactDir(cfg)
	if err != nil {
		return nil, err
	}
	fetcher := artifact.NewHTTPFetcher(cfg.Settings.HTTPTimeout, userAgent()).WithProgress(os.Stderr)
	return artifact.NewBundle(fw, dir, fetcher), nil
}

// loadHooks builds the hook manager from the configured hooks directory.
// Defaults to a "hooks" directory beside the config file.
func loadHooks(cfg *config.Config) (hook.Manager, error) {
	dir := cfg.Settings.HooksDir
	if dir == "" {
		configPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(filepath.Dir(configPath), "hooks")
	}

	manager := hook.NewManager()
	if err := hook.LoadFromDir(manager, dir); err != nil {
		return nil, err
	}
	return manager, nil
}

func hookContext(fw *catalog.Firmware, dir string) hook.Context {
	return hook.Context{
		FirmwareName:    fw.Name,
		FirmwareVersion: fw.Version,
		ArtifactDir:     dir,
		PostInstall:     fw.PostInstallInstr,
	}
}
