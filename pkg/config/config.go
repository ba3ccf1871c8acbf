// Package config provides configuration management for mbdflasher. It
// handles loading, validating and saving application settings from YAML
// configuration files, providing sensible defaults for every setting.
package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/webfraggle/mbdflasher/pkg/errors"
	"github.com/webfraggle/mbdflasher/pkg/fsutil"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// BaseURL is the root of the remote firmware catalog service.
	BaseURL string `yaml:"base_url"`

	// ArtifactDir is where downloaded .bin artifacts are stored. Empty
	// means beside the running executable, where the flashing tool
	// expects them.
	ArtifactDir string `yaml:"artifact_dir,omitempty"`

	// HooksDir holds optional Tengo hook scripts.
	HooksDir string `yaml:"hooks_dir,omitempty"`

	// Network settings.
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// EsptoolOnly restricts the catalog to families flashable with the
	// default supported method.
	EsptoolOnly bool `yaml:"esptool_only"`

	// Flasher identity reported to the flash verify endpoint.
	Flasher        string `yaml:"flasher"`
	FlasherVersion string `yaml:"flasher_version"`

	// LogLevel is one of error, warn, info, debug.
	LogLevel string `yaml:"log_level"`
}

// Default configuration values.
const (
	// DefaultBaseURL is the production catalog service.
	DefaultBaseURL = "https://www.modellbahn-displays.de/firmware"

	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultFlasher is the identity reported to the verify endpoint.
	DefaultFlasher = "mbdflasher"

	// YAMLIndent is the number of spaces used for YAML indentation.
	YAMLIndent = 2
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			BaseURL:        DefaultBaseURL,
			HTTPTimeout:    DefaultHTTPTimeout,
			EsptoolOnly:    true,
			Flasher:        DefaultFlasher,
			FlasherVersion: "1.0",
			LogLevel:       "info",
		},
	}
}

// GetDefaultConfigPath returns the default config file location.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "cannot determine user config directory")
	}
	return filepath.Join(configDir, "mbdflasher", "config.yaml"), nil
}

// LoadConfig loads configuration from a file. A missing file yields the
// default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}
	return &config, nil
}

// SaveConfig saves configuration to a file, creating parent directories.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(absPath), fsutil.DirModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	_ = encoder.Close()
	_ = file.Close()

	// Atomically replace the config file.
	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(err, "failed to replace config file")
	}
	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	return data, nil
}

// ArtifactDir resolves the artifact directory, falling back to fallback
// when none is configured.
func (c *Config) ArtifactDir(fallback string) string {
	if c.Settings.ArtifactDir != "" {
		return c.Settings.ArtifactDir
	}
	return fallback
}

// applyDefaults fills unset fields with defaults so a sparse config file
// remains valid.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Settings.BaseURL == "" {
		c.Settings.BaseURL = defaults.Settings.BaseURL
	}
	if c.Settings.HTTPTimeout <= 0 {
		c.Settings.HTTPTimeout = defaults.Settings.HTTPTimeout
	}
	if c.Settings.Flasher == "" {
		c.Settings.Flasher = defaults.Settings.Flasher
	}
	if c.Settings.FlasherVersion == "" {
		c.Settings.FlasherVersion = defaults.Settings.FlasherVersion
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if c.Settings.BaseURL == "" {
		return errors.Wrap(errors.ErrConfigValidation, "base_url cannot be empty")
	}
	if c.Settings.HTTPTimeout <= 0 {
		return errors.Wrap(errors.ErrConfigValidation, "http_timeout must be positive")
	}
	switch c.Settings.LogLevel {
	case "error", "warn", "warning", "info", "debug":
	default:
		return errors.Wrapf(errors.ErrConfigValidation, "unknown log level %q", c.Settings.LogLevel)
	}
	return nil
}
