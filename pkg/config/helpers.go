package config

import (
	"fmt"
	"strconv"
	"time"
)

// SetValue sets a configuration value by key.
// Supported keys:
//   - base_url: string - Root URL of the firmware catalog service
//   - artifact_dir: string - Directory for downloaded artifacts
//   - hooks_dir: string - Directory holding hook scripts
//   - http_timeout: duration - HTTP request timeout (e.g. 30s)
//   - esptool_only: bool - Restrict the catalog to esptool families
//   - flasher: string - Flasher identity for the verify endpoint
//   - flasher_version: string - Flasher version for the verify endpoint
//   - log_level: string - Logging level (debug, info, warn, error)
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "base_url":
		c.Settings.BaseURL = value
	case "artifact_dir":
		c.Settings.ArtifactDir = value
	case "hooks_dir":
		c.Settings.HooksDir = value
	case "http_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %s", key, value)
		}
		c.Settings.HTTPTimeout = d
	case "esptool_only":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", key, value)
		}
		c.Settings.EsptoolOnly = boolVal
	case "flasher":
		c.Settings.Flasher = value
	case "flasher_version":
		c.Settings.FlasherVersion = value
	case "log_level":
		c.Settings.LogLevel = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// GetValue returns a configuration value by key as a string.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case "base_url":
		return c.Settings.BaseURL, nil
	case "artifact_dir":
		return c.Settings.ArtifactDir, nil
	case "hooks_dir":
		return c.Settings.HooksDir, nil
	case "http_timeout":
		return c.Settings.HTTPTimeout.String(), nil
	case "esptool_only":
		return strconv.FormatBool(c.Settings.EsptoolOnly), nil
	case "flasher":
		return c.Settings.Flasher, nil
	case "flasher_version":
		return c.Settings.FlasherVersion, nil
	case "log_level":
		return c.Settings.LogLevel, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// ToMap converts the settings to a map keyed by their YAML names.
// This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	return map[string]string{
		"base_url":        c.Settings.BaseURL,
		"artifact_dir":    c.Settings.ArtifactDir,
		"hooks_dir":       c.Settings.HooksDir,
		"http_timeout":    c.Settings.HTTPTimeout.String(),
		"esptool_only":    strconv.FormatBool(c.Settings.EsptoolOnly),
		"flasher":         c.Settings.Flasher,
		"flasher_version": c.Settings.FlasherVersion,
		"log_level":       c.Settings.LogLevel,
	}
}
