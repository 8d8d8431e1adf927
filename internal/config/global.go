// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.weft/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/wefthq/create-weft-app/internal/envutil"
	"github.com/wefthq/create-weft-app/internal/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.weft/config.yaml global configuration.
// It holds the cloud session token and descriptors of provisioned projects.
type GlobalConfig struct {
	Version    int                     `yaml:"version"`
	CloudToken string                  `yaml:"cloud_token,omitempty"`
	Projects   map[string]ProjectEntry `yaml:"projects,omitempty"`
}

// ProjectEntry stores the cloud project descriptor for one local install path.
// The map key is the resolved absolute path of the project directory.
type ProjectEntry struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Plan      string `yaml:"plan,omitempty"`
	Region    string `yaml:"region,omitempty"`
	CreatedAt string `yaml:"created_at,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:  1,
		Projects: map[string]ProjectEntry{},
	}
}

// GlobalConfigPath returns the path to the global config file.
// Respects the WEFT_CONFIG_PATH and WEFT_HOME environment variables.
func GlobalConfigPath() (string, error) {
	if override := envutil.GetHostEnv("CONFIG_PATH"); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := envutil.GetHostEnv("HOME"); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}

// normalizeGlobalConfig fills zero-valued fields so callers can mutate maps.
func normalizeGlobalConfig(cfg GlobalConfig) GlobalConfig {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Projects == nil {
		cfg.Projects = map[string]ProjectEntry{}
	}
	return cfg
}

// loadGlobalConfigOrDefault loads the global config, falling back to the
// default when the file is missing or unreadable.
func loadGlobalConfigOrDefault(path string) GlobalConfig {
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		return DefaultGlobalConfig()
	}
	return normalizeGlobalConfig(cfg)
}

// SaveCloudToken persists the cloud session token into the global config.
func SaveCloudToken(token string) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	cfg := loadGlobalConfigOrDefault(path)
	cfg.CloudToken = strings.TrimSpace(token)
	return SaveGlobalConfig(path, cfg)
}

// LoadCloudToken returns the stored cloud session token, if any.
func LoadCloudToken() (string, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return "", err
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(cfg.CloudToken), nil
}

// SaveProjectEntry persists a cloud project descriptor keyed by the resolved
// install path.
func SaveProjectEntry(installPath string, entry ProjectEntry) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	cfg := loadGlobalConfigOrDefault(path)
	cfg.Projects[installPath] = entry
	return SaveGlobalConfig(path, cfg)
}
