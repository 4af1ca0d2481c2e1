package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"sdkui/pkg/verbose"
)

// Load resolves the configuration for this invocation.
//
// Resolution order, lowest to highest precedence: built-in defaults, the
// optional ~/.sdkui.yml file, environment variables. A missing config file
// is not an error; an unreadable or malformed one is.
//
// Returns:
//   - *Config: the resolved configuration
//   - error: any error reading or parsing the config file
func Load() (*Config, error) {
	path := ""
	if home, err := os.UserHomeDir(); err == nil {
		path = filepath.Join(home, configFileName)
	}
	return loadFrom(path)
}

// loadFrom resolves configuration using the given config file path.
// An empty path skips the file layer entirely.
func loadFrom(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)

	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return cfg, nil
}

// defaults returns the built-in configuration. The candidates directory
// defaults to the standard sdkman location when a home directory exists.
func defaults() *Config {
	cfg := &Config{
		CandidatesAPI:  DefaultCandidatesAPI,
		Platform:       detectPlatform(),
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.CandidatesDir = filepath.Join(home, ".sdkman", "candidates")
	}
	return cfg
}

// applyFile overlays values from a YAML config file. A missing file is
// silently skipped; anything else is reported.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	verbose.Printf("loading config from %s", path)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays values from the environment. Empty variables are
// treated as unset.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvCandidatesAPI); v != "" {
		cfg.CandidatesAPI = v
	}
	if v := os.Getenv(EnvPlatform); v != "" {
		cfg.Platform = v
	}
	if v := os.Getenv(EnvCandidatesDir); v != "" {
		cfg.CandidatesDir = v
	}
}
