package config

import (
	"sdkui/pkg/errors"
)

// ValidateRemote checks that everything needed to reach the remote
// catalog is present.
//
// Returns:
//   - error: a ConfigError naming the missing value, nil when complete
func (c *Config) ValidateRemote() error {
	if c.CandidatesAPI == "" {
		return &errors.ConfigError{
			Key:  EnvCandidatesAPI,
			Hint: "set candidates_api in ~/.sdkui.yml or export " + EnvCandidatesAPI,
		}
	}
	if c.Platform == "" {
		return &errors.ConfigError{
			Key:  EnvPlatform,
			Hint: "set platform in ~/.sdkui.yml or export " + EnvPlatform,
		}
	}
	return nil
}

// ValidateLocal checks that the local installation root is configured.
//
// Returns:
//   - error: a ConfigError naming the missing value, nil when complete
func (c *Config) ValidateLocal() error {
	if c.CandidatesDir == "" {
		return &errors.ConfigError{
			Key:  EnvCandidatesDir,
			Hint: "set candidates_dir in ~/.sdkui.yml or export " + EnvCandidatesDir,
		}
	}
	return nil
}
