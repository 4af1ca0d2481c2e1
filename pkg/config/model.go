// Package config resolves the settings sdkui needs to reach the remote
// candidate catalog and the local installation tree. Values come from an
// optional YAML file with environment variables taking precedence.
package config

import (
	"runtime"
	"time"
)

// Environment variable names, shared with the sdkman shell installation.
const (
	// EnvCandidatesAPI overrides the API root URL.
	EnvCandidatesAPI = "SDKMAN_CANDIDATES_API"

	// EnvPlatform overrides the platform segment used in version URLs.
	EnvPlatform = "SDKMAN_PLATFORM"

	// EnvCandidatesDir overrides the local installation root.
	EnvCandidatesDir = "SDKMAN_CANDIDATES_DIR"
)

// DefaultCandidatesAPI is the public SDKMAN API root.
const DefaultCandidatesAPI = "https://api.sdkman.io/2"

// DefaultTimeoutSeconds bounds each catalog request.
const DefaultTimeoutSeconds = 10

// configFileName is looked up in the user's home directory.
const configFileName = ".sdkui.yml"

// Config holds the resolved settings for one invocation.
//
// Fields:
//   - CandidatesAPI: API root URL
//   - Platform: platform segment, e.g. darwinx64
//   - CandidatesDir: local installation root, e.g. ~/.sdkman/candidates
//   - TimeoutSeconds: HTTP request timeout in seconds
type Config struct {
	// CandidatesAPI is the API root URL.
	CandidatesAPI string `yaml:"candidates_api"`

	// Platform is the platform segment used in version listing URLs.
	Platform string `yaml:"platform"`

	// CandidatesDir is the root of the local installation tree.
	CandidatesDir string `yaml:"candidates_dir"`

	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout returns the configured HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// detectPlatform maps the running OS and architecture onto the platform
// identifiers the SDKMAN API expects.
func detectPlatform() string {
	arch := "x64"
	if runtime.GOARCH == "arm64" {
		arch = "arm64"
	}
	switch runtime.GOOS {
	case "darwin":
		return "darwin" + arch
	case "linux":
		return "linux" + arch
	case "windows":
		return "windowsx64"
	default:
		return ""
	}
}
