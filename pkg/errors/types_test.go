package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"exit error keeps its code", NewExitError(ExitPartialFailure, nil), ExitPartialFailure},
		{"config error maps to config code", &ConfigError{Key: "SDKMAN_PLATFORM"}, ExitConfigError},
		{"wrapped config error maps to config code", fmt.Errorf("loading: %w", &ConfigError{Key: "SDKMAN_CANDIDATES_API"}), ExitConfigError},
		{"plain error maps to failure", fmt.Errorf("boom"), ExitFailure},
		{"server error maps to failure", &ServerError{URL: "http://x", Status: 500}, ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetExitCode(tt.err))
		})
	}
}

func TestExitErrorMessage(t *testing.T) {
	assert.Equal(t, "custom", (&ExitError{Code: ExitFailure, Message: "custom"}).Error())
	assert.Equal(t, "inner", (&ExitError{Code: ExitFailure, Err: fmt.Errorf("inner")}).Error())
	assert.Equal(t, "exit code 2", (&ExitError{Code: ExitFailure}).Error())
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Key: "SDKMAN_CANDIDATES_DIR", Hint: "export it or set candidates_dir in ~/.sdkui.yml"}
	assert.Contains(t, err.Error(), "SDKMAN_CANDIDATES_DIR")
	assert.Contains(t, err.Error(), "~/.sdkui.yml")

	wrapped := fmt.Errorf("scan: %w", err)
	got, ok := IsConfigError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "SDKMAN_CANDIDATES_DIR", got.Key)
}

func TestTransportErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	err := &TransportError{URL: "https://api.sdkman.io/2/candidates/list", Err: inner}

	got, ok := IsTransportError(fmt.Errorf("fetch: %w", err))
	require.True(t, ok)
	assert.Equal(t, inner, got.Unwrap())
	assert.Contains(t, err.Error(), "candidates/list")
}

func TestServerErrorCarriesStatus(t *testing.T) {
	err := &ServerError{URL: "http://example.com", Status: 503}
	got, ok := IsServerError(fmt.Errorf("fetch: %w", err))
	require.True(t, ok)
	assert.Equal(t, 503, got.Status)
}

func TestScanErrorUnwrapsFilesystemError(t *testing.T) {
	err := &ScanError{Candidate: "java", Err: fs.ErrPermission}
	got, ok := IsScanError(fmt.Errorf("local: %w", err))
	require.True(t, ok)
	assert.Equal(t, "java", got.Candidate)
	assert.ErrorIs(t, err, fs.ErrPermission)
}
