package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdkui/pkg/config"
	"sdkui/pkg/errors"
)

func TestLocalPrintsInstalledVersions(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "gradle")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "8.5"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "8.6"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "8.6"), filepath.Join(dir, "current")))

	stubService(t, &fakeClient{}, root)

	out, err := execute(t, "local")
	require.NoError(t, err)

	assert.Contains(t, out, "gradle:")
	assert.Contains(t, out, "> 8.6")
	assert.Contains(t, out, "Installed candidates: 1")
}

func TestLocalPartialFailureExitCode(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "gradle", "8.6"), 0o755))

	// A dangling symlink makes this candidate's subtree unresolvable.
	broken := filepath.Join(root, "java")
	require.NoError(t, os.MkdirAll(broken, 0o755))
	require.NoError(t, os.Symlink(filepath.Join(broken, "gone"), filepath.Join(broken, "current")))

	stubService(t, &fakeClient{}, root)

	out, err := execute(t, "local")
	require.Error(t, err)

	assert.Equal(t, errors.ExitPartialFailure, errors.GetExitCode(err))
	assert.Contains(t, out, "gradle:")
	assert.Contains(t, out, "Warning:")
}

func TestLocalMissingCandidatesDir(t *testing.T) {
	stubService(t, &fakeClient{}, t.TempDir())
	orig := loadConfig
	loadConfig = func() (*config.Config, error) {
		return &config.Config{CandidatesAPI: config.DefaultCandidatesAPI, Platform: "linuxx64"}, nil
	}
	t.Cleanup(func() { loadConfig = orig })

	_, err := execute(t, "local")
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
}
