package local

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "sdkui/pkg/errors"
)

// mkCandidate builds root/binaryID with one directory per version and,
// when current is non-empty, a "current" symlink pointing at it.
func mkCandidate(t *testing.T, root, binaryID string, versions []string, current string) {
	t.Helper()
	dir := filepath.Join(root, binaryID)
	for _, v := range versions {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, v), 0o755))
	}
	if current != "" {
		require.NoError(t, os.Symlink(filepath.Join(dir, current), filepath.Join(dir, "current")))
	}
}

func findCandidate(t *testing.T, result Result, binaryID string) Candidate {
	t.Helper()
	for _, c := range result.Candidates {
		if c.BinaryID == binaryID {
			return c
		}
	}
	t.Fatalf("candidate %s not in scan result", binaryID)
	return Candidate{}
}

func TestScanMarksCurrentViaSymlinkCollapse(t *testing.T) {
	root := t.TempDir()
	mkCandidate(t, root, "java", []string{"17.0.2-tem"}, "17.0.2-tem")

	result, err := Scan(root)
	require.NoError(t, err)
	require.Empty(t, result.Failed)

	java := findCandidate(t, result, "java")
	// The alias and the real directory collapse to one entry, not two.
	assert.Equal(t, []string{"17.0.2-tem"}, java.Versions.Keys())
	assert.True(t, java.IsCurrent("17.0.2-tem"))
	assert.True(t, java.IsInstalled("17.0.2-tem"))

	current, ok := java.CurrentVersion()
	require.True(t, ok)
	assert.Equal(t, "17.0.2-tem", current)
}

func TestScanExactlyOneCurrentPerCandidate(t *testing.T) {
	root := t.TempDir()
	mkCandidate(t, root, "gradle", []string{"8.5", "8.6", "8.7"}, "8.6")

	result, err := Scan(root)
	require.NoError(t, err)

	gradle := findCandidate(t, result, "gradle")
	currentCount := 0
	for _, key := range gradle.Versions.Keys() {
		assert.True(t, gradle.IsInstalled(key))
		if gradle.IsCurrent(key) {
			currentCount++
			assert.Equal(t, "8.6", key)
		}
	}
	assert.Equal(t, 1, currentCount)
}

func TestScanNoCurrentAlias(t *testing.T) {
	root := t.TempDir()
	mkCandidate(t, root, "maven", []string{"3.9.6", "3.8.8"}, "")

	result, err := Scan(root)
	require.NoError(t, err)

	maven := findCandidate(t, result, "maven")
	assert.Len(t, maven.Versions.Keys(), 2)
	for _, key := range maven.Versions.Keys() {
		assert.True(t, maven.IsInstalled(key))
		assert.False(t, maven.IsCurrent(key))
	}

	_, ok := maven.CurrentVersion()
	assert.False(t, ok)
}

func TestScanDanglingAliasIsolatedPerCandidate(t *testing.T) {
	root := t.TempDir()
	mkCandidate(t, root, "gradle", []string{"8.7"}, "8.7")

	// Broken candidate: current points at a version that was removed.
	brokenDir := filepath.Join(root, "kotlin")
	require.NoError(t, os.MkdirAll(brokenDir, 0o755))
	require.NoError(t, os.Symlink(filepath.Join(brokenDir, "gone"), filepath.Join(brokenDir, "current")))

	result, err := Scan(root)
	require.NoError(t, err)

	// The broken subtree is reported, not fatal, and does not blank
	// out the sibling candidate.
	require.Len(t, result.Failed, 1)
	scanErr, ok := sdkerrors.IsScanError(result.Failed[0])
	require.True(t, ok)
	assert.Equal(t, "kotlin", scanErr.Candidate)

	gradle := findCandidate(t, result, "gradle")
	assert.True(t, gradle.IsCurrent("8.7"))
}

func TestScanSkipsPlainFiles(t *testing.T) {
	root := t.TempDir()
	mkCandidate(t, root, "sbt", []string{"1.9.9"}, "")
	require.NoError(t, os.WriteFile(filepath.Join(root, "README"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sbt", "notes.txt"), []byte("x"), 0o644))

	result, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)

	sbt := findCandidate(t, result, "sbt")
	assert.Equal(t, []string{"1.9.9"}, sbt.Versions.Keys())
}

func TestScanEmptyRootIsConfigError(t *testing.T) {
	_, err := Scan("")
	require.Error(t, err)
	cfgErr, ok := sdkerrors.IsConfigError(err)
	require.True(t, ok)
	assert.Equal(t, "SDKMAN_CANDIDATES_DIR", cfgErr.Key)
}

func TestScanMissingRootFails(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestByBinaryID(t *testing.T) {
	root := t.TempDir()
	mkCandidate(t, root, "java", []string{"21.0.2-tem"}, "21.0.2-tem")
	mkCandidate(t, root, "gradle", []string{"8.7"}, "")

	result, err := Scan(root)
	require.NoError(t, err)

	byID := result.ByBinaryID()
	require.Len(t, byID, 2)
	assert.True(t, byID["java"].IsCurrent("21.0.2-tem"))
	assert.False(t, byID["gradle"].IsCurrent("8.7"))
}
