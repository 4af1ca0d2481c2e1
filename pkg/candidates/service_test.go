package candidates

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdkui/pkg/catalog"
	"sdkui/pkg/config"
	"sdkui/pkg/errors"
)

type fakeClient struct {
	candidates []catalog.Candidate
	versions   map[string][]catalog.CandidateVersion
	catalogErr error
	versionErr error
}

func (f *fakeClient) FetchCatalog(ctx context.Context) ([]catalog.Candidate, error) {
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	return f.candidates, nil
}

func (f *fakeClient) FetchVersions(ctx context.Context, binaryID string) ([]catalog.CandidateVersion, error) {
	if f.versionErr != nil {
		return nil, f.versionErr
	}
	return f.versions[binaryID], nil
}

func simpleVersions(values ...string) []catalog.CandidateVersion {
	out := make([]catalog.CandidateVersion, len(values))
	for i, v := range values {
		out[i] = catalog.CandidateVersion{Version: catalog.SimpleVersion{Value: v}}
	}
	return out
}

// installTree builds a local installation root with one candidate and an
// optional current symlink.
func installTree(t *testing.T, binaryID string, versions []string, current string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, binaryID)
	for _, v := range versions {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, v), 0o755))
	}
	if current != "" {
		require.NoError(t, os.Symlink(filepath.Join(dir, current), filepath.Join(dir, "current")))
	}
	return root
}

func TestCatalogJoinsRemoteAndLocal(t *testing.T) {
	client := &fakeClient{
		candidates: []catalog.Candidate{
			{Name: "Gradle", BinaryID: "gradle"},
			{Name: "Java", BinaryID: "java"},
		},
	}
	root := installTree(t, "gradle", []string{"8.6"}, "8.6")

	svc := NewService(client, root)
	view, err := svc.Catalog(context.Background())
	require.NoError(t, err)

	require.Len(t, view.Remote, 2)
	assert.Equal(t, "gradle", view.Remote[0].BinaryID)

	state, ok := view.Local["gradle"]
	require.True(t, ok)
	assert.True(t, state.IsCurrent("8.6"))
	assert.Empty(t, view.ScanErrors)
}

func TestCatalogRemoteFailureIsFatal(t *testing.T) {
	client := &fakeClient{catalogErr: &errors.ServerError{URL: "http://x", Status: 503}}
	svc := NewService(client, t.TempDir())

	_, err := svc.Catalog(context.Background())
	require.Error(t, err)

	sErr, ok := errors.IsServerError(err)
	require.True(t, ok)
	assert.Equal(t, 503, sErr.Status)
}

func TestCatalogScanFailureIsNotFatal(t *testing.T) {
	client := &fakeClient{candidates: []catalog.Candidate{{BinaryID: "gradle"}}}
	svc := NewService(client, filepath.Join(t.TempDir(), "missing"))

	view, err := svc.Catalog(context.Background())
	require.NoError(t, err)

	assert.Len(t, view.Remote, 1)
	assert.Empty(t, view.Local)
	require.Len(t, view.ScanErrors, 1)
}

func TestVersionsReconcilesAgainstView(t *testing.T) {
	client := &fakeClient{
		candidates: []catalog.Candidate{{Name: "Gradle", BinaryID: "gradle"}},
		versions:   map[string][]catalog.CandidateVersion{"gradle": simpleVersions("8.7", "8.6", "8.5")},
	}
	root := installTree(t, "gradle", []string{"8.6", "8.5"}, "8.6")

	svc := NewService(client, root)
	view, err := svc.Catalog(context.Background())
	require.NoError(t, err)

	unified, err := svc.Versions(context.Background(), view.Remote[0], view)
	require.NoError(t, err)

	require.Len(t, unified.Versions, 3)
	assert.False(t, unified.Versions[0].Installed)
	assert.True(t, unified.Versions[1].Current)
	assert.True(t, unified.Versions[2].Installed)
	assert.False(t, unified.Versions[2].Current)
}

func TestVersionsWithoutViewLeavesFlagsUnset(t *testing.T) {
	client := &fakeClient{
		versions: map[string][]catalog.CandidateVersion{"gradle": simpleVersions("8.7")},
	}
	svc := NewService(client, "")

	unified, err := svc.Versions(context.Background(), catalog.Candidate{BinaryID: "gradle"}, nil)
	require.NoError(t, err)

	require.Len(t, unified.Versions, 1)
	assert.False(t, unified.Versions[0].Installed)
}

func TestVersionsRemoteFailure(t *testing.T) {
	client := &fakeClient{versionErr: &errors.TransportError{URL: "http://x", Err: context.DeadlineExceeded}}
	svc := NewService(client, "")

	_, err := svc.Versions(context.Background(), catalog.Candidate{BinaryID: "gradle"}, nil)
	require.Error(t, err)

	_, ok := errors.IsTransportError(err)
	assert.True(t, ok)
}

func TestFromConfigValidates(t *testing.T) {
	_, err := FromConfig(&config.Config{CandidatesAPI: "", Platform: "linuxx64"})
	require.Error(t, err)
	_, ok := errors.IsConfigError(err)
	assert.True(t, ok)

	svc, err := FromConfig(&config.Config{
		CandidatesAPI:  config.DefaultCandidatesAPI,
		Platform:       "linuxx64",
		TimeoutSeconds: 5,
	})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
