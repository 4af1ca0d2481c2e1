// Package remote fetches the plaintext candidate catalog and version
// listings from an SDKMAN API server and hands them to the catalog parsers.
package remote

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"sdkui/pkg/catalog"
	"sdkui/pkg/errors"
	"sdkui/pkg/verbose"
)

// defaultTimeout bounds requests made through the default HTTP client.
const defaultTimeout = 10 * time.Second

// Doer issues a single HTTP request. *http.Client satisfies it; tests
// substitute a recording implementation.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one SDKMAN API server for one platform.
//
// Fields:
//   - baseURL: API root, e.g. https://api.sdkman.io/2
//   - platform: platform segment used in version listing URLs
//   - http: the Doer that executes requests
type Client struct {
	baseURL  string
	platform string
	http     Doer
}

// NewClient creates a Client for the given API root and platform.
//
// Parameters:
//   - baseURL: API root; a trailing slash is stripped
//   - platform: platform identifier, e.g. darwinx64
//   - doer: HTTP executor; pass nil for a default client with a timeout
//
// Returns:
//   - *Client: New client
func NewClient(baseURL, platform string, doer Doer) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		platform: platform,
		http:     doer,
	}
}

// FetchCatalog retrieves the candidate listing and parses it.
//
// Parameters:
//   - ctx: Context for cancellation and deadlines
//
// Returns:
//   - []catalog.Candidate: Parsed candidates, nil if the listing had no divider
//   - error: TransportError or ServerError on failure
func (c *Client) FetchCatalog(ctx context.Context) ([]catalog.Candidate, error) {
	body, err := c.get(ctx, catalogURL(c.baseURL))
	if err != nil {
		return nil, err
	}
	return catalog.ParseCatalog(body), nil
}

// FetchVersions retrieves the version listing for one candidate and parses it.
//
// Parameters:
//   - ctx: Context for cancellation and deadlines
//   - binaryID: The candidate binary id, e.g. "gradle"
//
// Returns:
//   - []catalog.CandidateVersion: Parsed versions with unset local flags
//   - error: TransportError or ServerError on failure
func (c *Client) FetchVersions(ctx context.Context, binaryID string) ([]catalog.CandidateVersion, error) {
	body, err := c.get(ctx, versionsURL(c.baseURL, binaryID, c.platform))
	if err != nil {
		return nil, err
	}
	return catalog.ParseVersions(body), nil
}

// get performs a GET request and returns the response body as a string.
// Network failures become TransportError, non-2xx responses ServerError.
func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &errors.TransportError{URL: url, Err: err}
	}

	verbose.Printf("GET %s", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", &errors.TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &errors.ServerError{URL: url, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &errors.TransportError{URL: url, Err: err}
	}
	return string(data), nil
}
