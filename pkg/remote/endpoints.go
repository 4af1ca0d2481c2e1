package remote

import (
	"fmt"
	"net/url"
)

// catalogPath is the plaintext listing of all candidates.
const catalogPath = "/candidates/list"

// versionsPathFormat is the plaintext version listing for one candidate.
// The installed query parameter is sent empty; reconciliation with the
// local installation tree happens client side.
const versionsPathFormat = "/candidates/%s/%s/versions/list?installed="

func catalogURL(baseURL string) string {
	return baseURL + catalogPath
}

func versionsURL(baseURL, binaryID, platform string) string {
	return baseURL + fmt.Sprintf(versionsPathFormat, url.PathEscape(binaryID), url.PathEscape(platform))
}
