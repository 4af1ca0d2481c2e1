package catalog

import (
	"strings"

	"sdkui/pkg/textutil"
	"sdkui/pkg/verbose"
)

// javaMarker selects the tabular Java sub-parser. Literal contract with
// the remote catalog.
const javaMarker = "Available Java Versions"

// Header sizes of the two version-list formats, also part of the
// plaintext contract.
const (
	genericHeaderLines = 3
	javaHeaderLines    = 5
)

// ParseVersions parses one candidate's version-list response into an
// ordered collection of versions, newest first.
//
// Responses containing the literal marker "Available Java Versions" use
// the tabular Java sub-parser; everything else uses the generic
// sub-parser. Rows or tokens that cannot be decoded are dropped rather
// than failing the parse: the result is best-effort and possibly shorter,
// never an error.
//
// Parameters:
//   - raw: The version-list response body
//
// Returns:
//   - []CandidateVersion: Parsed versions with installation flags unset
func ParseVersions(raw string) []CandidateVersion {
	if strings.Contains(raw, javaMarker) {
		return parseJavaVersions(raw)
	}
	return parseGenericVersions(raw)
}

// parseGenericVersions handles the generic format: a fixed 3-line header,
// then token lines up to (not including) the first line starting with
// '=', whitespace-split into version tokens and sorted descending.
func parseGenericVersions(raw string) []CandidateVersion {
	lines := strings.Split(raw, "\n")
	if len(lines) <= genericHeaderLines {
		return nil
	}

	var body []string
	for _, line := range lines[genericHeaderLines:] {
		if strings.HasPrefix(line, "=") {
			break
		}
		body = append(body, line)
	}

	tokens := strings.Fields(strings.Join(body, " "))
	SortTokens(tokens, nil)

	out := make([]CandidateVersion, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, CandidateVersion{Version: SimpleVersion{Value: token}})
	}

	verbose.Printf("version parse: %d generic versions", len(out))
	return out
}

// parseJavaVersions handles the tabular Java format: a fixed 5-line
// header, then pipe-delimited rows up to the first '='-prefixed line.
// Row order is kept as published; the table is already newest first.
func parseJavaVersions(raw string) []CandidateVersion {
	lines := strings.Split(raw, "\n")
	if len(lines) <= javaHeaderLines {
		return nil
	}

	var out []CandidateVersion
	for _, line := range lines[javaHeaderLines:] {
		if strings.HasPrefix(line, "=") {
			break
		}
		version, ok := parseJavaRow(line)
		if !ok {
			continue
		}
		out = append(out, CandidateVersion{Version: version})
	}

	verbose.Printf("version parse: %d java versions", len(out))
	return out
}

// parseJavaRow decodes one pipe-delimited table row into a JavaVersion.
// The columns are vendor, usage, version, distribution, status,
// identifier; usage is a header artifact and is not kept. Missing fields
// default to the empty string. A row without an identifier carries no
// identity and is dropped.
func parseJavaRow(line string) (JavaVersion, bool) {
	if strings.TrimSpace(line) == "" {
		return JavaVersion{}, false
	}

	fields := textutil.SplitPipeRow(line)
	version := JavaVersion{
		Vendor:       textutil.FieldAt(fields, 0),
		Version:      textutil.FieldAt(fields, 2),
		Distribution: textutil.FieldAt(fields, 3),
		Status:       textutil.FieldAt(fields, 4),
		ID:           textutil.FieldAt(fields, 5),
	}
	if version.ID == "" {
		return JavaVersion{}, false
	}
	return version, true
}
