package catalog

import (
	"strings"

	"sdkui/pkg/textutil"
	"sdkui/pkg/verbose"
)

// installMarker is the literal phrase on a block's install line; the last
// whitespace-delimited token of that line is the candidate's binary id.
// Part of the catalog's plaintext contract.
const installMarker = "$ sdk install "

// dividerProbe locates the start of the first section divider. The
// divider's actual run length is measured from the text itself, so the
// probe only needs to be long enough to never match a stray dash run
// inside a description.
const dividerProbe = "-------------------------------"

// placeholderVersion substitutes a missing default version token.
const placeholderVersion = "(unknown)"

// ParseCatalog splits the full catalog listing into per-candidate blocks
// and parses each block into a Candidate.
//
// The first run of '-' characters is the section divider; its exact run
// length is the sentinel used to split the remainder of the text, so the
// delimiter is self-describing rather than fixed-width. The preamble
// before the first divider is discarded and whitespace-only blocks are
// dropped. A malformed block never aborts the parse: fields that cannot
// be extracted stay empty.
//
// Parameters:
//   - raw: The catalog response body
//
// Returns:
//   - []Candidate: One record per non-empty block, in listing order
func ParseCatalog(raw string) []Candidate {
	idx := strings.Index(raw, dividerProbe)
	if idx < 0 {
		verbose.Printf("catalog parse: no section divider found in %d bytes", len(raw))
		return nil
	}

	rest := raw[idx:]
	run := 0
	for run < len(rest) && rest[run] == '-' {
		run++
	}
	divider := rest[:run]

	var out []Candidate
	for _, block := range strings.Split(rest[run:], divider) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		out = append(out, parseBlock(block))
	}

	verbose.Printf("catalog parse: %d candidates from %d bytes", len(out), len(raw))
	return out
}

// parseBlock parses one divider-separated block line by line.
//
// The line containing a URI is the identity line: the URI becomes the
// homepage, the last parenthesized token on the same line becomes the
// default version (placeholder when absent), and the display name is
// everything up to the character immediately before the version token.
// When the version token starts at offset 0 the name is empty; this edge
// case is preserved deliberately. The line containing the install marker
// contributes the binary id. Every other non-blank line joins the
// description with a trailing space.
func parseBlock(block string) Candidate {
	var c Candidate
	var description strings.Builder

	for _, line := range strings.Split(block, "\n") {
		switch {
		case line == "":
			continue

		case hasURI(line):
			uri, _ := textutil.FindURI(line)
			c.Homepage = uri

			version, ok := textutil.FindLastParenthesized(line)
			if !ok {
				version = placeholderVersion
			}
			c.DefaultVersion = version

			at := strings.Index(line, version)
			if at < 0 {
				at = len(line)
			}
			if at > 0 {
				c.Name = line[:at-1]
			}

		case strings.Contains(line, installMarker):
			fields := strings.Fields(line)
			if len(fields) > 0 {
				c.BinaryID = fields[len(fields)-1]
			}

		default:
			description.WriteString(line)
			description.WriteString(" ")
		}
	}

	c.Description = description.String()
	return c
}

func hasURI(line string) bool {
	_, ok := textutil.FindURI(line)
	return ok
}
