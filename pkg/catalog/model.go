// Package catalog defines the candidate and version data model and parses
// the remote catalog's plaintext responses into it.
//
// The remote catalog speaks two semi-structured plaintext formats: the full
// candidate listing (dash-divider separated blocks) and per-candidate
// version listings (a generic token format plus a tabular Java format).
// Both parsers are total over arbitrary input: malformed blocks degrade to
// empty fields and malformed rows are dropped, never panicking.
package catalog

// Candidate is the identity and metadata for one installable tool as
// published by the remote catalog.
//
// BinaryID is the join key against local scan data: it appears in install
// commands and as the candidate's directory name under the local
// installation root. It is stable across remote responses.
type Candidate struct {
	// Name is the human-readable display name (e.g. "Gradle").
	Name string

	// BinaryID is the short identifier used in install commands and
	// directory names (e.g. "gradle"). Unique key.
	BinaryID string

	// Description is the free-text description assembled from the
	// block's remaining lines. Lines are space-joined and the completed
	// description keeps its trailing space.
	Description string

	// Homepage is the project URI extracted from the identity line.
	Homepage string

	// DefaultVersion is the parenthesized version token from the
	// identity line, or "(unknown)" when absent.
	DefaultVersion string
}

// Version is one available version of a candidate. It is a tagged variant:
// SimpleVersion for the generic listing format and JavaVersion for the
// tabular Java listing.
type Version interface {
	// Identifier returns the canonical sort/lookup key for the version:
	// the raw token for SimpleVersion, the identifier column for
	// JavaVersion.
	Identifier() string
}

// SimpleVersion is a version from the generic listing format: one
// whitespace-delimited token.
type SimpleVersion struct {
	// Value is the raw version token (e.g. "8.7").
	Value string
}

// Identifier returns the version token.
func (v SimpleVersion) Identifier() string { return v.Value }

// JavaVersion is a version row from the tabular Java listing. The usage
// column of the source table is a header artifact and is not preserved;
// the identifier column is the stable identity of the version.
type JavaVersion struct {
	// Vendor is the distribution vendor (e.g. "Eclipse").
	Vendor string

	// Version is the bare version number (e.g. "17.0.2").
	Version string

	// Distribution is the short distribution code (e.g. "tem").
	Distribution string

	// Status is the informational status column as published.
	Status string

	// ID is the canonical identifier (e.g. "17.0.2-tem").
	ID string
}

// Identifier returns the canonical identifier column.
func (v JavaVersion) Identifier() string { return v.ID }

// CandidateVersion pairs a Version with its local installation flags.
//
// Installed and Current are always false on freshly parsed remote entries;
// they are populated exclusively by reconciliation against the local scan,
// never inferred from remote text.
type CandidateVersion struct {
	Version

	// Installed reports whether the version is present under the local
	// installation root.
	Installed bool

	// Current reports whether the version is the locally active one.
	Current bool
}

// Unified is the display-ready record for one candidate: the remote
// metadata plus its version list annotated with installation flags.
//
// A Unified value is constructed fresh on every fetch cycle and never
// mutated in place across cycles; refreshing replaces the whole value.
type Unified struct {
	Candidate

	// Versions holds the candidate's versions in the order produced by
	// the version-list parser (descending). Reconciliation never
	// re-sorts them.
	Versions []CandidateVersion
}
