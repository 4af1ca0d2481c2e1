// Package local scans the local installation directory tree into
// per-candidate version maps.
//
// The tree is two levels deep: each directory under the root is a
// candidate (its name is the binary id), and each directory under a
// candidate is an installed version. One alias directory named "current"
// conventionally symlinks to the active version; the scanner infers the
// active version from that alias without reading any marker file.
package local

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/orderedmap"

	sdkerrors "sdkui/pkg/errors"
	"sdkui/pkg/verbose"
)

// Candidate is the local installation state for one candidate: its binary
// id plus an ordered map from version identifier to a "current" flag.
//
// The map preserves directory-listing order because the current-version
// detection depends on it (see recordVersion). At most one entry maps to
// true; zero entries map to true when no current alias exists.
type Candidate struct {
	// BinaryID is the candidate directory name, matching the remote
	// catalog's binary id.
	BinaryID string

	// Versions maps version identifier to whether that version is the
	// currently active one.
	Versions *orderedmap.OrderedMap
}

// IsInstalled reports whether the version identifier is present in the
// local tree.
func (c Candidate) IsInstalled(identifier string) bool {
	_, ok := c.Versions.Get(identifier)
	return ok
}

// IsCurrent reports whether the version identifier is the active one.
func (c Candidate) IsCurrent(identifier string) bool {
	value, ok := c.Versions.Get(identifier)
	if !ok {
		return false
	}
	current, _ := value.(bool)
	return current
}

// CurrentVersion returns the active version identifier, if any.
//
// Returns:
//   - string: The identifier whose directory the "current" alias resolves to
//   - bool: false when no version is marked current
func (c Candidate) CurrentVersion() (string, bool) {
	for _, key := range c.Versions.Keys() {
		if c.IsCurrent(key) {
			return key, true
		}
	}
	return "", false
}

// Result is the outcome of a scan: the candidates that were read
// successfully plus one ScanError per candidate subtree that failed.
// A failed subtree never blanks out the rest of the scan.
type Result struct {
	// Candidates holds the successfully scanned candidates in
	// directory-listing order.
	Candidates []Candidate

	// Failed collects per-candidate scan errors (*errors.ScanError).
	Failed []error
}

// ByBinaryID returns the scanned candidates keyed by binary id.
func (r Result) ByBinaryID() map[string]Candidate {
	out := make(map[string]Candidate, len(r.Candidates))
	for _, c := range r.Candidates {
		out[c.BinaryID] = c
	}
	return out
}

// Scan walks the installation tree under root and produces one Candidate
// per readable candidate directory.
//
// Scan fails outright when root is empty (configuration error) or cannot
// be listed. Failures inside one candidate subtree (unreadable version
// directories, dangling symlinks) are isolated into Result.Failed so
// sibling candidates still scan.
//
// Parameters:
//   - root: The installation root directory (SDKMAN_CANDIDATES_DIR)
//
// Returns:
//   - Result: Scanned candidates plus per-subtree failures
//   - error: Root-level failure; nil when the walk itself succeeded
func Scan(root string) (Result, error) {
	if root == "" {
		return Result{}, &sdkerrors.ConfigError{
			Key:  "SDKMAN_CANDIDATES_DIR",
			Hint: "set the environment variable or candidates_dir in the config file",
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return Result{}, fmt.Errorf("reading installation root: %w", err)
	}

	var result Result
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate, err := scanCandidate(filepath.Join(root, entry.Name()), entry.Name())
		if err != nil {
			verbose.Printf("local scan: candidate %s failed: %v", entry.Name(), err)
			result.Failed = append(result.Failed, &sdkerrors.ScanError{Candidate: entry.Name(), Err: err})
			continue
		}
		result.Candidates = append(result.Candidates, candidate)
	}

	verbose.Printf("local scan: %d candidates, %d failed subtrees", len(result.Candidates), len(result.Failed))
	return result, nil
}

// scanCandidate reads one candidate directory and builds its version map.
// Any entry that cannot be resolved fails the whole subtree; the caller
// isolates that failure from sibling candidates.
func scanCandidate(dir, binaryID string) (Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Candidate{}, err
	}

	versions := orderedmap.New()
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		identifier, isDir, err := canonicalIdentifier(path)
		if err != nil {
			return Candidate{}, err
		}
		if !isDir {
			continue
		}
		recordVersion(versions, identifier)
	}

	return Candidate{BinaryID: binaryID, Versions: versions}, nil
}

// canonicalIdentifier resolves a version directory entry to the final
// path component of its canonical (symlink-fully-resolved) path.
func canonicalIdentifier(path string) (string, bool, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", false, err
	}
	if !info.IsDir() {
		return "", false, nil
	}
	return filepath.Base(resolved), true, nil
}

// recordVersion marks a canonical version identifier as seen.
//
// RISK: this is the load-bearing convention of the whole scan. The layout
// stores each version under its own directory plus one alias named
// "current" symlinking to the active one. Resolving symlinks collapses
// the alias and the real directory to the same canonical identifier, so
// seeing an identifier a second time within one candidate means the
// current alias points at it. If the layout convention ever changes
// (e.g. to a marker file), replace this function; nothing else encodes
// the assumption.
func recordVersion(versions *orderedmap.OrderedMap, identifier string) {
	if _, seen := versions.Get(identifier); seen {
		versions.Set(identifier, true)
		return
	}
	versions.Set(identifier, false)
}
