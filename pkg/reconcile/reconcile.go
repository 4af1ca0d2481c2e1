// Package reconcile merges a remote candidate and its parsed version list
// with the corresponding local scan result into the unified, display-ready
// record.
package reconcile

import (
	"sdkui/pkg/catalog"
	"sdkui/pkg/local"
)

// Merge combines one remote candidate with its version list and the local
// installation state for the same binary id.
//
// For each remote version, its identity key is looked up in the local
// version map: present means installed, and current carries the flag
// stored for that key. Versions absent from the local map keep both flags
// false, as does everything when localState is nil (candidate never
// installed locally). The output keeps the parser's ordering; Merge never
// re-sorts.
//
// Merge is pure: it copies the version slice and mutates neither input.
//
// Parameters:
//   - remote: The candidate record from the catalog
//   - versions: The candidate's parsed version list, already ordered
//   - localState: The local scan result for the same binary id, or nil
//
// Returns:
//   - catalog.Unified: Fresh display-ready record
func Merge(remote catalog.Candidate, versions []catalog.CandidateVersion, localState *local.Candidate) catalog.Unified {
	unified := catalog.Unified{
		Candidate: remote,
		Versions:  make([]catalog.CandidateVersion, len(versions)),
	}
	copy(unified.Versions, versions)

	if localState == nil {
		return unified
	}

	for i := range unified.Versions {
		key := unified.Versions[i].Identifier()
		if !localState.IsInstalled(key) {
			continue
		}
		unified.Versions[i].Installed = true
		unified.Versions[i].Current = localState.IsCurrent(key)
	}

	return unified
}
