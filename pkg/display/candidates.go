package display

import (
	"strings"

	"sdkui/pkg/catalog"
	"sdkui/pkg/local"
)

// CandidateRows renders the remote catalog as an aligned table of
// name, default version, binary id and homepage. Column widths grow to
// fit the widest cell.
func CandidateRows(candidates []catalog.Candidate) []string {
	nameWidth := Width("NAME")
	versionWidth := Width("VERSION")
	idWidth := Width("ID")

	for _, c := range candidates {
		if w := Width(c.Name); w > nameWidth {
			nameWidth = w
		}
		if w := Width(c.DefaultVersion); w > versionWidth {
			versionWidth = w
		}
		if w := Width(c.BinaryID); w > idWidth {
			idWidth = w
		}
	}

	row := func(name, version, id, homepage string) string {
		cells := []string{
			PadRight(name, nameWidth),
			PadRight(version, versionWidth),
			PadRight(id, idWidth),
			homepage,
		}
		return strings.TrimRight(strings.Join(cells, "  "), " ")
	}

	rows := make([]string, 0, len(candidates)+1)
	rows = append(rows, row("NAME", "VERSION", "ID", "HOMEPAGE"))
	for _, c := range candidates {
		rows = append(rows, row(c.Name, c.DefaultVersion, c.BinaryID, c.Homepage))
	}
	return rows
}

// LocalRows renders the scanned local installation state, one line per
// candidate with the current version marked the way version rows are.
func LocalRows(scanned []local.Candidate) []string {
	rows := make([]string, 0, len(scanned))
	for _, c := range scanned {
		var versions []string
		for _, key := range c.Versions.Keys() {
			marker := ""
			if c.IsCurrent(key) {
				marker = ">"
			}
			versions = append(versions, strings.TrimSpace(marker+" "+key))
		}
		rows = append(rows, c.BinaryID+": "+strings.Join(versions, ", "))
	}
	return rows
}
