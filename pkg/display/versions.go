package display

import (
	"fmt"
	"strings"

	"sdkui/pkg/catalog"
)

// Java rows use fixed minimum column widths matching the upstream
// listing layout: vendor, use marker, version, distribution, status,
// identifier.
const (
	javaVendorWidth  = 12
	javaUseWidth     = 5
	javaVersionWidth = 15
	javaDistWidth    = 10
	javaStatusWidth  = 12
	javaIDWidth      = 20
)

// simpleVersionWidth right-aligns bare version values.
const simpleVersionWidth = 16

// JavaHeader returns the column header line for Java version tables.
func JavaHeader() string {
	return javaRow("Vendor", "Use", "Version", "Dist", "Status", "Identifier")
}

// FormatVersion renders one reconciled version as a display row.
//
// Java versions render as a fixed-width table row where the use column
// carries ">>>" for the current version and the status column carries
// "installed". Simple versions render with ">" and "*" markers.
func FormatVersion(v catalog.CandidateVersion) string {
	switch version := v.Version.(type) {
	case catalog.JavaVersion:
		use := ""
		if v.Current {
			use = ">>>"
		}
		status := ""
		if v.Installed {
			status = "installed"
		}
		return javaRow(version.Vendor, use, version.Version, version.Distribution, status, version.ID)
	default:
		current := ""
		if v.Current {
			current = ">"
		}
		installed := ""
		if v.Installed {
			installed = "*"
		}
		return fmt.Sprintf(" %s %s %s ", current, installed, v.Identifier())
	}
}

// FormatVersionPlain renders a version value without local flags,
// right-aligned the way the upstream listing prints bare versions.
func FormatVersionPlain(v catalog.Version) string {
	if java, ok := v.(catalog.JavaVersion); ok {
		return javaRow(java.Vendor, "", java.Version, java.Distribution, java.Status, java.ID)
	}
	return PadLeft(v.Identifier(), simpleVersionWidth)
}

// VersionRows renders all versions of a reconciled candidate, with a
// header row when the listing is tabular.
func VersionRows(unified catalog.Unified) []string {
	if len(unified.Versions) == 0 {
		return nil
	}

	var rows []string
	if _, tabular := unified.Versions[0].Version.(catalog.JavaVersion); tabular {
		rows = append(rows, JavaHeader())
	}
	for _, v := range unified.Versions {
		rows = append(rows, FormatVersion(v))
	}
	return rows
}

// VersionList joins the rendered rows into one block of text.
func VersionList(unified catalog.Unified) string {
	return strings.Join(VersionRows(unified), "\n")
}

func javaRow(vendor, use, version, dist, status, id string) string {
	return fmt.Sprintf(" %s %s %s %s %s %s",
		PadRight(vendor, javaVendorWidth),
		PadLeft(use, javaUseWidth),
		PadRight(version, javaVersionWidth),
		PadRight(dist, javaDistWidth),
		PadRight(status, javaStatusWidth),
		PadRight(id, javaIDWidth))
}
