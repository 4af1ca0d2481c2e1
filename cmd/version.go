package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X sdkui/cmd.Version=1.0.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// BuildTime is the timestamp of the build.
	BuildTime = ""
	// GitCommit is the git commit hash of the build.
	GitCommit = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Version: %s\n", Version)
	fmt.Fprintf(out, "  Go:      %s\n", runtime.Version())
	fmt.Fprintf(out, "  Target:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if BuildTime != "" {
		fmt.Fprintf(out, "  Date:    %s\n", BuildTime)
	}
	if GitCommit != "" {
		fmt.Fprintf(out, "  Git:     %s\n", GitCommit)
	}
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
