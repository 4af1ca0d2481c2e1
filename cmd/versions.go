package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sdkui/pkg/catalog"
	"sdkui/pkg/display"
)

var versionsCmd = &cobra.Command{
	Use:   "versions <candidate>",
	Short: "List available versions for one candidate",
	Long: `Fetch the version listing for a candidate and reconcile it with the
local installation tree. Installed versions are marked with "*" (or
"installed" in tabular listings) and the active one with ">" (or ">>>").`,
	Args: cobra.ExactArgs(1),
	RunE: runVersions,
}

func runVersions(cmd *cobra.Command, args []string) error {
	svc, err := service()
	if err != nil {
		return err
	}

	view, err := svc.Catalog(cmd.Context())
	if err != nil {
		return err
	}

	candidate := catalog.Candidate{BinaryID: args[0]}
	for _, c := range view.Remote {
		if c.BinaryID == args[0] {
			candidate = c
			break
		}
	}

	unified, err := svc.Versions(cmd.Context(), candidate, view)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if candidate.Name != "" {
		fmt.Fprintf(out, "%s %s\n\n", candidate.Name, candidate.DefaultVersion)
	}
	for _, row := range display.VersionRows(unified) {
		fmt.Fprintln(out, row)
	}
	return nil
}
