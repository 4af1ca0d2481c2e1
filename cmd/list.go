package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sdkui/pkg/display"
	"sdkui/pkg/verbose"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all candidates from the remote catalog",
	Long: `Fetch the remote candidate catalog and print one row per candidate
with its name, default version, binary id and homepage. Candidates with at
least one locally installed version are marked with an asterisk.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := service()
	if err != nil {
		return err
	}

	view, err := svc.Catalog(cmd.Context())
	if err != nil {
		return err
	}
	verbose.Printf("catalog: %d candidates, %d installed locally", len(view.Remote), len(view.Local))

	out := cmd.OutOrStdout()
	for i, row := range display.CandidateRows(view.Remote) {
		marker := "  "
		if i > 0 {
			if _, installed := view.Local[view.Remote[i-1].BinaryID]; installed {
				marker = "* "
			}
		}
		fmt.Fprintln(out, marker+row)
	}
	fmt.Fprintf(out, "\nTotal candidates: %d\n", len(view.Remote))

	for _, scanErr := range view.ScanErrors {
		cmd.PrintErrln("Warning:", scanErr)
	}
	return nil
}
