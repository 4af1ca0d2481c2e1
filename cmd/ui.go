package cmd

import (
	"github.com/spf13/cobra"

	"sdkui/pkg/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive catalog browser",
	Long: `Open a full-screen browser over the candidate catalog. Selecting a
candidate fetches its version listing reconciled with the local
installation tree.`,
	RunE: runUI,
}

// runTUI is swapped out in tests; the real browser needs a terminal.
var runTUI = tui.Run

func runUI(cmd *cobra.Command, args []string) error {
	svc, err := service()
	if err != nil {
		return err
	}
	return runTUI(svc)
}
