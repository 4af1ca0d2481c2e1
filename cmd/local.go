package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sdkui/pkg/display"
	"sdkui/pkg/errors"
)

var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Show locally installed candidates",
	Long: `Scan the local installation tree without touching the network and
print each installed candidate with its versions. The active version is
marked with ">".`,
	RunE: runLocal,
}

func runLocal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateLocal(); err != nil {
		return err
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	result, err := svc.ScanLocal()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, row := range display.LocalRows(result.Candidates) {
		fmt.Fprintln(out, row)
	}
	fmt.Fprintf(out, "\nInstalled candidates: %d\n", len(result.Candidates))

	if len(result.Failed) > 0 {
		for _, scanErr := range result.Failed {
			cmd.PrintErrln("Warning:", scanErr)
		}
		return errors.NewExitError(errors.ExitPartialFailure,
			fmt.Errorf("%d candidate subtrees failed to scan", len(result.Failed)))
	}
	return nil
}
