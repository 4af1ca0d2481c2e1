package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install <candidate> [version]",
	Short: "Print the sdk command that installs a candidate version",
	Long: `Print the shell invocation that installs the given candidate
version. Installation itself is delegated to the sdk shell function; this
command only prepares the invocation.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	invocation := "$ sdk install " + args[0]
	if len(args) == 2 {
		invocation += " " + args[1]
	}
	fmt.Fprintln(cmd.OutOrStdout(), invocation)
	return nil
}
