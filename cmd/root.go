// Package cmd implements the command-line interface for sdkui.
// It provides commands for browsing the remote candidate catalog,
// listing versions, and inspecting the local installation tree.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"sdkui/pkg/candidates"
	"sdkui/pkg/config"
	"sdkui/pkg/errors"
	"sdkui/pkg/verbose"
)

var exitFunc = os.Exit
var verboseFlag bool

// Injection points for tests.
var loadConfig = config.Load
var newService = candidates.FromConfig

var rootCmd = &cobra.Command{
	Use:   "sdkui",
	Short: "Browse the SDKMAN candidate catalog",
	Long: `Browse the SDKMAN candidate catalog and reconcile it with the
locally installed versions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 1: Partial failure (some local candidate subtrees failed to scan)
//   - 2: Complete failure
//   - 3: Configuration error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		rootCmd.PrintErrln("Error:", err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

// service builds the candidate service from the resolved configuration.
func service() (*candidates.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newService(cfg)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")

	// Commands ordered logically: info → catalog → local → actions
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(localCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uiCmd)
}
