package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "slnkit",
	Short: "Visual Studio solution file inspection tool",
	Long: `slnkit parses Visual Studio solution (.sln) files into a fully
resolved project tree.

It performs the following core functions:
  - Project and folder enumeration with identity repair
  - Folder nesting resolution
  - Configuration/platform mapping with build flags
  - Active configuration selection from a user preference sidecar`,
	SilenceUsage: true, // Don't print usage on errors unrelated to flags
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}
