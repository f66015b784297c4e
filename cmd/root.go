package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/osbuild/osbuild-cfg/internal/config"
	"github.com/osbuild/osbuild-cfg/internal/logging"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "devel"

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   config.ProgramName,
	Short: "Apply image blueprints inside container builds",
	Long: `osbuild-cfg applies a declarative blueprint to the running system.

It is meant to run as one step of a container image build:
  - Packages are installed with the distribution package manager
  - SSH keys are provisioned through a tmpfiles.d snippet
  - With --dry-run-dir, files are staged and commands are only printed`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
