package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/osbuild/osbuild-cfg/internal/app"
)

var blueprintCmd = &cobra.Command{
	Use:   "blueprint <path>",
	Short: "Apply a blueprint to this system",
	Long: `Apply a TOML blueprint to the running system.

Use "-" as the path to read the blueprint from standard input.
A real run must be made as root on a Fedora-family system.`,
	Args: cobra.ExactArgs(1),
	RunE: runBlueprint,
}

var dryRunDir string

func init() {
	blueprintCmd.Flags().StringVar(&dryRunDir, "dry-run-dir", "", "Stage files in this directory and print commands instead of running them")
	rootCmd.AddCommand(blueprintCmd)
}

func runBlueprint(cmd *cobra.Command, args []string) error {
	path := args[0]

	if dryRunDir != "" {
		logInfo("Dry run of %s into %s", path, dryRunDir)
	}

	res, err := application(cmd).Run(context.Background(), app.RunOptions{
		Path:      path,
		DryRunDir: dryRunDir,
	})
	if err != nil {
		return err
	}

	displayResult(res)
	return nil
}
