package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osbuild/osbuild-cfg/internal/app"
	"github.com/osbuild/osbuild-cfg/internal/config"
	"github.com/osbuild/osbuild-cfg/internal/logging"
)

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
)

// application returns the default app wired to the command's streams.
func application(cmd *cobra.Command) *app.App {
	a := app.Default
	app.WithStdio(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())(a)
	return a
}

// displayResult shows the outcome of a run to the user.
func displayResult(r *app.Result) {
	if r == nil {
		return
	}

	switch {
	case r.DryRun:
		logSuccess("Dry run complete, nothing was executed")
	case !r.Changed:
		logInfo("Blueprint requested no changes")
	default:
		logSuccess("Applied blueprint (%d commands)", len(r.Commands))
	}

	if r.SelfConsumed {
		logInfo("Removed blueprint and %s from the image", config.ProgramName)
	}
}
