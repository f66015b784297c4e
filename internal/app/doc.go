// Package app provides the application context and driver for osbuild-cfg.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
//	type App struct {
//	    Config   *config.Config          // Paths and distribution settings
//	    FS       system.FileSystem       // Host filesystem
//	    Executor system.CommandExecutor  // Runs queued commands
//	    Env      *gate.Environment       // uid, container signal, self path
//	}
//
// # Running
//
// Run performs one pass: gate checks, parse, render, then execute the
// queued commands (or print them with a tree of staged files in a dry
// run), and finally self-consume when the environment allows it.
//
//	res, err := app.New(
//	    app.WithExecutor(mockExecutor),
//	    app.WithEnvironment(gate.Environment{EUID: 0}),
//	).Run(ctx, app.RunOptions{Path: "blueprint.toml"})
package app
