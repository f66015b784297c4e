// Package app provides the application context for osbuild-cfg.
// It allows dependency injection for testing.
package app

import (
	"io"
	"os"

	"github.com/osbuild/osbuild-cfg/internal/config"
	"github.com/osbuild/osbuild-cfg/internal/gate"
	"github.com/osbuild/osbuild-cfg/internal/system"
)

// App holds the application dependencies
type App struct {
	// Config holds paths and distribution settings
	Config *config.Config

	// FS is used for host files outside the render roots
	FS system.FileSystem

	// Executor runs queued commands
	Executor system.CommandExecutor

	// Env is the ambient process state; probed on first use when nil
	Env *gate.Environment

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Option is a function that configures the App
type Option func(*App)

// WithConfig sets a custom configuration
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithFileSystem sets a custom host filesystem
func WithFileSystem(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithEnvironment replaces the probed process environment
func WithEnvironment(env gate.Environment) Option {
	return func(a *App) {
		a.Env = &env
	}
}

// WithStdio sets the streams used for stdin blueprints and command output.
// Nil writers keep their current value.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *App) {
		if stdin != nil {
			a.Stdin = stdin
		}
		if stdout != nil {
			a.Stdout = stdout
		}
		if stderr != nil {
			a.Stderr = stderr
		}
	}
}

// New creates a new App with the given options.
func New(opts ...Option) *App {
	app := &App{
		Config:   config.DefaultConfig(),
		FS:       system.DefaultFS(),
		Executor: system.DefaultExecutor(),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func (a *App) environment() gate.Environment {
	if a.Env == nil {
		env := gate.Probe()
		a.Env = &env
	}
	return *a.Env
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
