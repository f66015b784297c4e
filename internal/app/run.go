package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/osbuild/osbuild-cfg/internal/blueprint"
	"github.com/osbuild/osbuild-cfg/internal/errors"
	"github.com/osbuild/osbuild-cfg/internal/fsroot"
	"github.com/osbuild/osbuild-cfg/internal/gate"
	"github.com/osbuild/osbuild-cfg/internal/logging"
	"github.com/osbuild/osbuild-cfg/internal/render"
)

// StdinPath names standard input as the blueprint source.
const StdinPath = "-"

// RunOptions selects the blueprint and the mode of a run.
type RunOptions struct {
	// Path is the blueprint file, or StdinPath.
	Path string

	// DryRunDir, when set, receives the staged files instead of the real
	// root, and commands are printed instead of executed.
	DryRunDir string
}

// Result describes a completed run.
type Result struct {
	Changed      bool
	DryRun       bool
	Commands     []render.Command
	SelfConsumed bool
}

// Run applies a blueprint: gate checks, parse, render, then execute
// (or print) the queued commands. Nothing is mutated until every check
// and the parse have passed.
func (a *App) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.Path == "" {
		return nil, errors.New(errors.ExitGeneralError, "blueprint path is required")
	}
	if err := a.Config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, "invalid configuration", err)
	}

	env := a.environment()
	dryRun := opts.DryRunDir != ""

	selfConsume := false
	if err := gate.CheckSelfConsume(env); err != nil {
		logging.Debug("self-consume disabled", "reason", err)
	} else {
		selfConsume = !dryRun
	}

	if dryRun {
		if err := gate.CheckDryRunTarget(a.FS, opts.DryRunDir); err != nil {
			return nil, err
		}
	} else {
		if err := gate.CheckPrivilege(env.EUID); err != nil {
			return nil, err
		}
		osRelease, err := a.FS.ReadFile(a.Config.OSReleasePath)
		if err != nil {
			return nil, errors.IOError(fmt.Sprintf("reading %s", a.Config.OSReleasePath), err)
		}
		if err := gate.CheckOSFamily(osRelease, a.Config.OSFamily); err != nil {
			return nil, err
		}
	}

	bp, err := a.loadBlueprint(opts.Path)
	if err != nil {
		return nil, err
	}

	src, err := fsroot.Open(a.Config.SourceRoot)
	if err != nil {
		return nil, errors.IOError("opening source root", err)
	}
	target := src
	if dryRun {
		if err := a.FS.MkdirAll(opts.DryRunDir, 0755); err != nil {
			return nil, errors.IOError(fmt.Sprintf("creating dry-run directory %s", opts.DryRunDir), err)
		}
		if target, err = fsroot.Open(opts.DryRunDir); err != nil {
			return nil, errors.IOError("opening dry-run directory", err)
		}
	}

	rendered := render.New(target)
	rendered.PackageManager = a.Config.PackageManager

	logging.Debug("rendering blueprint", "path", opts.Path, "target", target.Path())
	changed, err := bp.Render(src, rendered)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Changed:  changed,
		DryRun:   dryRun,
		Commands: rendered.Commands,
	}

	if dryRun {
		if err := a.printPlan(rendered); err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := a.execute(ctx, rendered.Commands); err != nil {
		return nil, err
	}

	if selfConsume {
		if err := a.selfConsume(opts.Path, env.ExecutablePath); err != nil {
			return nil, err
		}
		result.SelfConsumed = true
	}
	return result, nil
}

func (a *App) loadBlueprint(p string) (*blueprint.Blueprint, error) {
	var (
		data []byte
		err  error
		name = p
	)
	if p == StdinPath {
		name = "<stdin>"
		data, err = io.ReadAll(a.Stdin)
	} else {
		data, err = a.FS.ReadFile(p)
	}
	if err != nil {
		return nil, errors.IOError(fmt.Sprintf("reading %s", name), err)
	}

	bp, err := blueprint.Parse(data)
	if err != nil {
		return nil, errors.ParseError(name, err)
	}
	return bp, nil
}

// execute runs commands in queue order and stops at the first failure.
func (a *App) execute(ctx context.Context, commands []render.Command) error {
	for _, cmd := range commands {
		logging.UserInfo("Running: %s", cmd)
		if err := a.Executor.Run(ctx, a.Stdout, a.Stderr, cmd.Program(), cmd.Args()...); err != nil {
			return errors.CommandFailed(cmd.Program(), err)
		}
	}
	return nil
}

// printPlan prints the commands a real run would execute and the files
// staged in the dry-run directory.
func (a *App) printPlan(rendered *render.Rendered) error {
	if len(rendered.Commands) == 0 {
		fmt.Fprintln(a.Stdout, "No commands to execute")
	} else {
		fmt.Fprintln(a.Stdout, "Commands to execute:")
		for _, cmd := range rendered.Commands {
			fmt.Fprintf(a.Stdout, "  %s\n", cmd)
		}
	}

	t, err := stagedTree(rendered.Filesystem)
	if err != nil {
		return errors.IOError("listing dry-run directory", err)
	}
	fmt.Fprintln(a.Stdout, t)
	return nil
}

func stagedTree(d *fsroot.Dir) (*tree.Tree, error) {
	t := tree.Root(d.Path())
	if err := addTreeChildren(d, ".", t); err != nil {
		return nil, err
	}
	return t, nil
}

func addTreeChildren(d *fsroot.Dir, rel string, t *tree.Tree) error {
	entries, err := d.ReadDir(rel)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			t.Child(e.Name())
			continue
		}
		sub := tree.Root(e.Name())
		if err := addTreeChildren(d, path.Join(rel, e.Name()), sub); err != nil {
			return err
		}
		t.Child(sub)
	}
	return nil
}

// selfConsume removes the blueprint (unless read from stdin) and the
// running executable so neither ends up in the final image.
func (a *App) selfConsume(input, executable string) error {
	var paths []string
	if input != StdinPath {
		paths = append(paths, input)
	}
	paths = append(paths, executable)

	for _, p := range paths {
		if err := a.FS.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.IOError(fmt.Sprintf("removing %s", p), err)
		}
		logging.Debug("removed", "path", p)
	}
	return nil
}
