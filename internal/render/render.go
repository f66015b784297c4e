// Package render holds the output of translating a blueprint: commands to
// run later and a directory into which files are staged.
package render

import (
	shellquote "github.com/kballard/go-shellquote"

	"github.com/osbuild/osbuild-cfg/internal/config"
	"github.com/osbuild/osbuild-cfg/internal/fsroot"
)

// Command is an argument vector; the first element is the program.
type Command []string

// Program returns the program name, or "" for an empty command.
func (c Command) Program() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Args returns the arguments after the program name.
func (c Command) Args() []string {
	if len(c) < 2 {
		return nil
	}
	return c[1:]
}

// String quotes the command for display as a shell line.
func (c Command) String() string {
	return shellquote.Join(c...)
}

// Rendered accumulates the effects of a render pass.
// Commands run in the order they were queued, after rendering finishes.
type Rendered struct {
	Commands []Command

	// Filesystem is the root that file artifacts are written into: the
	// real target root, or a dry-run or temporary directory.
	Filesystem *fsroot.Dir

	// PackageManager is the program used for package installation.
	PackageManager string
}

// New returns an empty accumulator writing into filesystem.
func New(filesystem *fsroot.Dir) *Rendered {
	return &Rendered{
		Filesystem:     filesystem,
		PackageManager: config.DefaultPackageManager,
	}
}

// Queue appends a command. argv is copied.
func (r *Rendered) Queue(argv ...string) {
	cmd := make(Command, len(argv))
	copy(cmd, argv)
	r.Commands = append(r.Commands, cmd)
}

// Renderer translates one blueprint entity into r. src is the filesystem
// being configured, which may differ from r.Filesystem in a dry run.
// It reports whether anything was queued or written.
type Renderer interface {
	Render(src *fsroot.Dir, r *Rendered) (bool, error)
}
