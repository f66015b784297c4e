package blueprint

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/osbuild/osbuild-cfg/internal/config"
	"github.com/osbuild/osbuild-cfg/internal/errors"
	"github.com/osbuild/osbuild-cfg/internal/fsroot"
	"github.com/osbuild/osbuild-cfg/internal/logging"
	"github.com/osbuild/osbuild-cfg/internal/render"
	"github.com/osbuild/osbuild-cfg/internal/tmpfiles"
)

// Render queues a single install command for all packages.
func (p Packages) Render(_ *fsroot.Dir, out *render.Rendered) (bool, error) {
	if len(p) == 0 {
		return false, nil
	}

	argv := []string{out.PackageManager, "install", "-y"}
	for _, pkg := range p {
		argv = append(argv, pkg.Spec())
	}
	logging.Debug("queueing package install", "count", len(p))
	out.Queue(argv...)
	return true, nil
}

// Render writes a tmpfiles.d snippet that provisions root's
// authorized_keys on the target system, one line per key. The snippet is
// rewritten from scratch on every render.
func (keys SSHKeys) Render(src *fsroot.Dir, out *render.Rendered) (bool, error) {
	if len(keys) == 0 {
		return false, nil
	}

	for _, key := range keys {
		if key.User != "root" {
			return false, errors.UnsupportedUser(key.User)
		}
	}

	// tmpfiles runs later against the real filesystem, so resolve
	// /root -> /var/roothome now against the source root.
	home, err := resolveRootHome(src)
	if err != nil {
		return false, err
	}

	lines := make([]tmpfiles.Line, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, tmpfiles.AuthorizedKeys(home, "root", key.Pubkey))
	}

	if err := out.Filesystem.MkdirAll(config.TmpfilesDir, 0755); err != nil {
		return false, errors.IOError("creating tmpfiles.d directory", err)
	}
	snippet := config.SSHSnippetPath()
	if err := out.Filesystem.WriteFileAtomic(snippet, tmpfiles.Render(lines), 0600); err != nil {
		return false, errors.IOError("writing ssh tmpfiles snippet", err)
	}

	logging.Debug("wrote ssh tmpfiles snippet", "path", snippet, "keys", len(keys), "home", home)
	return true, nil
}

// resolveRootHome returns root's home relative to src: the target of the
// root symlink if there is one, otherwise "root".
func resolveRootHome(src *fsroot.Dir) (string, error) {
	info, err := src.Lstat(config.RootHome)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.RootHome, nil
		}
		return "", errors.IOError("inspecting /root", err)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return config.RootHome, nil
	}

	target, err := src.Readlink(config.RootHome)
	if err != nil {
		return "", errors.IOError("reading /root symlink", err)
	}
	// Relative targets are relative to "/", where the link lives.
	return strings.TrimPrefix(path.Clean("/"+target), "/"), nil
}

// Render applies customizations first, then packages.
func (b *Blueprint) Render(src *fsroot.Dir, out *render.Rendered) (bool, error) {
	changed := false

	if b.Customizations != nil {
		c, err := b.Customizations.SSHKeys.Render(src, out)
		if err != nil {
			return false, fmt.Errorf("rendering blueprint: %w", err)
		}
		changed = changed || c
	}

	c, err := b.Packages.Render(src, out)
	if err != nil {
		return false, fmt.Errorf("rendering blueprint: %w", err)
	}
	changed = changed || c

	return changed, nil
}

var (
	_ render.Renderer = Packages(nil)
	_ render.Renderer = SSHKeys(nil)
	_ render.Renderer = (*Blueprint)(nil)
)
