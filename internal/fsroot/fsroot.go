package fsroot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// ErrAbsolutePath is returned when an operation is given an absolute path.
var ErrAbsolutePath = errors.New("path must be relative to the root")

// Dir is a directory handle bound to a root. Every path passed to its
// methods is relative, and symlinks and ".." are resolved as if the root
// were "/", so no operation can reach outside of it.
type Dir struct {
	root string
}

// Open binds an existing directory.
func Open(path string) (*Dir, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening root %s: not a directory", abs)
	}
	return &Dir{root: abs}, nil
}

// OpenTemp creates a new temporary directory (see os.MkdirTemp) and binds it.
// The caller is responsible for removing it.
func OpenTemp(dir, pattern string) (*Dir, error) {
	path, err := os.MkdirTemp(dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("creating temporary root: %w", err)
	}
	return Open(path)
}

// Path returns the absolute path of the root on the host.
func (d *Dir) Path() string {
	return d.root
}

func (d *Dir) resolve(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s", ErrAbsolutePath, rel)
	}
	path, err := securejoin.SecureJoin(d.root, rel)
	if err != nil {
		return "", fmt.Errorf("resolving %s under %s: %w", rel, d.root, err)
	}
	return path, nil
}

// resolveNoFollow resolves every component of rel except the last one,
// which is returned as-is so it can be inspected or replaced rather
// than followed.
func (d *Dir) resolveNoFollow(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s", ErrAbsolutePath, rel)
	}
	dir, base := filepath.Split(filepath.Clean(rel))
	if base == "." || base == ".." || base == "" {
		return d.resolve(rel)
	}
	parent, err := d.resolve(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(parent, base), nil
}

// Sub returns a handle bound to the directory rel inside this root.
func (d *Dir) Sub(rel string) (*Dir, error) {
	path, err := d.resolve(rel)
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// MkdirAll creates rel and any missing parents. Existing directories are left alone.
func (d *Dir) MkdirAll(rel string, perm fs.FileMode) error {
	path, err := d.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", rel, err)
	}
	return nil
}

// ReadFile reads the file at rel.
func (d *Dir) ReadFile(rel string) ([]byte, error) {
	path, err := d.resolve(rel)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// ReadDir lists the directory at rel, sorted by name.
func (d *Dir) ReadDir(rel string) ([]fs.DirEntry, error) {
	path, err := d.resolve(rel)
	if err != nil {
		return nil, err
	}
	return os.ReadDir(path)
}

// Entries returns the number of entries directly under the root.
func (d *Dir) Entries() (int, error) {
	entries, err := d.ReadDir(".")
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// Lstat describes rel without following it if it is a symlink.
func (d *Dir) Lstat(rel string) (fs.FileInfo, error) {
	path, err := d.resolveNoFollow(rel)
	if err != nil {
		return nil, err
	}
	return os.Lstat(path)
}

// Readlink returns the raw target of the symlink at rel.
func (d *Dir) Readlink(rel string) (string, error) {
	path, err := d.resolveNoFollow(rel)
	if err != nil {
		return "", err
	}
	return os.Readlink(path)
}

// WriteFileAtomic replaces rel with data. The content goes to a temporary
// file in the same directory which is synced and then renamed over rel,
// so readers see either the old file or the complete new one. A symlink
// at rel is replaced, not followed.
func (d *Dir) WriteFileAtomic(rel string, data []byte, perm fs.FileMode) error {
	target, err := d.resolveNoFollow(rel)
	if err != nil {
		return err
	}
	dir := filepath.Dir(target)

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", rel, err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if err := tmpFile.Chmod(perm); err != nil {
		tmpFile.Close()
		return fmt.Errorf("setting permissions on %s: %w", rel, err)
	}
	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing %s: %w", rel, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temporary file for %s: %w", rel, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("renaming %s into place: %w", rel, err)
	}
	success = true

	// Make the rename itself durable.
	if parent, err := os.Open(dir); err == nil {
		_ = parent.Sync()
		parent.Close()
	}
	return nil
}
