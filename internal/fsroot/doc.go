// Package fsroot provides directory handles scoped to a root.
//
// A Dir is bound once to a directory on the host. All of its operations
// take relative paths, and path resolution goes through
// filepath-securejoin, so ".." and symlinks (including absolute symlink
// targets) are interpreted relative to the root and can never escape it.
// Blueprint rendering writes exclusively through a Dir, which is what keeps
// user-supplied content from landing outside the target tree.
//
// Lstat and Readlink stop at the last path component so callers can
// inspect symlinks inside the tree explicitly:
//
//	info, err := root.Lstat("root")
//	if err == nil && info.Mode()&fs.ModeSymlink != 0 {
//	    target, err := root.Readlink("root")
//	    ...
//	}
package fsroot
