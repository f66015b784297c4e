package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// ProgramName names generated artifacts (e.g. the tmpfiles.d snippet).
	ProgramName = "osbuild-cfg"

	// TmpfilesDir is where vendor tmpfiles.d snippets live, relative to a root.
	TmpfilesDir = "usr/lib/tmpfiles.d"

	// RootHome is root's home directory, relative to a root.
	RootHome = "root"

	DefaultSourceRoot     = "/"
	DefaultOSReleasePath  = "/usr/lib/os-release"
	DefaultPackageManager = "dnf"
	DefaultOSFamily       = "fedora"

	// ContainerEnvVar is set by podman, buildah and systemd-nspawn inside containers.
	ContainerEnvVar = "container"
)

// Config holds the settings a run depends on.
type Config struct {
	// SourceRoot is the filesystem being configured. Symlinks such as
	// /root -> var/roothome are resolved against it.
	SourceRoot string

	// OSReleasePath is read to verify the OS family before a real run.
	OSReleasePath string

	// PackageManager is the program queued for package installation.
	PackageManager string

	// OSFamily must appear in os-release ID or ID_LIKE.
	OSFamily string
}

// DefaultConfig returns the configuration used inside a container build.
func DefaultConfig() *Config {
	return &Config{
		SourceRoot:     DefaultSourceRoot,
		OSReleasePath:  DefaultOSReleasePath,
		PackageManager: DefaultPackageManager,
		OSFamily:       DefaultOSFamily,
	}
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	if c.SourceRoot == "" {
		return fmt.Errorf("sourceRoot is required")
	}
	if !filepath.IsAbs(c.SourceRoot) {
		return fmt.Errorf("sourceRoot must be an absolute path (got %q)", c.SourceRoot)
	}
	if c.OSReleasePath == "" {
		return fmt.Errorf("osReleasePath is required")
	}
	if c.PackageManager == "" {
		return fmt.Errorf("packageManager is required")
	}
	if strings.ContainsAny(c.PackageManager, " \t/") {
		return fmt.Errorf("invalid packageManager %q: must be a bare program name", c.PackageManager)
	}
	if c.OSFamily == "" {
		return fmt.Errorf("osFamily is required")
	}
	return nil
}

// SSHSnippetName returns the file name of the root ssh tmpfiles.d snippet.
func SSHSnippetName() string {
	return ProgramName + "-root-ssh.conf"
}

// SSHSnippetPath returns the snippet path relative to a root.
func SSHSnippetPath() string {
	return filepath.Join(TmpfilesDir, SSHSnippetName())
}
