package gate

import (
	goerrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/osbuild/osbuild-cfg/internal/config"
	"github.com/osbuild/osbuild-cfg/internal/errors"
	"github.com/osbuild/osbuild-cfg/internal/logging"
	"github.com/osbuild/osbuild-cfg/internal/osrelease"
	"github.com/osbuild/osbuild-cfg/internal/system"
)

// Reasons self-consume is disabled.
var (
	ErrDevelopmentBuild = goerrors.New("executable looks like a development build")
	ErrNotInContainer   = goerrors.New("not running inside a container")
	ErrNotRoot          = goerrors.New("not running as root")
)

// Environment is the ambient process state the checks depend on.
type Environment struct {
	// ExecutablePath is the path of the running binary ("" if unknown).
	ExecutablePath string

	// InContainer is true when the container environment variable is set.
	InContainer bool

	// EUID is the effective user id.
	EUID int
}

// Probe reads the environment of the current process.
func Probe() Environment {
	exe, err := os.Executable()
	if err != nil {
		logging.Debug("cannot determine executable path", "error", err)
		exe = ""
	}
	_, inContainer := os.LookupEnv(config.ContainerEnvVar)

	return Environment{
		ExecutablePath: exe,
		InContainer:    inContainer,
		EUID:           os.Geteuid(),
	}
}

// IsDevelopmentBuild reports whether path looks like a binary produced by
// "go run" / "go test" rather than an installed one. An unknown path
// counts as a development build.
func IsDevelopmentBuild(path string) bool {
	if path == "" {
		return true
	}
	if strings.HasSuffix(filepath.Base(path), ".test") {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if strings.HasPrefix(part, "go-build") {
			return true
		}
	}
	return false
}

// CheckSelfConsume returns nil if the binary may delete itself and its
// input after a successful run: it must be an installed binary, running
// as root inside a container.
func CheckSelfConsume(env Environment) error {
	if IsDevelopmentBuild(env.ExecutablePath) {
		return fmt.Errorf("%w: %q", ErrDevelopmentBuild, env.ExecutablePath)
	}
	if !env.InContainer {
		return fmt.Errorf("%w: $%s is not set", ErrNotInContainer, config.ContainerEnvVar)
	}
	if env.EUID != 0 {
		return fmt.Errorf("%w: euid %d", ErrNotRoot, env.EUID)
	}
	return nil
}

// CheckPrivilege fails unless euid is root.
func CheckPrivilege(euid int) error {
	if euid != 0 {
		return errors.NotPrivileged()
	}
	return nil
}

// CheckOSFamily fails unless the os-release content names family in ID or ID_LIKE.
func CheckOSFamily(osRelease []byte, family string) error {
	rel := osrelease.Parse(osRelease)
	if !rel.IsLike(family) {
		return errors.UnsupportedOS(rel.ID, family)
	}
	return nil
}

// CheckDryRunTarget fails if dir already exists with contents, so output
// from an earlier run is never mixed into a new one. A missing or empty
// directory passes.
func CheckDryRunTarget(fsys system.FileSystem, dir string) error {
	info, err := fsys.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.IOError(fmt.Sprintf("inspecting dry-run directory %s", dir), err)
	}
	if !info.IsDir() {
		return errors.New(errors.ExitPolicyError, fmt.Sprintf("dry-run target %s exists and is not a directory", dir))
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.IOError(fmt.Sprintf("reading dry-run directory %s", dir), err)
	}
	if len(entries) > 0 {
		return errors.DryRunTargetNotEmpty(dir)
	}
	return nil
}
