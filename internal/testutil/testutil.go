// Package testutil provides test utilities for driver and CLI tests
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/osbuild/osbuild-cfg/internal/app"
	"github.com/osbuild/osbuild-cfg/internal/config"
	"github.com/osbuild/osbuild-cfg/internal/gate"
	"github.com/osbuild/osbuild-cfg/internal/logging"
	"github.com/osbuild/osbuild-cfg/internal/system"
)

// FedoraOSRelease is a minimal supported os-release file.
const FedoraOSRelease = "NAME=\"Fedora Linux\"\nID=fedora\nVERSION_ID=40\n"

// TestEnv holds the test environment
type TestEnv struct {
	T          *testing.T
	TmpDir     string
	SourceRoot string
	Executable string
	Config     *config.Config
	Executor   *system.MockExecutor
	Env        gate.Environment
	App        *app.App

	// UserOutput collects the status lines printed by the logging package.
	UserOutput *bytes.Buffer
}

// NewTestEnv creates a test environment with a fake source root, a Fedora
// os-release and a mock executor, and installs its App as app.Default.
// The environment is unprivileged and not eligible for self-consume.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	e := &TestEnv{
		T:          t,
		TmpDir:     tmpDir,
		SourceRoot: filepath.Join(tmpDir, "sysroot"),
		Executable: filepath.Join(tmpDir, "usr", "bin", config.ProgramName),
		Executor:   system.NewMockExecutor(),
		UserOutput: &bytes.Buffer{},
	}

	for _, dir := range []string{e.SourceRoot, filepath.Dir(e.Executable)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(e.Executable, []byte("binary"), 0755); err != nil {
		t.Fatalf("Failed to write fake executable: %v", err)
	}

	e.Config = config.DefaultConfig()
	e.Config.SourceRoot = e.SourceRoot
	e.Config.OSReleasePath = filepath.Join(tmpDir, "os-release")
	e.WriteOSRelease(FedoraOSRelease)

	originalDefault := app.Default
	e.Env = gate.Environment{ExecutablePath: e.Executable, EUID: 1000}
	e.rebuild()

	logging.SetUserOutput(e.UserOutput, e.UserOutput)
	t.Cleanup(func() {
		app.SetDefault(originalDefault)
		logging.SetUserOutput(nil, nil)
	})

	return e
}

func (e *TestEnv) rebuild() {
	e.App = app.New(
		app.WithConfig(e.Config),
		app.WithExecutor(e.Executor),
		app.WithEnvironment(e.Env),
	)
	app.SetDefault(e.App)
}

// AsRoot makes the environment privileged.
func (e *TestEnv) AsRoot() *TestEnv {
	e.Env.EUID = 0
	e.rebuild()
	return e
}

// InContainer marks the environment as a container build, which together
// with AsRoot makes self-consume eligible.
func (e *TestEnv) InContainer() *TestEnv {
	e.Env.InContainer = true
	e.rebuild()
	return e
}

// WriteOSRelease replaces the os-release file.
func (e *TestEnv) WriteOSRelease(content string) {
	e.T.Helper()

	if err := os.WriteFile(e.Config.OSReleasePath, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write os-release: %v", err)
	}
}

// WriteBlueprint writes a blueprint file and returns its path.
func (e *TestEnv) WriteBlueprint(name string, data []byte) string {
	e.T.Helper()

	path := filepath.Join(e.TmpDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.T.Fatalf("Failed to write blueprint: %v", err)
	}
	return path
}

// WriteFixture copies an embedded fixture into the environment.
func (e *TestEnv) WriteFixture(name string) string {
	e.T.Helper()
	return e.WriteBlueprint(name, MustFixture(e.T, name))
}

// LinkRootHome replaces /root in the source root with a symlink.
func (e *TestEnv) LinkRootHome(target string) {
	e.T.Helper()

	if err := os.Symlink(target, filepath.Join(e.SourceRoot, config.RootHome)); err != nil {
		e.T.Fatalf("Failed to link root home: %v", err)
	}
}

// ReadFile reads a file relative to root, failing the test if it is missing.
func (e *TestEnv) ReadFile(root, rel string) string {
	e.T.Helper()

	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		e.T.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}

// Exists reports whether path exists without following symlinks.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
