package testutil

import (
	"strings"
	"testing"

	"github.com/osbuild/osbuild-cfg/internal/app"
	"github.com/osbuild/osbuild-cfg/internal/blueprint"
)

func TestLoadFullBlueprint(t *testing.T) {
	bp, err := blueprint.Parse(MustFixture(t, FullBlueprint))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if len(bp.Packages) != 4 {
		t.Errorf("Packages = %d, want 4", len(bp.Packages))
	}
	if bp.Customizations == nil || len(bp.Customizations.SSHKeys) != 1 {
		t.Fatal("Customizations should contain one ssh key")
	}
	if bp.Customizations.SSHKeys[0].User != "root" {
		t.Errorf("User = %q, want root", bp.Customizations.SSHKeys[0].User)
	}
}

func TestLoadPackagesBlueprint(t *testing.T) {
	bp, err := blueprint.Parse(MustFixture(t, PackagesBlueprint))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	specs := make([]string, 0, len(bp.Packages))
	for _, p := range bp.Packages {
		specs = append(specs, p.Spec())
	}
	if got := "dnf install -y " + strings.Join(specs, " "); got != PackagesCommand {
		t.Errorf("specs = %q, want %q", got, PackagesCommand)
	}
}

func TestLoadUnknownFieldBlueprint(t *testing.T) {
	_, err := blueprint.Parse(MustFixture(t, UnknownFieldBlueprint))
	if err == nil {
		t.Fatal("Parse() should reject unknown fields")
	}
	if !strings.Contains(err.Error(), "foo") {
		t.Errorf("error %q should name the unknown key", err)
	}
}

func TestLoadFixture_NotFound(t *testing.T) {
	_, err := LoadFixture("nonexistent.toml")
	if err == nil {
		t.Error("LoadFixture should error for nonexistent file")
	}
}

func TestNewTestEnv(t *testing.T) {
	env := NewTestEnv(t)

	if app.Default != env.App {
		t.Error("NewTestEnv should install its App as app.Default")
	}
	if env.App.Env.EUID == 0 || env.App.Env.InContainer {
		t.Error("environment should start unprivileged")
	}
	if !Exists(env.Executable) {
		t.Error("fake executable should exist")
	}

	env.AsRoot().InContainer()
	if app.Default.Env.EUID != 0 || !app.Default.Env.InContainer {
		t.Errorf("Env = %+v, want root in container", *app.Default.Env)
	}
}
