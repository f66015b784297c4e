package testutil

import (
	"embed"
	"testing"
)

//go:embed fixtures/*.toml
var fixturesFS embed.FS

// Fixture names.
const (
	FullBlueprint          = "full_blueprint.toml"
	PackagesBlueprint      = "packages_blueprint.toml"
	UnknownFieldBlueprint  = "unknown_field_blueprint.toml"
	NonRootSSHKeyBlueprint = "nonroot_sshkey_blueprint.toml"
)

// PackagesCommand is the command PackagesBlueprint and FullBlueprint queue.
const PackagesCommand = "dnf install -y httpd-2.4 mariadb-server mariadb php-5.1"

// LoadFixture loads a blueprint fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// MustFixture loads a fixture or fails the test.
func MustFixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	return data
}
