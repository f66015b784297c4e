// Package testutil provides test fixtures and utilities.
//
// This package contains embedded TOML blueprint fixtures and a TestEnv
// that wires a fake source root, os-release file and mock executor into
// app.Default.
//
// # Fixtures
//
// Blueprints are embedded using go:embed:
//
//	fixtures/full_blueprint.toml
//	fixtures/packages_blueprint.toml
//	fixtures/unknown_field_blueprint.toml
//	fixtures/nonroot_sshkey_blueprint.toml
//
// # Usage in Tests
//
//	func TestApply(t *testing.T) {
//	    env := testutil.NewTestEnv(t).AsRoot()
//	    path := env.WriteFixture(testutil.FullBlueprint)
//
//	    if _, err := env.App.Run(ctx, app.RunOptions{Path: path}); err != nil {
//	        t.Fatal(err)
//	    }
//	}
package testutil
