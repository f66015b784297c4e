// Package config provides configuration for osbuild-cfg.
//
// Most values are constants tied to the supported OS family: the package
// manager, the tmpfiles.d directory, and the name of generated snippets.
// The mutable parts live in Config so tests can point a run at a
// temporary source root and os-release file:
//
//	cfg := config.DefaultConfig()
//	cfg.SourceRoot = t.TempDir()
//	if err := cfg.Validate(); err != nil {
//	    ...
//	}
package config
