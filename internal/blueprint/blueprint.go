package blueprint

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Blueprint is the root of a blueprint document.
type Blueprint struct {
	Packages       Packages        `toml:"packages"`
	Customizations *Customizations `toml:"customizations"`
}

// Packages is the list of packages to install, in request order.
// Duplicates are kept.
type Packages []Package

// Package requests a package, optionally pinned to a version.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Customizations holds the non-package parts of a blueprint.
type Customizations struct {
	SSHKeys SSHKeys `toml:"sshkey"`
}

// SSHKeys is the list of keys to authorize.
type SSHKeys []SSHKey

// SSHKey authorizes Pubkey for User. The key text is not interpreted.
type SSHKey struct {
	User   string `toml:"user"`
	Pubkey string `toml:"key"`
}

// Parse decodes a blueprint. Keys that do not map onto the schema are an
// error, so a misspelled directive is never silently ignored.
func Parse(data []byte) (*Blueprint, error) {
	var bp Blueprint
	md, err := toml.Decode(string(data), &bp)
	if err != nil {
		return nil, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown field(s): %s", strings.Join(keys, ", "))
	}

	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return &bp, nil
}

// Validate checks required fields.
func (b *Blueprint) Validate() error {
	for i, pkg := range b.Packages {
		if pkg.Name == "" {
			return fmt.Errorf("packages[%d]: name is required", i)
		}
	}
	if b.Customizations != nil {
		for i, key := range b.Customizations.SSHKeys {
			if key.User == "" {
				return fmt.Errorf("customizations.sshkey[%d]: user is required", i)
			}
			if strings.TrimSpace(key.Pubkey) == "" {
				return fmt.Errorf("customizations.sshkey[%d]: key is required", i)
			}
		}
	}
	return nil
}

// Spec returns the package manager argument: name, or name-version.
func (p Package) Spec() string {
	if p.Version != "" {
		return p.Name + "-" + p.Version
	}
	return p.Name
}
