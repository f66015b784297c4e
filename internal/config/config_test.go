package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SourceRoot != "/" {
		t.Errorf("SourceRoot = %q, want %q", cfg.SourceRoot, "/")
	}
	if cfg.OSReleasePath != "/usr/lib/os-release" {
		t.Errorf("OSReleasePath = %q, want %q", cfg.OSReleasePath, "/usr/lib/os-release")
	}
	if cfg.PackageManager != "dnf" {
		t.Errorf("PackageManager = %q, want %q", cfg.PackageManager, "dnf")
	}
	if cfg.OSFamily != "fedora" {
		t.Errorf("OSFamily = %q, want %q", cfg.OSFamily, "fedora")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{"empty source root", func(c *Config) { c.SourceRoot = "" }, "sourceRoot is required"},
		{"relative source root", func(c *Config) { c.SourceRoot = "sysroot" }, "absolute path"},
		{"empty os-release", func(c *Config) { c.OSReleasePath = "" }, "osReleasePath is required"},
		{"empty package manager", func(c *Config) { c.PackageManager = "" }, "packageManager is required"},
		{"package manager with args", func(c *Config) { c.PackageManager = "dnf -q" }, "bare program name"},
		{"package manager path", func(c *Config) { c.PackageManager = "/usr/bin/dnf" }, "bare program name"},
		{"empty family", func(c *Config) { c.OSFamily = "" }, "osFamily is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestSSHSnippetPath(t *testing.T) {
	if got := SSHSnippetName(); got != "osbuild-cfg-root-ssh.conf" {
		t.Errorf("SSHSnippetName() = %q", got)
	}
	if got := SSHSnippetPath(); got != "usr/lib/tmpfiles.d/osbuild-cfg-root-ssh.conf" {
		t.Errorf("SSHSnippetPath() = %q", got)
	}
}
