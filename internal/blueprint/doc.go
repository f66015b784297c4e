// Package blueprint parses blueprint documents and renders them.
//
// A blueprint is a TOML document:
//
//	[[packages]]
//	name = "httpd"
//	version = "2.4"
//
//	[[customizations.sshkey]]
//	user = "root"
//	key = "ssh-ed25519 AAAA... user@host"
//
// Parsing is strict: any key outside this schema is rejected.
//
// Rendering does not touch the running system. Packages become a single
// queued "dnf install -y" command, and SSH keys become a tmpfiles.d
// snippet written into the accumulator's filesystem. Customizations are
// always rendered before packages.
package blueprint
