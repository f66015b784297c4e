// Package tmpfiles builds systemd tmpfiles.d snippets.
//
// See tmpfiles.d(5). Only the fields osbuild-cfg needs are modeled; every
// line is rendered as "type path mode user group age [argument]".
package tmpfiles

import (
	"encoding/base64"
	"path"
	"strings"
)

// Line types used by osbuild-cfg.
const (
	// TypeFileForce creates the file if missing and writes Argument into it,
	// truncating any previous content. "~" marks the argument as base64.
	TypeFileForce = "f~"
	TypeDirectory = "d"
)

// Line is a single tmpfiles.d entry. Empty fields render as "-".
type Line struct {
	Type     string
	Path     string
	Mode     string
	User     string
	Group    string
	Age      string
	Argument string
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// String renders the line without a trailing newline.
func (l Line) String() string {
	fields := []string{
		l.Type,
		l.Path,
		orDash(l.Mode),
		orDash(l.User),
		orDash(l.Group),
		orDash(l.Age),
	}
	if l.Argument != "" {
		fields = append(fields, l.Argument)
	}
	return strings.Join(fields, " ")
}

// AuthorizedKeys returns a line that writes pubkey as the sole content of
// <home>/.ssh/authorized_keys, owned by user with mode 600. home is
// relative to the filesystem root (e.g. "root" or "var/roothome").
func AuthorizedKeys(home, user, pubkey string) Line {
	return Line{
		Type:     TypeFileForce,
		Path:     path.Join("/", home, ".ssh", "authorized_keys"),
		Mode:     "600",
		User:     user,
		Group:    user,
		Argument: base64.StdEncoding.EncodeToString([]byte(pubkey)),
	}
}

// Render joins lines into snippet content, one per line, newline-terminated.
func Render(lines []Line) []byte {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
