// Package osrelease reads os-release(5) files.
package osrelease

import (
	"bufio"
	"bytes"
	"strings"
)

// OSRelease holds the identification fields osbuild-cfg cares about.
type OSRelease struct {
	ID     string
	IDLike []string
	Fields map[string]string
}

// Parse reads KEY=VALUE lines. Comments, blank lines and lines without "="
// are skipped; values may be single- or double-quoted.
func Parse(data []byte) *OSRelease {
	rel := &OSRelease{Fields: make(map[string]string)}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))
		rel.Fields[key] = value

		switch key {
		case "ID":
			rel.ID = value
		case "ID_LIKE":
			rel.IDLike = strings.Fields(value)
		}
	}
	return rel
}

func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// IsLike reports whether the OS is family or declares itself like it.
func (r *OSRelease) IsLike(family string) bool {
	if r.ID == family {
		return true
	}
	for _, like := range r.IDLike {
		if like == family {
			return true
		}
	}
	return false
}
