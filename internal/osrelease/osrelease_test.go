package osrelease

import "testing"

const fedora = `NAME="Fedora Linux"
VERSION="40 (Container Image)"
ID=fedora
VERSION_ID=40
PRETTY_NAME="Fedora Linux 40 (Container Image)"
`

const centos = `NAME="CentOS Stream"
ID="centos"
ID_LIKE="rhel fedora"
VERSION_ID="9"
`

const debian = `# comment
ID=debian
VERSION_CODENAME=bookworm
garbage line
`

func TestParse(t *testing.T) {
	rel := Parse([]byte(centos))

	if rel.ID != "centos" {
		t.Errorf("ID = %q, want %q", rel.ID, "centos")
	}
	if len(rel.IDLike) != 2 || rel.IDLike[0] != "rhel" || rel.IDLike[1] != "fedora" {
		t.Errorf("IDLike = %v, want [rhel fedora]", rel.IDLike)
	}
	if rel.Fields["NAME"] != "CentOS Stream" {
		t.Errorf("NAME = %q", rel.Fields["NAME"])
	}
}

func TestParse_SkipsJunk(t *testing.T) {
	rel := Parse([]byte(debian))

	if rel.ID != "debian" {
		t.Errorf("ID = %q, want %q", rel.ID, "debian")
	}
	if len(rel.Fields) != 2 {
		t.Errorf("Fields = %v, want 2 entries", rel.Fields)
	}
}

func TestIsLike(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"fedora itself", fedora, true},
		{"fedora-like", centos, true},
		{"unrelated", debian, false},
		{"empty", "", false},
		{"substring is not a match", "ID=notfedora\nID_LIKE=fedoraish\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse([]byte(tt.content)).IsLike("fedora"); got != tt.want {
				t.Errorf("IsLike(fedora) = %v, want %v", got, tt.want)
			}
		})
	}
}
