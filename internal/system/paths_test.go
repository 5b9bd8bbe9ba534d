package system

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde only", "~", home},
		{"tilde prefix", "~/.rizzo.json", filepath.Join(home, ".rizzo.json")},
		{"absolute", "/srv/control", "/srv/control"},
		{"unclean absolute", "/srv/control/../ops/", "/srv/ops"},
		{"tilde user is not expanded", "/x/~other", "/x/~other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.in); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandPath_Relative(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if got, want := ExpandPath("control"), filepath.Join(wd, "control"); got != want {
		t.Errorf("ExpandPath(relative) = %q, want %q", got, want)
	}
}
