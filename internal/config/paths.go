package config

import (
	"path/filepath"

	"github.com/firefly-engineering/rizzo/internal/system"
)

const (
	// MarkerFile is the file name of the personal config and of every
	// control repository override.
	MarkerFile = ".rizzo.json"

	// DefaultPersonalConfig is where the personal config lives unless
	// --config or RZO_CONFIG says otherwise.
	DefaultPersonalConfig = "~/" + MarkerFile
)

// Paths holds the configured paths
type Paths struct {
	// PersonalConfig is the expanded path of the personal config. It is
	// never treated as a project marker.
	PersonalConfig string

	// HomeConfig is the expanded default personal config. It is never a
	// project marker either, even when --config points elsewhere.
	HomeConfig string

	// MarkerFile is the override file name looked up in each repo.
	MarkerFile string
}

// DefaultPaths returns the default path configuration
func DefaultPaths() *Paths {
	return NewPaths(DefaultPersonalConfig)
}

// NewPaths returns paths rooted at the given personal config location.
func NewPaths(personalConfig string) *Paths {
	return &Paths{
		PersonalConfig: system.ExpandPath(personalConfig),
		HomeConfig:     system.ExpandPath(DefaultPersonalConfig),
		MarkerFile:     MarkerFile,
	}
}

// OverridePath returns the override file path for a control repository.
func (p *Paths) OverridePath(repo string) string {
	return filepath.Join(system.ExpandPath(repo), p.MarkerFile)
}

// IsPersonalConfig reports whether path is the configured personal config or
// the default one in the home directory.
func (p *Paths) IsPersonalConfig(path string) bool {
	return path == p.PersonalConfig || path == p.HomeConfig
}
