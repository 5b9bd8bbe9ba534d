package project

import (
	"path/filepath"

	"github.com/firefly-engineering/rizzo/internal/config"
	"github.com/firefly-engineering/rizzo/internal/logging"
	"github.com/firefly-engineering/rizzo/internal/system"
)

// MaxDepth bounds the upward walk so degenerate directory chains always
// terminate.
const MaxDepth = 100

// Locator finds the control repository the user is working in: the nearest
// ancestor directory holding a marker file that is not a personal config.
// The first answer is kept for the lifetime of the Locator.
type Locator struct {
	fs    system.FileSystem
	paths *config.Paths

	located bool
	dir     string
	found   bool
}

// NewLocator creates a Locator that checks markers through fsys.
func NewLocator(fsys system.FileSystem, paths *config.Paths) *Locator {
	return &Locator{fs: fsys, paths: paths}
}

// Locate walks up from startDir and returns the directory of the first
// project marker. Only the first call consults the filesystem; later calls
// return the same answer whatever their argument.
func (l *Locator) Locate(startDir string) (string, bool) {
	if l.located {
		return l.dir, l.found
	}

	l.dir, l.found = l.walk(system.ExpandPath(startDir))
	l.located = true

	logging.Debug("project dir", "start", startDir, "dir", l.dir, "found", l.found)
	return l.dir, l.found
}

func (l *Locator) walk(dir string) (string, bool) {
	for i := 0; i < MaxDepth; i++ {
		marker := filepath.Join(dir, l.paths.MarkerFile)
		if !l.paths.IsPersonalConfig(marker) && l.fs.Readable(marker) {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir || isRoot(parent) {
			return "", false
		}
		dir = parent
	}
	return "", false
}

func isRoot(dir string) bool {
	return filepath.Dir(dir) == dir
}
