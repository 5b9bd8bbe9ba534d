package project

import (
	"github.com/firefly-engineering/rizzo/internal/logging"
	"github.com/firefly-engineering/rizzo/internal/system"
)

// Reorder moves the control repository containing pwd to the front of repos
// so its override is merged first. Repos are compared after ~ expansion;
// the caller's spelling of the moved entry is kept. When pwd is not inside
// a listed repo the order is left alone. The result is always a new slice.
func (l *Locator) Reorder(repos []string, pwd string) []string {
	out := make([]string, 0, len(repos))

	dir, found := l.Locate(pwd)
	if !found {
		return append(out, repos...)
	}

	idx := indexOf(repos, dir)
	if idx < 0 {
		logging.Debug("project dir is not a control repo", "dir", dir)
		return append(out, repos...)
	}

	out = append(out, repos[idx])
	out = append(out, repos[:idx]...)
	out = append(out, repos[idx+1:]...)
	return out
}

func indexOf(repos []string, dir string) int {
	for i, repo := range repos {
		if system.ExpandPath(repo) == dir {
			return i
		}
	}
	return -1
}
