// Package project detects which control repository rzo was started from.
//
// A project is any directory holding a .rizzo.json marker, other than the
// personal config location. The Locator walks upward from the working
// directory, at most MaxDepth levels, and remembers its answer:
//
//	l := project.NewLocator(fsys, paths)
//	dir, ok := l.Locate(pwd)
//
// Reorder uses that answer to put the caller's repo first in control_repos:
//
//	repos = l.Reorder(repos, pwd)
//
// The filesystem root is never reported as a project.
package project
