package resolver

import (
	"github.com/firefly-engineering/rizzo/internal/system"
)

// RepoStatus describes one control repository in resolved order.
type RepoStatus struct {
	// Repo is the path as written in control_repos.
	Repo string

	// OverridePath is the repo's .rizzo.json.
	OverridePath string

	// HasOverride is true when OverridePath is readable and will be merged.
	HasOverride bool

	// IsProject is true for the repo the invocation started in.
	IsProject bool
}

// RepoStatus reports, for repos as returned in a resolved config, where
// each override lives and whether it takes part in the merge.
func (r *Resolver) RepoStatus(repos []string) []RepoStatus {
	projectDir, found := r.ProjectDir()

	statuses := make([]RepoStatus, 0, len(repos))
	for _, repo := range repos {
		fp := r.paths.OverridePath(repo)
		statuses = append(statuses, RepoStatus{
			Repo:         repo,
			OverridePath: fp,
			HasOverride:  r.fs.Readable(fp),
			IsProject:    found && system.ExpandPath(repo) == projectDir,
		})
	}
	return statuses
}
