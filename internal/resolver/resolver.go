package resolver

import (
	"encoding/json"
	"fmt"

	"github.com/firefly-engineering/rizzo/internal/config"
	"github.com/firefly-engineering/rizzo/internal/document"
	"github.com/firefly-engineering/rizzo/internal/errors"
	"github.com/firefly-engineering/rizzo/internal/logging"
	"github.com/firefly-engineering/rizzo/internal/project"
	"github.com/firefly-engineering/rizzo/internal/system"
	"github.com/firefly-engineering/rizzo/internal/validate"
)

// ControlReposKey is the personal config key listing control repositories.
const ControlReposKey = "control_repos"

// Resolver builds the effective config for one invocation. It owns the
// project Locator, so the project dir is computed at most once per Resolver.
type Resolver struct {
	fs      system.FileSystem
	paths   *config.Paths
	pwd     string
	locator *project.Locator
}

// New creates a Resolver reading files through fsys and detecting the
// current project from pwd.
func New(fsys system.FileSystem, paths *config.Paths, pwd string) *Resolver {
	return &Resolver{
		fs:      fsys,
		paths:   paths,
		pwd:     pwd,
		locator: project.NewLocator(fsys, paths),
	}
}

// Resolve loads the personal config, reorders its control repos so the
// current project comes first, merges every readable repo override on top
// in that order and validates the result.
func (r *Resolver) Resolve(personalConfigPath string) (document.Document, error) {
	base, err := document.Load(r.fs, personalConfigPath)
	if err != nil {
		return nil, err
	}

	repos, err := ControlRepos(base)
	if err != nil {
		return nil, err
	}

	repos = r.locator.Reorder(repos, r.pwd)
	base[ControlReposKey] = toList(repos)

	merged, err := r.LoadRepoConfigs(base, repos)
	if err != nil {
		return nil, err
	}

	if logging.Verbose {
		if data, err := json.MarshalIndent(merged, "", "  "); err == nil {
			logging.Debug("merged configuration", "config", string(data))
		}
	}

	if err := validate.Config(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// LoadRepoConfigs merges the override of each repo onto a copy of base, in
// order. Overrides that are missing or unreadable are skipped; an override
// that exists but does not parse is an error.
func (r *Resolver) LoadRepoConfigs(base document.Document, repos []string) (document.Document, error) {
	acc := document.Clone(base)
	if acc == nil {
		acc = document.Document{}
	}

	for _, repo := range repos {
		fp := r.paths.OverridePath(repo)
		if !r.fs.Readable(fp) {
			if _, err := r.fs.Stat(fp); err == nil {
				logging.Warn("skipped repo config that exists but is not readable", "path", fp)
			} else {
				logging.Debug("skipped missing repo config", "path", fp)
			}
			continue
		}

		override, err := document.Load(r.fs, fp)
		if err != nil {
			return nil, err
		}
		acc = document.Merge(acc, override)
	}

	return acc, nil
}

// ProjectDir returns the control repository the invocation started in.
func (r *Resolver) ProjectDir() (string, bool) {
	return r.locator.Locate(r.pwd)
}

// ControlRepos returns the control_repos list of a personal config.
func ControlRepos(doc document.Document) ([]string, error) {
	raw, ok := doc[ControlReposKey]
	if !ok {
		return nil, errors.ConfigError("personal config is missing control_repos", nil)
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, errors.ConfigError("invalid personal config",
			fmt.Errorf("control_repos must be a list, got %s", document.Kind(raw)))
	}

	repos := make([]string, 0, len(list))
	for i, v := range list {
		repo, ok := document.String(v)
		if !ok {
			return nil, errors.ConfigError("invalid personal config",
				fmt.Errorf("control_repos[%d] must be a string, got %s", i, document.Kind(v)))
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

func toList(repos []string) []any {
	list := make([]any, len(repos))
	for i, repo := range repos {
		list[i] = repo
	}
	return list
}
