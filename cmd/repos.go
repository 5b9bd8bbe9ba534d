package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/rizzo/internal/resolver"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List control repositories in merge order",
	Args:  cobra.NoArgs,
	RunE:  runRepos,
}

func init() {
	rootCmd.AddCommand(reposCmd)
}

func runRepos(cmd *cobra.Command, args []string) error {
	doc, r, err := resolve()
	if err != nil {
		return err
	}

	repos, err := resolver.ControlRepos(doc)
	if err != nil {
		return err
	}

	if len(repos) == 0 {
		logInfo("No control repositories configured in %s", settings.ConfigPath)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tREPO\tOVERRIDE\tPROJECT")
	fmt.Fprintln(w, "-----\t----\t--------\t-------")

	statuses := r.RepoStatus(repos)
	listed := false
	for i, st := range statuses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, st.Repo, overrideStatus(st), projectMarker(st.IsProject))
		listed = listed || st.IsProject
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if dir, found := r.ProjectDir(); found && !listed {
		logWarning("Current project %s is not listed in control_repos; its .rizzo.json is not merged", dir)
	}
	return nil
}

func overrideStatus(st resolver.RepoStatus) string {
	if st.HasOverride {
		return "✓ " + st.OverridePath
	}
	return "✗ none"
}

func projectMarker(isProject bool) string {
	if isProject {
		return "*"
	}
	return ""
}
