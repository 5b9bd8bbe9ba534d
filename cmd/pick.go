package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/rizzo/internal/document"
	"github.com/firefly-engineering/rizzo/internal/logging"
	"github.com/firefly-engineering/rizzo/internal/tui"
	"github.com/firefly-engineering/rizzo/internal/validate"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactive node picker",
	Long: `Opens an interactive TUI listing the nodes of the merged configuration.

Use arrow keys or j/k to navigate, / to filter, Enter to select.

Actions:
  Enter  - Print the selected node and how to log into it
  q/Esc  - Quit`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	doc, _, err := resolve()
	if err != nil {
		return err
	}

	logging.Debug("picker mode started")

	nodes := validate.Nodes(doc)
	if len(nodes) == 0 {
		logInfo("No nodes defined. Add a nodes list to a control repository's .rizzo.json")
		return nil
	}

	result, err := tui.RunPicker(nodes)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action)

	if result.Action == tui.ActionSelect && result.Node != nil {
		return printNode(cmd, result.Node)
	}
	return nil
}

// printNode writes the node as JSON followed by the command to log into it.
func printNode(cmd *cobra.Command, node map[string]any) error {
	data, err := json.MarshalIndent(document.Document(node), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode node: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, string(data))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "To log in, run:")
	fmt.Fprintf(out, "  %s\n", sshCommand(node))
	return nil
}

func sshCommand(node map[string]any) string {
	return shellquote.Join("vagrant", "ssh", validate.NodeName(node))
}
