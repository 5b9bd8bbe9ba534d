package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/rizzo/internal/document"
	"github.com/firefly-engineering/rizzo/internal/validate"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List nodes of the merged configuration",
	Args:  cobra.NoArgs,
	RunE:  runNodes,
}

func init() {
	rootCmd.AddCommand(nodesCmd)
}

func runNodes(cmd *cobra.Command, args []string) error {
	doc, _, err := resolve()
	if err != nil {
		return err
	}

	nodes := validate.Nodes(doc)
	if len(nodes) == 0 {
		logInfo("No nodes defined. Add a nodes list to a control repository's .rizzo.json")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tIP\tHOST PORTS")
	fmt.Fprintln(w, "----\t--\t----------")

	for _, node := range nodes {
		ip, _ := document.String(node["ip"])
		if ip == "" {
			ip = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", validate.NodeName(node), ip, formatHostPorts(node))
	}

	return w.Flush()
}

func formatHostPorts(node map[string]any) string {
	var ports []string
	for _, entry := range document.List(node["forwarded_ports"]) {
		if fp, ok := document.Object(entry); ok {
			ports = append(ports, document.BigInt(fp["host"]).String())
		}
	}
	if len(ports) == 0 {
		return "-"
	}
	return strings.Join(ports, ",")
}
