package validate

import (
	"fmt"

	"github.com/firefly-engineering/rizzo/internal/document"
	"github.com/firefly-engineering/rizzo/internal/errors"
	"github.com/firefly-engineering/rizzo/internal/logging"
)

// Config runs every merged-config check, stopping at the first violation.
func Config(doc document.Document) error {
	if err := ForwardedPorts(doc); err != nil {
		return err
	}
	return IPAddresses(doc)
}

// ForwardedPorts checks that no forwarded host port is claimed twice across
// all nodes. Ports are compared as exact integers of any size.
func ForwardedPorts(doc document.Document) error {
	seen := make(map[string]bool)
	var hostPorts []string

	for _, node := range Nodes(doc) {
		for _, fp := range document.List(node["forwarded_ports"]) {
			entry, ok := document.Object(fp)
			if !ok {
				continue
			}
			port := document.BigInt(entry["host"]).String()
			if seen[port] {
				return errors.DuplicatePort(port, NodeName(node))
			}
			seen[port] = true
			hostPorts = append(hostPorts, port)
		}
	}

	logging.Debug("validated forwarded ports", "host_ports", hostPorts)
	return nil
}

// IPAddresses checks that no ip is assigned to two nodes. Nodes without an
// ip, or with an empty one, are ignored.
func IPAddresses(doc document.Document) error {
	seen := make(map[string]bool)
	var ips []string

	for _, node := range Nodes(doc) {
		ip, _ := document.String(node["ip"])
		if ip == "" {
			continue
		}
		if seen[ip] {
			return errors.DuplicateIP(ip, NodeName(node))
		}
		seen[ip] = true
		ips = append(ips, ip)
	}

	logging.Debug("validated ip addresses", "ips", ips)
	return nil
}

// Nodes returns the node objects of a merged config in order. A missing or
// non-list nodes value yields no nodes; non-object entries are skipped.
func Nodes(doc document.Document) []map[string]any {
	var nodes []map[string]any
	for _, v := range document.List(doc["nodes"]) {
		if node, ok := document.Object(v); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// NodeName returns the node's name for messages.
func NodeName(node map[string]any) string {
	switch name := node["name"].(type) {
	case nil:
		return ""
	case string:
		return name
	default:
		return fmt.Sprint(name)
	}
}
