// Package validate checks invariants of a merged rizzo config.
//
// Two checks run in order, each failing on the first violation:
//
//   - ForwardedPorts: every nodes[].forwarded_ports[].host, coerced to an
//     integer, is unique across all nodes
//   - IPAddresses: every non-empty nodes[].ip is unique across all nodes
//
// Config runs both.
package validate
