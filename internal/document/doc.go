// Package document loads and deep-merges rizzo JSON documents.
//
// A Document is a plain map decoded from JSON with exact numbers:
//
//	doc, err := document.Load(fsys, "~/.rizzo.json")
//	merged := document.Merge(doc, override)
//
// # Merge Rules
//
//   - object vs object: merged key by key, recursively
//   - anything else (arrays included): the later value replaces the earlier
//   - keys on only one side pass through unchanged
//
// Merge never mutates its inputs, so the same base can be merged with
// different overrides.
package document
