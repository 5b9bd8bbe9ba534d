// Package resolver turns a personal config and its control repositories
// into one validated config.
//
// # Pipeline
//
//  1. Load the personal config (~/.rizzo.json by default)
//  2. Move the control repo containing the working directory to the front
//     of control_repos
//  3. Deep-merge <repo>/.rizzo.json of every repo onto the personal config,
//     in that order, skipping overrides that cannot be read
//  4. Check forwarded host ports and ips for duplicates
//
// Any load, parse or validation failure stops the pipeline; there are no
// partial results.
//
//	r := resolver.New(fsys, paths, pwd)
//	merged, err := r.Resolve(paths.PersonalConfig)
package resolver
