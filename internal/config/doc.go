// Package config provides settings and well-known paths for rzo.
//
// # Paths
//
// The personal config lives at ~/.rizzo.json by default. Each control
// repository may carry an override with the same file name at its root:
//
//	p := config.DefaultPaths()
//	p.PersonalConfig            // /home/me/.rizzo.json
//	p.OverridePath("~/src/ops") // /home/me/src/ops/.rizzo.json
//
// # Settings
//
// Settings are layered, first non-zero value wins:
//
//  1. Command-line flags
//  2. RZO_CONFIG, RZO_VERBOSE, RZO_JSON_LOGS, RZO_OUTPUT, RZO_FORMAT
//  3. DefaultSettings
//
// The environment is read with caarlos0/env and the layers are combined
// with mergo. A boolean set to true in any layer stays true.
package config
