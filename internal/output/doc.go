// Package output renders a merged config for the `rzo config` command.
//
// Supported formats:
//
//   - json: two-space indented, keys sorted (the default)
//   - yaml: via gopkg.in/yaml.v3
//   - toml: via github.com/BurntSushi/toml; null values inside arrays
//     cannot be represented and fail to encode
//
// A Sink routes the bytes to STDOUT, STDERR, or a file path.
package output
