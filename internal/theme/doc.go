// Package theme resolves the active upstream color theme into a flat
// palette of RGB values.
//
// The upstream tool (opencode) records its active theme in two places:
// a KV store under the state directory, and JSON/JSONC config files
// under the config directory. Theme definitions themselves are JSON
// files with a "defs" section of named colors and a "theme" section
// whose values are hex strings, references into defs, or
// {dark, light} pairs selected by mode.
//
// Resolution can fail in many ways (missing files, malformed JSON,
// dangling references) and none of them may break the caller: every
// failure degrades to the built-in default palette with a warning log.
package theme
