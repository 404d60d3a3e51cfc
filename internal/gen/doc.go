// Package gen generates themed configuration artifacts from a
// resolved palette.
//
// Each generator is a pure function from theme.Colors to the textual
// content of one artifact:
//
//   - ZshTheme: LS_COLORS, zsh-syntax-highlighting styles, FZF colors
//   - NvimColorscheme: a Lua colorscheme file
//   - GituiTheme: a gitui RON theme
//   - AlacrittyTheme: an Alacritty TOML color scheme
//
// The Writer places the generated files (plus the shell integration
// scripts from internal/script) in the on-disk layout consumed by the
// host terminal.
package gen
