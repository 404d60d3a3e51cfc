package script

import "path/filepath"

// Sourcing describes where a generated integration script should look
// for startup files. It is an explicit configuration struct: the
// generator receives the resolved directories and decides sourcing
// order deterministically, with no reliance on mutable global
// environment state.
type Sourcing struct {
	// HomeDir is the user's home directory — the fallback location
	// for .zshrc/.zshenv/.bashrc when no override directory is set.
	HomeDir string

	// OverrideDir is the user's real ZDOTDIR, if they use one. The
	// zsh trampoline restores this before sourcing so the user's own
	// startup files resolve to their genuine paths. Empty means the
	// user keeps startup files in HomeDir.
	OverrideDir string

	// SiteRC is the system-wide rc file sourced before user files.
	// Defaults to /etc/zshrc for zsh when empty.
	SiteRC string

	// ThemeFile is the generated theme script, sourced last so its
	// colors override anything the user's own files set.
	ThemeFile string
}

// SourceEntry is one file in the resolved sourcing order. Every entry
// is emitted existence-guarded: a missing file is silently skipped at
// shell startup, never an error.
type SourceEntry struct {
	// Path is the file to source. May contain a shell variable
	// reference (e.g. $ZDOTDIR) when the final location depends on
	// state only known at shell startup.
	Path string

	// Fallback, when non-empty, is sourced instead if Path does not
	// exist at startup.
	Fallback string
}

// ZshSourceOrder returns the deterministic order in which the zsh
// trampoline sources startup files:
//
//  1. the user's ~/.zshenv (environment setup)
//  2. the site-wide rc
//  3. the user's .zshrc from the restored ZDOTDIR, falling back to
//     ~/.zshrc
//  4. the theme file, last, so theme colors win
func (s Sourcing) ZshSourceOrder() []SourceEntry {
	siteRC := s.SiteRC
	if siteRC == "" {
		siteRC = "/etc/zshrc"
	}

	return []SourceEntry{
		{Path: filepath.Join(s.HomeDir, ".zshenv")},
		{Path: siteRC},
		{Path: "$ZDOTDIR/.zshrc", Fallback: filepath.Join(s.HomeDir, ".zshrc")},
		{Path: s.ThemeFile},
	}
}

// BashSourceOrder returns the order for the bash integration file:
// the user's ~/.bashrc, then the theme file.
func (s Sourcing) BashSourceOrder() []SourceEntry {
	return []SourceEntry{
		{Path: filepath.Join(s.HomeDir, ".bashrc")},
		{Path: s.ThemeFile},
	}
}
