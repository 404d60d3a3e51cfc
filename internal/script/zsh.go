package script

import (
	"fmt"
	"strings"
)

// zdotdirHandoffVar carries the user's original ZDOTDIR across the
// trampoline launch. The parent process sets it before pointing
// ZDOTDIR at the generated directory; the trampoline's first action
// restores and clears it so subsequent sourcing resolves to the
// genuine user paths.
const zdotdirHandoffVar = "SHEEN_ORIG_ZDOTDIR"

// hookSentinelVar guards hook registration. add-zsh-hook appends to
// the hook arrays on every call, so re-sourcing the trampoline inside
// an already-integrated session would double-emit every marker without
// this check.
const hookSentinelVar = "__sheen_hooks_installed"

// Zshrc generates the .zshrc of the ZDOTDIR trampoline.
//
// The file does four things in order: restore the original ZDOTDIR,
// source the user's real startup files (existence-guarded, in the
// deterministic order from ZshSourceOrder), apply the theme file last,
// and register the OSC 133 precmd/preexec hooks exactly once.
func Zshrc(cfg Sourcing) string {
	var b strings.Builder

	b.WriteString("# sheen shell wrapper (auto-generated, do not edit)\n")
	b.WriteString("# Restore original ZDOTDIR so user's config paths resolve correctly\n")
	fmt.Fprintf(&b, "if [[ -n \"$%s\" ]]; then\n", zdotdirHandoffVar)
	fmt.Fprintf(&b, "  export ZDOTDIR=\"$%s\"\n", zdotdirHandoffVar)
	fmt.Fprintf(&b, "  unset %s\n", zdotdirHandoffVar)
	b.WriteString("else\n")
	b.WriteString("  unset ZDOTDIR\n")
	b.WriteString("fi\n\n")

	for _, entry := range cfg.ZshSourceOrder() {
		b.WriteString(zshSourceLine(entry))
	}

	b.WriteString("\n")
	b.WriteString(zshHookBlock())

	return b.String()
}

// Zshenv generates the .zshenv of the trampoline. Zsh reads .zshenv
// before .zshrc, so scripts that inspect ZDOTDIR during environment
// setup see the restored value early. The handoff variable is left
// set here; .zshrc clears it.
func Zshenv(cfg Sourcing) string {
	var b strings.Builder

	b.WriteString("# sheen zshenv wrapper (auto-generated)\n")
	fmt.Fprintf(&b, "if [[ -n \"$%s\" ]]; then\n", zdotdirHandoffVar)
	fmt.Fprintf(&b, "  export ZDOTDIR=\"$%s\"\n", zdotdirHandoffVar)
	b.WriteString("fi\n")
	fmt.Fprintf(&b, "[[ -f \"%s/.zshenv\" ]] && source \"%s/.zshenv\"\n",
		cfg.HomeDir, cfg.HomeDir)

	return b.String()
}

// zshSourceLine renders one SourceEntry as existence-guarded zsh.
// Entries with a fallback become an if/elif chain; a path referencing
// $ZDOTDIR additionally checks that the variable is set, because after
// the restore block it may legitimately be empty.
func zshSourceLine(entry SourceEntry) string {
	if entry.Fallback == "" {
		return fmt.Sprintf("[[ -f \"%s\" ]] && source \"%s\"\n", entry.Path, entry.Path)
	}

	var b strings.Builder
	if strings.Contains(entry.Path, "$ZDOTDIR") {
		fmt.Fprintf(&b, "if [[ -n \"$ZDOTDIR\" ]] && [[ -f \"%s\" ]]; then\n", entry.Path)
	} else {
		fmt.Fprintf(&b, "if [[ -f \"%s\" ]]; then\n", entry.Path)
	}
	fmt.Fprintf(&b, "  source \"%s\"\n", entry.Path)
	fmt.Fprintf(&b, "elif [[ -f \"%s\" ]]; then\n", entry.Fallback)
	fmt.Fprintf(&b, "  source \"%s\"\n", entry.Fallback)
	b.WriteString("fi\n")
	return b.String()
}
