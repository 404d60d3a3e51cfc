package script

import (
	"fmt"
	"strings"
)

// Bash generates the bash integration script. The host launches bash
// with `--rcfile <this file>`, so the script first sources the user's
// own startup file, applies the theme, then installs the OSC 133
// reporter.
//
// Bash has no add-zsh-hook equivalent: the post-command hook is a
// single-slot variable (PROMPT_COMMAND) extended by string chaining,
// and the pre-exec hook is a DEBUG trap. The reporter's payload is
// prepended so it reads $? before any pre-existing payload can
// overwrite it; the pre-existing payload still runs afterwards on
// every prompt.
func Bash(cfg Sourcing) string {
	var b strings.Builder

	b.WriteString("# sheen bash integration (auto-generated, do not edit)\n")
	for _, entry := range cfg.BashSourceOrder() {
		fmt.Fprintf(&b, "[ -f \"%s\" ] && source \"%s\"\n", entry.Path, entry.Path)
	}

	b.WriteString("\n")
	b.WriteString(bashHookBlock())

	return b.String()
}
