package script

import (
	"fmt"
	"strings"
)

// zshHookBlock renders the OSC 133 hook functions and their guarded
// registration for zsh. Shared by the ZDOTDIR trampoline and the
// standalone snippet.
func zshHookBlock() string {
	var b strings.Builder

	b.WriteString("# Shell integration: emit OSC 133 sequences for command state tracking\n")
	b.WriteString("__sheen_preexec() { printf '\\x1b]133;B\\x07' }\n")
	b.WriteString("__sheen_precmd() {\n")
	b.WriteString("  local ec=$?\n")
	b.WriteString("  printf '\\x1b]133;D;%d\\x07' \"$ec\"\n")
	b.WriteString("  printf '\\x1b]133;A\\x07'\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "if [[ -z \"$%s\" ]]; then\n", hookSentinelVar)
	fmt.Fprintf(&b, "  %s=1\n", hookSentinelVar)
	b.WriteString("  autoload -Uz add-zsh-hook\n")
	b.WriteString("  add-zsh-hook precmd __sheen_precmd\n")
	b.WriteString("  add-zsh-hook preexec __sheen_preexec\n")
	b.WriteString("fi\n")

	return b.String()
}

// bashHookBlock renders the OSC 133 hook function, PROMPT_COMMAND
// chaining, and DEBUG trap for bash, guarded by the sentinel. Shared
// by the rcfile integration and the standalone snippet.
func bashHookBlock() string {
	var b strings.Builder

	b.WriteString("# OSC 133 shell integration for command state tracking\n")
	b.WriteString("__sheen_prompt_command() {\n")
	b.WriteString("    local ec=$?\n")
	b.WriteString("    printf '\\033]133;D;%d\\007' \"$ec\"\n")
	b.WriteString("    printf '\\033]133;A\\007'\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "if [ -z \"$%s\" ]; then\n", hookSentinelVar)
	fmt.Fprintf(&b, "    %s=1\n", hookSentinelVar)
	b.WriteString("    PROMPT_COMMAND=\"__sheen_prompt_command${PROMPT_COMMAND:+;$PROMPT_COMMAND}\"\n")
	b.WriteString("    trap 'printf \"\\033]133;B\\007\"' DEBUG\n")
	b.WriteString("fi\n")

	return b.String()
}

// ZshHooks generates the standalone zsh integration snippet: only the
// hook registration, no sourcing. This is the file a user sources from
// their own .zshrc (via `sheen install`) — unlike the trampoline, it
// must not source startup files, or the user's rc would recurse into
// itself.
func ZshHooks() string {
	return "# sheen zsh integration (auto-generated, do not edit)\n" + zshHookBlock()
}

// BashHooks generates the standalone bash integration snippet,
// sourceable from .bashrc. Same constraint as ZshHooks: hooks only.
func BashHooks() string {
	return "# sheen bash integration snippet (auto-generated, do not edit)\n" + bashHookBlock()
}
