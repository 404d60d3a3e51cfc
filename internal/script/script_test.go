package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSourcing() Sourcing {
	return Sourcing{
		HomeDir:   "/home/u",
		ThemeFile: "/home/u/.config/sheen/themes/sheen.zsh",
	}
}

// --- zsh trampoline ---

func TestZshrc_RestoresZdotdirFirst(t *testing.T) {
	out := Zshrc(testSourcing())

	// The restore block must come before any source line: the whole
	// point of the trampoline is that subsequent sourcing resolves to
	// the genuine user paths.
	restoreIdx := strings.Index(out, `export ZDOTDIR="$SHEEN_ORIG_ZDOTDIR"`)
	firstSourceIdx := strings.Index(out, "source ")
	require.Greater(t, restoreIdx, -1)
	require.Greater(t, firstSourceIdx, -1)
	assert.Less(t, restoreIdx, firstSourceIdx)

	// The handoff variable is cleared after the restore so it cannot
	// leak into the session.
	assert.Contains(t, out, "unset SHEEN_ORIG_ZDOTDIR")
	// Without a handoff value the override is dropped entirely.
	assert.Contains(t, out, "unset ZDOTDIR")
}

func TestZshrc_SourcingOrder(t *testing.T) {
	out := Zshrc(testSourcing())

	// Deterministic order: zshenv, site rc, user zshrc, theme last.
	zshenvIdx := strings.Index(out, `"/home/u/.zshenv"`)
	siteIdx := strings.Index(out, `"/etc/zshrc"`)
	zshrcIdx := strings.Index(out, `"$ZDOTDIR/.zshrc"`)
	themeIdx := strings.Index(out, `"/home/u/.config/sheen/themes/sheen.zsh"`)

	require.Greater(t, zshenvIdx, -1)
	require.Greater(t, siteIdx, -1)
	require.Greater(t, zshrcIdx, -1)
	require.Greater(t, themeIdx, -1)

	assert.Less(t, zshenvIdx, siteIdx)
	assert.Less(t, siteIdx, zshrcIdx)
	assert.Less(t, zshrcIdx, themeIdx, "theme must be sourced last so its colors win")
}

func TestZshrc_EverySourceIsExistenceGuarded(t *testing.T) {
	out := Zshrc(testSourcing())

	// No source line may run unconditionally: missing files are
	// silently skipped, never an error.
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "source ") {
			continue
		}
		// A guarded source is either "[[ -f … ]] && source …" on one
		// line or an indented body inside an if/elif with -f checks.
		assert.True(t, strings.HasPrefix(line, "  ") || strings.Contains(line, "[[ -f"),
			"unguarded source line: %q", line)
	}
}

func TestZshrc_HookRegistrationIsGuarded(t *testing.T) {
	out := Zshrc(testSourcing())

	// add-zsh-hook appends on every call; the sentinel must wrap the
	// registration so re-sourcing cannot double-register.
	sentinelIdx := strings.Index(out, `if [[ -z "$__sheen_hooks_installed" ]]`)
	registerIdx := strings.Index(out, "add-zsh-hook precmd __sheen_precmd")
	require.Greater(t, sentinelIdx, -1)
	require.Greater(t, registerIdx, -1)
	assert.Less(t, sentinelIdx, registerIdx)

	assert.Contains(t, out, "add-zsh-hook preexec __sheen_preexec")
	assert.Contains(t, out, "autoload -Uz add-zsh-hook")
}

func TestZshrc_ExitCodeCapturedFirst(t *testing.T) {
	out := Zshrc(testSourcing())

	// Inside the precmd body, `local ec=$?` must be the very first
	// statement — any earlier statement would overwrite $?.
	body := out[strings.Index(out, "__sheen_precmd() {"):]
	body = body[:strings.Index(body, "}")]
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "local ec=$?", strings.TrimSpace(lines[1]))
}

func TestZshrc_MarkerBytes(t *testing.T) {
	out := Zshrc(testSourcing())

	// The printf escape forms must encode exactly ESC ] 133 ; … BEL.
	assert.Contains(t, out, `printf '\x1b]133;B\x07'`)
	assert.Contains(t, out, `printf '\x1b]133;D;%d\x07' "$ec"`)
	assert.Contains(t, out, `printf '\x1b]133;A\x07'`)

	// D is emitted before A within the precmd body.
	dIdx := strings.Index(out, `]133;D;%d`)
	aIdx := strings.Index(out, `]133;A`)
	assert.Less(t, dIdx, aIdx)
}

func TestZshenv_RestoresWithoutClearing(t *testing.T) {
	out := Zshenv(testSourcing())

	// .zshenv restores ZDOTDIR early for scripts that check it during
	// env setup, but leaves the handoff variable for .zshrc to clear.
	assert.Contains(t, out, `export ZDOTDIR="$SHEEN_ORIG_ZDOTDIR"`)
	assert.NotContains(t, out, "unset SHEEN_ORIG_ZDOTDIR")
	assert.Contains(t, out, `[[ -f "/home/u/.zshenv" ]] && source "/home/u/.zshenv"`)
}

// --- bash integration ---

func TestBash_SourcesUserBashrcFirst(t *testing.T) {
	out := Bash(testSourcing())

	bashrcIdx := strings.Index(out, `"/home/u/.bashrc"`)
	hookIdx := strings.Index(out, "__sheen_prompt_command")
	require.Greater(t, bashrcIdx, -1)
	assert.Less(t, bashrcIdx, hookIdx)

	// Existence-guarded, single-bracket style for bash.
	assert.Contains(t, out, `[ -f "/home/u/.bashrc" ] && source "/home/u/.bashrc"`)
}

func TestBash_PromptCommandChaining(t *testing.T) {
	out := Bash(testSourcing())

	// The reporter is prepended; any pre-existing payload is preserved
	// after it via the :+ expansion. An unset PROMPT_COMMAND expands
	// to nothing — treated as empty, not an error.
	assert.Contains(t, out,
		`PROMPT_COMMAND="__sheen_prompt_command${PROMPT_COMMAND:+;$PROMPT_COMMAND}"`)
}

func TestBash_ExitCodeCapturedFirst(t *testing.T) {
	out := Bash(testSourcing())

	body := out[strings.Index(out, "__sheen_prompt_command() {"):]
	body = body[:strings.Index(body, "}")]
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "local ec=$?", strings.TrimSpace(lines[1]))
}

func TestBash_DebugTrapAndMarkerBytes(t *testing.T) {
	out := Bash(testSourcing())

	// The DEBUG trap is bash's pre-exec hook: it fires before each
	// simple command and emits the command-start marker.
	assert.Contains(t, out, `trap 'printf "\033]133;B\007"' DEBUG`)
	assert.Contains(t, out, `printf '\033]133;D;%d\007' "$ec"`)
	assert.Contains(t, out, `printf '\033]133;A\007'`)
}

func TestBash_RegistrationIsGuarded(t *testing.T) {
	out := Bash(testSourcing())

	sentinelIdx := strings.Index(out, `if [ -z "$__sheen_hooks_installed" ]`)
	chainIdx := strings.Index(out, "PROMPT_COMMAND=")
	trapIdx := strings.Index(out, "trap ")
	require.Greater(t, sentinelIdx, -1)

	// Both the chaining and the trap sit inside the guard; otherwise
	// re-sourcing would stack the payload and double-emit D/A markers.
	assert.Less(t, sentinelIdx, chainIdx)
	assert.Less(t, sentinelIdx, trapIdx)
}

// --- standalone hook snippets ---

func TestZshHooks_NoSourcing(t *testing.T) {
	out := ZshHooks()

	// The standalone snippet is sourced from the user's own .zshrc;
	// sourcing startup files from it would recurse.
	assert.NotContains(t, out, "source ")
	assert.NotContains(t, out, "ZDOTDIR")

	// Hook registration is identical to the trampoline's.
	assert.Contains(t, out, "add-zsh-hook precmd __sheen_precmd")
	assert.Contains(t, out, `if [[ -z "$__sheen_hooks_installed" ]]`)
	assert.Contains(t, out, `printf '\x1b]133;D;%d\x07' "$ec"`)
}

func TestBashHooks_NoSourcing(t *testing.T) {
	out := BashHooks()

	assert.NotContains(t, out, "source ")
	assert.Contains(t, out,
		`PROMPT_COMMAND="__sheen_prompt_command${PROMPT_COMMAND:+;$PROMPT_COMMAND}"`)
	assert.Contains(t, out, `trap 'printf "\033]133;B\007"' DEBUG`)
	assert.Contains(t, out, `if [ -z "$__sheen_hooks_installed" ]`)
}

func TestHookBlocks_SharedBetweenVariants(t *testing.T) {
	// The trampoline and the standalone snippet must emit the exact
	// same hook bytes — two divergent copies of the protocol would be
	// a maintenance trap.
	assert.Contains(t, Zshrc(testSourcing()), zshHookBlock())
	assert.Contains(t, Bash(testSourcing()), bashHookBlock())
	assert.Contains(t, ZshHooks(), zshHookBlock())
	assert.Contains(t, BashHooks(), bashHookBlock())
}

// --- sourcing order model ---

func TestZshSourceOrder_DefaultSiteRC(t *testing.T) {
	entries := testSourcing().ZshSourceOrder()

	require.Len(t, entries, 4)
	assert.Equal(t, "/home/u/.zshenv", entries[0].Path)
	assert.Equal(t, "/etc/zshrc", entries[1].Path)
	assert.Equal(t, "$ZDOTDIR/.zshrc", entries[2].Path)
	assert.Equal(t, "/home/u/.zshrc", entries[2].Fallback)
	assert.Equal(t, "/home/u/.config/sheen/themes/sheen.zsh", entries[3].Path)
}

func TestZshSourceOrder_CustomSiteRC(t *testing.T) {
	cfg := testSourcing()
	cfg.SiteRC = "/usr/local/etc/zshrc"

	entries := cfg.ZshSourceOrder()
	assert.Equal(t, "/usr/local/etc/zshrc", entries[1].Path)
}
