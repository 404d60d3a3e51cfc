// Package script generates the shell-integration scripts that embed
// the OSC 133 session state reporter into a host shell session.
//
// Two dialects are produced:
//
//   - zsh: a ZDOTDIR trampoline (.zshrc/.zshenv pair). The host
//     launches zsh with ZDOTDIR pointing at the generated directory;
//     the trampoline restores the user's original ZDOTDIR, sources the
//     real startup files in a deterministic order, applies the theme
//     file, and registers precmd/preexec hooks via add-zsh-hook.
//   - bash: a single integration file sourced via --rcfile. It sources
//     the user's bashrc, prepends the reporter to PROMPT_COMMAND, and
//     installs a DEBUG trap for the command-start marker.
//
// Both dialects guard registration with a sentinel variable so that
// re-sourcing a script within the same session never duplicates hooks
// (and therefore never double-emits markers).
//
// Sourcing order and paths come from an explicit Sourcing struct
// rather than from process-wide environment variables; the only env
// var in play is the ZDOTDIR handoff that the trampoline itself
// consumes and clears.
package script
