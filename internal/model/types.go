// Package model defines the domain types for the sheen CLI.
//
// All entities in this package are small value types used throughout
// the application for passing data between components. They carry no
// behavior beyond validation, parsing, and formatting.
package model

import (
	"fmt"
	"strings"
)

// Dialect identifies a supported shell dialect.
//
// Each dialect exposes a different hook-registration mechanism:
//
//	zsh  — add-zsh-hook precmd/preexec (a named multi-hook registry)
//	bash — PROMPT_COMMAND chaining plus a DEBUG trap for pre-exec
type Dialect string

const (
	// DialectZsh targets the Z shell. Integration uses the
	// add-zsh-hook facility and a ZDOTDIR trampoline.
	DialectZsh Dialect = "zsh"

	// DialectBash targets GNU bash. Integration prepends to
	// PROMPT_COMMAND and installs a DEBUG trap for pre-exec markers.
	DialectBash Dialect = "bash"
)

// String returns the string representation of the Dialect.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and logging.
func (d Dialect) String() string {
	return string(d)
}

// IsValid checks whether the Dialect value is one of the predefined
// supported dialects.
func (d Dialect) IsValid() bool {
	switch d {
	case DialectZsh, DialectBash:
		return true
	default:
		return false
	}
}

// ParseDialect converts a string to a Dialect.
// Returns an error if the string does not match any supported dialect.
func ParseDialect(s string) (Dialect, error) {
	d := Dialect(strings.ToLower(s))
	if !d.IsValid() {
		return "", fmt.Errorf("unsupported shell dialect: %q (valid: zsh, bash)", s)
	}
	return d, nil
}

// AllDialects lists every supported dialect in a stable order.
// Used by commands that generate artifacts for all shells at once.
func AllDialects() []Dialect {
	return []Dialect{DialectZsh, DialectBash}
}

// Phase identifies a point in the command lifecycle reported to the
// host terminal. The single-letter wire codes follow the OSC 133
// prompt/command-state protocol.
type Phase string

const (
	// PhasePrompt ("A") signals that the shell is ready for new input.
	PhasePrompt Phase = "A"

	// PhaseCommandStart ("B") signals that a typed command line is
	// about to run.
	PhaseCommandStart Phase = "B"

	// PhaseCommandFinished ("D") signals that a command completed.
	// On the wire this phase carries the exit code as a decimal suffix.
	PhaseCommandFinished Phase = "D"
)

// String returns the single-letter wire code of the Phase.
func (p Phase) String() string {
	return string(p)
}

// IsValid checks whether the Phase value is one of the predefined
// lifecycle phases.
func (p Phase) IsValid() bool {
	switch p {
	case PhasePrompt, PhaseCommandStart, PhaseCommandFinished:
		return true
	default:
		return false
	}
}

// SessionState represents the two-state command lifecycle a host
// terminal reconstructs from emitted markers. The transitions are:
//
//	Idle --[command submitted]--> Running --[command completes]--> Idle
//
// The initial state is Idle. The cycle repeats for the life of the
// shell session; there is no terminal state.
type SessionState string

const (
	// StateIdle indicates the shell is between commands, ready for input.
	StateIdle SessionState = "idle"

	// StateRunning indicates a command is currently executing.
	StateRunning SessionState = "running"
)

// String returns the string representation of the SessionState.
func (s SessionState) String() string {
	return string(s)
}

// ExitCode defines standard CLI exit codes for the sheen binary.
// These codes allow scripts and CI systems to programmatically
// determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates sheen's own configuration file could
	// not be read or is invalid.
	ExitConfigError ExitCode = 2

	// ExitWriteFailed indicates a generated artifact could not be
	// written to disk.
	ExitWriteFailed ExitCode = 3

	// ExitInstallFailed indicates the shell rc file could not be
	// updated during integration install.
	ExitInstallFailed ExitCode = 4

	// ExitWatchFailed indicates the filesystem watcher could not be
	// started.
	ExitWatchFailed ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
