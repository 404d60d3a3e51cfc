// Package install manages the one-line hookup of sheen's integration
// scripts into a user's shell rc files.
//
// Installation appends a single existence-guarded source line to the
// dialect's rc file. The append is idempotent: a marker comment is
// checked before writing, so running install twice leaves exactly one
// copy — and therefore exactly one hook registration per session.
package install

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmr-tortoise/sheen/internal/model"
)

// markerComment identifies sheen's block in an rc file. The
// idempotence check and the status probe look for this exact string.
const markerComment = "# sheen shell integration"

// DetectDialect infers the user's shell dialect from the SHELL
// environment variable. Returns an error for shells sheen does not
// support.
func DetectDialect() (model.Dialect, error) {
	sh := filepath.Base(os.Getenv("SHELL"))
	return model.ParseDialect(sh)
}

// RCPath returns the rc file sheen appends to for the given dialect.
func RCPath(homeDir string, d model.Dialect) string {
	switch d {
	case model.DialectZsh:
		return filepath.Join(homeDir, ".zshrc")
	case model.DialectBash:
		return filepath.Join(homeDir, ".bashrc")
	default:
		return ""
	}
}

// Snippet returns the block appended to the rc file: the marker
// comment plus an existence-guarded source of the integration script.
func Snippet(d model.Dialect, scriptPath string) string {
	return fmt.Sprintf("%s (%s)\n[ -f \"%s\" ] && source \"%s\"\n",
		markerComment, d, scriptPath, scriptPath)
}

// Install appends the integration snippet to rcPath. If the marker
// comment is already present the file is left untouched and Install
// reports installed=false. The rc file is created if missing.
func Install(d model.Dialect, rcPath, scriptPath string) (installed bool, err error) {
	existing, err := os.ReadFile(rcPath)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading %s: %w", rcPath, err)
	}
	if strings.Contains(string(existing), markerComment) {
		return false, nil
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", rcPath, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", Snippet(d, scriptPath)); err != nil {
		return false, fmt.Errorf("appending to %s: %w", rcPath, err)
	}
	return true, nil
}

// Status describes the current integration state of one dialect.
type Status struct {
	Dialect      model.Dialect `json:"dialect"`
	RCPath       string        `json:"rcPath"`
	ScriptPath   string        `json:"scriptPath"`
	RCInstalled  bool          `json:"rcInstalled"`
	ScriptExists bool          `json:"scriptExists"`
}

// Check probes the rc file and the integration script for a dialect.
// Probe failures (unreadable rc file) count as "not installed" rather
// than errors: status is a report, not a gate.
func Check(d model.Dialect, rcPath, scriptPath string) Status {
	st := Status{Dialect: d, RCPath: rcPath, ScriptPath: scriptPath}

	if content, err := os.ReadFile(rcPath); err == nil {
		st.RCInstalled = strings.Contains(string(content), markerComment)
	}
	if _, err := os.Stat(scriptPath); err == nil {
		st.ScriptExists = true
	}
	return st
}
