package report

import (
	"io"
	"sync"

	"github.com/mmr-tortoise/sheen/internal/model"
)

// Reporter writes session state markers to an output stream on behalf
// of a host embedding a shell (a multiplexer pane, an IDE terminal).
//
// The reporter mirrors the two lifecycle points a shell exposes:
//
//	CommandStarted  — invoked immediately before a typed command runs;
//	                  emits the command-start marker (B).
//	CommandFinished — invoked after the command completes, before the
//	                  next prompt; emits the finished marker (D;<exit>)
//	                  followed by the prompt-ready marker (A).
//
// Within one cycle the emission order is therefore always
// B → D;<exit> → A, which is the invariant consuming terminals rely on.
//
// The reporter is deliberately tolerant: it never returns an error for
// an out-of-order call, because a marker stream that is merely
// cosmetically degraded must not abort the host. It records the
// session state and the last exit code so observers can inspect them.
type Reporter struct {
	mu sync.Mutex

	// w receives the marker bytes. Typically the PTY master or the
	// terminal's stdout.
	w io.Writer

	// state is the reconstructed lifecycle phase: idle between
	// commands, running while one executes.
	state model.SessionState

	// lastExit holds the exit code carried by the most recent finished
	// marker. Only meaningful once finished is true.
	lastExit int

	// finished flips to true on the first CommandFinished call. The
	// zero value of lastExit is indistinguishable from "command exited
	// 0", so validity is tracked separately.
	finished bool
}

// NewReporter creates a Reporter writing markers to w.
// The initial session state is idle.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{
		w:     w,
		state: model.StateIdle,
	}
}

// CommandStarted emits the command-start marker (B) and moves the
// session state to running.
func (r *Reporter) CommandStarted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	// A failed write only loses the marker; state still advances so
	// the next cycle stays coherent.
	_, _ = io.WriteString(r.w, Marker(model.PhaseCommandStart))
	r.state = model.StateRunning
}

// CommandFinished emits the finished marker carrying exitCode, then
// the prompt-ready marker, and moves the session state back to idle.
//
// Callers must capture the exit code before running anything else at
// the post-command point — in a shell, reading $? later returns the
// exit status of whatever ran in between, not of the user's command.
func (r *Reporter) CommandFinished(exitCode int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = io.WriteString(r.w, FinishedMarker(exitCode))
	_, _ = io.WriteString(r.w, Marker(model.PhasePrompt))
	r.state = model.StateIdle
	r.lastExit = exitCode
	r.finished = true
}

// PromptReady emits a standalone prompt-ready marker (A). Used once at
// session start, before any command has run, so the host knows the
// shell is accepting input.
func (r *Reporter) PromptReady() {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = io.WriteString(r.w, Marker(model.PhasePrompt))
	r.state = model.StateIdle
}

// State returns the current reconstructed session state.
func (r *Reporter) State() model.SessionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// LastExitCode returns the exit code from the most recent
// CommandFinished call, and whether any command has finished yet.
func (r *Reporter) LastExitCode() (code int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastExit, r.finished
}
