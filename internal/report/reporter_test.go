package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/sheen/internal/model"
)

// TestReporter_CommandCycle runs a full command cycle and checks the
// emitted byte stream: B for start, then D;<exit> and A together at
// finish. This is the per-cycle ordering invariant hosts depend on.
func TestReporter_CommandCycle(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	// Initial state: idle, nothing emitted, no exit code yet.
	assert.Equal(t, model.StateIdle, r.State())
	_, ok := r.LastExitCode()
	assert.False(t, ok, "no exit code before any command has finished")

	r.CommandStarted()
	assert.Equal(t, model.StateRunning, r.State())
	assert.Equal(t, "\x1b]133;B\a", buf.String())

	r.CommandFinished(0)
	assert.Equal(t, model.StateIdle, r.State())
	assert.Equal(t, "\x1b]133;B\a\x1b]133;D;0\a\x1b]133;A\a", buf.String())

	code, ok := r.LastExitCode()
	require.True(t, ok)
	assert.Equal(t, 0, code)
}

// TestReporter_FailingCommand checks the `false` scenario: exit 1 is
// carried on the finished marker and recorded.
func TestReporter_FailingCommand(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.CommandStarted()
	r.CommandFinished(1)

	assert.Equal(t, "\x1b]133;B\a\x1b]133;D;1\a\x1b]133;A\a", buf.String())
	code, ok := r.LastExitCode()
	require.True(t, ok)
	assert.Equal(t, 1, code)
}

// TestReporter_MultipleCycles verifies that consecutive cycles never
// interleave or reorder markers: the stream is a strict repetition of
// B → D;n → A.
func TestReporter_MultipleCycles(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	exits := []int{0, 127, 130, 0}
	for _, ec := range exits {
		r.CommandStarted()
		r.CommandFinished(ec)
	}

	want := ""
	for _, ec := range exits {
		want += "\x1b]133;B\a"
		want += FinishedMarker(ec)
		want += "\x1b]133;A\a"
	}
	assert.Equal(t, want, buf.String())

	// The last exit code wins.
	code, ok := r.LastExitCode()
	require.True(t, ok)
	assert.Equal(t, 0, code)
}

// TestReporter_PromptReady covers the session-start case: the host is
// told the shell accepts input before any command has run.
func TestReporter_PromptReady(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.PromptReady()

	assert.Equal(t, "\x1b]133;A\a", buf.String())
	assert.Equal(t, model.StateIdle, r.State())

	// A prompt-ready marker alone does not fabricate an exit code.
	_, ok := r.LastExitCode()
	assert.False(t, ok)
}

// failingWriter always errors, simulating a closed PTY.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("pty closed")
}

// TestReporter_WriterFailureIsNonFatal verifies the failure semantics:
// a reporter cannot fail in a way that aborts the host. Writes may be
// lost, but state keeps advancing and no panic occurs.
func TestReporter_WriterFailureIsNonFatal(t *testing.T) {
	r := NewReporter(failingWriter{})

	r.CommandStarted()
	assert.Equal(t, model.StateRunning, r.State())

	r.CommandFinished(7)
	assert.Equal(t, model.StateIdle, r.State())

	code, ok := r.LastExitCode()
	require.True(t, ok)
	assert.Equal(t, 7, code)
}
