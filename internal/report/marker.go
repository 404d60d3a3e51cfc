package report

import (
	"fmt"

	"github.com/mmr-tortoise/sheen/internal/model"
)

// Wire framing for OSC 133 markers. A marker is:
//
//	ESC ] 133 ; <phase> BEL              (prompt-ready, command-start)
//	ESC ] 133 ; D ; <exit code> BEL      (command-finished)
//
// Consuming terminals match these byte-for-byte, so the constants below
// must never change.
const (
	// markerPrefix opens the sequence: ESC, ']' (OSC), the "133"
	// namespace tag, and the first separator.
	markerPrefix = "\x1b]133;"

	// markerSuffix terminates the sequence with a BEL byte.
	markerSuffix = "\a"
)

// Marker returns the wire bytes for a phase that carries no payload
// (PhasePrompt and PhaseCommandStart). Passing PhaseCommandFinished
// here produces a bare "D" marker with no exit code; callers that have
// an exit code must use FinishedMarker instead.
func Marker(phase model.Phase) string {
	return markerPrefix + phase.String() + markerSuffix
}

// FinishedMarker returns the wire bytes for the command-finished
// marker carrying the exit code as a decimal integer.
//
// The exit code is formatted with %d and passed through unmodified:
// values outside [0,255] (negative or signal-derived codes surfaced by
// some shells) appear on the wire exactly as given.
func FinishedMarker(exitCode int) string {
	return fmt.Sprintf("%s%s;%d%s", markerPrefix, model.PhaseCommandFinished, exitCode, markerSuffix)
}
