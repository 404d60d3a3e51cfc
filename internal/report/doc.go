// Package report implements the session state reporter: it emits
// OSC 133 prompt/command-state markers so that a host terminal can
// reconstruct command boundaries and exit codes from the output
// stream.
//
// Three pieces make up the package:
//
//   - Marker/FinishedMarker produce the byte-exact escape sequences
//     (ESC ] 133 ; <phase> BEL, with a ;<exit> suffix on the finished
//     marker).
//   - Reporter writes markers to an io.Writer at the two lifecycle
//     points a shell exposes (pre-exec, post-command) and tracks the
//     implied session state.
//   - Registry holds an explicit ordered list of lifecycle callbacks,
//     replacing the string-concatenation hook chaining that shell rc
//     files traditionally use. Registration is idempotent by name.
//
// A reporter can never abort its host: callback errors are logged and
// swallowed, and marker writes at worst drop bytes on a failed writer.
package report
