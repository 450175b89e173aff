package sapda

import (
	"errors"
	"log/slog"
)

// ErrInvariantViolation indicates an internal bug: an attempted rewrite
// that the SAPDA operational semantics should never produce, such as a
// pop whose target symbol disagrees with the stack top, or an attempt to
// split a leaf that has already emptied its stack. The search logs a
// diagnostic and degrades to an empty trace rather than risk producing an
// illegitimate accepting computation.
var ErrInvariantViolation = errors.New("sapda: invariant violation")

// errRecursionLimit stands in for the reference engine's recursion
// exhaustion: it is surfaced identically to a deadline, as the single
// "timeout" trace element.
var errRecursionLimit = errors.New("sapda: internal recursion limit exceeded")

func logInvariantViolation(err error) {
	slog.Error("sapda: search aborted on invariant violation", "error", err)
}
