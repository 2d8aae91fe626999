// Package fstream provides buffered byte streams over raw OS file handles.
//
// A [Stream] owns exactly one open file and one fixed-capacity buffer sized
// to the file's filesystem block size (4096 when unavailable). Reads drain
// the buffer and refill it with one handle-level read per cycle; writes fill
// the buffer and flush it with one handle-level write per cycle. The two
// directions never mix: a stream is opened in exactly one [Mode] for its
// whole lifetime.
//
// Every fallible operation returns a [result.Result] carrying either the
// value or a [Kind], the closed set of typed errors mapped from OS error
// numbers. Nothing in this package panics for ordinary failures.
//
// # Basic Usage
//
//	r := fstream.Open("data.txt", fstream.ModeRead)
//	if r.IsErr() {
//	    // branch on the Kind, e.g. errors.Is(r.Err(), fstream.ErrNotFound)
//	}
//	s := r.Value()
//	defer s.Close()
//
//	var line []byte
//	for s.ReadLine(&line).Value() {
//	    // line holds one newline-free line
//	}
//
// # Ownership
//
// A stream is single-threaded and move-only: it is never safe to share one
// between goroutines, and [Stream.Move] transfers the handle and buffer to a
// new stream, leaving the source closed. Operations on a closed or moved-from
// stream fail with [ErrBadHandle]. No two streams may own the same handle.
//
// # Known Limitation
//
// Size and block size are captured once at open and never refreshed. If the
// file grows afterwards (another process appends), ReadString(-1) undercounts:
// it reads up to the snapshot size, not the current one. Callers that need
// the live size must reopen.
package fstream
