package fstream_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/fstream/pkg/fstream"
)

// collectLines drains the stream with ReadLine and returns every produced
// line, fatal on any error.
func collectLines(t *testing.T, s *fstream.Stream) []string {
	t.Helper()

	var (
		out  []string
		line []byte
	)

	for {
		r := s.ReadLine(&line)
		if r.IsErr() {
			t.Fatalf("read line: %v", r.Err())
		}

		if !r.Value() {
			return out
		}

		out = append(out, string(line))
	}
}

// TestReadLine_MixedTerminators verifies LF and CRLF lines normalize to the
// same newline-free content, and the final unterminated line still comes
// back.
func TestReadLine_MixedTerminators(t *testing.T) {
	s := mustOpen(t, writeTemp(t, "a\nb\r\nc"), fstream.ModeRead)
	defer s.Close()

	got := collectLines(t, s)

	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

// TestReadLine_CRKeptUnlessBeforeLF verifies '\r' is content unless a '\n'
// follows immediately — including a lone '\r' at end of file.
func TestReadLine_CRKeptUnlessBeforeLF(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"cr inside line", "a\rb\n", []string{"a\rb"}},
		{"lone trailing cr", "x\r", []string{"x\r"}},
		{"cr then lf split by content", "a\r\rb\n", []string{"a\r\rb"}},
		{"crlf only", "\r\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustOpen(t, writeTemp(t, tt.content), fstream.ModeRead)
			defer s.Close()

			got := collectLines(t, s)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestReadLine_EmptyLines verifies bare newlines produce empty lines, which
// still count as produced content.
func TestReadLine_EmptyLines(t *testing.T) {
	s := mustOpen(t, writeTemp(t, "\n\n"), fstream.ModeRead)
	defer s.Close()

	got := collectLines(t, s)

	if diff := cmp.Diff([]string{"", ""}, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

// TestReadLine_LineLongerThanBuffer verifies a line spanning several refills
// comes back intact and undivided.
func TestReadLine_LineLongerThanBuffer(t *testing.T) {
	long := strings.Repeat("z", 19)

	s, _ := openFaulty(t, writeTemp(t, long+"\nend"), fstream.ModeRead, 4)
	defer s.Close()

	got := collectLines(t, s)

	if diff := cmp.Diff([]string{long, "end"}, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

// TestReadLine_NewlineAtRefillBoundary verifies the terminator landing on
// either side of the boundary neither duplicates nor drops a byte.
func TestReadLine_NewlineAtRefillBoundary(t *testing.T) {
	tests := []struct {
		name    string
		content string // capacity is 4
		want    []string
	}{
		{"newline is last byte of refill", "abc\ndef", []string{"abc", "def"}},
		{"newline is first byte of refill", "abcd\nef", []string{"abcd", "ef"}},
		{"line is exactly one refill", "abcd\n", []string{"abcd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := openFaulty(t, writeTemp(t, tt.content), fstream.ModeRead, 4)
			defer s.Close()

			got := collectLines(t, s)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestReadLine_CRLFStraddlesRefillBoundary verifies the '\r' arriving in one
// refill and the '\n' in the next still normalize as one terminator.
func TestReadLine_CRLFStraddlesRefillBoundary(t *testing.T) {
	// Capacity 4: the first refill ends on the '\r', the '\n' leads the
	// second.
	s, _ := openFaulty(t, writeTemp(t, "abc\r\ndef"), fstream.ModeRead, 4)
	defer s.Close()

	got := collectLines(t, s)

	if diff := cmp.Diff([]string{"abc", "def"}, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

// TestReadLine_ReusesCallerCapacity verifies the out-parameter's backing
// array is reused rather than reallocated when it is big enough.
func TestReadLine_ReusesCallerCapacity(t *testing.T) {
	s := mustOpen(t, writeTemp(t, "one\ntwo\n"), fstream.ModeRead)
	defer s.Close()

	line := make([]byte, 0, 64)

	r := s.ReadLine(&line)
	if r.IsErr() || !r.Value() {
		t.Fatalf("read line: produced=%v err-state=%v", r.IsOK() && r.Value(), r.IsErr())
	}

	if got, want := string(line), "one"; got != want {
		t.Fatalf("line=%q, want=%q", got, want)
	}

	if got, want := cap(line), 64; got != want {
		t.Fatalf("cap=%v, want=%v (line buffer must be reused)", got, want)
	}
}

// TestReadLine_NilLine_FailsInvalidArgument verifies the out-parameter
// contract check.
func TestReadLine_NilLine_FailsInvalidArgument(t *testing.T) {
	s := mustOpen(t, writeTemp(t, "x\n"), fstream.ModeRead)
	defer s.Close()

	r := s.ReadLine(nil)

	if got, want := r.Err(), error(fstream.ErrInvalidArgument); !errors.Is(got, want) {
		t.Fatalf("err=%v, want=%v", got, want)
	}
}

// TestReadLine_SurfacesRefillError verifies a handle failure mid-line
// aborts with that error.
func TestReadLine_SurfacesRefillError(t *testing.T) {
	s, fh := openFaulty(t, writeTemp(t, "abcdefgh\n"), fstream.ModeRead, 4)
	defer s.Close()

	fh.FailOn(fstream.FaultRead, 2, fstream.ErrIO)

	var line []byte

	r := s.ReadLine(&line)

	if got, want := r.Err(), error(fstream.ErrIO); !errors.Is(got, want) {
		t.Fatalf("err=%v, want=%v", got, want)
	}
}

// -----------------------------------------------------------------------------
// Lines iterator
// -----------------------------------------------------------------------------

// TestLines_DrainsStream verifies iterating to completion is equivalent to
// repeated ReadLine calls.
func TestLines_DrainsStream(t *testing.T) {
	s, _ := openFaulty(t, writeTemp(t, "x\ny\r\nz"), fstream.ModeRead, 4)
	defer s.Close()

	var got []string

	for r := range s.Lines() {
		if r.IsErr() {
			t.Fatalf("line: %v", r.Err())
		}

		got = append(got, r.Value())
	}

	if diff := cmp.Diff([]string{"x", "y", "z"}, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}

	// The sequence is single-pass: the stream is drained.
	var line []byte
	if r := s.ReadLine(&line); r.IsErr() || r.Value() {
		t.Fatalf("stream not drained after Lines: produced=%v", r.IsOK() && r.Value())
	}
}

// TestLines_YieldsErrorAndStops verifies a read failure surfaces as one
// error element terminating the sequence.
func TestLines_YieldsErrorAndStops(t *testing.T) {
	s, fh := openFaulty(t, writeTemp(t, "abcdefgh\n"), fstream.ModeRead, 4)
	defer s.Close()

	fh.FailOn(fstream.FaultRead, 2, fstream.ErrInterrupted)

	var (
		errs  int
		lines int
	)

	for r := range s.Lines() {
		if r.IsErr() {
			errs++

			if got, want := r.Err(), error(fstream.ErrInterrupted); !errors.Is(got, want) {
				t.Fatalf("err=%v, want=%v", got, want)
			}

			continue
		}

		lines++
	}

	if got, want := errs, 1; got != want {
		t.Fatalf("error elements=%v, want=%v", got, want)
	}

	if got, want := lines, 0; got != want {
		t.Fatalf("line elements=%v, want=%v", got, want)
	}
}

// TestLines_EarlyBreakLeavesStreamUsable verifies breaking out of the loop
// does not close or corrupt the stream.
func TestLines_EarlyBreakLeavesStreamUsable(t *testing.T) {
	s := mustOpen(t, writeTemp(t, "one\ntwo\nthree\n"), fstream.ModeRead)
	defer s.Close()

	for r := range s.Lines() {
		if r.IsErr() {
			t.Fatalf("line: %v", r.Err())
		}

		if got, want := r.Value(), "one"; got != want {
			t.Fatalf("line=%q, want=%q", got, want)
		}

		break
	}

	var line []byte

	r := s.ReadLine(&line)
	if r.IsErr() || !r.Value() {
		t.Fatalf("read after break failed: err-state=%v", r.IsErr())
	}

	if got, want := string(line), "two"; got != want {
		t.Fatalf("line=%q, want=%q", got, want)
	}
}
