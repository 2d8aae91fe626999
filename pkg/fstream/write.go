package fstream

import (
	"github.com/calvinalkan/fstream/pkg/result"
)

// Write copies p into the stream's buffer, flushing a full buffer to the
// handle before copying continues, across as many fill/flush cycles as p
// needs. All of p is consumed on success. A handle-level failure aborts
// immediately and surfaces that error; bytes flushed by earlier cycles
// stay written (no rollback), bytes still buffered stay buffered.
//
// Fails with [ErrBadHandle] unless the stream is open in [ModeWrite] or
// [ModeAppend].
func (s *Stream) Write(p []byte) result.Void {
	if !s.CanWrite() {
		return result.ErrVoid(ErrBadHandle)
	}

	for len(p) > 0 {
		if s.pos == len(s.buf) {
			fr := s.flushBuffered()
			if fr.IsErr() {
				return fr
			}
		}

		n := copy(s.buf[s.pos:], p)
		s.pos += n
		p = p[n:]
	}

	return result.OkVoid()
}

// WriteString writes str with [Stream.Write] semantics, copying straight
// from the string without an intermediate allocation.
func (s *Stream) WriteString(str string) result.Void {
	if !s.CanWrite() {
		return result.ErrVoid(ErrBadHandle)
	}

	for len(str) > 0 {
		if s.pos == len(s.buf) {
			fr := s.flushBuffered()
			if fr.IsErr() {
				return fr
			}
		}

		n := copy(s.buf[s.pos:], str)
		s.pos += n
		str = str[n:]
	}

	return result.OkVoid()
}

// Flush pushes all buffered, not-yet-written bytes to the handle in one
// handle-level write and empties the buffer. Safe to call with nothing
// pending.
//
// Fails with [ErrBadHandle] unless the stream is open in [ModeWrite] or
// [ModeAppend].
func (s *Stream) Flush() result.Void {
	if !s.CanWrite() {
		return result.ErrVoid(ErrBadHandle)
	}

	return s.flushBuffered()
}

// flushBuffered writes buf[:pos] in one handle-level call. The handle must
// accept the exact pending count; a short write fails with [ErrIO] and
// leaves the buffer as it was.
func (s *Stream) flushBuffered() result.Void {
	if s.pos == 0 {
		return result.OkVoid()
	}

	r := s.h.Write(s.buf[:s.pos])
	if r.IsErr() {
		return result.ErrVoid(r.Err())
	}

	if r.Value() != s.pos {
		return result.ErrVoid(ErrIO)
	}

	s.pos = 0

	return result.OkVoid()
}
