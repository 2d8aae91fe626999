package fstream

import (
	"io"

	"github.com/calvinalkan/fstream/pkg/result"
)

// Seek moves the handle cursor and reports the new absolute offset.
// Whence is one of [io.SeekStart], [io.SeekCurrent], [io.SeekEnd]; offsets
// may be negative where the origin permits.
//
// In write and append mode, pending bytes are flushed before the handle
// moves, so they land at the position they were written under. In read
// mode, a successful seek discards all read-ahead — stale buffered bytes
// must never survive a cursor move. Note that [io.SeekCurrent] is relative
// to the raw handle position, which in read mode sits ahead of the logical
// position by the buffered-but-unread byte count.
//
// Fails with [ErrBadHandle] on a closed or moved-from stream,
// [ErrInvalidArgument] on an unknown whence.
func (s *Stream) Seek(offset int64, whence int) result.Result[int64] {
	if s.closed || s.h == nil {
		return result.Err[int64](ErrBadHandle)
	}

	switch whence {
	case io.SeekStart, io.SeekCurrent, io.SeekEnd:
	default:
		return result.Err[int64](ErrInvalidArgument)
	}

	if s.mode.writable() {
		fr := s.flushBuffered()
		if fr.IsErr() {
			return result.Err[int64](fr.Err())
		}
	}

	r := s.h.Seek(offset, whence)
	if r.IsErr() {
		return r
	}

	s.pos, s.limit = 0, 0

	return r
}

// Tell reports the raw handle position, equivalent to seeking zero bytes
// from the current position without disturbing buffered state.
//
// This is the raw OS cursor, not the stream's logical position: it does
// not subtract buffered-but-unread bytes in read mode, nor add pending
// bytes in write mode. ReadBytes(-1) is the one place the two notions are
// reconciled.
func (s *Stream) Tell() result.Result[int64] {
	if s.closed || s.h == nil {
		return result.Err[int64](ErrBadHandle)
	}

	return s.h.Seek(0, io.SeekCurrent)
}

// Sync flushes pending buffered bytes, then forces the OS to flush its own
// caches for the file.
//
// Fails with [ErrBadHandle] unless the stream is open in [ModeWrite] or
// [ModeAppend].
func (s *Stream) Sync() result.Void {
	if !s.CanWrite() {
		return result.ErrVoid(ErrBadHandle)
	}

	fr := s.flushBuffered()
	if fr.IsErr() {
		return fr
	}

	return s.h.Sync()
}
