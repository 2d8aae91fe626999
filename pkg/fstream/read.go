package fstream

import (
	"io"

	"github.com/calvinalkan/fstream/pkg/result"
)

// fillState is the read engine's position in the refill/drain cycle.
// Keeping the cycle explicit makes the boundary crossing in [Stream.ReadLine]
// testable on its own instead of being buried in a scan loop.
type fillState uint8

const (
	// draining: buf[pos:limit] still holds bytes to hand out.
	draining fillState = iota

	// refilling: the buffer is spent; the next step is one handle-level
	// read of the full capacity.
	refilling

	// exhausted: the last refill returned zero bytes (end of file).
	exhausted
)

// state classifies where the read engine stands.
func (s *Stream) state() fillState {
	if s.pos < s.limit {
		return draining
	}

	return refilling
}

// refill replaces the buffer contents with one handle-level read of the
// full capacity. Returns draining when bytes arrived, exhausted at end of
// file. Discards whatever was buffered.
func (s *Stream) refill() result.Result[fillState] {
	s.pos, s.limit = 0, 0

	r := s.h.Read(s.buf)
	if r.IsErr() {
		return result.Err[fillState](r.Err())
	}

	if r.Value() == 0 {
		return result.Ok(exhausted)
	}

	s.limit = r.Value()

	return result.Ok(draining)
}

// drain copies buffered bytes into p and advances the cursor, returning
// how many were copied. Only valid in the draining state.
func (s *Stream) drain(p []byte) int {
	n := copy(p, s.buf[s.pos:s.limit])
	s.pos += n

	return n
}

// Read copies up to len(p) bytes into p, draining buffered bytes first
// and refilling from the handle as needed. The count is short of len(p)
// only at end of file. A refill failure aborts immediately and surfaces
// the handle's error; bytes already copied into p are not reported.
//
// Fails with [ErrBadHandle] unless the stream is open in [ModeRead].
func (s *Stream) Read(p []byte) result.Result[int] {
	if !s.CanRead() {
		return result.Err[int](ErrBadHandle)
	}

	total := 0
	for total < len(p) {
		if s.state() == refilling {
			fr := s.refill()
			if fr.IsErr() {
				return result.Err[int](fr.Err())
			}

			if fr.Value() == exhausted {
				break
			}
		}

		total += s.drain(p[total:])
	}

	return result.Ok(total)
}

// ReadBytes reads up to count bytes and returns them as a fresh slice,
// shorter than count only at end of file.
//
// A negative count means "everything left": the remaining byte count is
// computed from the size snapshot taken at open and the stream's logical
// offset (raw handle position minus buffered-but-unread bytes). That
// computation going negative means the file changed under the stream — it
// fails with [ErrIO]. Growth after open is not seen (size is a snapshot),
// so a negative count can undercount on a concurrently-growing file.
func (s *Stream) ReadBytes(count int) result.Result[[]byte] {
	if !s.CanRead() {
		return result.Err[[]byte](ErrBadHandle)
	}

	if count < 0 {
		rem := s.remaining()
		if rem.IsErr() {
			return result.Err[[]byte](rem.Err())
		}

		count = rem.Value()
	}

	b := make([]byte, count)

	r := s.Read(b)
	if r.IsErr() {
		return result.Err[[]byte](r.Err())
	}

	return result.Ok(b[:r.Value()])
}

// ReadString reads up to count bytes as a string. Semantics are exactly
// [Stream.ReadBytes], including count < 0 meaning "everything left".
func (s *Stream) ReadString(count int) result.Result[string] {
	return result.Map(s.ReadBytes(count), func(b []byte) string {
		return string(b)
	})
}

// ReadIntoCapacity appends bytes to *buf up to (never beyond) its existing
// capacity, without reallocating. It returns the number of bytes appended,
// short of the available room only at end of file; once len equals cap it
// returns Ok(0) without touching the handle. On a refill failure the bytes
// already appended stay in *buf and the handle's error is surfaced.
//
// This is the zero-reallocation variant for callers that manage their own
// growth policy.
func (s *Stream) ReadIntoCapacity(buf *[]byte) result.Result[int] {
	if !s.CanRead() {
		return result.Err[int](ErrBadHandle)
	}

	if buf == nil {
		return result.Err[int](ErrInvalidArgument)
	}

	room := (*buf)[len(*buf):cap(*buf)]

	total := 0
	for total < len(room) {
		if s.state() == refilling {
			fr := s.refill()
			if fr.IsErr() {
				return result.Err[int](fr.Err())
			}

			if fr.Value() == exhausted {
				break
			}
		}

		n := s.drain(room[total:])
		total += n
		*buf = (*buf)[:len(*buf)+n]
	}

	return result.Ok(total)
}

// remaining computes the bytes left to EOF as (size snapshot − logical
// offset). This is the one place the raw handle position and the stream's
// logical position are reconciled: the handle cursor sits limit−pos bytes
// ahead of what the caller has consumed.
func (s *Stream) remaining() result.Result[int] {
	tr := s.h.Seek(0, io.SeekCurrent)
	if tr.IsErr() {
		return result.Err[int](tr.Err())
	}

	logical := tr.Value() - int64(s.limit-s.pos)

	rem := s.fileSize - logical
	if rem < 0 {
		return result.Err[int](ErrIO)
	}

	return result.Ok(int(rem))
}
