package fstream

import (
	"github.com/calvinalkan/fstream/pkg/result"
)

// defaultBufSize is the buffer capacity when the handle reports no usable
// block size.
const defaultBufSize = 4096

// Stream is a buffered byte stream over one exclusively-owned [Handle].
//
// The buffer has fixed capacity C, the handle's block size (or
// defaultBufSize). In read mode, buf[pos:limit] holds refilled bytes not
// yet consumed. In write and append mode, buf[:pos] holds bytes pending
// flush and limit stays 0. Invariant: 0 <= pos <= limit <= C while
// reading, 0 <= pos <= C while writing.
//
// The zero value is an inert closed stream; every operation on it fails
// with [ErrBadHandle].
type Stream struct {
	h    Handle
	mode Mode
	buf  []byte

	// limit marks the buffered bytes valid after the last refill.
	limit int

	// pos is the next buffered byte to consume (read mode) or the number
	// of bytes pending flush (write/append mode).
	pos int

	// Snapshots taken at open, never refreshed.
	fileSize  int64
	blockSize int64

	closed bool
}

// Open opens path in the given mode and wraps the handle in a buffered
// stream. Mode-dependent flags follow [OpenHandle].
//
// Failure kinds mirror the OS condition: [ErrNotFound], [ErrAccessDenied],
// [ErrAlreadyExists], [ErrFileLimit], [ErrOutOfMemory], [ErrIO], or
// [ErrUnknown]; an unknown mode fails with [ErrInvalidArgument].
func Open(path string, mode Mode) result.Result[*Stream] {
	hr := OpenHandle(path, mode)
	if hr.IsErr() {
		return result.Err[*Stream](hr.Err())
	}

	sr := FromHandle(hr.Value(), mode)
	if sr.IsErr() {
		// The handle opened but the stream could not adopt it; release
		// the descriptor rather than leak it.
		_ = hr.Value().Close()

		return sr
	}

	return sr
}

// FromHandle wraps an already-open handle in a buffered stream, adopting
// exclusive ownership. The caller asserts that mode matches how the handle
// was opened; the stream enforces it on every operation from here on.
//
// Fails with [ErrBadHandle] when h is nil or closed, [ErrInvalidArgument]
// on an unknown mode. On failure ownership stays with the caller.
func FromHandle(h Handle, mode Mode) result.Result[*Stream] {
	if h == nil || h.Closed() {
		return result.Err[*Stream](ErrBadHandle)
	}

	if !mode.valid() {
		return result.Err[*Stream](ErrInvalidArgument)
	}

	c := h.BlockSize()
	if c <= 0 {
		c = defaultBufSize
	}

	return result.Ok(&Stream{
		h:         h,
		mode:      mode,
		buf:       make([]byte, c),
		fileSize:  h.Size(),
		blockSize: h.BlockSize(),
	})
}

// Close flushes pending writes (write/append mode), closes the handle, and
// releases the buffer. The returned Void carries the first failure — a
// flush error on close signals lost bytes and must not vanish into
// teardown. Close is idempotent: closing again reports success.
func (s *Stream) Close() result.Void {
	if s.closed || s.h == nil {
		s.closed = true

		return result.OkVoid()
	}

	flushed := result.OkVoid()
	if s.mode.writable() {
		flushed = s.flushBuffered()
	}

	closedRes := s.h.Close()

	s.h = nil
	s.buf = nil
	s.limit, s.pos = 0, 0
	s.closed = true

	if flushed.IsErr() {
		return flushed
	}

	return closedRes
}

// Move transfers ownership of the handle and buffer to a new stream and
// returns it. The receiver becomes an inert closed placeholder: every
// subsequent operation on it fails with [ErrBadHandle]. Moving a closed
// stream yields another closed stream.
func (s *Stream) Move() *Stream {
	dst := &Stream{}
	*dst, *s = *s, Stream{closed: true}

	return dst
}

// CanRead reports whether the stream is open and was opened in [ModeRead].
func (s *Stream) CanRead() bool {
	return !s.closed && s.h != nil && s.mode == ModeRead
}

// CanWrite reports whether the stream is open and was opened in
// [ModeWrite] or [ModeAppend].
func (s *Stream) CanWrite() bool {
	return !s.closed && s.h != nil && s.mode.writable()
}

// Mode is the fixed mode the stream was opened in.
func (s *Stream) Mode() Mode { return s.mode }

// Size is the file size captured at open. It is a snapshot: growth after
// open is not reflected. The value survives Close; a moved-from stream
// reports 0.
func (s *Stream) Size() int64 { return s.fileSize }

// BlockSize is the filesystem block size captured at open (0 when the
// platform reported none; the stream then buffers defaultBufSize bytes).
func (s *Stream) BlockSize() int64 { return s.blockSize }
