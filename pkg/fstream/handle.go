package fstream

import (
	"github.com/calvinalkan/fstream/pkg/result"
)

// Mode fixes a stream's direction for its whole lifetime.
type Mode uint8

const (
	// ModeRead opens an existing file read-only.
	ModeRead Mode = iota

	// ModeWrite creates or truncates a file, write-only.
	ModeWrite

	// ModeAppend creates the file if absent; every write lands at the
	// end, write-only.
	ModeAppend
)

// String returns the mode name ("read", "write", "append").
func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeAppend:
		return "append"
	default:
		return "invalid"
	}
}

func (m Mode) valid() bool {
	return m == ModeRead || m == ModeWrite || m == ModeAppend
}

// writable reports whether the mode allows the write family.
func (m Mode) writable() bool {
	return m == ModeWrite || m == ModeAppend
}

// Handle is one open OS file: the raw, unbuffered capability a [Stream]
// builds on. Size and BlockSize are captured once when the handle is
// opened and never refreshed.
//
// A handle is exclusively owned by at most one stream and is not safe for
// concurrent use. Implementations must make Close idempotent.
type Handle interface {
	// Read reads up to len(p) bytes into p. Ok(0) reports end of file.
	Read(p []byte) result.Result[int]

	// Write writes p, reporting how many bytes the OS accepted (which
	// may be short).
	Write(p []byte) result.Result[int]

	// Seek moves the file cursor. Whence is one of [io.SeekStart],
	// [io.SeekCurrent], [io.SeekEnd]. Reports the new absolute offset.
	Seek(offset int64, whence int) result.Result[int64]

	// Sync forces the OS to flush its caches for this file.
	Sync() result.Void

	// Close releases the descriptor. Closing an already-closed handle
	// reports success.
	Close() result.Void

	// Size is the file size captured at open.
	Size() int64

	// BlockSize is the filesystem block size captured at open, or 0 when
	// the platform cannot report one.
	BlockSize() int64

	// Closed reports whether Close has run.
	Closed() bool
}

// OpenHandle opens the file at path as a raw [Handle] with mode-dependent
// OS flags (read opens an existing file; write creates or truncates;
// append creates if absent). The file is stat'd once for size and block
// size; if that stat fails the descriptor is closed before the error is
// returned, so a failed open never leaks a descriptor.
//
// Most callers want [Open], which wraps the handle in a buffered [Stream].
func OpenHandle(path string, mode Mode) result.Result[Handle] {
	if !mode.valid() {
		return result.Err[Handle](ErrInvalidArgument)
	}

	return openOSHandle(path, mode)
}

// The OS backend lives in build-tagged files: handle_unix.go drives raw
// descriptors through golang.org/x/sys/unix; handle_other.go wraps
// [os.File] for everything else. Both must satisfy this contract.
var (
	_ func(path string, mode Mode) result.Result[Handle] = openOSHandle
	_ Handle                                             = (*osHandle)(nil)
)
