package fstream

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind is the closed set of typed errors surfaced by this package.
//
// Every fallible operation reports exactly one Kind, mapped from the OS
// error number by a fixed table ([KindOf]); unmapped conditions collapse
// to [ErrUnknown]. Kind implements error, so callers can branch with
// [errors.Is]:
//
//	r := fstream.Open(path, fstream.ModeRead)
//	if errors.Is(r.Err(), fstream.ErrNotFound) {
//	    // create the file first
//	}
type Kind uint8

const (
	// ErrUnknown is the catch-all for unmapped OS errors.
	ErrUnknown Kind = iota

	// ErrAccessDenied indicates missing permissions (EACCES, EPERM).
	ErrAccessDenied

	// ErrBadHandle indicates an invalid, closed, or moved-from stream or
	// handle, including operations attempted in the wrong mode (EBADF).
	ErrBadHandle

	// ErrNotFound indicates the path does not exist (ENOENT).
	ErrNotFound

	// ErrAlreadyExists indicates the path already exists (EEXIST).
	ErrAlreadyExists

	// ErrFileLimit indicates the process or system file-descriptor limit
	// was reached (EMFILE, ENFILE).
	ErrFileLimit

	// ErrInterrupted indicates an OS call was interrupted by a signal
	// (EINTR). The interrupted call is not retried; retrying is caller
	// policy.
	ErrInterrupted

	// ErrInvalidArgument indicates a malformed argument, such as an
	// unknown mode or seek origin (EINVAL).
	ErrInvalidArgument

	// ErrIO indicates a low-level I/O failure (EIO), a short handle-level
	// write, or a remaining-byte computation gone negative (the file
	// shrank or the cursor moved past the size snapshot).
	ErrIO

	// ErrOutOfMemory indicates the OS could not allocate (ENOMEM).
	ErrOutOfMemory

	// ErrNoSpace indicates the device is full (ENOSPC).
	ErrNoSpace
)

var kindNames = [...]string{
	ErrUnknown:         "unknown",
	ErrAccessDenied:    "access denied",
	ErrBadHandle:       "bad handle",
	ErrNotFound:        "not found",
	ErrAlreadyExists:   "already exists",
	ErrFileLimit:       "file limit reached",
	ErrInterrupted:     "interrupted",
	ErrInvalidArgument: "invalid argument",
	ErrIO:              "i/o error",
	ErrOutOfMemory:     "out of memory",
	ErrNoSpace:         "no space left",
}

// String returns the short human-readable name of the kind.
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// Error implements the error interface.
func (k Kind) Error() string {
	return "fstream: " + k.String()
}

// KindOf maps err to its Kind.
//
// Errors that already carry a Kind anywhere in their chain keep it; OS
// errors go through the platform errno table, then the [io/fs] sentinel
// fallback. Unmapped and nil errors map to [ErrUnknown].
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return kindOfOS(err)
}

// kindOfFS classifies the portable [io/fs] sentinels. Used by the platform
// tables as their common fallback.
func kindOfFS(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrAccessDenied
	case errors.Is(err, fs.ErrExist):
		return ErrAlreadyExists
	case errors.Is(err, fs.ErrClosed):
		return ErrBadHandle
	case errors.Is(err, fs.ErrInvalid):
		return ErrInvalidArgument
	default:
		return ErrUnknown
	}
}
