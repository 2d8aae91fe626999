//go:build unix

package fstream

import (
	"errors"

	"golang.org/x/sys/unix"
)

// kindOfOS maps a raw errno to its Kind. The table mirrors the set of
// conditions file operations actually produce; everything else is
// [ErrUnknown].
func kindOfOS(err error) Kind {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return kindOfFS(err)
	}

	switch errno {
	case unix.EACCES, unix.EPERM:
		return ErrAccessDenied
	case unix.EBADF:
		return ErrBadHandle
	case unix.ENOENT:
		return ErrNotFound
	case unix.EEXIST:
		return ErrAlreadyExists
	case unix.EMFILE, unix.ENFILE:
		return ErrFileLimit
	case unix.EINTR:
		return ErrInterrupted
	case unix.EINVAL:
		return ErrInvalidArgument
	case unix.EIO:
		return ErrIO
	case unix.ENOMEM:
		return ErrOutOfMemory
	case unix.ENOSPC:
		return ErrNoSpace
	default:
		return ErrUnknown
	}
}
