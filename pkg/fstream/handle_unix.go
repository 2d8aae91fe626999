//go:build unix

package fstream

import (
	"golang.org/x/sys/unix"

	"github.com/calvinalkan/fstream/pkg/result"
)

// osHandle is the raw-descriptor backend. All I/O goes through
// golang.org/x/sys/unix directly, so OS behavior (short reads, EINTR)
// surfaces untranslated.
type osHandle struct {
	fd        int
	size      int64
	blockSize int64
	closed    bool
}

func openFlags(mode Mode) int {
	switch mode {
	case ModeWrite:
		return unix.O_WRONLY | unix.O_CREAT | unix.O_TRUNC
	case ModeAppend:
		return unix.O_WRONLY | unix.O_CREAT | unix.O_APPEND
	default:
		return unix.O_RDONLY
	}
}

func openOSHandle(path string, mode Mode) result.Result[Handle] {
	fd, err := unix.Open(path, openFlags(mode), 0o644)
	if err != nil {
		return result.Err[Handle](KindOf(err))
	}

	var st unix.Stat_t

	err = unix.Fstat(fd, &st)
	if err != nil {
		_ = unix.Close(fd)

		return result.Err[Handle](KindOf(err))
	}

	return result.Ok[Handle](&osHandle{
		fd:        fd,
		size:      int64(st.Size),
		blockSize: int64(st.Blksize),
	})
}

func (h *osHandle) Read(p []byte) result.Result[int] {
	if h.closed {
		return result.Err[int](ErrBadHandle)
	}

	n, err := unix.Read(h.fd, p)
	if err != nil {
		return result.Err[int](KindOf(err))
	}

	return result.Ok(n)
}

func (h *osHandle) Write(p []byte) result.Result[int] {
	if h.closed {
		return result.Err[int](ErrBadHandle)
	}

	n, err := unix.Write(h.fd, p)
	if err != nil {
		return result.Err[int](KindOf(err))
	}

	return result.Ok(n)
}

func (h *osHandle) Seek(offset int64, whence int) result.Result[int64] {
	if h.closed {
		return result.Err[int64](ErrBadHandle)
	}

	// io.Seek* values match SEEK_SET/SEEK_CUR/SEEK_END.
	off, err := unix.Seek(h.fd, offset, whence)
	if err != nil {
		return result.Err[int64](KindOf(err))
	}

	return result.Ok(off)
}

func (h *osHandle) Sync() result.Void {
	if h.closed {
		return result.ErrVoid(ErrBadHandle)
	}

	err := unix.Fsync(h.fd)
	if err != nil {
		return result.ErrVoid(KindOf(err))
	}

	return result.OkVoid()
}

func (h *osHandle) Close() result.Void {
	if h.closed {
		return result.OkVoid()
	}

	// Mark closed before the OS call: the descriptor state is undefined
	// after a failed close, so it must never be closed twice.
	h.closed = true

	err := unix.Close(h.fd)
	if err != nil {
		return result.ErrVoid(KindOf(err))
	}

	return result.OkVoid()
}

func (h *osHandle) Size() int64 { return h.size }

func (h *osHandle) BlockSize() int64 { return h.blockSize }

func (h *osHandle) Closed() bool { return h.closed }
