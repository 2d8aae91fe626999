//go:build !unix

package fstream

import (
	"errors"
	"io"
	"os"

	"github.com/calvinalkan/fstream/pkg/result"
)

// osHandle is the portable backend wrapping [os.File]. The platform
// reports no filesystem block size, so BlockSize is 0 and streams fall
// back to the default buffer capacity.
type osHandle struct {
	f      *os.File
	size   int64
	closed bool
}

func openFlags(mode Mode) int {
	switch mode {
	case ModeWrite:
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case ModeAppend:
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	default:
		return os.O_RDONLY
	}
}

func openOSHandle(path string, mode Mode) result.Result[Handle] {
	f, err := os.OpenFile(path, openFlags(mode), 0o644)
	if err != nil {
		return result.Err[Handle](KindOf(err))
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()

		return result.Err[Handle](KindOf(err))
	}

	return result.Ok[Handle](&osHandle{f: f, size: info.Size()})
}

func (h *osHandle) Read(p []byte) result.Result[int] {
	if h.closed {
		return result.Err[int](ErrBadHandle)
	}

	n, err := h.f.Read(p)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return result.Ok(0)
		}

		return result.Err[int](KindOf(err))
	}

	return result.Ok(n)
}

func (h *osHandle) Write(p []byte) result.Result[int] {
	if h.closed {
		return result.Err[int](ErrBadHandle)
	}

	n, err := h.f.Write(p)
	if err != nil {
		return result.Err[int](KindOf(err))
	}

	return result.Ok(n)
}

func (h *osHandle) Seek(offset int64, whence int) result.Result[int64] {
	if h.closed {
		return result.Err[int64](ErrBadHandle)
	}

	off, err := h.f.Seek(offset, whence)
	if err != nil {
		return result.Err[int64](KindOf(err))
	}

	return result.Ok(off)
}

func (h *osHandle) Sync() result.Void {
	if h.closed {
		return result.ErrVoid(ErrBadHandle)
	}

	err := h.f.Sync()
	if err != nil {
		return result.ErrVoid(KindOf(err))
	}

	return result.OkVoid()
}

func (h *osHandle) Close() result.Void {
	if h.closed {
		return result.OkVoid()
	}

	h.closed = true

	err := h.f.Close()
	if err != nil {
		return result.ErrVoid(KindOf(err))
	}

	return result.OkVoid()
}

func (h *osHandle) Size() int64 { return h.size }

func (h *osHandle) BlockSize() int64 { return 0 }

func (h *osHandle) Closed() bool { return h.closed }
