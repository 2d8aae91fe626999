package fstream

import (
	"github.com/calvinalkan/fstream/pkg/result"
)

// FaultOp names one Handle operation for fault scripting and counting.
type FaultOp uint8

const (
	FaultRead FaultOp = iota
	FaultWrite
	FaultSeek
	FaultSync
	FaultClose

	faultOpCount
)

// String returns the operation name.
func (op FaultOp) String() string {
	switch op {
	case FaultRead:
		return "read"
	case FaultWrite:
		return "write"
	case FaultSeek:
		return "seek"
	case FaultSync:
		return "sync"
	case FaultClose:
		return "close"
	default:
		return "invalid"
	}
}

// FaultHandle wraps a [Handle] with deterministic, scripted failures for
// exercising error paths that real files cannot produce on demand. There
// is no randomness: a script names the exact call that fails and with
// which error, so failing tests replay byte for byte.
//
// Zero scripts make it a transparent proxy, which is also how tests pick a
// tiny buffer capacity over a real temp file:
//
//	h := fstream.NewFaultHandle(inner).WithBlockSize(4)
//	s := fstream.FromHandle(h, fstream.ModeRead).Value()
//
// Configure before handing the handle to a stream; FaultHandle is not safe
// for concurrent use.
type FaultHandle struct {
	inner Handle

	// scripted failures: op -> 1-based call number -> error.
	failures [faultOpCount]map[int]error

	// counts calls per op, including failed ones.
	counts [faultOpCount]int

	// blockSize overrides the inner handle's block size when non-zero.
	blockSize int64

	// maxRead/maxWrite truncate the byte count offered to the inner
	// handle per call, forcing short reads and short writes.
	maxRead  int
	maxWrite int
}

// NewFaultHandle wraps inner. The wrapper owns the inner handle from here
// on; close the wrapper, not the inner handle.
func NewFaultHandle(inner Handle) *FaultHandle {
	return &FaultHandle{inner: inner}
}

// FailOn scripts the call-th invocation (1-based) of op to fail with err
// before reaching the inner handle. Returns the receiver for chaining.
func (f *FaultHandle) FailOn(op FaultOp, call int, err error) *FaultHandle {
	if f.failures[op] == nil {
		f.failures[op] = make(map[int]error)
	}

	f.failures[op][call] = err

	return f
}

// WithBlockSize overrides the block size a stream will size its buffer
// from. Set it before [FromHandle]; the stream snapshots the value at
// construction.
func (f *FaultHandle) WithBlockSize(n int64) *FaultHandle {
	f.blockSize = n

	return f
}

// WithMaxRead caps how many bytes any single read offers the inner handle,
// forcing short reads. Zero removes the cap.
func (f *FaultHandle) WithMaxRead(n int) *FaultHandle {
	f.maxRead = n

	return f
}

// WithMaxWrite caps how many bytes any single write passes to the inner
// handle, forcing short writes. Zero removes the cap.
func (f *FaultHandle) WithMaxWrite(n int) *FaultHandle {
	f.maxWrite = n

	return f
}

// Calls reports how many times op was invoked, scripted failures included.
func (f *FaultHandle) Calls(op FaultOp) int {
	return f.counts[op]
}

// step counts the call and returns the scripted error for it, if any.
func (f *FaultHandle) step(op FaultOp) error {
	f.counts[op]++

	if f.failures[op] == nil {
		return nil
	}

	return f.failures[op][f.counts[op]]
}

func (f *FaultHandle) Read(p []byte) result.Result[int] {
	if err := f.step(FaultRead); err != nil {
		return result.Err[int](err)
	}

	if f.maxRead > 0 && len(p) > f.maxRead {
		p = p[:f.maxRead]
	}

	return f.inner.Read(p)
}

func (f *FaultHandle) Write(p []byte) result.Result[int] {
	if err := f.step(FaultWrite); err != nil {
		return result.Err[int](err)
	}

	if f.maxWrite > 0 && len(p) > f.maxWrite {
		p = p[:f.maxWrite]
	}

	return f.inner.Write(p)
}

func (f *FaultHandle) Seek(offset int64, whence int) result.Result[int64] {
	if err := f.step(FaultSeek); err != nil {
		return result.Err[int64](err)
	}

	return f.inner.Seek(offset, whence)
}

func (f *FaultHandle) Sync() result.Void {
	if err := f.step(FaultSync); err != nil {
		return result.ErrVoid(err)
	}

	return f.inner.Sync()
}

func (f *FaultHandle) Close() result.Void {
	if err := f.step(FaultClose); err != nil {
		return result.ErrVoid(err)
	}

	return f.inner.Close()
}

func (f *FaultHandle) Size() int64 { return f.inner.Size() }

func (f *FaultHandle) BlockSize() int64 {
	if f.blockSize != 0 {
		return f.blockSize
	}

	return f.inner.BlockSize()
}

func (f *FaultHandle) Closed() bool { return f.inner.Closed() }

var _ Handle = (*FaultHandle)(nil)
