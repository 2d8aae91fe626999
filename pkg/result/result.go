// Package result provides a two-case success/error container.
//
// A [Result] holds exactly one of a success value or an error, decided at
// construction. It replaces (value, error) pairs in APIs where the two cases
// are mutually exclusive by contract and mixing them up is a programming
// error rather than a condition to handle: accessing the wrong case panics.
//
// The zero value of Result[T] is a success holding T's zero value.
//
// # Basic Usage
//
//	r := open(path)
//	if r.IsErr() {
//	    return result.Err[string](r.Err())
//	}
//	s := r.Value()
//
// Operations with no payload on success use [Void]:
//
//	if v := s.Flush(); v.IsErr() {
//	    return v
//	}
package result

import "fmt"

// Result holds either a success value of type T or an error, never both and
// never neither. The discriminant is fixed at construction: [Ok] builds the
// success case, [Err] the error case.
type Result[T any] struct {
	val T
	err error
}

// Ok returns a success Result holding val.
func Ok[T any](val T) Result[T] {
	return Result[T]{val: val}
}

// Err returns an error Result holding err.
//
// Panics if err is nil: an error Result without an error payload would make
// the discriminant ambiguous.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err with nil error")
	}

	return Result[T]{err: err}
}

// IsOK reports whether r holds a success value.
func (r Result[T]) IsOK() bool { return r.err == nil }

// IsErr reports whether r holds an error.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Value returns the success value.
//
// Panics if r holds an error. Callers must branch on [Result.IsErr] (or
// [Result.IsOK]) first; calling Value on an error Result is a bug in the
// caller, not a recoverable condition.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic(fmt.Sprintf("result: Value on error result: %v", r.err))
	}

	return r.val
}

// Err returns the error payload.
//
// Panics if r holds a success value, mirroring [Result.Value]: reading the
// inactive case is a programming error.
func (r Result[T]) Err() error {
	if r.err == nil {
		panic("result: Err on success result")
	}

	return r.err
}

// Get destructures r into Go's conventional (value, error) pair without
// panicking. On success the error is nil; on error the value is T's zero
// value.
func (r Result[T]) Get() (T, error) {
	return r.val, r.err
}

// UnwrapOr returns the success value, or def if r holds an error.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}

	return r.val
}

// Swap exchanges the contents of r and other, payload and discriminant
// together. Both operands end up holding exactly what the other held before.
//
// Panics if other is nil.
func (r *Result[T]) Swap(other *Result[T]) {
	if other == nil {
		panic("result: Swap with nil operand")
	}

	*r, *other = *other, *r
}

// Map transforms the success value with fn, passing an error through
// unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}

	return Ok(fn(r.val))
}

// AndThen chains a fallible transformation: fn runs only on success, and its
// Result is returned as-is. An error in r propagates without calling fn.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}

	return fn(r.val)
}

// Unit is the payload type of [Void]: a success that carries no data.
type Unit = struct{}

// Void is the no-payload specialization of [Result], for operations that
// either succeed with nothing to report or fail with an error. Its zero
// value is success.
type Void = Result[Unit]

// OkVoid returns a success Void.
func OkVoid() Void {
	return Ok(Unit{})
}

// ErrVoid returns an error Void holding err. Panics if err is nil.
func ErrVoid(err error) Void {
	return Err[Unit](err)
}
