package fstream_test

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/calvinalkan/fstream/pkg/fstream"
)

// TestKind_ErrorStrings verifies the error surface reads as
// "fstream: <name>" for every kind.
func TestKind_ErrorStrings(t *testing.T) {
	tests := []struct {
		kind fstream.Kind
		want string
	}{
		{fstream.ErrUnknown, "unknown"},
		{fstream.ErrAccessDenied, "access denied"},
		{fstream.ErrBadHandle, "bad handle"},
		{fstream.ErrNotFound, "not found"},
		{fstream.ErrAlreadyExists, "already exists"},
		{fstream.ErrFileLimit, "file limit reached"},
		{fstream.ErrInterrupted, "interrupted"},
		{fstream.ErrInvalidArgument, "invalid argument"},
		{fstream.ErrIO, "i/o error"},
		{fstream.ErrOutOfMemory, "out of memory"},
		{fstream.ErrNoSpace, "no space left"},
	}

	for _, tt := range tests {
		if got, want := tt.kind.String(), tt.want; got != want {
			t.Fatalf("String()=%q, want=%q", got, want)
		}

		if got, want := tt.kind.Error(), "fstream: "+tt.want; got != want {
			t.Fatalf("Error()=%q, want=%q", got, want)
		}
	}
}

// TestKind_OutOfRangeString verifies unknown enum values print their raw
// number instead of panicking.
func TestKind_OutOfRangeString(t *testing.T) {
	if got, want := fstream.Kind(200).String(), "kind(200)"; got != want {
		t.Fatalf("String()=%q, want=%q", got, want)
	}
}

// TestKindOf_PassesThroughKinds verifies an error already carrying a Kind
// keeps it, wrapped or not.
func TestKindOf_PassesThroughKinds(t *testing.T) {
	if got, want := fstream.KindOf(fstream.ErrNoSpace), fstream.ErrNoSpace; got != want {
		t.Fatalf("KindOf=%v, want=%v", got, want)
	}

	wrapped := fmt.Errorf("flushing segment: %w", fstream.ErrNoSpace)

	if got, want := fstream.KindOf(wrapped), fstream.ErrNoSpace; got != want {
		t.Fatalf("KindOf(wrapped)=%v, want=%v", got, want)
	}
}

// TestKindOf_FSSentinels verifies the portable io/fs fallback mapping.
func TestKindOf_FSSentinels(t *testing.T) {
	tests := []struct {
		err  error
		want fstream.Kind
	}{
		{fs.ErrNotExist, fstream.ErrNotFound},
		{fs.ErrPermission, fstream.ErrAccessDenied},
		{fs.ErrExist, fstream.ErrAlreadyExists},
		{fs.ErrClosed, fstream.ErrBadHandle},
		{fs.ErrInvalid, fstream.ErrInvalidArgument},
	}

	for _, tt := range tests {
		if got, want := fstream.KindOf(tt.err), tt.want; got != want {
			t.Fatalf("KindOf(%v)=%v, want=%v", tt.err, got, want)
		}
	}
}

// TestKindOf_UnmappedDefaultsToUnknown verifies the catch-all.
func TestKindOf_UnmappedDefaultsToUnknown(t *testing.T) {
	if got, want := fstream.KindOf(fmt.Errorf("weird")), fstream.ErrUnknown; got != want {
		t.Fatalf("KindOf=%v, want=%v", got, want)
	}

	if got, want := fstream.KindOf(nil), fstream.ErrUnknown; got != want {
		t.Fatalf("KindOf(nil)=%v, want=%v", got, want)
	}
}
