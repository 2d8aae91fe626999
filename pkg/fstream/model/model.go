// Package model provides a deliberately simple, in-memory model of a
// buffered stream's publicly observable read behavior.
//
// The model is intentionally easy to audit: one byte slice and one logical
// offset, no buffer, no I/O. Property tests drive a real stream and the
// model with the same operation sequence and require identical
// transcripts. The model has unit tests of its own because an oracle with
// the wrong line semantics would silently bless the same bug in the
// stream.
package model

// Stream models the observable read surface: a logical offset into fixed
// content. Buffer capacity must never show up in what a caller observes,
// so the model has none.
//
// Offsets are the caller's responsibility: the model does not mirror
// OS-level rejection of out-of-range seeks.
type Stream struct {
	Content []byte
	Offset  int
}

// New returns a model positioned at the start of content.
func New(content []byte) *Stream {
	return &Stream{Content: content}
}

// Clone makes a deep copy so tests can fork the exact same state.
// It preserves the nil vs empty slice distinction so cmp.Diff(original,
// clone) returns empty without cmpopts.EquateEmpty().
func (m *Stream) Clone() *Stream {
	if m == nil {
		return nil
	}

	var content []byte
	if m.Content != nil {
		content = make([]byte, len(m.Content))
		copy(content, m.Content)
	}

	return &Stream{Content: content, Offset: m.Offset}
}

// Read consumes up to n bytes, short only at end of content.
func (m *Stream) Read(n int) []byte {
	end := min(m.Offset+n, len(m.Content))
	b := m.Content[m.Offset:end]
	m.Offset = end

	return b
}

// ReadAll consumes everything left.
func (m *Stream) ReadAll() []byte {
	return m.Read(len(m.Content) - m.Offset)
}

// ReadLine consumes through the next LF and reports whether a line was
// produced. The LF is dropped, as is one CR immediately before it; any
// other CR stays in the line. With nothing left it reports false; a
// trailing unterminated line is produced as-is.
func (m *Stream) ReadLine() ([]byte, bool) {
	if m.Offset >= len(m.Content) {
		return nil, false
	}

	for i := m.Offset; i < len(m.Content); i++ {
		if m.Content[i] != '\n' {
			continue
		}

		line := m.Content[m.Offset:i]
		m.Offset = i + 1

		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}

		return line, true
	}

	line := m.Content[m.Offset:]
	m.Offset = len(m.Content)

	return line, true
}

// SeekStart repositions to off bytes from the start and returns the new
// position.
func (m *Stream) SeekStart(off int) int64 {
	m.Offset = off

	return int64(m.Offset)
}

// SeekEnd repositions to off bytes relative to the end (off is usually
// negative or zero, matching Seek semantics) and returns the new position.
func (m *Stream) SeekEnd(off int) int64 {
	m.Offset = len(m.Content) + off

	return int64(m.Offset)
}

// Remaining is the byte count left to consume.
func (m *Stream) Remaining() int {
	return len(m.Content) - m.Offset
}
