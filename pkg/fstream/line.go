package fstream

import (
	"bytes"
	"iter"

	"github.com/calvinalkan/fstream/pkg/result"
)

// ReadLine reads one line into *line, reusing its capacity. The line's
// terminating '\n' is consumed but excluded, and one '\r' immediately
// before the '\n' is stripped with it, so content is newline-free under
// both LF and CRLF conventions. A '\r' not followed by '\n' is content
// and stays — including a lone '\r' at end of file.
//
// Scanning resumes across refills: a line longer than the buffer, or one
// whose terminator straddles a refill boundary, comes back intact with no
// boundary byte duplicated or dropped.
//
// Returns Ok(true) when a line was produced (an empty line from a bare
// '\n' counts), Ok(false) exactly at end of file. A final line with no
// trailing newline is still produced.
//
// Fails with [ErrBadHandle] unless the stream is open in [ModeRead].
func (s *Stream) ReadLine(line *[]byte) result.Result[bool] {
	if !s.CanRead() {
		return result.Err[bool](ErrBadHandle)
	}

	if line == nil {
		return result.Err[bool](ErrInvalidArgument)
	}

	*line = (*line)[:0]

	for {
		if s.state() == refilling {
			fr := s.refill()
			if fr.IsErr() {
				return result.Err[bool](fr.Err())
			}

			if fr.Value() == exhausted {
				return result.Ok(len(*line) > 0)
			}
		}

		window := s.buf[s.pos:s.limit]

		i := bytes.IndexByte(window, '\n')
		if i < 0 {
			// No terminator yet: keep the partial line and scan the
			// next refill.
			*line = append(*line, window...)
			s.pos = s.limit

			continue
		}

		*line = append(*line, window[:i]...)
		s.pos += i + 1

		// Strip a '\r' that arrived immediately before the '\n', even
		// when the pair straddled a refill boundary.
		if n := len(*line); n > 0 && (*line)[n-1] == '\r' {
			*line = (*line)[:n-1]
		}

		return result.Ok(true)
	}
}

// Lines is a lazy, single-pass, non-restartable sequence of the stream's
// remaining lines, one [Stream.ReadLine] per element. Iterating it to
// completion drains the stream. On a read failure the sequence yields one
// error Result and stops.
//
//	for r := range s.Lines() {
//	    if r.IsErr() {
//	        return r.Err()
//	    }
//	    process(r.Value())
//	}
func (s *Stream) Lines() iter.Seq[result.Result[string]] {
	return func(yield func(result.Result[string]) bool) {
		var line []byte

		for {
			r := s.ReadLine(&line)
			if r.IsErr() {
				yield(result.Err[string](r.Err()))

				return
			}

			if !r.Value() {
				return
			}

			if !yield(result.Ok(string(line))) {
				return
			}
		}
	}
}
