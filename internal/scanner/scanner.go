package scanner

import (
	"github.com/indigo-web/strix/httperr"
)

// Scanner is a cursor over a complete in-memory message. All the grammar
// above it is expressed through a handful of primitives, none of which
// allocate or look behind the cursor.
type Scanner struct {
	data []byte
	pos  int
}

func New(data []byte) Scanner {
	return Scanner{data: data}
}

// Peek returns the next byte without consuming it.
func (s *Scanner) Peek() (byte, error) {
	if s.pos >= len(s.data) {
		return 0, httperr.ErrExhausted
	}

	return s.data[s.pos], nil
}

// Advance consumes a single byte. Calling it past the end is a bug in the
// caller, so the cursor is simply clamped.
func (s *Scanner) Advance() {
	if s.pos < len(s.data) {
		s.pos++
	}
}

// Expect consumes the next byte iff it equals c.
func (s *Scanner) Expect(c byte) error {
	if s.pos >= len(s.data) {
		return httperr.ErrExhausted
	}
	if s.data[s.pos] != c {
		return httperr.ErrUnexpectedByte
	}

	s.pos++

	return nil
}

// TakeWhile consumes the longest (possibly empty) run of bytes satisfying
// pred and returns it as a view into the underlying buffer.
func (s *Scanner) TakeWhile(pred func(byte) bool) []byte {
	begin := s.pos

	for s.pos < len(s.data) && pred(s.data[s.pos]) {
		s.pos++
	}

	return s.data[begin:s.pos]
}

// SkipWhile consumes the longest run of bytes satisfying pred.
func (s *Scanner) SkipWhile(pred func(byte) bool) {
	for s.pos < len(s.data) && pred(s.data[s.pos]) {
		s.pos++
	}
}

// ExpectCRLF consumes exactly \r\n. A bare \n, or anything else in place
// of the pair, is a malformed line ending. Ambiguous line termination is
// a known request-smuggling vector, so there is no lenient mode.
func (s *Scanner) ExpectCRLF() error {
	if s.pos >= len(s.data) {
		return httperr.ErrExhausted
	}
	if s.data[s.pos] != '\r' {
		return httperr.ErrMalformedLineEnding
	}
	if s.pos+1 >= len(s.data) {
		return httperr.ErrExhausted
	}
	if s.data[s.pos+1] != '\n' {
		return httperr.ErrMalformedLineEnding
	}

	s.pos += 2

	return nil
}

// Literal consumes the exact byte sequence of lit.
func (s *Scanner) Literal(lit string) error {
	if len(s.data)-s.pos < len(lit) {
		return httperr.ErrExhausted
	}

	for i := 0; i < len(lit); i++ {
		if s.data[s.pos+i] != lit[i] {
			return httperr.ErrUnexpectedByte
		}
	}

	s.pos += len(lit)

	return nil
}

// Tail returns everything past the cursor as a view into the underlying
// buffer.
func (s *Scanner) Tail() []byte {
	return s.data[s.pos:]
}

// Exhausted reports whether the cursor reached the end of the input.
func (s *Scanner) Exhausted() bool {
	return s.pos >= len(s.data)
}
