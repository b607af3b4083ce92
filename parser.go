package strix

import (
	"github.com/indigo-web/strix/httperr"
	"github.com/indigo-web/strix/internal/httpchars"
	"github.com/indigo-web/strix/internal/scanner"
	"github.com/indigo-web/utils/uf"
)

// parseHeaders consumes the header section, including the terminating blank
// line. Pairs land in the store in wire order; duplicates are kept as
// separate entries.
func parseHeaders(s *scanner.Scanner, headers *Headers) error {
	for {
		c, err := s.Peek()
		if err != nil {
			return err
		}

		switch c {
		case '\r':
			// the blank line ending the section
			return s.ExpectCRLF()
		case '\n':
			return httperr.ErrMalformedLineEnding
		case ' ', '\t':
			// obsolete line folding; rejected, not unfolded
			return httperr.ErrInvalidHeaderName
		}

		name := s.TakeWhile(httpchars.IsToken)
		if len(name) == 0 {
			return httperr.ErrInvalidHeaderName
		}
		if err = s.Expect(':'); err != nil {
			return refine(err, httperr.ErrInvalidHeaderName)
		}

		s.SkipWhile(isOWS)
		value := s.TakeWhile(httpchars.IsFieldValue)

		c, err = s.Peek()
		if err != nil {
			return err
		}
		switch c {
		case '\r':
			if err = s.ExpectCRLF(); err != nil {
				return err
			}
		case '\n':
			return httperr.ErrMalformedLineEnding
		default:
			return httperr.ErrInvalidHeaderValue
		}

		if !headers.Add(uf.B2S(name), value) {
			return httperr.ErrTooManyHeaders
		}
	}
}

// refine narrows a scanner error down to a grammar-specific one.
// Exhaustion stays exhaustion: the caller may simply not have buffered the
// whole message yet.
func refine(err, specific error) error {
	if err == httperr.ErrExhausted {
		return err
	}

	return specific
}

func isOWS(c byte) bool {
	return c == ' ' || c == '\t'
}
