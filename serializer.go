package strix

import (
	"github.com/indigo-web/strix/httperr"
	"github.com/indigo-web/strix/internal/httpchars"
)

// encoder appends into a caller-supplied buffer and never past its
// capacity. On overflow it latches and all further writes are dropped, so
// the grammar methods can stay unconditional.
type encoder struct {
	buff     []byte
	overflow bool
}

func newEncoder(dst []byte) encoder {
	return encoder{buff: dst}
}

func (e *encoder) bytes(b []byte) {
	if e.overflow || len(e.buff)+len(b) > cap(e.buff) {
		e.overflow = true
		return
	}

	e.buff = append(e.buff, b...)
}

func (e *encoder) str(s string) {
	if e.overflow || len(e.buff)+len(s) > cap(e.buff) {
		e.overflow = true
		return
	}

	e.buff = append(e.buff, s...)
}

func (e *encoder) octet(c byte) {
	if e.overflow || len(e.buff) >= cap(e.buff) {
		e.overflow = true
		return
	}

	e.buff = append(e.buff, c)
}

func (e *encoder) sp()      { e.octet(' ') }
func (e *encoder) colonsp() { e.bytes(httpchars.COLONSP) }
func (e *encoder) crlf()    { e.bytes(httpchars.CRLF) }

// headers renders the header list exactly as given, one "Name: value" line
// per entry, duplicates included.
func (e *encoder) headers(headers *Headers) {
	if headers == nil {
		return
	}

	for _, pair := range headers.Expose() {
		e.str(pair.Name)
		e.colonsp()
		e.bytes(pair.Value)
		e.crlf()
	}
}

func (e *encoder) finish() ([]byte, error) {
	if e.overflow {
		return nil, httperr.ErrBufferTooSmall
	}

	return e.buff, nil
}

func headersSize(headers *Headers) (size int) {
	if headers == nil {
		return 0
	}

	for _, pair := range headers.Expose() {
		size += len(pair.Name) + len(httpchars.COLONSP) + len(pair.Value) + len(httpchars.CRLF)
	}

	return size
}
