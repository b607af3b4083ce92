package strix

import (
	json "github.com/json-iterator/go"

	"github.com/indigo-web/strix/httperr"
	"github.com/indigo-web/strix/internal/httpchars"
	"github.com/indigo-web/strix/internal/scanner"
	"github.com/indigo-web/strix/method"
	"github.com/indigo-web/utils/uf"
)

// Request is a structured view of a single request message. Path, header
// names and values and Body all alias the buffer the request was parsed
// from and must not outlive it.
type Request struct {
	Method  method.Method
	Path    string
	Headers *Headers
	Body    []byte
}

// NewRequest assembles a request for serialization. The header list is
// taken as-is: nothing, not even Host or Content-Length, is added on the
// caller's behalf.
func NewRequest(m method.Method, path string, headers *Headers, body []byte) Request {
	return Request{
		Method:  m,
		Path:    path,
		Headers: headers,
		Body:    body,
	}
}

// ParseRequest parses a complete request message. Headers are filled into
// the caller-owned store in wire order; everything past the blank line is
// the body, verbatim. Whether the body length actually agrees with
// Content-Length is the caller's concern.
func ParseRequest(data []byte, headers *Headers) (Request, error) {
	s := scanner.New(data)
	if s.Exhausted() {
		return Request{}, httperr.ErrExhausted
	}

	verb := method.Parse(uf.B2S(s.TakeWhile(httpchars.IsMethodChar)))
	if verb == method.Unknown {
		return Request{}, httperr.ErrInvalidMethod
	}
	if err := s.Expect(' '); err != nil {
		return Request{}, refine(err, httperr.ErrInvalidMethod)
	}

	c, err := s.Peek()
	if err != nil {
		return Request{}, err
	}

	var path string
	switch c {
	case '/':
		path = uf.B2S(s.TakeWhile(httpchars.IsURISafe))
	case '*':
		// asterisk-form, as in OPTIONS * HTTP/1.1
		s.Advance()
		path = "*"
	default:
		return Request{}, httperr.ErrInvalidPath
	}

	if err = s.Expect(' '); err != nil {
		return Request{}, refine(err, httperr.ErrInvalidPath)
	}
	if err = s.Literal(httpchars.Proto); err != nil {
		return Request{}, refine(err, httperr.ErrInvalidVersion)
	}
	if c, err = s.Peek(); err == nil && (httpchars.IsDigit(c) || c == '.') {
		// HTTP/1.10, HTTP/1.1.1 and friends
		return Request{}, httperr.ErrInvalidVersion
	}
	if err = s.ExpectCRLF(); err != nil {
		return Request{}, err
	}

	if err = parseHeaders(&s, headers); err != nil {
		return Request{}, err
	}

	return Request{
		Method:  verb,
		Path:    path,
		Headers: headers,
		Body:    s.Tail(),
	}, nil
}

// JSON convoys the raw body to a json unmarshaler. The body is taken
// verbatim: decoding transfer encodings first is up to the caller.
func (r Request) JSON(model any) error {
	iterator := json.ConfigDefault.BorrowIterator(r.Body)
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}

// Encode writes the wire form of the request into dst's spare capacity and
// returns the extended slice. dst never grows: if capacity is lacking,
// ErrBufferTooSmall is returned and dst is left untouched.
func (r Request) Encode(dst []byte) ([]byte, error) {
	if r.Method == method.Unknown {
		return nil, httperr.ErrInvalidMethod
	}

	e := newEncoder(dst)
	e.str(r.Method.String())
	e.sp()
	e.str(r.Path)
	e.sp()
	e.str(httpchars.Proto)
	e.crlf()
	e.headers(r.Headers)
	e.crlf()
	e.bytes(r.Body)

	return e.finish()
}

// EncodedSize returns the exact number of bytes Encode is going to produce.
func (r Request) EncodedSize() int {
	size := len(r.Method.String()) + 1 + len(r.Path) + 1 + len(httpchars.Proto) + 2 + 2 + len(r.Body)

	return size + headersSize(r.Headers)
}

func (r Request) String() string {
	encoded, err := r.Encode(make([]byte, 0, r.EncodedSize()))
	if err != nil {
		return "<invalid request>"
	}

	return uf.B2S(encoded)
}
