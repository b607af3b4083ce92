package strix

import (
	json "github.com/json-iterator/go"

	"github.com/indigo-web/strix/httperr"
	"github.com/indigo-web/strix/internal/httpchars"
	"github.com/indigo-web/strix/internal/scanner"
	"github.com/indigo-web/utils/uf"
)

// Response is a structured view of a single response message. Reason,
// header names and values and Body all alias the buffer the response was
// parsed from and must not outlive it.
type Response struct {
	Status  int
	Reason  string
	Headers *Headers
	Body    []byte
}

// NewResponse assembles a response for serialization. An empty reason is
// legal and encodes without the trailing space.
func NewResponse(status int, reason string, headers *Headers, body []byte) Response {
	return Response{
		Status:  status,
		Reason:  reason,
		Headers: headers,
		Body:    body,
	}
}

// ParseResponse parses a complete response message. The status code is
// always exactly three digits in 100-599; the reason phrase may be empty,
// with or without the separating space.
func ParseResponse(data []byte, headers *Headers) (Response, error) {
	s := scanner.New(data)
	if s.Exhausted() {
		return Response{}, httperr.ErrExhausted
	}

	if err := s.Literal(httpchars.Proto); err != nil {
		return Response{}, refine(err, httperr.ErrInvalidVersion)
	}
	if err := s.Expect(' '); err != nil {
		return Response{}, refine(err, httperr.ErrInvalidVersion)
	}

	digits := s.TakeWhile(httpchars.IsDigit)
	if len(digits) != 3 {
		return Response{}, httperr.ErrInvalidStatusCode
	}
	status := int(digits[0]-'0')*100 + int(digits[1]-'0')*10 + int(digits[2]-'0')
	if status < 100 || status > 599 {
		return Response{}, httperr.ErrInvalidStatusCode
	}

	c, err := s.Peek()
	if err != nil {
		return Response{}, err
	}

	var reason string
	switch c {
	case ' ':
		s.Advance()
		reason = uf.B2S(s.TakeWhile(httpchars.IsReason))
		if c, err = s.Peek(); err == nil && c != '\r' && c != '\n' {
			return Response{}, httperr.ErrUnexpectedByte
		}
	case '\r', '\n':
		// no reason phrase at all
	default:
		return Response{}, httperr.ErrInvalidStatusCode
	}

	if err = s.ExpectCRLF(); err != nil {
		return Response{}, err
	}

	if err = parseHeaders(&s, headers); err != nil {
		return Response{}, err
	}

	return Response{
		Status:  status,
		Reason:  reason,
		Headers: headers,
		Body:    s.Tail(),
	}, nil
}

// JSON convoys the raw body to a json unmarshaler. The body is taken
// verbatim: decoding transfer encodings first is up to the caller.
func (r Response) JSON(model any) error {
	iterator := json.ConfigDefault.BorrowIterator(r.Body)
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}

// Encode writes the wire form of the response into dst's spare capacity
// and returns the extended slice. dst never grows: if capacity is lacking,
// ErrBufferTooSmall is returned and dst is left untouched.
func (r Response) Encode(dst []byte) ([]byte, error) {
	if r.Status < 100 || r.Status > 599 {
		return nil, httperr.ErrInvalidStatusCode
	}

	e := newEncoder(dst)
	e.str(httpchars.Proto)
	e.sp()
	e.octet(byte('0' + r.Status/100))
	e.octet(byte('0' + r.Status/10%10))
	e.octet(byte('0' + r.Status%10))
	if len(r.Reason) > 0 {
		e.sp()
		e.str(r.Reason)
	}
	e.crlf()
	e.headers(r.Headers)
	e.crlf()
	e.bytes(r.Body)

	return e.finish()
}

// EncodedSize returns the exact number of bytes Encode is going to produce.
func (r Response) EncodedSize() int {
	size := len(httpchars.Proto) + 1 + 3 + 2 + 2 + len(r.Body)
	if len(r.Reason) > 0 {
		size += 1 + len(r.Reason)
	}

	return size + headersSize(r.Headers)
}

func (r Response) String() string {
	encoded, err := r.Encode(make([]byte, 0, r.EncodedSize()))
	if err != nil {
		return "<invalid response>"
	}

	return uf.B2S(encoded)
}
