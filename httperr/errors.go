package httperr

// Kind classifies a parsing or serialization failure. Every error value
// exported by this package carries exactly one kind, so callers may switch
// on it instead of comparing error values directly.
type Kind uint8

const (
	// Exhausted is returned when the input ended before a grammar rule
	// completed. Re-invoking on a larger buffer is the caller's business.
	Exhausted Kind = iota + 1
	UnexpectedByte
	MalformedLineEnding
	InvalidMethod
	InvalidVersion
	InvalidStatusCode
	InvalidPath
	InvalidHeaderName
	InvalidHeaderValue
	TooManyHeaders
	TooManyQueryParams
	InvalidQueryParam
	BufferTooSmall
)

type Error struct {
	Message string
	Kind    Kind
}

func New(kind Kind, message string) error {
	return Error{
		Kind:    kind,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

// KindOf extracts the kind of an error produced by this package. Foreign
// errors report the zero kind.
func KindOf(err error) Kind {
	if e, ok := err.(Error); ok {
		return e.Kind
	}

	return 0
}

var (
	ErrExhausted           = New(Exhausted, "message ended before a grammar rule completed")
	ErrUnexpectedByte      = New(UnexpectedByte, "unexpected byte")
	ErrMalformedLineEnding = New(MalformedLineEnding, "lines must be terminated with CRLF")
	ErrInvalidMethod       = New(InvalidMethod, "unrecognized request method")
	ErrInvalidVersion      = New(InvalidVersion, "only HTTP/1.1 is supported")
	ErrInvalidStatusCode   = New(InvalidStatusCode, "status code must be three digits in 100-599")
	ErrInvalidPath         = New(InvalidPath, "path is empty or contains disallowed characters")
	ErrInvalidHeaderName   = New(InvalidHeaderName, "header name is empty or contains disallowed characters")
	ErrInvalidHeaderValue  = New(InvalidHeaderValue, "header value contains disallowed characters")
	ErrTooManyHeaders      = New(TooManyHeaders, "headers buffer is full")
	ErrTooManyQueryParams  = New(TooManyQueryParams, "query parameters buffer is full")
	ErrInvalidQueryParam   = New(InvalidQueryParam, "query parameter name is empty")
	ErrBufferTooSmall      = New(BufferTooSmall, "output buffer lacks capacity")
)
