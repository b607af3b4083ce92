package httpchars

// Proto is the only protocol literal the codec recognizes on either side.
const Proto = "HTTP/1.1"

var (
	CRLF    = []byte("\r\n")
	COLONSP = []byte(": ")
)

var (
	token      [256]bool
	uriSafe    [256]bool
	fieldValue [256]bool
	reason     [256]bool
)

func init() {
	for c := '0'; c <= '9'; c++ {
		token[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		token[c] = true
		token[c&^0x20] = true
	}
	for _, c := range []byte("!#$%&'*+-.^_`|~") {
		token[c] = true
	}

	// visible ascii, except the few bytes that delimit or terminate a
	// request target on the wire
	for c := 0x21; c <= 0x7e; c++ {
		uriSafe[c] = true
	}
	uriSafe['"'], uriSafe['<'], uriSafe['>'] = false, false, false

	// field values are treated as opaque bytes: visible ascii, SP, HTAB
	// and obs-text are let through, control bytes are not
	fieldValue['\t'] = true
	for c := 0x20; c <= 0x7e; c++ {
		fieldValue[c] = true
	}
	for c := 0x80; c <= 0xff; c++ {
		fieldValue[c] = true
	}

	for c := 0x20; c <= 0x7e; c++ {
		reason[c] = true
	}
	reason['\t'] = true
}

// IsToken reports whether c may appear in a header name.
func IsToken(c byte) bool { return token[c] }

// IsURISafe reports whether c may appear in a request target.
func IsURISafe(c byte) bool { return uriSafe[c] }

// IsFieldValue reports whether c may appear in a header value.
func IsFieldValue(c byte) bool { return fieldValue[c] }

// IsReason reports whether c may appear in a reason phrase.
func IsReason(c byte) bool { return reason[c] }

func IsDigit(c byte) bool { return c >= '0' && c <= '9' }

// IsMethodChar reports whether c may appear in a verb token. Methods are
// uppercase by definition, so lowercase spellings never even reach the
// method table.
func IsMethodChar(c byte) bool { return c >= 'A' && c <= 'Z' }
