// Package strix is a strict, allocation-free parser and serializer for
// complete in-memory HTTP/1.1 messages.
//
// The codec is deliberately unforgiving: bare-LF line endings, obsolete
// header folding, unknown verbs and protocol versions other than HTTP/1.1
// are all rejected outright, since each of them is a known source of
// request-smuggling ambiguity. There is no recovery and no partial result:
// a message either matches the grammar or the call fails with a typed
// error from the httperr package.
//
// Everything a parse produces is a view into the input buffer. Nothing is
// copied, so the returned structures must not outlive the buffer they were
// parsed from. Header and query storage is caller-owned and fixed-capacity;
// overflowing it is an error, never a reallocation.
//
//	headers := strix.NewHeaders(make([]strix.Header, 8))
//	req, err := strix.ParseRequest(raw, headers)
//
// The package performs no I/O whatsoever. Reading complete messages off a
// connection, interpreting Content-Length and transfer encodings, and
// transmitting serialized bytes are all the caller's responsibility.
package strix
