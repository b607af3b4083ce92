// Package uri splits a request target into its path and query components
// without decoding anything. Percent-encoded sequences are passed through
// untouched on both sides of the split: decoding before splitting and
// decoding after splitting are different security bugs, and the only way
// to have neither is to leave decoding to the caller.
package uri

import (
	"strings"

	"github.com/indigo-web/iter"
	"github.com/indigo-web/strix/httperr"
	"github.com/indigo-web/strix/internal/httpchars"
)

// Query is a single query parameter. Both fields are views into the parsed
// target.
type Query struct {
	Name, Value string
}

// Url is the path-and-query part of a request target. Params stays nil
// when the target carries no '?' at all; a bare trailing '?' yields an
// empty parameter list over the caller's buffer instead.
type Url struct {
	Path   string
	Params []Query
}

// Parse splits target on the first '?'. Parameters land in the caller-owned
// buf in source order, duplicates preserved as separate entries. A
// parameter without '=' gets an empty value; a parameter with an empty
// name is an error. buf never grows: overflowing its capacity fails with
// ErrTooManyQueryParams.
func Parse(target string, buf []Query) (Url, error) {
	path, query, found := strings.Cut(target, "?")
	if len(path) == 0 || (path[0] != '/' && path != "*") {
		return Url{}, httperr.ErrInvalidPath
	}
	for i := 0; i < len(path); i++ {
		if !httpchars.IsURISafe(path[i]) {
			return Url{}, httperr.ErrInvalidPath
		}
	}

	if !found {
		return Url{Path: path}, nil
	}

	params := buf[:0]

	for len(query) > 0 {
		pair, rest, more := strings.Cut(query, "&")

		name, value, _ := strings.Cut(pair, "=")
		if len(name) == 0 {
			return Url{}, httperr.ErrInvalidQueryParam
		}
		if hasIllegalByte(name) || hasIllegalByte(value) {
			return Url{}, httperr.ErrInvalidQueryParam
		}
		if len(params) == cap(buf) {
			return Url{}, httperr.ErrTooManyQueryParams
		}

		params = append(params, Query{Name: name, Value: value})

		if !more {
			break
		}
		query = rest
		if len(query) == 0 {
			// a trailing ampersand is a parameter with an empty name
			return Url{}, httperr.ErrInvalidQueryParam
		}
	}

	return Url{Path: path, Params: params}, nil
}

// Iter returns an iterator over the parameters.
func (u Url) Iter() iter.Iterator[Query] {
	return iter.Slice(u.Params)
}

func (u Url) String() string {
	if u.Params == nil {
		return u.Path
	}

	b := strings.Builder{}
	b.WriteString(u.Path)
	b.WriteByte('?')

	for i, param := range u.Params {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(param.Name)
		b.WriteByte('=')
		b.WriteString(param.Value)
	}

	return b.String()
}

func hasIllegalByte(s string) bool {
	for i := 0; i < len(s); i++ {
		// non-printable characters and whitespace have no place in a
		// still-encoded query string
		if s[i] < 0x21 || s[i] > 0x7e {
			return true
		}
	}

	return false
}
