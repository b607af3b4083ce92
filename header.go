package strix

import (
	"github.com/indigo-web/iter"
	"github.com/indigo-web/utils/strcomp"
)

// Header is a single header line. When produced by a parser, both fields
// are views into the parsed buffer and share its lifetime. The value is
// opaque bytes: it is not guaranteed to be valid text.
type Header struct {
	Name  string
	Value []byte
}

// Headers is an ordered sequence of header pairs backed entirely by a
// caller-owned buffer. It acts as a map but uses linear search instead,
// which proves to be more efficient on the amount of entries a message
// usually carries. It never grows: once the underlying buffer is full,
// Add reports failure and the parsers translate that into ErrTooManyHeaders.
//
// Wire order is preserved, and so are duplicates. Which of two
// Content-Length values wins is a question this package refuses to answer
// on the caller's behalf.
type Headers struct {
	pairs      []Header
	uniqueBuff []string
	valuesBuff [][]byte
}

// NewHeaders wraps a caller-owned buffer. The buffer's capacity is the hard
// limit on how many pairs the store will ever hold.
func NewHeaders(buf []Header) *Headers {
	return &Headers{
		pairs: buf[:0],
	}
}

// Add appends a pair, reporting false if the underlying buffer is full.
func (h *Headers) Add(name string, value []byte) bool {
	if len(h.pairs) == cap(h.pairs) {
		return false
	}

	h.pairs = append(h.pairs, Header{
		Name:  name,
		Value: value,
	})

	return true
}

// Value returns the first value corresponding to the name, or nil.
// Name comparison is case-insensitive here and in all lookups below.
func (h *Headers) Value(name string) []byte {
	return h.ValueOr(name, nil)
}

// ValueOr returns either the first value corresponding to the name or the
// fallback given via the second parameter.
func (h *Headers) ValueOr(name string, or []byte) []byte {
	value, found := h.Get(name)
	if !found {
		return or
	}

	return value
}

// Get returns the first value and a bool indicating whether the name was
// found at all.
func (h *Headers) Get(name string) (value []byte, found bool) {
	for _, pair := range h.pairs {
		if strcomp.EqualFold(name, pair.Name) {
			return pair.Value, true
		}
	}

	return nil, false
}

// Values returns all values by the name in wire order. Returns nil if the
// name doesn't occur.
//
// WARNING: calling it twice will override values, returned by the first
// call. Consider copying the returned slice for safe use.
func (h *Headers) Values(name string) [][]byte {
	h.valuesBuff = h.valuesBuff[:0]

	for _, pair := range h.pairs {
		if strcomp.EqualFold(pair.Name, name) {
			h.valuesBuff = append(h.valuesBuff, pair.Value)
		}
	}

	if len(h.valuesBuff) == 0 {
		return nil
	}

	return h.valuesBuff
}

// Keys returns all unique presented names.
//
// WARNING: calling it twice will override values, returned by the first
// call. Consider copying the returned slice for safe use.
func (h *Headers) Keys() []string {
	h.uniqueBuff = h.uniqueBuff[:0]

	for _, pair := range h.pairs {
		if containsFold(h.uniqueBuff, pair.Name) {
			continue
		}

		h.uniqueBuff = append(h.uniqueBuff, pair.Name)
	}

	return h.uniqueBuff
}

// Has indicates whether there's an entry of the name.
func (h *Headers) Has(name string) bool {
	_, found := h.Get(name)
	return found
}

// Iter returns an iterator over the pairs.
func (h *Headers) Iter() iter.Iterator[Header] {
	return iter.Slice(h.pairs)
}

// Len returns the number of stored pairs.
func (h *Headers) Len() int {
	return len(h.pairs)
}

// Expose exposes the underlying pairs slice.
func (h *Headers) Expose() []Header {
	return h.pairs
}

// Clear drops all the entries, keeping the underlying buffer for reuse.
func (h *Headers) Clear() *Headers {
	h.pairs = h.pairs[:0]
	return h
}

func containsFold(collection []string, name string) bool {
	for _, element := range collection {
		if strcomp.EqualFold(element, name) {
			return true
		}
	}

	return false
}
