package scanner

import (
	"testing"

	"github.com/indigo-web/strix/httperr"
	"github.com/stretchr/testify/require"
)

func TestPeekAdvance(t *testing.T) {
	s := New([]byte("ab"))

	c, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, byte('a'), c)

	// peeking must not consume
	c, err = s.Peek()
	require.NoError(t, err)
	require.Equal(t, byte('a'), c)

	s.Advance()
	c, err = s.Peek()
	require.NoError(t, err)
	require.Equal(t, byte('b'), c)

	s.Advance()
	_, err = s.Peek()
	require.Equal(t, httperr.ErrExhausted, err)
	require.True(t, s.Exhausted())
}

func TestExpect(t *testing.T) {
	s := New([]byte("a"))
	require.Equal(t, httperr.ErrUnexpectedByte, s.Expect('b'))
	require.NoError(t, s.Expect('a'))
	require.Equal(t, httperr.ErrExhausted, s.Expect('a'))
}

func TestTakeWhile(t *testing.T) {
	s := New([]byte("abc123"))
	isAlpha := func(c byte) bool { return c >= 'a' && c <= 'z' }

	require.Equal(t, "abc", string(s.TakeWhile(isAlpha)))
	require.Empty(t, s.TakeWhile(isAlpha))
	require.Equal(t, "123", string(s.Tail()))
}

func TestExpectCRLF(t *testing.T) {
	t.Run("crlf", func(t *testing.T) {
		s := New([]byte("\r\nrest"))
		require.NoError(t, s.ExpectCRLF())
		require.Equal(t, "rest", string(s.Tail()))
	})

	t.Run("bare lf", func(t *testing.T) {
		s := New([]byte("\n"))
		require.Equal(t, httperr.ErrMalformedLineEnding, s.ExpectCRLF())
	})

	t.Run("bare cr", func(t *testing.T) {
		s := New([]byte("\rx"))
		require.Equal(t, httperr.ErrMalformedLineEnding, s.ExpectCRLF())
	})

	t.Run("cut off", func(t *testing.T) {
		s := New([]byte("\r"))
		require.Equal(t, httperr.ErrExhausted, s.ExpectCRLF())

		s = New(nil)
		require.Equal(t, httperr.ErrExhausted, s.ExpectCRLF())
	})
}

func TestLiteral(t *testing.T) {
	s := New([]byte("HTTP/1.1 200"))
	require.NoError(t, s.Literal("HTTP/1.1"))
	require.Equal(t, " 200", string(s.Tail()))

	s = New([]byte("HTTP/1.0"))
	require.Equal(t, httperr.ErrUnexpectedByte, s.Literal("HTTP/1.1"))

	s = New([]byte("HTT"))
	require.Equal(t, httperr.ErrExhausted, s.Literal("HTTP/1.1"))
}
