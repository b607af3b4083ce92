package strix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeadersCapacity(t *testing.T) {
	headers := NewHeaders(make([]Header, 2))
	require.True(t, headers.Add("a", []byte("1")))
	require.True(t, headers.Add("b", []byte("2")))
	require.False(t, headers.Add("c", []byte("3")))
	require.Equal(t, 2, headers.Len())
}

func TestHeadersLookup(t *testing.T) {
	headers := NewHeaders(make([]Header, 8)).Clear()
	headers.Add("Content-Type", []byte("text/html"))
	headers.Add("Accept", []byte("*/*"))

	value, found := headers.Get("content-type")
	require.True(t, found)
	require.Equal(t, "text/html", string(value))

	require.Equal(t, "*/*", string(headers.Value("ACCEPT")))
	require.True(t, headers.Has("accept"))

	require.Nil(t, headers.Value("host"))
	require.Equal(t, "fallback", string(headers.ValueOr("host", []byte("fallback"))))
	require.False(t, headers.Has("host"))
}

func TestHeadersDuplicates(t *testing.T) {
	headers := NewHeaders(make([]Header, 8))
	headers.Add("Accept", []byte("text/html"))
	headers.Add("Host", []byte("localhost"))
	headers.Add("accept", []byte("application/json"))

	// duplicates stay separate entries in wire order
	values := headers.Values("Accept")
	require.Len(t, values, 2)
	require.Equal(t, "text/html", string(values[0]))
	require.Equal(t, "application/json", string(values[1]))

	keys := headers.Keys()
	require.Equal(t, []string{"Accept", "Host"}, keys)
}

func TestHeadersReuse(t *testing.T) {
	buf := make([]Header, 4)
	headers := NewHeaders(buf)
	headers.Add("a", []byte("1"))
	require.Equal(t, 1, headers.Len())

	headers.Clear()
	require.Equal(t, 0, headers.Len())
	require.True(t, headers.Add("b", []byte("2")))
	require.Equal(t, "b", headers.Expose()[0].Name)
}
