package uri

import (
	"testing"

	"github.com/indigo-web/strix/httperr"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("path and two params", func(t *testing.T) {
		url, err := Parse("/index.html?query1=value&query2=value", make([]Query, 10))
		require.NoError(t, err)
		require.Equal(t, "/index.html", url.Path)
		require.Equal(t, []Query{
			{"query1", "value"},
			{"query2", "value"},
		}, url.Params)
	})

	t.Run("no query at all", func(t *testing.T) {
		url, err := Parse("/index.html", make([]Query, 10))
		require.NoError(t, err)
		require.Equal(t, "/index.html", url.Path)
		require.Nil(t, url.Params)
	})

	t.Run("bare question mark", func(t *testing.T) {
		url, err := Parse("/index.html?", make([]Query, 10))
		require.NoError(t, err)
		require.NotNil(t, url.Params)
		require.Empty(t, url.Params)
	})

	t.Run("duplicates are preserved, not merged", func(t *testing.T) {
		url, err := Parse("/?a=1&a=2", make([]Query, 10))
		require.NoError(t, err)
		require.Equal(t, []Query{{"a", "1"}, {"a", "2"}}, url.Params)
	})

	t.Run("parameter without equals sign", func(t *testing.T) {
		url, err := Parse("/?flag&a=1", make([]Query, 10))
		require.NoError(t, err)
		require.Equal(t, []Query{{"flag", ""}, {"a", "1"}}, url.Params)
	})

	t.Run("empty value", func(t *testing.T) {
		url, err := Parse("/?a=", make([]Query, 10))
		require.NoError(t, err)
		require.Equal(t, []Query{{"a", ""}}, url.Params)
	})

	t.Run("percent-encoding is passed through", func(t *testing.T) {
		url, err := Parse("/a%20b?q=%2Fetc", make([]Query, 10))
		require.NoError(t, err)
		require.Equal(t, "/a%20b", url.Path)
		require.Equal(t, []Query{{"q", "%2Fetc"}}, url.Params)
	})

	t.Run("asterisk target", func(t *testing.T) {
		url, err := Parse("*", nil)
		require.NoError(t, err)
		require.Equal(t, "*", url.Path)
	})
}

func TestParseNegative(t *testing.T) {
	t.Run("empty target", func(t *testing.T) {
		_, err := Parse("", nil)
		require.Equal(t, httperr.ErrInvalidPath, err)
	})

	t.Run("relative path", func(t *testing.T) {
		_, err := Parse("index.html?a=1", nil)
		require.Equal(t, httperr.ErrInvalidPath, err)
	})

	t.Run("space in path", func(t *testing.T) {
		_, err := Parse("/index page", nil)
		require.Equal(t, httperr.ErrInvalidPath, err)
	})

	t.Run("empty parameter name", func(t *testing.T) {
		_, err := Parse("/?=value", make([]Query, 10))
		require.Equal(t, httperr.ErrInvalidQueryParam, err)
	})

	t.Run("double ampersand", func(t *testing.T) {
		_, err := Parse("/?a=1&&b=2", make([]Query, 10))
		require.Equal(t, httperr.ErrInvalidQueryParam, err)
	})

	t.Run("trailing ampersand", func(t *testing.T) {
		_, err := Parse("/?a=1&", make([]Query, 10))
		require.Equal(t, httperr.ErrInvalidQueryParam, err)
	})

	t.Run("space in query", func(t *testing.T) {
		_, err := Parse("/?a=b c", make([]Query, 10))
		require.Equal(t, httperr.ErrInvalidQueryParam, err)
	})
}

func TestParseCapacity(t *testing.T) {
	_, err := Parse("/?a=1&b=2&c=3", make([]Query, 2))
	require.Equal(t, httperr.ErrTooManyQueryParams, err)

	url, err := Parse("/?a=1&b=2&c=3", make([]Query, 3))
	require.NoError(t, err)
	require.Len(t, url.Params, 3)
}

func TestString(t *testing.T) {
	url, err := Parse("/index.html?a=1&a=2", make([]Query, 4))
	require.NoError(t, err)
	require.Equal(t, "/index.html?a=1&a=2", url.String())

	url, err = Parse("/plain", nil)
	require.NoError(t, err)
	require.Equal(t, "/plain", url.String())
}
