package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	getHeaders := func() *Storage {
		return New().
			Add("Foo", "bar").
			Add("Hello", "World").
			Add("Lorem", "ipsum").
			Add("hello", "Pavlo").
			Add("Hello", "again")
	}

	t.Run("literal match", func(t *testing.T) {
		kv := getHeaders()
		require.Equal(t, "World", kv.Value("Hello"))
		require.Equal(t, "Pavlo", kv.Value("hello"))
		require.Empty(t, kv.Value("HELLO"))
		require.Equal(t, "bar", kv.Value("Foo"))
		_, found := kv.Get("foo")
		require.False(t, found)
	})

	t.Run("first match wins", func(t *testing.T) {
		value, found := getHeaders().Get("Hello")
		require.True(t, found)
		require.Equal(t, "World", value)
	})

	t.Run("order is preserved", func(t *testing.T) {
		want := []Pair{
			{"Foo", "bar"},
			{"Hello", "World"},
			{"Lorem", "ipsum"},
			{"hello", "Pavlo"},
			{"Hello", "again"},
		}

		kv := getHeaders()
		require.Equal(t, want, kv.Expose())
		require.Equal(t, len(want), kv.Len())
	})

	t.Run("clear", func(t *testing.T) {
		kv := getHeaders().Clear()
		require.True(t, kv.Empty())
		require.Zero(t, kv.Len())
	})
}
