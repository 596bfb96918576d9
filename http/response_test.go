package http

import (
	"testing"

	"github.com/indigo-web/tinyhttp/http/mime"
	"github.com/indigo-web/tinyhttp/http/status"
	"github.com/indigo-web/tinyhttp/kv"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fields := NewResponse().Expose()
		require.Equal(t, "HTTP/1.1", fields.Protocol)
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, status.Status("OK"), fields.StatusText())
		require.True(t, fields.Headers.Empty())
		require.Empty(t, fields.Body)
	})

	t.Run("custom status text", func(t *testing.T) {
		fields := NewResponse().Code(status.NotFound).Status("Nope").Expose()
		require.Equal(t, status.Status("Nope"), fields.StatusText())
	})

	t.Run("headers are ordered", func(t *testing.T) {
		resp := NewResponse().
			String("hello").
			ContentType(mime.Plain).
			ContentLength().
			Header("X-Multi", "a", "b")

		want := []kv.Pair{
			{"Content-Type", "text/plain"},
			{"Content-Length", "5"},
			{"X-Multi", "a"},
			{"X-Multi", "b"},
		}
		require.Equal(t, want, resp.Expose().Headers.Expose())
		require.Equal(t, "hello", string(resp.Expose().Body))
	})

	t.Run("content length counts bytes", func(t *testing.T) {
		resp := NewResponse().String("привіт").ContentLength()
		require.Equal(t, "12", resp.Expose().Headers.Value("Content-Length"))
	})

	t.Run("respond clears the previous response", func(t *testing.T) {
		request := NewRequest(kv.New(), NewResponse(), nil)
		Code(request, status.Created).Header("Foo", "bar").String("body")

		fields := Respond(request).Expose()
		require.Equal(t, status.OK, fields.Code)
		require.True(t, fields.Headers.Empty())
		require.Empty(t, fields.Body)
	})
}
