package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethod(t *testing.T) {
	for _, method := range []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH} {
		assert.Equal(t, method, Parse(method.String()))
	}
}

func TestParseUnknown(t *testing.T) {
	for _, token := range []string{"", "get", "Post", "GETS", "BREW", "PROPFIND"} {
		require.Equal(t, Unknown, Parse(token), token)
	}

	require.Equal(t, "Unknown", Unknown.String())
}
