package http

import (
	"net"

	"github.com/indigo-web/tinyhttp/http/method"
	"github.com/indigo-web/tinyhttp/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents HTTP request
type Request struct {
	// Method is the raw method token of the request line. It isn't validated, use MethodKind
	// for the recognized enum.
	Method string
	// Target is the raw request target, exactly as presented in the request line. No decoding
	// or normalization is applied.
	Target string
	// Protocol is the raw version token, e.g. "HTTP/1.1".
	Protocol string
	// Headers holds header pairs in arrival order. Keys aren't normalized and lookups match
	// them literally.
	Headers Headers
	// Body is everything after the headers block. It is never truncated nor validated against
	// the Content-Length header.
	Body string
	// Remote holds the remote address. May be nil for requests not backed by a network connection.
	Remote   net.Addr
	response *Response
}

func NewRequest(headers *kv.Storage, response *Response, remote net.Addr) *Request {
	return &Request{
		Headers:  headers,
		Remote:   remote,
		response: response,
	}
}

// MethodKind parses the method token.
func (r *Request) MethodKind() method.Method {
	return method.Parse(r.Method)
}

// Respond returns a clean Response bound to the request.
func (r *Request) Respond() *Response {
	return r.response.Clear()
}
