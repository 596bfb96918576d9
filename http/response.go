package http

import (
	"strconv"

	"github.com/indigo-web/tinyhttp/http/mime"
	"github.com/indigo-web/tinyhttp/http/status"
	"github.com/indigo-web/tinyhttp/internal/response"
	"github.com/indigo-web/tinyhttp/kv"
	"github.com/indigo-web/utils/uf"
)

// why 2? Every endpoint sets either none or exactly Content-Type and Content-Length.
const preallocRespHeaders = 2

type Response struct {
	fields *response.Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK,
// no headers and an empty body. Nothing is set implicitly: the response is serialized exactly
// as it was built.
func NewResponse() *Response {
	return &Response{
		&response.Fields{
			Protocol: response.DefaultProtocol,
			Code:     status.OK,
			Headers:  kv.NewPrealloc(preallocRespHeaders),
		},
	}
}

// Code sets a Response code. The status text is derived from it unless set explicitly
// via Status.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom status text.
func (r *Response) Status(status status.Status) *Response {
	r.fields.Status = status
	return r
}

// Header appends header values to a key. Headers are serialized in the order they were added,
// and a key passed multiple times results in multiple header lines.
func (r *Response) Header(key string, values ...string) *Response {
	for _, value := range values {
		r.fields.Headers.Add(key, value)
	}

	return r
}

// ContentType appends a Content-Type header.
func (r *Response) ContentType(value mime.MIME) *Response {
	return r.Header("Content-Type", value)
}

// ContentLength appends a Content-Length header equal to the current body length in bytes.
// Must therefore be called after the body is set.
func (r *Response) ContentLength() *Response {
	return r.Header("Content-Length", strconv.Itoa(len(r.fields.Body)))
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Expose returns a struct with values, filled by builder. Used mostly in internal purposes
func (r *Response) Expose() *response.Fields {
	return r.fields
}

// Clear discards everything was done with Response object before
func (r *Response) Clear() *Response {
	r.fields.Clear()
	return r
}

// Respond is a predicate to request.Respond(). May be used as a dummy handler
func Respond(request *Request) *Response {
	return request.Respond()
}

// Code is a predicate to request.Respond().Code(...)
func Code(request *Request, code status.Code) *Response {
	return request.Respond().Code(code)
}
