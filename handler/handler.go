// Package handler turns a routed request into a response. Each endpoint owns its own
// policy of status, headers and body.
package handler

import (
	"errors"
	"fmt"

	"github.com/indigo-web/tinyhttp/files"
	"github.com/indigo-web/tinyhttp/http"
	"github.com/indigo-web/tinyhttp/http/method"
	"github.com/indigo-web/tinyhttp/http/mime"
	"github.com/indigo-web/tinyhttp/http/status"
	"github.com/indigo-web/tinyhttp/router"
)

type Handler struct {
	storage files.Storage
}

func New(storage files.Storage) *Handler {
	return &Handler{
		storage: storage,
	}
}

// Serve routes the request and handles the resulting endpoint.
func (h *Handler) Serve(request *http.Request) (*http.Response, error) {
	return h.Handle(router.Route(request.Target), request)
}

// Handle produces the response for the endpoint. An error is returned only when the
// request cannot be answered at all, in which case no response must be written. So far
// this happens only when a file upload fails.
func (h *Handler) Handle(endpoint router.Endpoint, request *http.Request) (*http.Response, error) {
	switch ep := endpoint.(type) {
	case router.Index:
		return http.Respond(request), nil
	case router.Echo:
		return text(request, ep.Segment), nil
	case router.UserAgent:
		return text(request, request.Headers.Value("User-Agent")), nil
	case router.File:
		return h.file(ep.Name, request)
	default:
		return notFound(request), nil
	}
}

func (h *Handler) file(name string, request *http.Request) (*http.Response, error) {
	switch request.MethodKind() {
	case method.GET:
		data, err := h.storage.Read(name)
		if err != nil {
			// permission errors and alike are indistinguishable from a missing file
			// for the client
			return notFound(request), nil
		}

		return request.Respond().
			Bytes(data).
			ContentType(mime.OctetStream).
			ContentLength(), nil
	case method.POST:
		err := h.storage.Write(name, []byte(request.Body))
		switch {
		case errors.Is(err, files.ErrUnsafeName):
			return notFound(request), nil
		case err != nil:
			return nil, fmt.Errorf("write file %q: %w", name, err)
		}

		return http.Code(request, status.Created), nil
	default:
		return notFound(request), nil
	}
}

func text(request *http.Request, body string) *http.Response {
	return request.Respond().
		String(body).
		ContentType(mime.Plain).
		ContentLength()
}

func notFound(request *http.Request) *http.Response {
	return http.Code(request, status.NotFound)
}
