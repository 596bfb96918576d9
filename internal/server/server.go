// Package server drives a single connection through reading, parsing, routing, handling
// and writing. A connection carries exactly one request.
package server

import (
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/indigo-web/tinyhttp/config"
	"github.com/indigo-web/tinyhttp/http"
	"github.com/indigo-web/tinyhttp/internal/protocol/http1"
	"github.com/indigo-web/tinyhttp/kv"
	"github.com/indigo-web/tinyhttp/router"
	"github.com/indigo-web/tinyhttp/transport"
	"github.com/rs/zerolog"
)

// how many headers a typical request carries
const preallocHeaders = 8

// Handler produces the response for a routed request. A returned error means the request
// cannot be answered at all.
type Handler interface {
	Handle(endpoint router.Endpoint, request *http.Request) (*http.Response, error)
}

// Error is a connection-scoped failure. Stage is the one the connection failed to reach.
type Error struct {
	Stage Stage
	Err   error
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Err)
}

func (e Error) Unwrap() error {
	return e.Err
}

// Serve reads a single request from the client, answers it and returns. On any failure
// nothing is written to the client at all, the error is logged and returned. Closing the
// client is up to the caller.
func Serve(client transport.Client, h Handler, log zerolog.Logger) error {
	var stage Stage

	fail := func(err error) error {
		log.Warn().Err(err).Stringer("stage", stage).Msg("connection failed")
		return Error{Stage: stage, Err: err}
	}

	stage = Reading
	data, err := client.Read()
	if err != nil {
		return fail(err)
	}

	stage = Parsed
	request := http.NewRequest(kv.NewPrealloc(preallocHeaders), http.NewResponse(), client.Remote())
	if err = http1.NewParser(request).Parse(data); err != nil {
		return fail(err)
	}

	stage = Routed
	endpoint := router.Route(request.Target)

	stage = Handled
	response, err := h.Handle(endpoint, request)
	if err != nil {
		return fail(err)
	}

	stage = Written
	n, err := http1.NewSerializer(client, nil).Write(response)
	if err != nil {
		return fail(err)
	}

	log.Debug().
		Str("method", request.Method).
		Str("target", request.Target).
		Stringer("endpoint", endpoint).
		Stringer("code", response.Expose().Code).
		Int("written", n).
		Msg("served")

	return nil
}

// OnConn returns the callback serving freshly accepted connections. Every connection gets
// its own read buffer and a logger tagged with a unique id and the remote address.
func OnConn(cfg *config.Config, h Handler, log zerolog.Logger) func(net.Conn) {
	return func(conn net.Conn) {
		client := transport.NewClient(conn, cfg.NET.ReadTimeout, make([]byte, cfg.NET.ReadBufferSize))
		connLog := log.With().
			Str("conn", uuid.NewString()).
			Stringer("remote", conn.RemoteAddr()).
			Logger()

		_ = Serve(client, h, connLog)
	}
}
