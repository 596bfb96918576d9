package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/tinyhttp/transport"
)

var _ transport.Client = new(Client)

// Client is an in-memory transport.Client. Every read returns the next piece of the data it
// was initialised with, once exhausted io.EOF is returned. All the written data is tracked.
type Client struct {
	closed   bool
	pointer  int
	data     [][]byte
	written  []byte
	readErr  error
	writeErr error
	remote   net.Addr
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data: data,
	}
}

func (c *Client) Read() ([]byte, error) {
	if c.readErr != nil {
		return nil, c.readErr
	}

	if c.closed || c.pointer >= len(c.data) {
		return nil, io.EOF
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Write(p []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}

	c.written = append(c.written, p...)
	return len(p), nil
}

func (c *Client) Remote() net.Addr {
	return c.remote
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// FailReads makes every subsequent read fail with the err.
func (c *Client) FailReads(err error) *Client {
	c.readErr = err
	return c
}

// FailWrites makes every subsequent write fail with the err.
func (c *Client) FailWrites(err error) *Client {
	c.writeErr = err
	return c
}

// WithRemote sets the address returned by Remote.
func (c *Client) WithRemote(addr net.Addr) *Client {
	c.remote = addr
	return c
}

// Written returns everything written to the client so far.
func (c *Client) Written() string {
	return string(c.written)
}

func (c *Client) Closed() bool {
	return c.closed
}
