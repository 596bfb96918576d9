package transport

import (
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/indigo-web/tinyhttp/config"
	"github.com/indigo-web/tinyhttp/http/status"
)

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

// TCP accepts plain TCP connections and serves each of them on its own goroutine. The
// number of simultaneously served connections isn't limited in any way.
type TCP struct {
	l    listener
	mu   *sync.Mutex
	wg   *sync.WaitGroup
	stop *atomic.Bool
}

func NewTCP() *TCP {
	tcp := newTCP(nil)
	return &tcp
}

func newTCP(l listener) TCP {
	return TCP{
		l:    l,
		mu:   new(sync.Mutex),
		wg:   new(sync.WaitGroup),
		stop: new(atomic.Bool),
	}
}

func bindTCP(addr string) (*net.TCPListener, error) {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	return net.ListenTCP("tcp", tcpaddr)
}

func (t *TCP) Bind(addr string) error {
	l, err := bindTCP(addr)
	if err != nil {
		return fmt.Errorf("%w: %w", status.ErrBind, err)
	}

	t.l = l
	return nil
}

// Addr returns the address the listener is actually bound to. Useful when binding to
// the port 0.
func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// Listen runs the accept loop. Connections are accepted one by one, each is handed to cb
// on a new goroutine and closed as soon as cb returns. Any accept error is fatal and stops
// the loop, however connections being served at the moment aren't affected.
func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	for !t.stop.Load() {
		err := t.l.SetDeadline(time.Now().Add(cfg.AcceptLoopInterruptPeriod))
		if err != nil {
			return fmt.Errorf("%w: %w", status.ErrAccept, err)
		}

		conn, err := t.l.Accept()
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}

			if t.stop.Load() {
				return nil
			}

			return fmt.Errorf("%w: %w", status.ErrAccept, err)
		}

		if !t.track() {
			_ = conn.Close()
			return nil
		}

		go func(conn net.Conn) {
			defer t.wg.Done()
			cb(conn)
			_ = conn.Close()
		}(conn)
	}

	return nil
}

// Stop makes the accept loop exit. Once it returned, no more connections are tracked, so
// a subsequent Wait covers every connection ever handed to the callback.
func (t *TCP) Stop() {
	t.mu.Lock()
	t.stop.Store(true)
	t.mu.Unlock()
}

// track registers a freshly accepted connection unless the transport is stopping.
func (t *TCP) track() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop.Load() {
		return false
	}

	t.wg.Add(1)
	return true
}

func (t *TCP) Close() {
	if t.l != nil {
		_ = t.l.Close()
	}
}

func (t *TCP) Wait() {
	t.wg.Wait()
}
