package transport

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/indigo-web/tinyhttp/config"
	"github.com/indigo-web/tinyhttp/http/status"
	"github.com/stretchr/testify/require"
)

func listenParallel(t *testing.T, tcp *TCP, cfg config.NET, cb func(net.Conn)) chan error {
	t.Helper()
	ch := make(chan error, 1)

	go func() {
		ch <- tcp.Listen(cfg, cb)
	}()

	return ch
}

func TestTCP(t *testing.T) {
	cfg := config.Default().NET
	cfg.AcceptLoopInterruptPeriod = 50 * time.Millisecond

	t.Run("bind error", func(t *testing.T) {
		occupied := NewTCP()
		require.NoError(t, occupied.Bind("127.0.0.1:0"))
		defer occupied.Close()

		err := NewTCP().Bind(occupied.Addr().String())
		require.ErrorIs(t, err, status.ErrBind)
	})

	t.Run("serve and stop", func(t *testing.T) {
		tcp := NewTCP()
		require.NoError(t, tcp.Bind("127.0.0.1:0"))

		errch := listenParallel(t, tcp, cfg, func(conn net.Conn) {
			client := NewClient(conn, time.Second, make([]byte, 64))
			data, err := client.Read()
			if err != nil {
				return
			}

			_, _ = client.Write(data)
		})

		conn, err := net.Dial("tcp", tcp.Addr().String())
		require.NoError(t, err)
		_, err = conn.Write([]byte("ping"))
		require.NoError(t, err)

		// the server closes the connection right after the callback returned
		echoed, err := io.ReadAll(conn)
		require.NoError(t, err)
		require.Equal(t, "ping", string(echoed))
		_ = conn.Close()

		tcp.Stop()
		tcp.Close()
		tcp.Wait()

		select {
		case err = <-errch:
			require.NoError(t, err)
		case <-time.After(time.Second):
			require.Fail(t, "listener did not stop")
		}
	})

	t.Run("connections are served independently", func(t *testing.T) {
		tcp := NewTCP()
		require.NoError(t, tcp.Bind("127.0.0.1:0"))

		_ = listenParallel(t, tcp, cfg, func(conn net.Conn) {
			client := NewClient(conn, 0, make([]byte, 64))
			data, err := client.Read()
			if err != nil {
				return
			}

			_, _ = client.Write(data)
		})
		defer func() {
			tcp.Stop()
			tcp.Close()
			tcp.Wait()
		}()

		stalled, err := net.Dial("tcp", tcp.Addr().String())
		require.NoError(t, err)
		defer stalled.Close()

		conn, err := net.Dial("tcp", tcp.Addr().String())
		require.NoError(t, err)
		_, err = conn.Write([]byte("hello"))
		require.NoError(t, err)
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		echoed, err := io.ReadAll(conn)
		require.NoError(t, err)
		require.Equal(t, "hello", string(echoed))
		_ = stalled.Close()
	})
}

func TestClientReadIsBounded(t *testing.T) {
	server, remote := net.Pipe()
	defer remote.Close()

	go func() {
		_, _ = remote.Write([]byte("0123456789"))
	}()

	client := NewClient(server, 0, make([]byte, 4))
	data, err := client.Read()
	require.NoError(t, err)
	require.Equal(t, "0123", string(data))
}

func TestTCPShortInterruptPeriod(t *testing.T) {
	cfg := config.Default().NET
	cfg.AcceptLoopInterruptPeriod = 10 * time.Millisecond

	tcp := NewTCP()
	require.NoError(t, tcp.Bind("127.0.0.1:0"))
	accepted := make(chan time.Time, 1)
	errch := listenParallel(t, tcp, cfg, func(net.Conn) {
		accepted <- time.Now()
	})

	// let the loop re-arm its deadline a couple of times first
	time.Sleep(35 * time.Millisecond)

	dialed := time.Now()
	conn, err := net.Dial("tcp", tcp.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	select {
	case at := <-accepted:
		require.Less(t, at.Sub(dialed), 100*time.Millisecond)
	case <-time.After(time.Second):
		require.Fail(t, "connection wasn't accepted")
	}

	tcp.Stop()
	tcp.Close()
	tcp.Wait()
	require.NoError(t, <-errch)
}

// stoppingListener hands out a single connection, stopping the transport right before that.
type stoppingListener struct {
	net.Listener
	tcp  *TCP
	conn net.Conn
}

func (s *stoppingListener) SetDeadline(time.Time) error {
	return nil
}

func (s *stoppingListener) Accept() (net.Conn, error) {
	s.tcp.Stop()
	return s.conn, nil
}

func TestTCPConnAcceptedWhileStopping(t *testing.T) {
	server, remote := net.Pipe()
	defer remote.Close()

	tcp := newTCP(nil)
	tcp.l = &stoppingListener{tcp: &tcp, conn: server}

	var called bool
	err := tcp.Listen(config.Default().NET, func(net.Conn) {
		called = true
	})
	require.NoError(t, err)
	tcp.Wait()
	require.False(t, called)

	// the connection is closed, so the peer sees EOF
	require.NoError(t, remote.SetReadDeadline(time.Now().Add(time.Second)))
	_, err = remote.Read(make([]byte, 1))
	require.ErrorIs(t, err, io.EOF)
}
