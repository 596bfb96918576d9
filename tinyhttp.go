package tinyhttp

import (
	"net"

	"github.com/indigo-web/tinyhttp/config"
	"github.com/indigo-web/tinyhttp/files"
	"github.com/indigo-web/tinyhttp/handler"
	"github.com/indigo-web/tinyhttp/internal/server"
	"github.com/indigo-web/tinyhttp/transport"
	"github.com/rs/zerolog"
)

// Handler answers a routed request. See handler.Handler for the default one.
type Handler = server.Handler

// App binds the listener and serves connections until stopped or until accepting fails.
type App struct {
	cfg        *config.Config
	log        zerolog.Logger
	hooks      hooks
	tcp        *transport.TCP
	supervisor transport.Supervisor
}

// New returns a new App instance listening on the addr. Empty addr leaves the default one.
func New(addr string) *App {
	cfg := config.Default()
	if len(addr) > 0 {
		cfg.NET.Addr = addr
	}

	return &App{
		cfg:        cfg,
		log:        zerolog.Nop(),
		tcp:        transport.NewTCP(),
		supervisor: transport.NewSupervisor(),
	}
}

// Tune replaces the config. The address previously passed to New is overridden, too.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger sets the logger. Every connection derives its own child logger from it. By default,
// nothing is logged at all.
func (a *App) Logger(log zerolog.Logger) *App {
	a.log = log
	return a
}

// NotifyOnStart calls the callback as soon as the listener is bound. Connections arriving from
// that moment on are queued by the kernel until the accept loop picks them up.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback when the listener is closed and all the connections
// are done.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve binds the listener and blocks until either Stop is called or accepting a connection
// fails. In the latter case the error is returned. If h is nil, the default handler serving
// files from the configured root directory is used.
func (a *App) Serve(h Handler) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	if h == nil {
		h = handler.New(files.NewDir(a.cfg.Files.Root))
	}

	if err := a.supervisor.Add(a.cfg.NET.Addr, a.tcp, server.OnConn(a.cfg, h, a.log)); err != nil {
		a.log.Error().Err(err).Str("addr", a.cfg.NET.Addr).Msg("cannot bind")
		return err
	}

	a.log.Info().
		Stringer("addr", a.tcp.Addr()).
		Str("root", a.cfg.Files.Root).
		Msg("listening")
	callIfNotNil(a.hooks.OnStart)

	err := a.supervisor.Run(a.cfg.NET)
	if err != nil {
		a.log.Error().Err(err).Msg("accept loop failed")
	} else {
		a.log.Info().Msg("stopped")
	}

	callIfNotNil(a.hooks.OnStop)

	return err
}

// Addr returns the address the listener is bound to. Must be called only after the
// listener is bound, e.g. from the NotifyOnStart callback.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Stop stops accepting new connections and blocks until the already accepted ones are
// served and Serve returns. Calling it before Serve reached the accept loop blocks until
// it does, so it must not be called if binding failed.
func (a *App) Stop() {
	a.supervisor.Stop()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
