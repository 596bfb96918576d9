// Command tinyhttp serves the index, echo, user-agent and files endpoints over plain TCP.
package main

import (
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/indigo-web/tinyhttp"
	"github.com/indigo-web/tinyhttp/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	log, err := newLogger(cfg.Log, stderr)
	if err != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")
		return 1
	}

	app := tinyhttp.New("").Tune(cfg).Logger(log)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	app.NotifyOnStart(func() {
		go func() {
			sig := <-signals
			log.Info().Stringer("signal", sig).Msg("shutting down")
			app.Stop()
		}()
	})

	if err = app.Serve(nil); err != nil {
		return 1
	}

	return 0
}

// parseFlags builds the config: defaults, then the config file if any, then the flags
// explicitly passed.
func parseFlags(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("tinyhttp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := config.Default()
	var (
		configPath = fs.String("config", "", "path to a JSON config file")
		directory  = fs.String("directory", defaults.Files.Root, "directory files are served from and uploaded to")
		addr       = fs.String("addr", defaults.NET.Addr, "address to listen on")
		logJSON    = fs.Bool("log-json", false, "write logs as JSON lines")
		logLevel   = fs.String("log-level", defaults.Log.Level, "log level")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaults
	if len(*configPath) > 0 {
		loaded, err := config.Load(*configPath)
		if err != nil {
			_, _ = io.WriteString(stderr, err.Error()+"\n")
			return nil, err
		}

		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "directory":
			cfg.Files.Root = *directory
		case "addr":
			cfg.NET.Addr = *addr
		case "log-json":
			cfg.Log.JSON = *logJSON
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")
		return nil, err
	}

	return cfg, nil
}
