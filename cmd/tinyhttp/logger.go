package main

import (
	"io"
	"time"

	"github.com/indigo-web/tinyhttp/config"
	"github.com/rs/zerolog"
)

func newLogger(cfg config.Log, out io.Writer) (zerolog.Logger, error) {
	level, err := cfg.ZerologLevel()
	if err != nil {
		return zerolog.Nop(), err
	}

	if !cfg.JSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
