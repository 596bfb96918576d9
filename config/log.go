package config

import (
	"fmt"

	"github.com/indigo-web/utils/strcomp"
	"github.com/rs/zerolog"
)

var levels = [...]zerolog.Level{
	zerolog.TraceLevel,
	zerolog.DebugLevel,
	zerolog.InfoLevel,
	zerolog.WarnLevel,
	zerolog.ErrorLevel,
	zerolog.FatalLevel,
	zerolog.PanicLevel,
	zerolog.Disabled,
}

// ZerologLevel resolves the level name, ignoring its case.
func (l Log) ZerologLevel() (zerolog.Level, error) {
	for _, level := range levels {
		if strcomp.EqualFold(l.Level, level.String()) {
			return level, nil
		}
	}

	return zerolog.NoLevel, fmt.Errorf("log.level: unknown level %q", l.Level)
}
