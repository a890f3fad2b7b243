package botapi

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	o sync.Once
	l zerolog.Logger
)

// GetLogger returns the process logger, configured from LOG_LEVEL,
// LOG_FILE and GO_ENV on first use. Load the .env file before calling it.
func GetLogger() zerolog.Logger {
	o.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		l = zerolog.New(logOutput(os.Getenv("GO_ENV"), os.Getenv("LOG_FILE"))).
			Level(parseLevel(os.Getenv("LOG_LEVEL"))).
			With().
			Timestamp().
			Caller().
			Logger()

		l.Debug().Msg("logger initialized")
	})

	return l
}

// logOutput pretty-prints to stdout in dev; otherwise writes JSON to
// stderr and, when logFile is set, to a rotated file as well.
func logOutput(env, logFile string) io.Writer {
	if env == "dev" {
		return zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	if logFile == "" {
		return os.Stderr
	}

	return zerolog.MultiLevelWriter(os.Stderr, &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    20,
		MaxBackups: 10,
		MaxAge:     14,
		Compress:   true,
	})
}

func parseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
