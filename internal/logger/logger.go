package logger

import (
	"os"

	"spinwheel-service/internal/config"

	"github.com/rs/zerolog"
)

// New builds the service logger. Pretty console output is for local
// development; production emits JSON lines.
func New(cfg config.LogConfig) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.Pretty {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}
		return zerolog.New(output).Level(level).With().Timestamp().Caller().Logger()
	}

	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}
