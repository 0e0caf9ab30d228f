package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logging configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text
	Output io.Writer
	// LogstashAddr mirrors every entry to a Logstash TCP input when set.
	LogstashAddr string
}

// New builds a zerolog logger and returns a close func for any network sink it opened.
// A Logstash address that cannot be used is reported on the returned logger and skipped.
func New(cfg Config) (zerolog.Logger, func() error) {
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "text" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	var (
		sink    *LogstashSink
		sinkErr error
	)
	if cfg.LogstashAddr != "" {
		sink, sinkErr = NewLogstashSink(SinkConfig{Addr: cfg.LogstashAddr})
		if sinkErr == nil {
			// Logstash always receives JSON, even when the console is pretty-printed.
			output = zerolog.MultiLevelWriter(output, sink)
		}
	}

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	if sinkErr != nil {
		logger.Warn().Err(sinkErr).Str("addr", cfg.LogstashAddr).Msg("logstash sink disabled")
	}
	if sink == nil {
		return logger, func() error { return nil }
	}

	closeFn := func() error {
		if sent, dropped := sink.Stats(); dropped > 0 {
			logger.Warn().
				Uint64("sent", sent).
				Uint64("dropped", dropped).
				Str("addr", cfg.LogstashAddr).
				Msg("logstash sink discarded entries")
		}
		return sink.Close()
	}
	return logger, closeFn
}

// SetGlobal installs logger as the package-level zerolog logger.
func SetGlobal(logger zerolog.Logger) {
	log.Logger = logger
}
