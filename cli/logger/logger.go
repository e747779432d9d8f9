package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	LogLevel  string `doc:"log from debug, info, warn or error"`
	LogFile   string `doc:"append logs to file, - for stdout"`
	LogFormat string `doc:"format logs as text or json"        default:"text"`
}

// New returns a logger configured from options and a function releasing its output.
// Options that cannot be honored fall back to their default, with a warning logged.
func New(options *Options) (*slog.Logger, func() error) {
	return newLogger(options, os.Stdout)
}

func newLogger(options *Options, stdout io.Writer) (*slog.Logger, func() error) {
	var warnings []string
	closer := func() error { return nil }

	opts := &slog.HandlerOptions{}
	if options.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(options.LogLevel)); err != nil {
			warnings = append(warnings, fmt.Sprintf("could not parse logger level %q", options.LogLevel))
		} else {
			opts.Level = level
		}
	}

	output := stdout
	switch options.LogFile {
	case "", "-":
	case os.DevNull:
		return slog.New(slog.DiscardHandler), closer
	default:
		f, err := os.OpenFile(options.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("could not open logger file: %v", err))
		} else {
			output, closer = f, f.Close
		}
	}

	var handler slog.Handler
	switch strings.ToLower(options.LogFormat) {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	case "", "text":
		handler = slog.NewTextHandler(output, opts)
	default:
		warnings = append(warnings, fmt.Sprintf("could not parse logger format %q", options.LogFormat))
		handler = slog.NewTextHandler(output, opts)
	}

	logger := slog.New(handler)
	for _, w := range warnings {
		logger.Warn(w)
	}
	return logger, closer
}
