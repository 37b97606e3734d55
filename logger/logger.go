package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const permission = 0o644

// Build assembles a zerolog.Logger from a level and a sink. A file path
// wins over a writer; with neither, logs are discarded.
type Build struct {
	writer io.Writer
	path   string
	level  string
	debug  bool
}

func New() *Build {
	return &Build{level: "info"}
}

func (b *Build) FromPath(path string) *Build {
	b.path = path
	return b
}

func (b *Build) FromWriter(w io.Writer) *Build {
	b.writer = w
	return b
}

// Console writes human-readable lines to w.
func (b *Build) Console(w io.Writer) *Build {
	b.writer = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return b
}

func (b *Build) Level(level string) *Build {
	b.level = level
	return b
}

// Debug forces debug level regardless of Level.
func (b *Build) Debug(on bool) *Build {
	b.debug = on
	return b
}

// Make returns the logger and a close func for the file sink, if any.
func (b *Build) Make() (zerolog.Logger, func() error, error) {
	closer := func() error { return nil }

	lvl, err := zerolog.ParseLevel(b.level)
	if err != nil {
		return zerolog.Nop(), closer, fmt.Errorf("log level %q: %w", b.level, err)
	}
	if b.debug {
		lvl = zerolog.DebugLevel
	}

	w := b.writer
	if b.path != "" {
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
		}
		w = zerolog.SyncWriter(f)
		closer = f.Close
	}
	if w == nil {
		return zerolog.Nop(), closer, nil
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), closer, nil
}
