// Package logger is the structured logger of the pathsample command.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger.
type Options struct {
	// Level is a zerolog level name. Empty means info.
	Level string
	// HumanReadable selects colored console output instead of JSON lines.
	HumanReadable bool
	// Writer receives the output. Nil means standard error.
	Writer io.Writer
}

// Logger writes leveled, structured log entries.
type Logger struct {
	base zerolog.Logger
}

// New returns a logger configured by opts.
func New(opts Options) (*Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = l
	}

	if opts.HumanReadable {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return &Logger{base: zerolog.New(w).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a logger that adds fields to every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{base: ctx.Logger()}
}

// Level returns the minimum level that is written.
func (l *Logger) Level() zerolog.Level {
	if l == nil {
		return zerolog.Disabled
	}
	return l.base.GetLevel()
}

func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error logs msg along with err, if it isn't nil.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	ev := l.base.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}
