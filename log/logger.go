// Package log provides the leveled, colored console logger every component writes to.
package log

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

const colorReset = "\033[0m"

// ErrNilWriter is returned when a logger is created without an output.
var ErrNilWriter = errors.New("log writer is nil")

// Logger writes prefixed log lines through zerolog's console writer.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger that tags every line with prefix, printed in color.
// An empty color disables coloring.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	tag := fmt.Sprintf("[%s]", prefix)
	if color != "" {
		tag = color + tag + colorReset
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    color == "",
		TimeFormat: time.DateTime,
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%s %v", tag, i)
		},
	}

	return &Logger{zl: zerolog.New(out).With().Timestamp().Logger()}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) { l.zl.Info().Msg(msg) }

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) { l.zl.Warn().Msg(msg) }

// Error logs a failure.
func (l *Logger) Error(msg string) { l.zl.Error().Msg(msg) }
