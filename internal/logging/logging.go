// Package logging configures the zerolog logger used by the command line tool
// and adapts it to the SDK's field-map Logger interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/fivetwenty-io/coder-go/internal/constants"
)

// ParseLevel maps a configured level name to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("%w: %s", constants.ErrInvalidLogLevel, level)
	}
}

// New creates a logger writing to w in the given format ("console" or "json").
func New(w io.Writer, level, format string, color bool) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	switch strings.ToLower(format) {
	case constants.FormatJSON:
		return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
	case "", constants.FormatConsole:
		output := zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    !color,
		}

		return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %s", constants.ErrInvalidLogFormat, format)
	}
}

// Setup creates the stderr logger. Color is only used when stderr is a terminal.
func Setup(level, format string, color bool) (zerolog.Logger, error) {
	return New(os.Stderr, level, format, color && IsTerminal(os.Stderr))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Adapter exposes a zerolog.Logger through the Debug/Info/Warn/Error field-map
// interface accepted by coder.WithLogger.
type Adapter struct {
	logger zerolog.Logger
}

// NewAdapter wraps logger.
func NewAdapter(logger zerolog.Logger) *Adapter {
	return &Adapter{logger: logger}
}

// Debug logs at debug level.
func (a *Adapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

// Info logs at info level.
func (a *Adapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

// Warn logs at warn level.
func (a *Adapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

// Error logs at error level.
func (a *Adapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}
