package logging

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultLogDir  = "center-window"
	DefaultLogFile = "center-window.log"
)

var (
	Logger  = zerolog.Nop()
	logFile *os.File
)

// timestampHook adds timestamp at the end of each log event
type timestampHook struct{}

func (h timestampHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	e.Time("ts", time.Now())
}

// DefaultPath returns <user cache dir>/center-window/center-window.log
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, DefaultLogDir, DefaultLogFile)
}

// Init opens path (DefaultPath when empty) for appending and points Logger at
// it. On failure Logger keeps discarding and the error is returned.
func Init(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	Close()
	logFile = f

	// Set global level to Info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Configure field names
	zerolog.MessageFieldName = "msg"

	SetOutput(logFile)
	return nil
}

// SetOutput redirects Logger to w. Tests use it to capture events.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	Logger = zerolog.New(w).Hook(timestampHook{})
}

// SetDebug toggles debug level logging
func SetDebug(enabled bool) {
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetLevel sets the global level from its name ("debug", "info", "warn", "error").
func SetLevel(name string) error {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// WithContext attaches a child of Logger carrying the given string fields
// to ctx. Fields are given as key, value pairs.
func WithContext(ctx context.Context, fields ...string) context.Context {
	c := Logger.With()
	for i := 0; i+1 < len(fields); i += 2 {
		c = c.Str(fields[i], fields[i+1])
	}
	l := c.Logger()
	return l.WithContext(ctx)
}

// Ctx returns the logger attached to ctx, or Logger when there is none.
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &Logger
}

// Close closes the log file
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Debug returns a debug level event
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info returns an info level event
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn returns a warn level event
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error returns an error level event
func Error() *zerolog.Event {
	return Logger.Error()
}
