// Package logger provides the process logger backed by zerolog.
//
// A Logger is built once in main with New and passed to whatever needs it;
// there is no package-level instance. Output goes to the console and is
// appended to a log file. Failures to write the file are dropped.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Severity is the level attached to a recorded message.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Recorder is the logging collaborator services depend on.
type Recorder interface {
	Record(message string, severity Severity)
}

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum log level: debug, info, warn, error.
	// Defaults to "info" when empty or unrecognised.
	Level string
	// Pretty enables human-friendly console output.
	Pretty bool
	// Console is where console output goes. Defaults to os.Stdout.
	Console io.Writer
	// FilePath is appended to when set.
	FilePath string
}

// Logger implements Recorder and exposes the underlying zerolog.Logger for
// structured call sites such as the request middleware.
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New builds a Logger. A log file that cannot be opened is reported on the
// console and skipped.
func New(opts Options) *Logger {
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	if opts.Pretty {
		console = zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339}
	}

	writers := []io.Writer{console}

	var file *os.File
	if opts.FilePath != "" {
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
		if err != nil {
			fallback := zerolog.New(console)
			fallback.Warn().Err(err).Str("path", opts.FilePath).Msg("log file disabled")
		} else {
			file = f
			writers = append(writers, bestEffort{w: f})
		}
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl, file: file}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Record writes message at the given severity.
func (l *Logger) Record(message string, severity Severity) {
	var ev *zerolog.Event
	switch severity {
	case SeverityError:
		ev = l.zl.Error()
	case SeverityWarn:
		ev = l.zl.Warn()
	default:
		ev = l.zl.Info()
	}
	ev.Msg(message)
}

// Zerolog returns the structured logger.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

// Close releases the log file, if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// bestEffort swallows write errors so a broken log file never fails a caller.
type bestEffort struct {
	w io.Writer
}

func (b bestEffort) Write(p []byte) (int, error) {
	_, _ = b.w.Write(p)
	return len(p), nil
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
