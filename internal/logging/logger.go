package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Level represents log severity
type Level string

const (
	// LevelDebug indicates fine-grained diagnostic logging.
	LevelDebug Level = "debug"
	// LevelInfo indicates informational logging.
	LevelInfo Level = "info"
	// LevelWarn indicates non-fatal warnings.
	LevelWarn Level = "warn"
	// LevelError indicates error logging requiring attention.
	LevelError Level = "error"
)

// DefaultTag is the program name used as console prefix and syslog tag
const DefaultTag = "zzz"

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel converts a level name into a Level
func ParseLevel(name string) (Level, error) {
	level := Level(name)
	if _, ok := levelRank[level]; !ok {
		return "", fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// Options controls which sinks a Logger writes to.
// A nil Stdout or Stderr disables console echo for the matching severities.
type Options struct {
	MinLevel Level
	Tag      string
	Stdout   io.Writer
	Stderr   io.Writer
	Syslog   bool
	FilePath string
}

// Logger provides leveled logging to the console, syslog and an optional JSON event file
type Logger struct {
	minLevel Level
	backend  *logrus.Logger
	logFile  *os.File
}

// NewLogger creates a new logger echoing to stdout/stderr only
func NewLogger(minLevel Level) *Logger {
	l, _ := New(Options{
		MinLevel: minLevel,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	})
	return l
}

// NewFileLogger creates a new logger writing JSON events to a file
func NewFileLogger(minLevel Level, logFilePath string) (*Logger, error) {
	return New(Options{MinLevel: minLevel, FilePath: logFilePath})
}

// New creates a logger with the sinks selected in opts.
// Failing to reach syslog is reported on the console and is not fatal.
func New(opts Options) (*Logger, error) {
	if opts.MinLevel == "" {
		opts.MinLevel = LevelInfo
	}
	if opts.Tag == "" {
		opts.Tag = DefaultTag
	}

	backend := logrus.New()
	backend.SetOutput(io.Discard)
	backend.SetFormatter(&messageFormatter{})
	backend.SetLevel(toLogrus(opts.MinLevel))

	l := &Logger{minLevel: opts.MinLevel, backend: backend}

	if opts.Stdout != nil || opts.Stderr != nil {
		backend.AddHook(newConsoleHook(opts.Tag, opts.Stdout, opts.Stderr))
	}

	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		logFile, err := os.OpenFile(opts.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.logFile = logFile
		backend.AddHook(newFileHook(logFile))
	}

	if opts.Syslog {
		hook, err := newSyslogHook(opts.Tag)
		if err != nil {
			l.Warn("logging.syslog.unavailable", fmt.Sprintf("Unable to connect to syslog: %v", err), nil)
		} else {
			backend.AddHook(hook)
		}
	}

	return l, nil
}

// Close closes the log file if open
func (l *Logger) Close() error {
	if l.logFile != nil {
		return l.logFile.Close()
	}
	return nil
}

// Log writes a log event to every configured sink
func (l *Logger) Log(level Level, eventType, message string, payload map[string]interface{}) {
	if !l.shouldLog(level) {
		return
	}

	fields := make(logrus.Fields, len(payload)+1)
	for k, v := range payload {
		fields[k] = v
	}
	fields["type"] = eventType

	l.backend.WithFields(fields).Log(toLogrus(level), message)
}

// Debug logs a debug-level event
func (l *Logger) Debug(eventType, message string, payload map[string]interface{}) {
	l.Log(LevelDebug, eventType, message, payload)
}

// Info logs an info-level event
func (l *Logger) Info(eventType, message string, payload map[string]interface{}) {
	l.Log(LevelInfo, eventType, message, payload)
}

// Warn logs a warn-level event
func (l *Logger) Warn(eventType, message string, payload map[string]interface{}) {
	l.Log(LevelWarn, eventType, message, payload)
}

// Error logs an error-level event
func (l *Logger) Error(eventType, message string, payload map[string]interface{}) {
	l.Log(LevelError, eventType, message, payload)
}

// shouldLog determines if a log level should be output
func (l *Logger) shouldLog(level Level) bool {
	return levelRank[level] >= levelRank[l.minLevel]
}

func toLogrus(level Level) logrus.Level {
	switch level {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// messageFormatter renders the bare message; syslog lines carry no timestamp of their own.
type messageFormatter struct{}

func (f *messageFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return []byte(entry.Message + "\n"), nil
}

// fileHook appends JSON events to the log file
type fileHook struct {
	w         io.Writer
	formatter logrus.Formatter
}

func newFileHook(w io.Writer) *fileHook {
	return &fileHook{
		w: w,
		formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "ts",
				logrus.FieldKeyMsg:  "message",
			},
		},
	}
}

func (h *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fileHook) Fire(entry *logrus.Entry) error {
	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.w.Write(data)
	return err
}
