package logger

import (
	"log"
	"os"
	"path"
	"regexp"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/xy-planning-network/conneg"
)

const knownFrames = 2

var connegPathRegex = regexp.MustCompile("conneg/.*$")

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

// The SkipLogger interface defines a Logger that scrolls back
// the number of frames provided in order to ascertain the call site.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

// NewLogLevel reads val, in any case, as a LogLevel.
func NewLogLevel(val string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(val)) {
	case "DEBUG":
		return LogLevelDebug
	case "INFO":
		return LogLevelInfo
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	case "FATAL":
		return LogLevelFatal
	default:
		return LogLevelUnk
	}
}

func (ll LogLevel) String() string {
	return map[LogLevel]string{
		LogLevelDebug: "[DEBUG]",
		LogLevelInfo:  "[INFO]",
		LogLevelWarn:  "[WARN]",
		LogLevelError: "[ERROR]",
		LogLevelFatal: "[FATAL]",
		LogLevelUnk:   "[UNK]",
	}[ll]
}

// TextLogger implements Logger using log.
type TextLogger struct {
	skip int
	env  conneg.Environment
	dsn  string
	l    *log.Logger
	ll   LogLevel
}

// NewLogger constructs a TextLogger.
//
// Logs are printed to os.Stdout by default, using the std lib log pkg.
// The default environment is read from ENVIRONMENT, falling back to DEVELOPMENT.
// The default log level is INFO.
//
// When a Sentry DSN is configured, either through WithSentryDSN or SENTRY_DSN,
// a SentryLogger wrapping the TextLogger returns.
func NewLogger(opts ...LoggerOptFn) Logger {
	l := &TextLogger{
		env: conneg.EnvVarOrEnv("ENVIRONMENT", conneg.Development),
		dsn: os.Getenv("SENTRY_DSN"),
		l:   log.New(os.Stdout, "", log.LstdFlags),
		ll:  LogLevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.dsn != "" {
		l.Info("sentry DSN set, configuring SentryLogger", nil)
		return NewSentryLogger(l, l.dsn)
	}

	return l
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
//
// Use Skip to get the current skip amount
// when needing to add to it with AddSkip.
func (l *TextLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

// Debug writes a debug log.
func (l *TextLogger) Debug(msg string, ctx *LogContext) {
	if l.ll > LogLevelDebug {
		return
	}

	l.log(color.WhiteString, LogLevelDebug, msg, ctx)
}

// Error writes an error log.
func (l *TextLogger) Error(msg string, ctx *LogContext) {
	if l.ll > LogLevelError {
		return
	}

	l.log(color.RedString, LogLevelError, msg, ctx)
}

// Fatal writes a fatal log.
func (l *TextLogger) Fatal(msg string, ctx *LogContext) {
	if l.ll > LogLevelFatal {
		return
	}

	l.log(color.MagentaString, LogLevelFatal, msg, ctx)
}

// Info writes an info log.
func (l *TextLogger) Info(msg string, ctx *LogContext) {
	if l.ll > LogLevelInfo {
		return
	}

	l.log(color.BlueString, LogLevelInfo, msg, ctx)
}

// Warn writes a warning log.
func (l *TextLogger) Warn(msg string, ctx *LogContext) {
	if l.ll > LogLevelWarn {
		return
	}

	l.log(color.YellowString, LogLevelWarn, msg, ctx)
}

// LogLevel returns the LogLevel set for the TextLogger.
func (l *TextLogger) LogLevel() LogLevel { return l.ll }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (l *TextLogger) Skip() int { return l.skip }

// log executes printing the log message,
// including any context if available.
func (l *TextLogger) log(colorizer func(string, ...any) string, level LogLevel, msg string, ctx *LogContext) {
	var site string
	if ctx != nil && ctx.Caller != "" {
		site = ctx.Caller
	} else {
		// NOTE(dlk): skip the number of frames the TextLogger has
		// and however many the TextLogger is configured with
		_, file, line, _ := runtime.Caller(knownFrames + l.skip)
		site = callSite(file, line)
	}

	msg = colorizer("%s %s '%s'", level, site, msg)
	if ctx == nil {
		l.l.Println(msg)
		return
	}

	l.l.Println(msg, "log_context:", ctx)
}

// immediateFilepath trims file down to the part worth printing.
//
// Files within this module print from the module root,
// any other prints the file and the directory it is in, e.g.,:
// /home/dlk/my-project/main.go => my-project/main.go
// /home/dlk/my-project/internal/internal.go => internal/internal.go
func immediateFilepath(file string) string {
	if match := connegPathRegex.FindString(file); match != "" {
		return match
	}

	dir, base := path.Split(file)
	return path.Join(path.Base(dir), base)
}
