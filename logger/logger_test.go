package logger_test

import (
	"bytes"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/conneg/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger/logger_test\.go:\d+`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestNewLogLevel(t *testing.T) {
	tcs := []struct {
		val      string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"info", logger.LogLevelInfo},
		{" Warn ", logger.LogLevelWarn},
		{"warning", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"fatal", logger.LogLevelFatal},
		{"", logger.LogLevelUnk},
		{"loud", logger.LogLevelUnk},
	}

	for _, tc := range tcs {
		t.Run(tc.val, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.val))
		})
	}
}

func TestTextLoggerLevels(t *testing.T) {
	tcs := []struct {
		name     string
		level    logger.LogLevel
		expected []string
	}{
		{"Debug", logger.LogLevelDebug, []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]", "[FATAL]"}},
		{"Info", logger.LogLevelInfo, []string{"[INFO]", "[WARN]", "[ERROR]", "[FATAL]"}},
		{"Warn", logger.LogLevelWarn, []string{"[WARN]", "[ERROR]", "[FATAL]"}},
		{"Error", logger.LogLevelError, []string{"[ERROR]", "[FATAL]"}},
		{"Fatal", logger.LogLevelFatal, []string{"[FATAL]"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.NewLogger(
				logger.WithLogger(newTestLogger(b)),
				logger.WithLevel(tc.level),
				logger.WithSentryDSN(""),
			)

			// Act
			l.Debug("msg", nil)
			l.Info("msg", nil)
			l.Warn("msg", nil)
			l.Error("msg", nil)
			l.Fatal("msg", nil)

			// Assert
			require.Equal(t, tc.level, l.LogLevel())
			require.Equal(t, tc.expected, logLevelRegexp.FindAllString(b.String(), -1))
		})
	}
}

func TestTextLoggerCallSite(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewLogger(logger.WithLogger(newTestLogger(b)), logger.WithSentryDSN(""))

	// Act
	l.Info("such fun!", nil)

	// Assert
	require.Regexp(t, fpRegexp, b.String())
	require.Equal(t, "such fun!", msgRegexp.FindStringSubmatch(b.String())[1])
	require.NotContains(t, b.String(), "log_context")

	// Arrange
	b.Reset()

	// Act
	l.Info("from elsewhere", &logger.LogContext{Caller: "negotiate/negotiate.go:12", Format: "html"})

	// Assert
	require.Contains(t, b.String(), "negotiate/negotiate.go:12 'from elsewhere'")
	require.Contains(t, b.String(), "log_context:")
	require.Contains(t, b.String(), "html")
}

func TestTextLoggerAddSkip(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewLogger(logger.WithLogger(newTestLogger(b)), logger.WithSentryDSN("")).(*logger.TextLogger)

	// Act
	sl := l.AddSkip(1)
	helper := func() { sl.Warn("skipped", nil) }
	helper()

	// Assert
	require.Equal(t, 0, l.Skip())
	require.Equal(t, 1, sl.Skip())
	require.Regexp(t, fpRegexp, b.String())
}

func TestCurrentCaller(t *testing.T) {
	// Act
	var caller string
	func() { caller = logger.CurrentCaller() }()

	// Assert
	require.Regexp(t, fpRegexp, caller)
}
