/*
Package logger provides leveled logging by defining the required behavior in [Logger]
and providing an implementation of it with [TextLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [TextLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*TextLogger.Warn], [*TextLogger.Error], and [*TextLogger.Fatal] produce messages.

# TextLogger

Log messages emitted by [TextLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2024/04/28 15:55:21 [DEBUG] http/resp/render.go:43 'all renderers declined' log_context: {"negotiation":{"format":"html"}}

The log context is a JSON-encoded [LogContext].
It carries data inessential to the message proper,
such as the request being negotiated and the format and renderer chosen for it.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.

# SentryLogger

When a Sentry DSN is configured, [NewLogger] wraps the [TextLogger] in a [SentryLogger],
which additionally reports the [LogContext] Error of warnings and anything more severe.
*/
package logger
