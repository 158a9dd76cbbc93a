package resp

import (
	"net/url"

	"github.com/xy-planning-network/conneg/http/template"
	"github.com/xy-planning-network/conneg/logger"
	"github.com/xy-planning-network/conneg/renderer"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithCache sets the renderer.Cache registries are read from.
//
// WithCache takes precedence over WithOverrides.
func WithCache(c *renderer.Cache) ResponderOptFn {
	return func(d *Responder) {
		d.cache = c
	}
}

// WithFormatParam sets the name of the parameter overriding negotiation.
//
// If not set, "format" is used.
func WithFormatParam(param string) ResponderOptFn {
	return func(d *Responder) {
		d.formatParam = param
	}
}

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, a default logger.Logger will be configured.
func WithLogger(log logger.Logger) ResponderOptFn {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithOverrides sets the priority overrides applied to every resource
// not declaring its own.
func WithOverrides(o renderer.Overrides) ResponderOptFn {
	return func(d *Responder) {
		d.overrides = o
	}
}

// WithParser sets the provided implementation of template.Parser to use for parsing variant list templates.
//
// If not set, a template.Parser reading the current working directory is used.
func WithParser(p template.Parser) ResponderOptFn {
	return func(d *Responder) {
		d.parser = p
	}
}

// WithRootUrl sets the provided URL after parsing it into a *url.URL to use for rendering.
//
// NOTE: If u fails parsing by url.ParseRequestURI, the root URL becomes https://example.com
func WithRootUrl(u string) ResponderOptFn {
	good, err := url.ParseRequestURI(u)
	if err != nil {
		good, _ = url.ParseRequestURI("https://example.com")
	}

	return func(d *Responder) {
		d.rootUrl = good
	}
}

// WithTCN enables or disables transparent content negotiation.
//
// When disabled, Negotiate headers are not acted on
// and responses do not vary on them.
func WithTCN(enabled bool) ResponderOptFn {
	return func(d *Responder) {
		d.tcn = enabled
	}
}
