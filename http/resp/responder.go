package resp

import (
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/xy-planning-network/conneg/http/template"
	"github.com/xy-planning-network/conneg/logger"
	"github.com/xy-planning-network/conneg/negotiate"
	"github.com/xy-planning-network/conneg/renderer"
)

const (
	responderFrames = 0
	tracerName      = "github.com/xy-planning-network/conneg/http/resp"
)

// Responder maintains reusable pieces for responding to HTTP requests with negotiated content.
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
// Meaning, one needs only application-wide configuration of how negotiation behaves.
// Our suggestion does not exclude creating diverse Responders
// for non-overlapping segments of an application.
type Responder struct {
	logger logger.Logger

	// Initialized template parser, rendering variant lists
	parser template.Parser

	// Registries of every resource type rendered so far
	cache *renderer.Cache

	// Global priority overrides, used when no cache is provided
	overrides renderer.Overrides

	negotiator  negotiate.Negotiator
	formatParam string

	// Whether transparent content negotiation is enabled
	tcn bool

	// Root URL the responder is listening on
	rootUrl *url.URL

	tracer trace.Tracer
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
//
// Transparent content negotiation is enabled unless WithTCN(false) is passed.
func NewResponder(opts ...ResponderOptFn) *Responder {
	// ranging over opts may or may not overwrite defaults
	d := &Responder{tcn: true}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.NewLogger()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	if d.parser == nil {
		d.parser = template.NewParser()
	}

	d.parser.AddFn(template.Nonce())
	if d.rootUrl != nil {
		d.parser.AddFn(template.RootUrl(d.rootUrl))
	}

	if d.cache == nil {
		d.cache = renderer.NewCache(d.overrides)
	}

	d.negotiator = negotiate.NewNegotiator(
		negotiate.WithLogger(d.logger),
		negotiate.WithFormatParam(d.formatParam),
		negotiate.WithTCN(d.tcn),
	)

	d.parser.AddFn(template.FormatUrl(d.negotiator.FormatParam(nil)))

	d.tracer = otel.Tracer(tracerName)

	return d
}

// Registry returns the registry of renderers res declares.
func (doer *Responder) Registry(res renderer.Resource) *renderer.Registry {
	return doer.cache.Registry(res)
}

// Negotiator returns the negotiate.Negotiator ordering renderers.
func (doer *Responder) Negotiator() negotiate.Negotiator { return doer.negotiator }

// Parser returns the template.Parser the Responder was configured with.
func (doer *Responder) Parser() template.Parser { return doer.parser }

// TCN reports whether transparent content negotiation is enabled.
func (doer *Responder) TCN() bool { return doer.tcn }
