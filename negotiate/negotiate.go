package negotiate

import (
	"errors"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/xy-planning-network/conneg/logger"
	"github.com/xy-planning-network/conneg/mediatype"
	"github.com/xy-planning-network/conneg/renderer"
)

// DefaultFormatParam names the parameter overriding negotiation
// when neither the Negotiator nor the resource names another.
const DefaultFormatParam = "format"

const tracerName = "github.com/xy-planning-network/conneg/negotiate"

// A Negotiator orders the renderers of a resource for a request.
type Negotiator struct {
	logger  logger.Logger
	param   string
	skipTCN bool
	tracer  trace.Tracer
}

// A NegotiatorOptFn is a functional option configuring a Negotiator when constructing a new one.
type NegotiatorOptFn func(*Negotiator)

// WithFormatParam sets the parameter overriding negotiation.
// An empty param leaves DefaultFormatParam in place.
func WithFormatParam(param string) NegotiatorOptFn {
	return func(n *Negotiator) {
		if param != "" {
			n.param = param
		}
	}
}

// WithTCN sets whether the Negotiate header is read.
// It is by default.
func WithTCN(enabled bool) NegotiatorOptFn {
	return func(n *Negotiator) {
		n.skipTCN = !enabled
	}
}

// WithLogger sets the logger.Logger the Negotiator reports skipped preferences to.
func WithLogger(l logger.Logger) NegotiatorOptFn {
	return func(n *Negotiator) {
		if l != nil {
			n.logger = l
		}
	}
}

// NewNegotiator constructs a Negotiator.
func NewNegotiator(opts ...NegotiatorOptFn) Negotiator {
	n := Negotiator{param: DefaultFormatParam, tracer: otel.Tracer(tracerName)}
	for _, opt := range opts {
		opt(&n)
	}

	if n.logger == nil {
		n.logger = logger.NewLogger()
	}

	return n
}

// FormatParam names the parameter overriding negotiation for res.
func (n Negotiator) FormatParam(res renderer.Resource) string {
	if fp, ok := res.(renderer.FormatParamer); ok {
		if p := fp.FormatParam(); p != "" {
			return p
		}
	}

	return n.param
}

// Negotiate resolves the Outcome r carries,
// negotiating its candidates and reading its Negotiate header the first time only.
// A Negotiate header naming no directive understood marks the Outcome NotAcceptable.
//
// When r carries no Outcome, a fresh one is negotiated and returned without being retained.
func (n Negotiator) Negotiate(r *http.Request, res renderer.Resource, reg *renderer.Registry) *Outcome {
	o, ok := FromContext(r.Context())
	if !ok {
		o = new(Outcome)
	}

	if o.resolved {
		return o
	}

	_, span := n.tracer.Start(r.Context(), "negotiate")
	defer span.End()

	if !n.skipTCN {
		o.TCN = ParseNegotiate(r.Header.Get("Negotiate"))
		o.NotAcceptable = o.TCN.Malformed
	}

	o.Candidates = n.Candidates(r, res, reg)
	o.resolved = true

	formats := make([]string, len(o.Candidates))
	for i, rd := range o.Candidates {
		formats[i] = rd.Format
	}

	span.SetAttributes(
		attribute.StringSlice("conneg.candidates", formats),
		attribute.Bool("conneg.tcn", o.TCN.Active),
	)

	return o
}

// Candidates orders the renderers in reg to try for r.
//
// A non-empty format parameter names formats to try in the order given,
// each once, bypassing the Accept header; unknown formats are skipped.
// Otherwise, a non-empty Accept header ranks renderers by the client's quality
// and then by their priority.
// Otherwise, the renderers of the default format res declares are tried.
// The renderers of the fallback format res declares are appended in every case.
//
// Candidates does not memoize; see Negotiate.
func (n Negotiator) Candidates(r *http.Request, res renderer.Resource, reg *renderer.Registry) []*renderer.Renderer {
	var (
		candidates = make([]*renderer.Renderer, 0, reg.Len())
		value      = strings.TrimSpace(r.FormValue(n.FormatParam(res)))
		header     = strings.TrimSpace(strings.Join(r.Header.Values("Accept"), ", "))
	)

	switch {
	case value != "":
		seen := make(map[string]bool)
		for _, f := range strings.Split(value, ",") {
			f = strings.TrimSpace(f)
			if f == "" || seen[f] {
				continue
			}

			seen[f] = true
			candidates = append(candidates, reg.Format(f)...)
		}

	case header != "":
		accept, err := mediatype.ParseAccept(header)
		if err != nil {
			n.logger.Debug("skipping malformed media ranges", &logger.LogContext{
				Error:   err,
				Request: r,
				Data:    map[string]any{"skipped": skipped(err)},
			})
		}

		candidates = append(candidates, mediatype.Resolve(accept, reg.Renderers())...)

	default:
		if df, ok := res.(renderer.DefaultFormatter); ok {
			candidates = append(candidates, reg.Format(df.DefaultFormat())...)
		}
	}

	if ff, ok := res.(renderer.FallbackFormatter); ok && ff.FallbackFormat() != "" {
		candidates = append(candidates, reg.Format(ff.FallbackFormat())...)
	}

	return candidates
}

// skipped lists the tokens of the ParseErrors err joins.
func skipped(err error) []string {
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}

	toks := make([]string, 0, len(errs))
	for _, e := range errs {
		var pe *mediatype.ParseError
		if errors.As(e, &pe) {
			toks = append(toks, pe.Token)
		}
	}

	return toks
}
