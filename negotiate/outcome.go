package negotiate

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/conneg"
	"github.com/xy-planning-network/conneg/renderer"
)

// An Outcome records negotiation for one request.
//
// An Outcome is not safe for concurrent use;
// it belongs to the goroutine handling its request.
type Outcome struct {
	// Candidates are the renderers to try, in order.
	Candidates []*renderer.Renderer

	// NotAcceptable is set when nothing satisfied the request's preferences.
	NotAcceptable bool

	// MultipleChoices is set when the variant list must be returned
	// even though a renderer may have succeeded.
	MultipleChoices bool

	// TCN is the request's part in transparent content negotiation.
	TCN TCN

	// Chosen is the renderer whose output was used, nil until one succeeds.
	Chosen *renderer.Renderer

	// Prefetched marks the Outcome of the renders made while computing the Alternates header,
	// stopping them from computing it again.
	Prefetched bool

	resolved bool
}

// Resolved reports whether candidates have been negotiated yet.
func (o *Outcome) Resolved() bool { return o.resolved }

// Status is the status code of the variant list the Outcome calls for:
// http.StatusNotAcceptable takes precedence over http.StatusMultipleChoices.
// When no variant list is called for, 0 returns.
func (o *Outcome) Status() int {
	switch {
	case o.NotAcceptable:
		return http.StatusNotAcceptable
	case o.MultipleChoices:
		return http.StatusMultipleChoices
	default:
		return 0
	}
}

// Restart clears what a previous render of the request left on o,
// keeping its candidates and TCN.
// A Negotiate header naming no directive understood keeps o NotAcceptable.
func (o *Outcome) Restart() {
	o.NotAcceptable = o.TCN.Malformed
	o.MultipleChoices = false
	o.Chosen = nil
}

// Probe derives the Outcome for the renders made while computing the Alternates header.
// The candidates are shared, the flags are not.
func (o *Outcome) Probe() *Outcome {
	return &Outcome{Candidates: o.Candidates, Prefetched: true, resolved: o.resolved}
}

// NewContext returns a copy of ctx carrying o.
func NewContext(ctx context.Context, o *Outcome) context.Context {
	return context.WithValue(ctx, conneg.OutcomeKey, o)
}

// FromContext retrieves the Outcome ctx carries.
func FromContext(ctx context.Context) (*Outcome, bool) {
	o, ok := ctx.Value(conneg.OutcomeKey).(*Outcome)
	return o, ok && o != nil
}

// Ensure returns r and the Outcome it carries,
// attaching a fresh Outcome to a shallow copy of r when it carries none.
func Ensure(r *http.Request) (*http.Request, *Outcome) {
	if o, ok := FromContext(r.Context()); ok {
		return r, o
	}

	o := new(Outcome)
	return r.WithContext(NewContext(r.Context(), o)), o
}
