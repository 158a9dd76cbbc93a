package resp

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xy-planning-network/conneg/logger"
	"github.com/xy-planning-network/conneg/negotiate"
	"github.com/xy-planning-network/conneg/renderer"
)

// Render negotiates which renderer of res responds to r with c and the named templates,
// writing the response to w.
//
// See Respond for how the response is formed.
func (doer *Responder) Render(w http.ResponseWriter, r *http.Request, res renderer.Resource, c renderer.Context, tmpls ...string) error {
	return doer.Respond(r, res, c, tmpls...).WriteTo(w)
}

// Respond negotiates which renderer of res responds to r with c and the named templates.
//
// The reserved keys renderer.StatusCodeKey and renderer.AdditionalHeadersKey are removed from c
// before any renderer sees it; the former sets the status of the produced response,
// the latter is merged into whichever response returns.
//
// Candidates are tried in order until one produces a response.
// If none do, a 406 Not Acceptable lists every variant.
// When r negotiates transparently, an Alternates header describes every variant,
// and unless the server was left to choose, a 300 Multiple Choices lists them.
// The response always varies on Accept, and on Negotiate too when TCN is enabled.
func (doer *Responder) Respond(r *http.Request, res renderer.Resource, c renderer.Context, tmpls ...string) *renderer.Response {
	ctx, span := doer.tracer.Start(r.Context(), "render")
	defer span.End()

	r, o := negotiate.Ensure(r.WithContext(ctx))
	if c == nil {
		c = make(renderer.Context)
	}

	var (
		reg           = doer.cache.Registry(res)
		code, headers = c.Consume()
		resp          *renderer.Response
		chosen        *renderer.Renderer
	)

	doer.negotiator.Negotiate(r, res, reg)
	o.Restart()
	for _, rd := range o.Candidates {
		produced, ok := rd.Render(res, r, c, tmpls).Response()
		if !ok {
			continue
		}

		produced.Status = code
		produced.Renderer = rd
		chosen = rd
		resp = produced
		break
	}

	o.Chosen = chosen
	if chosen == nil {
		o.NotAcceptable = true
		doer.logger.Info("all renderers declined", &logger.LogContext{
			Request: r,
			Data:    map[string]any{"candidates": len(o.Candidates), "templates": tmpls},
		})
	}

	if doer.tcn && o.TCN.Active && !o.Prefetched {
		headers.Set("Alternates", doer.alternates(r, res, reg, o, c, tmpls))
		headers.Set("TCN", o.TCN.Header())
		if !o.TCN.ServerChoice {
			o.MultipleChoices = true
		}
	}

	if status := o.Status(); status != 0 {
		resp = doer.variantList(r, res, reg, status)
	}

	resp.Merge(headers)

	vary := []string{"Accept"}
	if doer.tcn {
		vary = append(vary, "Negotiate")
	}
	PatchVary(resp.Header, vary...)

	span.SetAttributes(attribute.Int("http.status_code", resp.Status))
	if resp.Renderer != nil {
		span.SetAttributes(attribute.String("conneg.format", resp.Renderer.Format))
		doer.logger.Debug("rendered", &logger.LogContext{
			Request:  r,
			Format:   resp.Renderer.Format,
			Renderer: resp.Renderer.DisplayName(),
		})
	}

	return resp
}

// RenderToFormat renders c with the named templates using only the renderers of the given format,
// in declaration order, writing the response to w.
func (doer *Responder) RenderToFormat(w http.ResponseWriter, r *http.Request, res renderer.Resource, c renderer.Context, format string, tmpls ...string) error {
	return doer.RespondInFormat(r, res, c, format, tmpls...).WriteTo(w)
}

// RespondInFormat renders c with the named templates using only the renderers of the given format,
// in declaration order.
//
// If none produces a response, a 406 Not Acceptable lists every variant.
// The reserved keys of c are consumed as in Respond.
func (doer *Responder) RespondInFormat(r *http.Request, res renderer.Resource, c renderer.Context, format string, tmpls ...string) *renderer.Response {
	if c == nil {
		c = make(renderer.Context)
	}

	var (
		reg           = doer.cache.Registry(res)
		code, headers = c.Consume()
		resp          *renderer.Response
	)

	for _, rd := range reg.Format(format) {
		produced, ok := rd.Render(res, r, c, tmpls).Response()
		if !ok {
			continue
		}

		produced.Status = code
		produced.Renderer = rd
		resp = produced
		break
	}

	if resp == nil {
		resp = doer.variantList(r, res, reg, http.StatusNotAcceptable)
	}

	resp.Merge(headers)
	return resp
}
