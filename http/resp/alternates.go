package resp

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xy-planning-network/conneg/negotiate"
	"github.com/xy-planning-network/conneg/renderer"
)

// alternates builds the value of the Alternates header of RFC 2295,
// one entry for every renderer of reg:
//
//	{"/path?format=json" 1 {type application/json {length 13}}}
//
// Each length is that of rendering c with tmpls in the renderer's format.
// Those renders run on a clone of r without its Negotiate header
// whose Outcome is marked Prefetched, so they never compute Alternates themselves.
func (doer *Responder) alternates(r *http.Request, res renderer.Resource, reg *renderer.Registry, o *negotiate.Outcome, c renderer.Context, tmpls []string) string {
	ctx, span := doer.tracer.Start(r.Context(), "alternates")
	defer span.End()

	probe := r.Clone(negotiate.NewContext(ctx, o.Probe()))
	probe.Header.Del("Negotiate")

	var (
		param   = doer.negotiator.FormatParam(res)
		lengths = make(map[string]int)
		entries = make([]string, 0, reg.Len())
	)

	for _, rd := range reg.Renderers() {
		length, ok := lengths[rd.Format]
		if !ok {
			length = doer.RespondInFormat(probe, res, c.Clone(), rd.Format, tmpls...).Len()
			lengths[rd.Format] = length
		}

		entries = append(entries, alternate(r.URL.Path, param, rd, length))
	}

	span.SetAttributes(attribute.Int("conneg.alternates", len(entries)))

	return strings.Join(entries, ", ")
}

func alternate(path, param string, rd *renderer.Renderer, length int) string {
	var (
		uri     = fmt.Sprintf("%s?%s=%s", path, param, url.QueryEscape(rd.Format))
		quality = strconv.FormatFloat(rd.Quality, 'f', -1, 64)
		attrs   = fmt.Sprintf("{length %d}", length)
	)

	if mt, ok := rd.Primary(); ok {
		attrs = fmt.Sprintf("{type %s %s}", mt.Value(), attrs)
	}

	return fmt.Sprintf("{%q %s %s}", uri, quality, attrs)
}
