package resp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/xy-planning-network/conneg/http/template"
	"github.com/xy-planning-network/conneg/logger"
	"github.com/xy-planning-network/conneg/renderer"
)

// A Variant describes one renderer in a variant list.
type Variant struct {
	Format string
	Href   string
	Name   string
	Types  string
}

// Variants describes every renderer of reg for a variant list of r,
// sorted the way the list for status presents them.
func (doer *Responder) Variants(r *http.Request, res renderer.Resource, reg *renderer.Registry, status int) []Variant {
	param := doer.negotiator.FormatParam(res)

	vs := make([]Variant, 0, reg.Len())
	for _, rd := range reg.Renderers() {
		vs = append(vs, Variant{
			Format: rd.Format,
			Href:   fmt.Sprintf("%s?%s=%s", r.URL.Path, param, url.QueryEscape(rd.Format)),
			Name:   rd.DisplayName(),
			Types:  strings.Join(rd.MimetypeValues(), ", "),
		})
	}

	sort.SliceStable(vs, func(i, j int) bool { return vs[i].sortKey(status) < vs[j].sortKey(status) })

	return vs
}

// sortKey mirrors how the entry for v reads in the variant list for status,
// so sorting by it sorts the list's lines.
func (v Variant) sortKey(status int) string {
	if status == http.StatusMultipleChoices {
		return fmt.Sprintf("%s\">%s</a> , type %s", v.Href, v.Name, v.Types)
	}

	return fmt.Sprintf("%s (%s; %s)", v.Name, v.Types, v.Format)
}

// variantList renders the 300 Multiple Choices or 406 Not Acceptable response
// listing every renderer of reg.
//
// Should its template fail, the status text alone makes up the body.
func (doer *Responder) variantList(r *http.Request, res renderer.Resource, reg *renderer.Registry, status int) *renderer.Response {
	var (
		data = struct{ Variants []Variant }{doer.Variants(r, res, reg, status)}
		buf  = new(bytes.Buffer)
		ct   string
		err  error
	)

	switch status {
	case http.StatusMultipleChoices:
		ct = "text/html; charset=utf-8"
		err = doer.executeHTML(buf, template.MultipleChoices, data)
	default:
		status = http.StatusNotAcceptable
		ct = "text/plain; charset=utf-8"
		err = doer.executeText(buf, template.NotAcceptable, data)
	}

	if err != nil {
		doer.logger.Error("cannot render variant list", &logger.LogContext{Error: err, Request: r})
		buf.Reset()
		buf.WriteString(http.StatusText(status))
		ct = "text/plain; charset=utf-8"
	}

	resp := renderer.NewResponse(ct, buf.Bytes())
	resp.Status = status

	return resp
}

func (doer *Responder) executeHTML(w io.Writer, name string, data any) error {
	tmpl, err := doer.parser.Parse(name)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, data)
}

func (doer *Responder) executeText(w io.Writer, name string, data any) error {
	tmpl, err := doer.parser.ParseText(name)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, data)
}
