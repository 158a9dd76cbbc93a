package renderers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/xy-planning-network/conneg/http/template"
	"github.com/xy-planning-network/conneg/logger"
	"github.com/xy-planning-network/conneg/renderer"
)

const (
	htmlContentType = "text/html; charset=utf-8"
	textContentType = "text/plain; charset=utf-8"
)

// HTML renders the first existing "<name>.html" template as HTML.
func (s *Set) HTML() renderer.Renderer {
	return renderer.Renderer{
		Format:    "html",
		Name:      "HTML",
		Mimetypes: renderer.Mimetypes("text/html", "application/xhtml+xml"),
		Priority:  1,
		Render:    s.renderHTML,
	}
}

// Text renders the first existing "<name>.txt" template as plain text.
func (s *Set) Text() renderer.Renderer {
	return renderer.Renderer{
		Format:    "txt",
		Name:      "Plain text",
		Mimetypes: renderer.Mimetypes("text/plain"),
		Priority:  1,
		Render:    s.renderText,
	}
}

func (s *Set) renderHTML(_ renderer.Resource, r *http.Request, c renderer.Context, tmpls renderer.Templates) renderer.Result {
	name, ok := s.find(r, tmpls.Join("html"))
	if !ok {
		return renderer.Declined()
	}

	tmpl, err := s.parser.Parse(name)
	if err != nil {
		s.logger.Error("cannot parse template", &logger.LogContext{Error: err, Request: r, Format: "html"})
		return renderer.Declined()
	}

	b, done := s.buffer()
	defer done()

	if err := tmpl.Execute(b, c); err != nil {
		s.logger.Error("cannot execute template", &logger.LogContext{Error: err, Request: r, Format: "html"})
		return renderer.Declined()
	}

	return renderer.Produced(renderer.NewResponse(htmlContentType, bytes.Clone(b.Bytes())))
}

func (s *Set) renderText(_ renderer.Resource, r *http.Request, c renderer.Context, tmpls renderer.Templates) renderer.Result {
	body, ok := s.executeText(r, "txt", tmpls.Join("txt"), c)
	if !ok {
		return renderer.Declined()
	}

	return renderer.Produced(renderer.NewResponse(textContentType, body))
}

// executeText executes the first existing of names as a text template.
func (s *Set) executeText(r *http.Request, format string, names renderer.Templates, c renderer.Context) ([]byte, bool) {
	name, ok := s.find(r, names)
	if !ok {
		return nil, false
	}

	tmpl, err := s.parser.ParseText(name)
	if err != nil {
		s.logger.Error("cannot parse template", &logger.LogContext{Error: err, Request: r, Format: format})
		return nil, false
	}

	b, done := s.buffer()
	defer done()

	if err := tmpl.Execute(b, c); err != nil {
		s.logger.Error("cannot execute template", &logger.LogContext{Error: err, Request: r, Format: format})
		return nil, false
	}

	return bytes.Clone(b.Bytes()), true
}

// find returns the first of names that exists.
// Missing templates are expected and go unreported.
func (s *Set) find(r *http.Request, names renderer.Templates) (string, bool) {
	if len(names) == 0 {
		return "", false
	}

	name, err := s.parser.Find(names...)
	if err != nil {
		if !errors.Is(err, template.ErrNotExist) && !errors.Is(err, template.ErrNoFiles) {
			s.logger.Error("cannot look up templates", &logger.LogContext{Error: err, Request: r})
		}
		return "", false
	}

	return name, true
}
