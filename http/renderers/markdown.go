package renderers

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/xy-planning-network/conneg/logger"
	"github.com/xy-planning-network/conneg/renderer"
)

var (
	markdownOnce sync.Once
	markdown     goldmark.Markdown
)

func markdownParser() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdown = goldmark.New(goldmark.WithExtensions(extension.GFM, extension.DefinitionList))
	})
	return markdown
}

// Markdown executes the first existing "<name>.md" template as text
// and converts the result to HTML.
//
// Markdown shares the html format and, declaring no media types, inherits those declared before it.
// At a lower priority than HTML, it answers when no HTML template exists.
func (s *Set) Markdown() renderer.Renderer {
	return renderer.Renderer{
		Format: "html",
		Name:   "Markdown",
		Render: s.renderMarkdown,
	}
}

func (s *Set) renderMarkdown(_ renderer.Resource, r *http.Request, c renderer.Context, tmpls renderer.Templates) renderer.Result {
	src, ok := s.executeText(r, "html", tmpls.Join("md"), c)
	if !ok {
		return renderer.Declined()
	}

	b, done := s.buffer()
	defer done()

	if err := markdownParser().Convert(src, b); err != nil {
		s.logger.Error("cannot convert markdown", &logger.LogContext{Error: err, Request: r, Format: "html"})
		return renderer.Declined()
	}

	return renderer.Produced(renderer.NewResponse(htmlContentType, bytes.Clone(b.Bytes())))
}
