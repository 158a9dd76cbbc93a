package renderers

import "github.com/xy-planning-network/conneg/renderer"

// HTMLDefault makes html the default format of the resource embedding it.
type HTMLDefault struct{}

// DefaultFormat implements renderer.DefaultFormatter.
func (HTMLDefault) DefaultFormat() string { return "html" }

// HTMLView lists the HTML renderer and the Markdown renderer falling back on it.
func (s *Set) HTMLView() []renderer.Renderer {
	return []renderer.Renderer{s.HTML(), s.Markdown()}
}

// TextView lists the plain text renderer.
func (s *Set) TextView() []renderer.Renderer {
	return []renderer.Renderer{s.Text()}
}

// JSONView lists the JSON renderer.
func (s *Set) JSONView() []renderer.Renderer {
	return []renderer.Renderer{s.JSON()}
}

// JSONPView lists the JSON and JSONP renderers.
func (s *Set) JSONPView() []renderer.Renderer {
	return []renderer.Renderer{s.JSON(), s.JSONP()}
}

// DataView lists every renderer encoding the context itself.
func (s *Set) DataView() []renderer.Renderer {
	return []renderer.Renderer{s.JSON(), s.JSONP(), s.YAML(), s.TOML(), s.CBOR()}
}

// Base lists every stock renderer.
func (s *Set) Base() []renderer.Renderer {
	rs := make([]renderer.Renderer, 0)
	rs = append(rs, s.HTMLView()...)
	rs = append(rs, s.TextView()...)
	rs = append(rs, s.DataView()...)
	return rs
}
