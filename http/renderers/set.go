package renderers

import (
	"bytes"
	"sync"

	"github.com/xy-planning-network/conneg/http/template"
	"github.com/xy-planning-network/conneg/logger"
)

const (
	// DefaultCallbackParam names the query parameter carrying a JSONP callback.
	DefaultCallbackParam = "callback"

	// DefaultCallback is the JSONP callback used when a request names none.
	DefaultCallback = "callback"
)

// A Set constructs stock renderers sharing a parser, a logger, and a pool of buffers.
type Set struct {
	parser template.Parser
	logger logger.Logger
	pool   *sync.Pool

	jsonIndent    string
	callbackParam string
	callback      string
}

// A SetOptFn is a functional option configuring a Set when constructing a new one.
type SetOptFn func(*Set)

// WithCallback sets the query parameter naming a JSONP callback
// and the callback used when it is absent.
func WithCallback(param, def string) SetOptFn {
	return func(s *Set) {
		if param != "" {
			s.callbackParam = param
		}
		if def != "" {
			s.callback = def
		}
	}
}

// WithJSONIndent indents JSON and JSONP output by indent per level.
func WithJSONIndent(indent string) SetOptFn {
	return func(s *Set) {
		s.jsonIndent = indent
	}
}

// WithLogger sets the logger.Logger renderers report failures to.
func WithLogger(l logger.Logger) SetOptFn {
	return func(s *Set) {
		s.logger = l
	}
}

// WithParser sets the template.Parser template-backed renderers read templates with.
func WithParser(p template.Parser) SetOptFn {
	return func(s *Set) {
		s.parser = p
	}
}

// NewSet constructs a Set.
//
// Without WithParser, templates are read from the current working directory.
func NewSet(opts ...SetOptFn) *Set {
	s := &Set{
		pool:          &sync.Pool{New: func() any { return new(bytes.Buffer) }},
		callbackParam: DefaultCallbackParam,
		callback:      DefaultCallback,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.NewLogger()
	}

	if s.parser == nil {
		s.parser = template.NewParser()
	}

	return s
}

// buffer hands out a reset buffer and the func returning it to the pool.
func (s *Set) buffer() (*bytes.Buffer, func()) {
	b := s.pool.Get().(*bytes.Buffer)
	b.Reset()
	return b, func() { s.pool.Put(b) }
}
