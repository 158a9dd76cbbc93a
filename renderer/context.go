package renderer

import (
	"net/http"
	"strings"
)

const (
	// StatusCodeKey is reserved for the status code the rendered response is sent with.
	StatusCodeKey = "status_code"

	// AdditionalHeadersKey is reserved for headers merged into the rendered response.
	// Its value is either an http.Header or a map[string]string.
	AdditionalHeadersKey = "additional_headers"
)

// A Context holds the data a Renderer renders.
type Context map[string]any

// Consume removes the reserved keys from c and returns their values.
//
// When no usable status code is present, http.StatusOK returns.
// Headers is never nil.
func (c Context) Consume() (int, http.Header) {
	code := http.StatusOK
	header := make(http.Header)
	if c == nil {
		return code, header
	}

	if v, ok := c[StatusCodeKey].(int); ok && v > 0 {
		code = v
	}

	switch v := c[AdditionalHeadersKey].(type) {
	case http.Header:
		for k, vals := range v {
			for _, val := range vals {
				header.Add(k, val)
			}
		}
	case map[string]string:
		for k, val := range v {
			header.Set(k, val)
		}
	}

	delete(c, StatusCodeKey)
	delete(c, AdditionalHeadersKey)

	return code, header
}

// Clone copies the top-level key-value pairs of c.
func (c Context) Clone() Context {
	cp := make(Context, len(c))
	for k, v := range c {
		cp[k] = v
	}

	return cp
}

// Templates names the templates a Renderer may render, most preferred first.
type Templates []string

// Join appends "." + ext to every template name.
// If there are no names, Join returns nil.
func (t Templates) Join(ext string) Templates {
	if len(t) == 0 {
		return nil
	}

	joined := make(Templates, len(t))
	for i, name := range t {
		joined[i] = strings.Join([]string{name, ext}, ".")
	}

	return joined
}
