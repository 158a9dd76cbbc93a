package renderers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/xy-planning-network/conneg/logger"
	"github.com/xy-planning-network/conneg/renderer"
)

// callbackRegexp matches JSONP callbacks safe to echo into a script: dotted identifiers.
var callbackRegexp = regexp.MustCompile(`^[A-Za-z_$][0-9A-Za-z_$]*(\.[A-Za-z_$][0-9A-Za-z_$]*)*$`)

var cborMode cbor.EncMode

func init() {
	opts := cbor.CoreDetEncOptions()
	opts.TextMarshaler = cbor.TextMarshalerTextString

	var err error
	cborMode, err = opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("renderers: cbor encoding mode: %v", err))
	}
}

// An encodeFn writes v to b.
type encodeFn func(b *bytes.Buffer, v any) error

// JSON encodes the context as JSON.
func (s *Set) JSON() renderer.Renderer {
	return renderer.Renderer{
		Format:    "json",
		Name:      "JSON",
		Mimetypes: renderer.Mimetypes("application/json"),
		Render:    s.encoded("json", "application/json", s.encodeJSON),
	}
}

// JSONP wraps the JSON encoding of the context in a call to the callback
// named by the request's callback parameter.
//
// A callback that is not a dotted JavaScript identifier declines.
func (s *Set) JSONP() renderer.Renderer {
	return renderer.Renderer{
		Format:    "js",
		Name:      "JavaScript (JSONP)",
		Mimetypes: renderer.Mimetypes("text/javascript", "application/javascript"),
		Render:    s.renderJSONP,
	}
}

// YAML encodes the context as YAML.
func (s *Set) YAML() renderer.Renderer {
	return renderer.Renderer{
		Format:    "yaml",
		Name:      "YAML",
		Mimetypes: renderer.Mimetypes("application/yaml", "application/x-yaml", "text/yaml"),
		Render: s.encoded("yaml", "application/yaml; charset=utf-8", func(b *bytes.Buffer, v any) error {
			enc := yaml.NewEncoder(b)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return err
			}
			return enc.Close()
		}),
	}
}

// TOML encodes the context as a TOML document.
func (s *Set) TOML() renderer.Renderer {
	return renderer.Renderer{
		Format:    "toml",
		Name:      "TOML",
		Mimetypes: renderer.Mimetypes("application/toml"),
		Render: s.encoded("toml", "application/toml; charset=utf-8", func(b *bytes.Buffer, v any) error {
			return toml.NewEncoder(b).Encode(v)
		}),
	}
}

// CBOR encodes the context in deterministic CBOR.
func (s *Set) CBOR() renderer.Renderer {
	return renderer.Renderer{
		Format:    "cbor",
		Name:      "CBOR",
		Mimetypes: renderer.Mimetypes("application/cbor"),
		Render: s.encoded("cbor", "application/cbor", func(b *bytes.Buffer, v any) error {
			return cborMode.NewEncoder(b).Encode(v)
		}),
	}
}

// encoded builds a renderer.Func encoding the simplified context with enc.
func (s *Set) encoded(format, contentType string, enc encodeFn) renderer.Func {
	return func(res renderer.Resource, r *http.Request, c renderer.Context, _ renderer.Templates) renderer.Result {
		b, done := s.buffer()
		defer done()

		if err := enc(b, s.payload(res, r, c)); err != nil {
			s.logger.Error("cannot encode context", &logger.LogContext{Error: err, Request: r, Format: format})
			return renderer.Declined()
		}

		return renderer.Produced(renderer.NewResponse(contentType, bytes.Clone(b.Bytes())))
	}
}

func (s *Set) renderJSONP(res renderer.Resource, r *http.Request, c renderer.Context, _ renderer.Templates) renderer.Result {
	cb := r.URL.Query().Get(s.callbackParam)
	if cb == "" {
		cb = s.callback
	}

	if !callbackRegexp.MatchString(cb) {
		s.logger.Warn("invalid JSONP callback", &logger.LogContext{
			Request: r,
			Format:  "js",
			Data:    map[string]any{"callback": cb},
		})
		return renderer.Declined()
	}

	b, done := s.buffer()
	defer done()

	b.WriteString(cb)
	b.WriteByte('(')
	if err := s.encodeJSON(b, s.payload(res, r, c)); err != nil {
		s.logger.Error("cannot encode context", &logger.LogContext{Error: err, Request: r, Format: "js"})
		return renderer.Declined()
	}
	b.WriteString(");")

	return renderer.Produced(renderer.NewResponse("application/javascript; charset=utf-8", bytes.Clone(b.Bytes())))
}

func (s *Set) encodeJSON(b *bytes.Buffer, v any) error {
	enc := json.NewEncoder(b)
	enc.SetIndent("", s.jsonIndent)
	if err := enc.Encode(v); err != nil {
		return err
	}

	// Encode terminates with a newline.
	b.Truncate(b.Len() - 1)
	return nil
}

// payload passes c through the preprocessor of res, if any, then Simplify.
func (s *Set) payload(res renderer.Resource, r *http.Request, c renderer.Context) any {
	var v any = c
	if pp, ok := res.(JSONPreprocessor); ok {
		v = pp.PreprocessJSON(c)
	}

	out, dropped := Simplify(v)
	if len(dropped) > 0 {
		s.logger.Warn("dropped values that cannot be encoded", &logger.LogContext{
			Request: r,
			Data:    map[string]any{"dropped": dropped},
		})
	}

	return out
}
