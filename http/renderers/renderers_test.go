package renderers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/xy-planning-network/conneg/http/renderers"
	tt "github.com/xy-planning-network/conneg/http/template/templatetest"
	"github.com/xy-planning-network/conneg/logger/loggertest"
	"github.com/xy-planning-network/conneg/renderer"
)

type page struct{}

func (page) Renderers() []renderer.Renderer { return nil }

type preprocessed struct{ page }

func (preprocessed) PreprocessJSON(c renderer.Context) any {
	return map[string]any{"wrapped": map[string]any(c)}
}

func newSet(t *testing.T, files ...tt.FileMocker) *renderers.Set {
	t.Helper()
	ctrl := gomock.NewController(t)
	return renderers.NewSet(
		renderers.WithParser(tt.NewParser(files...)),
		renderers.WithLogger(loggertest.NewMockLogger(ctrl)),
	)
}

func render(t *testing.T, rd renderer.Renderer, res renderer.Resource, r *http.Request, c renderer.Context, tmpls ...string) (*renderer.Response, bool) {
	t.Helper()
	if r == nil {
		r = httptest.NewRequest(http.MethodGet, "/", nil)
	}
	if res == nil {
		res = page{}
	}

	return rd.Render(res, r, c, tmpls).Response()
}

func TestTemplated(t *testing.T) {
	files := []tt.FileMocker{
		tt.NewMockFile("article.html", []byte("<h1>{{.title}}</h1>")),
		tt.NewMockFile("article.txt", []byte("{{.title}}\n")),
		tt.NewMockFile("notes.md", []byte("# {{.title}}\n")),
	}

	tcs := []struct {
		name        string
		rd          func(*renderers.Set) renderer.Renderer
		tmpls       []string
		ok          bool
		contentType string
		body        string
	}{
		{"HTML", (*renderers.Set).HTML, []string{"missing", "article"}, true, "text/html; charset=utf-8", "<h1>A &amp; B</h1>"},
		{"HTML-No-Templates", (*renderers.Set).HTML, nil, false, "", ""},
		{"HTML-Missing", (*renderers.Set).HTML, []string{"notes"}, false, "", ""},
		{"Text", (*renderers.Set).Text, []string{"article"}, true, "text/plain; charset=utf-8", "A & B\n"},
		{"Text-Missing", (*renderers.Set).Text, []string{"notes"}, false, "", ""},
		{"Markdown", (*renderers.Set).Markdown, []string{"notes"}, true, "text/html; charset=utf-8", "<h1>A &amp; B</h1>\n"},
		{"Markdown-Missing", (*renderers.Set).Markdown, []string{"article"}, false, "", ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			s := newSet(t, files...)

			// Act
			resp, ok := render(t, tc.rd(s), nil, nil, renderer.Context{"title": "A & B"}, tc.tmpls...)

			// Assert
			require.Equal(t, tc.ok, ok)
			if !tc.ok {
				return
			}
			require.Equal(t, http.StatusOK, resp.Status)
			require.Equal(t, tc.contentType, resp.Header.Get("Content-Type"))
			require.Equal(t, tc.body, string(resp.Body))
		})
	}
}

func TestTemplatedExecuteError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	l := loggertest.NewMockLogger(ctrl)
	l.EXPECT().Error("cannot execute template", gomock.Any()).Times(1)
	s := renderers.NewSet(
		renderers.WithParser(tt.NewParser(tt.NewMockFile("broken.html", []byte("{{.title.nope}}")))),
		renderers.WithLogger(l),
	)

	// Act
	_, ok := render(t, s.HTML(), nil, nil, renderer.Context{"title": "A"}, "broken")

	// Assert
	require.False(t, ok)
}

func TestData(t *testing.T) {
	when := time.UnixMilli(1700000000000).UTC()
	tcs := []struct {
		name        string
		rd          func(*renderers.Set) renderer.Renderer
		contentType string
		body        string
	}{
		{"JSON", (*renderers.Set).JSON, "application/json", `{"n":1,"title":"Hi","when":1700000000000}`},
		{"YAML", (*renderers.Set).YAML, "application/yaml; charset=utf-8", "n: 1\ntitle: Hi\nwhen: 1700000000000\n"},
		{"TOML", (*renderers.Set).TOML, "application/toml; charset=utf-8", "n = 1\ntitle = \"Hi\"\nwhen = 1700000000000\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			s := newSet(t)

			// Act
			resp, ok := render(t, tc.rd(s), nil, nil, renderer.Context{"n": 1, "title": "Hi", "when": when})

			// Assert
			require.True(t, ok)
			require.Equal(t, tc.contentType, resp.Header.Get("Content-Type"))
			require.Equal(t, tc.body, string(resp.Body))
		})
	}
}

func TestCBOR(t *testing.T) {
	// Arrange
	s := newSet(t)

	// Act
	resp, ok := render(t, s.CBOR(), nil, nil, renderer.Context{"title": "Hi", "tags": []string{"a", "b"}})

	// Assert
	require.True(t, ok)
	require.Equal(t, "application/cbor", resp.Header.Get("Content-Type"))

	var got struct {
		Title string   `cbor:"title"`
		Tags  []string `cbor:"tags"`
	}
	require.Nil(t, cbor.Unmarshal(resp.Body, &got))
	require.Equal(t, "Hi", got.Title)
	require.Equal(t, []string{"a", "b"}, got.Tags)
}

func TestJSONIndent(t *testing.T) {
	// Arrange
	s := renderers.NewSet(
		renderers.WithParser(tt.NewParser()),
		renderers.WithLogger(loggertest.NewMockLogger(gomock.NewController(t))),
		renderers.WithJSONIndent("  "),
	)

	// Act
	resp, ok := render(t, s.JSON(), nil, nil, renderer.Context{"a": 1})

	// Assert
	require.True(t, ok)
	require.Equal(t, "{\n  \"a\": 1\n}", string(resp.Body))
}

func TestJSONPreprocessor(t *testing.T) {
	// Arrange
	s := newSet(t)

	// Act
	resp, ok := render(t, s.JSON(), preprocessed{}, nil, renderer.Context{"a": 1})

	// Assert
	require.True(t, ok)
	require.Equal(t, `{"wrapped":{"a":1}}`, string(resp.Body))
}

func TestJSONP(t *testing.T) {
	tcs := []struct {
		name   string
		target string
		opts   []renderers.SetOptFn
		ok     bool
		body   string
	}{
		{"Default-Callback", "/", nil, true, `callback({"a":1});`},
		{"Named-Callback", "/?callback=app.load", nil, true, `app.load({"a":1});`},
		{"Configured", "/?cb=", []renderers.SetOptFn{renderers.WithCallback("cb", "handle")}, true, `handle({"a":1});`},
		{"Invalid-Callback", "/?callback=alert(1)//", nil, false, ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			l := loggertest.NewMockLogger(ctrl)
			if !tc.ok {
				l.EXPECT().Warn("invalid JSONP callback", gomock.Any()).Times(1)
			}
			opts := append([]renderers.SetOptFn{renderers.WithParser(tt.NewParser()), renderers.WithLogger(l)}, tc.opts...)
			s := renderers.NewSet(opts...)

			// Act
			resp, ok := render(t, s.JSONP(), nil, httptest.NewRequest(http.MethodGet, tc.target, nil), renderer.Context{"a": 1})

			// Assert
			require.Equal(t, tc.ok, ok)
			if !tc.ok {
				return
			}
			require.Equal(t, "application/javascript; charset=utf-8", resp.Header.Get("Content-Type"))
			require.Equal(t, tc.body, string(resp.Body))
		})
	}
}

func TestDroppedValues(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	l := loggertest.NewMockLogger(ctrl)
	l.EXPECT().Warn("dropped values that cannot be encoded", gomock.Any()).Times(1)
	s := renderers.NewSet(renderers.WithParser(tt.NewParser()), renderers.WithLogger(l))

	// Act
	resp, ok := render(t, s.JSON(), nil, nil, renderer.Context{"a": 1, "fn": func() {}})

	// Assert
	require.True(t, ok)
	require.Equal(t, `{"a":1}`, string(resp.Body))
}

func TestViews(t *testing.T) {
	// Arrange
	s := newSet(t)
	formats := func(rds []renderer.Renderer) []string {
		fs := make([]string, len(rds))
		for i, rd := range rds {
			fs[i] = rd.Format
		}
		return fs
	}

	// Act + Assert
	require.Equal(t, []string{"html", "html"}, formats(s.HTMLView()))
	require.Equal(t, []string{"txt"}, formats(s.TextView()))
	require.Equal(t, []string{"json"}, formats(s.JSONView()))
	require.Equal(t, []string{"json", "js"}, formats(s.JSONPView()))
	require.Equal(t, []string{"json", "js", "yaml", "toml", "cbor"}, formats(s.DataView()))
	require.Equal(t, []string{"html", "html", "txt", "json", "js", "yaml", "toml", "cbor"}, formats(s.Base()))
	require.Equal(t, "html", renderers.HTMLDefault{}.DefaultFormat())
}

func TestMarkdownInheritsHTML(t *testing.T) {
	// Arrange
	s := newSet(t)
	res := htmlPage{s: s}

	// Act
	reg := renderer.Build(res, nil)

	// Assert
	for _, rd := range reg.Format("html") {
		require.Equal(t, []string{"text/html", "application/xhtml+xml"}, rd.MimetypeValues())
	}
}

type htmlPage struct{ s *renderers.Set }

func (p htmlPage) Renderers() []renderer.Renderer { return p.s.HTMLView() }
