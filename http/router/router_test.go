package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/conneg"
	"github.com/xy-planning-network/conneg/http/middleware"
	"github.com/xy-planning-network/conneg/http/renderers"
	"github.com/xy-planning-network/conneg/http/resp"
	tt "github.com/xy-planning-network/conneg/http/template/templatetest"
	"github.com/xy-planning-network/conneg/http/router"
	"github.com/xy-planning-network/conneg/logger/loggertest"
	"github.com/xy-planning-network/conneg/renderer"
)

type article struct {
	doer *resp.Responder
	set  *renderers.Set
}

func (a article) Renderers() []renderer.Renderer { return a.set.Base() }

func (a article) DefaultFormat() string { return "json" }

func (a article) Get(w http.ResponseWriter, r *http.Request) {
	a.doer.Render(w, r, a, renderer.Context{"id": mux.Vars(r)["id"]}, "article")
}

func newRouter(t *testing.T) *router.Router {
	t.Helper()
	ctrl := gomock.NewController(t)
	l := loggertest.NewMockLogger(ctrl)
	l.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	p := tt.NewParser(tt.NewMockFile("article.txt", []byte("article {{.id}}")))
	doer := resp.NewResponder(resp.WithLogger(l), resp.WithParser(p))
	set := renderers.NewSet(renderers.WithLogger(l), renderers.WithParser(p))

	rt := router.New(conneg.Testing, doer, nil)
	rt.HandleResource("/articles/{id}", article{doer: doer, set: set})
	return rt
}

func TestHandleResource(t *testing.T) {
	tcs := []struct {
		name   string
		method string
		target string
		accept string
		code   int
		body   string
		header map[string]string
	}{
		{"Default", http.MethodGet, "/articles/7", "", http.StatusOK, `{"id":"7"}`, map[string]string{"Content-Type": "application/json"}},
		{"Accept-Text", http.MethodGet, "/articles/7", "text/plain", http.StatusOK, "article 7", nil},
		{"Format-Param", http.MethodGet, "/articles/7?format=yaml", "text/plain", http.StatusOK, "id: \"7\"\n", nil},
		{"Options", http.MethodOptions, "/articles/7", "", http.StatusOK, "", map[string]string{"Accept": "GET,HEAD,OPTIONS"}},
		{"Not-Allowed", http.MethodDelete, "/articles/7", "", http.StatusMethodNotAllowed, "", map[string]string{"Allow": "GET, HEAD, OPTIONS"}},
		{"Not-Found", http.MethodGet, "/authors/7", "", http.StatusNotFound, "", nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			rt := newRouter(t)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, nil)
			if tc.accept != "" {
				r.Header.Set("Accept", tc.accept)
			}

			// Act
			rt.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusOK {
				require.Equal(t, tc.body, w.Body.String())
			}
			for k, v := range tc.header {
				require.Equal(t, v, w.Header().Get(k))
			}
		})
	}
}

func TestHandleRoutes(t *testing.T) {
	// Arrange
	var order []string
	mark := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	rt := router.New(conneg.Testing, nil, nil)
	rt.OnEveryRequest(mark("every"))
	rt.HandleRoutes(
		[]router.Route{{
			Path:        "/ping",
			Method:      http.MethodGet,
			Handler:     func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("pong")) },
			Middlewares: []middleware.Adapter{mark("route")},
		}},
		mark("group"),
	)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ping", nil)

	// Act
	rt.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pong", w.Body.String())
	require.Equal(t, []string{"every", "group", "route"}, order)

	// Arrange
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/ping", nil)

	// Act
	rt.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSubrouter(t *testing.T) {
	// Arrange
	rt := router.New(conneg.Testing, nil, nil)
	api := rt.Subrouter("/api")
	api.Handle(router.Route{
		Path:    "/ping",
		Method:  http.MethodGet,
		Handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("pong")) },
	})
	rt.HandleNotFound(func(w http.ResponseWriter, r *http.Request) { http.Error(w, "nope", http.StatusTeapot) })

	tcs := []struct {
		target string
		code   int
	}{
		{"/api/ping", http.StatusOK},
		{"/ping", http.StatusTeapot},
	}

	for _, tc := range tcs {
		t.Run(tc.target, func(t *testing.T) {
			w := httptest.NewRecorder()

			// Act
			rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.target, nil))

			// Assert
			require.Equal(t, tc.code, w.Code)
		})
	}
}
