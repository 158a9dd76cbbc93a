package resp_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/conneg/http/resp"
	"github.com/xy-planning-network/conneg/negotiate"
	"github.com/xy-planning-network/conneg/renderer"
)

// page renders through the Responder it was built with.
type page struct {
	doer *resp.Responder
	hits *int
}

func (p page) Renderers() []renderer.Renderer { return article{}.Renderers() }

func (p page) DefaultFormat() string { return "txt" }

func (p page) Get(w http.ResponseWriter, r *http.Request) {
	*p.hits++
	if _, ok := negotiate.FromContext(r.Context()); !ok {
		http.Error(w, "no outcome", http.StatusInternalServerError)
		return
	}

	p.doer.Render(w, r, p, renderer.Context{"title": "Served"})
}

func (p page) Delete(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestMethods(t *testing.T) {
	require.Equal(t, []string{"OPTIONS"}, resp.Methods(stubborn{}))
	require.Equal(t, []string{"DELETE", "GET", "HEAD", "OPTIONS"}, resp.Methods(page{}))
	require.Equal(t, []string{"GET", "HEAD", "OPTIONS", "POST"}, resp.Methods(article{}))
}

func TestServe(t *testing.T) {
	tcs := []struct {
		name    string
		method  string
		code    int
		body    string
		hits    int
		headers map[string]string
	}{
		{"Get", http.MethodGet, http.StatusOK, "Served", 1, map[string]string{"Vary": "Accept, Negotiate"}},
		{"Head", http.MethodHead, http.StatusOK, "Served", 1, nil},
		{"Delete", http.MethodDelete, http.StatusNoContent, "", 0, nil},
		{"Options", http.MethodOptions, http.StatusOK, "", 0, map[string]string{"Accept": "DELETE,GET,HEAD,OPTIONS"}},
		{
			"Not-Allowed",
			http.MethodPut,
			http.StatusMethodNotAllowed,
			"Method Not Allowed\n",
			0,
			map[string]string{"Allow": "DELETE, GET, HEAD, OPTIONS"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var hits int
			doer := newResponder(t)
			h := doer.Serve(page{doer: doer, hits: &hits})
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, "/page", nil)

			// Act
			h.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.body, w.Body.String())
			require.Equal(t, tc.hits, hits)
			for k, v := range tc.headers {
				require.Equal(t, v, w.Header().Get(k))
			}
		})
	}
}
