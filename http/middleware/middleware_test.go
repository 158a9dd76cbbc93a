package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/conneg/http/middleware"
)

func noopHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

func TestChain(t *testing.T) {
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

	// Act
	middleware.Chain(noopHandler(), mark("first"), middleware.NoopAdapter, mark("second")).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.Equal(t, []string{"first", "second"}, order)
}
