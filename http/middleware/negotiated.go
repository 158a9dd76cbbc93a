package middleware

import (
	"net/http"

	"github.com/xy-planning-network/conneg/negotiate"
)

// Negotiated attaches an empty negotiation outcome to every request
// so that all renders of one request, including those of outer middlewares, share it.
func Negotiated() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r, _ = negotiate.Ensure(r)
			h.ServeHTTP(w, r)
		})
	}
}
