package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS sets "Access-Control-Allowed" style headers on responses to requests from origins.
//
// Preflight requests fall through to the handler, so resources still answer OPTIONS
// with the methods they support.
// Without origins, NoopAdapter returns and this middleware does nothing.
func CORS(origins ...string) Adapter {
	kept := make([]string, 0, len(origins))
	for _, o := range origins {
		if o != "" {
			kept = append(kept, o)
		}
	}
	if len(kept) == 0 {
		return NoopAdapter
	}

	return handlers.CORS(
		handlers.AllowedHeaders([]string{
			"Accept",
			"Content-Type",
			"Negotiate",
			"X-CSRF-Token",
		}),
		handlers.AllowedOrigins(kept),
		handlers.AllowedMethods([]string{
			http.MethodDelete,
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
			http.MethodPatch,
			http.MethodPost,
			http.MethodPut,
		}),
		handlers.ExposedHeaders([]string{"Alternates", "TCN", "Vary"}),
		handlers.IgnoreOptions(),
	)
}
