package middleware

import (
	"net/http"
	"net/url"

	"github.com/xy-planning-network/conneg"
)

// ForceHTTPS redirects HTTP requests to HTTPS unless env is conneg.Development.
//
// The "X-Forwarded-Proto" is used to check whether HTTP was requested due to a conneg application
// running behind a proxy.
//
// The redirect keeps the path and query, so a format parameter survives it.
func ForceHTTPS(env conneg.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Forwarded-Proto") == "https" || r.TLS != nil {
				handler.ServeHTTP(w, r)
				return
			}

			u := new(url.URL)
			*u = *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}
