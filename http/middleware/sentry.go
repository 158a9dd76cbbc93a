package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/conneg"
)

// ReportPanic recovers panics raised while handling requests and reports them to Sentry,
// responding to the client with a 500 Internal Server Error.
//
// In environments not reporting panics, NoopAdapter returns and panics propagate as usual.
func ReportPanic(env conneg.Environment) Adapter {
	if !env.ReportsPanics() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(h http.Handler) http.Handler {
		return sh.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &recorder{ResponseWriter: w}
			defer func() {
				p := recover()
				if p == nil {
					return
				}

				if !rec.wroteHeader {
					http.Error(rec, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}

				// Hand the panic on for Sentry to report.
				panic(p)
			}()

			h.ServeHTTP(rec, r)
		}))
	}
}
