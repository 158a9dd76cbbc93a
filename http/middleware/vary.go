package middleware

import (
	"net/http"

	"github.com/xy-planning-network/conneg/http/resp"
)

// Vary adds fields to the Vary header of every response,
// merging with whatever the handler set before sending headers.
func Vary(fields ...string) Adapter {
	if len(fields) == 0 {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &recorder{
				ResponseWriter: w,
				beforeHeader:   func(hdr http.Header) { resp.PatchVary(hdr, fields...) },
			}
			h.ServeHTTP(rec, r)

			if !rec.wroteHeader {
				rec.WriteHeader(http.StatusOK)
			}
		})
	}
}
