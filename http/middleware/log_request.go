package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/xy-planning-network/conneg"
	"github.com/xy-planning-network/conneg/logger"
	"github.com/xy-planning-network/conneg/negotiate"
)

// LogMaskVal replaces the values of scrubbed query parameters.
const LogMaskVal = "xxxxxxx"

// LogRequest logs the request's method, requested URL, and originating IP address
// once it has been handled, along with the status and size of the response
// and the format negotiated for it, if any.
//
// LogRequest scrubs the values for the following keys:
// - password
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			r, o := negotiate.Ensure(r)
			rec := &recorder{ResponseWriter: w}
			h.ServeHTTP(rec, r)

			strs := []string{r.Method, maskedURI(r)}
			if val, ok := r.Context().Value(conneg.IpAddrKey).(string); ok && val != "" {
				strs = append([]string{val}, strs...)
			}

			lc := &logger.LogContext{
				Data: map[string]any{
					"status":   rec.Status(),
					"size":     rec.size,
					"duration": time.Since(start).String(),
				},
			}
			if id, ok := r.Context().Value(conneg.RequestIDKey).(string); ok {
				lc.Data["id"] = id
			}
			if o.Chosen != nil {
				lc.Format = o.Chosen.Format
				lc.Renderer = o.Chosen.DisplayName()
			}

			ls.Info(strings.Join(strs, " "), lc)
		})
	}
}

func maskedURI(r *http.Request) string {
	uri := r.URL.Path
	q := r.URL.Query()
	if q.Has("password") {
		q.Set("password", LogMaskVal)
	}

	if query := q.Encode(); query != "" {
		uri += "?" + query
	}

	return uri
}
