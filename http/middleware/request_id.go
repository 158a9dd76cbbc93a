package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/conneg"
)

// RequestIDHeader echoes the request ID on the response.
const RequestIDHeader = "X-Request-Id"

// RequestID adds a uuid to the request context under conneg.RequestIDKey
// and echoes it in the X-Request-Id response header.
//
// A valid uuid sent in X-Request-Id is kept rather than replaced.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), conneg.RequestIDKey, id)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
