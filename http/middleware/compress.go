package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressMinSize is the smallest body, in bytes, Compress gzips.
const CompressMinSize = 1024

// Compress gzips responses for clients accepting it, once the body reaches CompressMinSize.
//
// Compression is negotiated over Accept-Encoding after content negotiation picked a representation,
// so the Content-Length of the rendered variant is what Alternates advertises.
func Compress() Adapter {
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(CompressMinSize))
	if err != nil {
		// MinSize is the only option and is never negative.
		panic(err)
	}

	return func(h http.Handler) http.Handler {
		return wrap(h)
	}
}
