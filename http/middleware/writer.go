package middleware

import "net/http"

// A recorder notes the status and size of a response
// and runs beforeHeader, if set, right before headers are sent.
type recorder struct {
	http.ResponseWriter
	beforeHeader func(http.Header)

	status      int
	size        int
	wroteHeader bool
}

func (rec *recorder) WriteHeader(code int) {
	if rec.wroteHeader {
		return
	}

	rec.wroteHeader = true
	rec.status = code
	if rec.beforeHeader != nil {
		rec.beforeHeader(rec.ResponseWriter.Header())
	}

	rec.ResponseWriter.WriteHeader(code)
}

func (rec *recorder) Write(b []byte) (int, error) {
	if !rec.wroteHeader {
		rec.WriteHeader(http.StatusOK)
	}

	n, err := rec.ResponseWriter.Write(b)
	rec.size += n
	return n, err
}

// Status is the status code sent, http.StatusOK if the handler never set one.
func (rec *recorder) Status() int {
	if rec.status == 0 {
		return http.StatusOK
	}

	return rec.status
}

// Unwrap supports http.ResponseController.
func (rec *recorder) Unwrap() http.ResponseWriter { return rec.ResponseWriter }
