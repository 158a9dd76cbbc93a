package renderer

import (
	"bytes"
	"net/http"
	"strconv"
)

// A Response is the complete output of a Renderer, held in memory
// so the pipeline can adjust it and measure it before writing.
type Response struct {
	Status int
	Header http.Header
	Body   []byte

	// Renderer records who produced the Response.
	// It is set by the pipeline and is nil for variant lists.
	Renderer *Renderer
}

// NewResponse constructs a 200 Response of the given content type.
func NewResponse(contentType string, body []byte) *Response {
	h := make(http.Header)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}

	return &Response{Status: http.StatusOK, Header: h, Body: body}
}

// Len is the byte length of the body.
func (resp *Response) Len() int { return len(resp.Body) }

// Merge sets every header in h on resp, replacing existing values.
func (resp *Response) Merge(h http.Header) {
	if resp.Header == nil {
		resp.Header = make(http.Header)
	}

	for k, vals := range h {
		resp.Header.Del(k)
		for _, v := range vals {
			resp.Header.Add(k, v)
		}
	}
}

// WriteTo sends resp through w: headers, then the status code, then the body.
func (resp *Response) WriteTo(w http.ResponseWriter) error {
	dst := w.Header()
	for k, vals := range resp.Header {
		dst[k] = append([]string(nil), vals...)
	}

	if dst.Get("Content-Length") == "" {
		dst.Set("Content-Length", strconv.Itoa(resp.Len()))
	}

	code := resp.Status
	if code == 0 {
		code = http.StatusOK
	}

	w.WriteHeader(code)
	_, err := bytes.NewReader(resp.Body).WriteTo(w)
	return err
}
