package resp

import (
	"net/http"
	"sort"
	"strings"

	"github.com/xy-planning-network/conneg/negotiate"
	"github.com/xy-planning-network/conneg/renderer"
)

// A Getter handles GET requests, and HEAD requests too.
type Getter interface {
	Get(w http.ResponseWriter, r *http.Request)
}

// A Poster handles POST requests.
type Poster interface {
	Post(w http.ResponseWriter, r *http.Request)
}

// A Putter handles PUT requests.
type Putter interface {
	Put(w http.ResponseWriter, r *http.Request)
}

// A Patcher handles PATCH requests.
type Patcher interface {
	Patch(w http.ResponseWriter, r *http.Request)
}

// A Deleter handles DELETE requests.
type Deleter interface {
	Delete(w http.ResponseWriter, r *http.Request)
}

// Methods lists the HTTP methods res implements, sorted.
// OPTIONS is always implemented, HEAD whenever GET is.
func Methods(res any) []string {
	methods := []string{http.MethodOptions}
	if _, ok := res.(Getter); ok {
		methods = append(methods, http.MethodGet, http.MethodHead)
	}
	if _, ok := res.(Poster); ok {
		methods = append(methods, http.MethodPost)
	}
	if _, ok := res.(Putter); ok {
		methods = append(methods, http.MethodPut)
	}
	if _, ok := res.(Patcher); ok {
		methods = append(methods, http.MethodPatch)
	}
	if _, ok := res.(Deleter); ok {
		methods = append(methods, http.MethodDelete)
	}

	sort.Strings(methods)
	return methods
}

// Serve adapts res into an http.Handler dispatching on the request method.
//
// OPTIONS responds with an empty body and an Accept header listing Methods(res).
// HEAD is handled as GET; net/http discards the body.
// Methods res does not implement respond with 405 Method Not Allowed.
//
// Every request is given a fresh negotiate.Outcome unless it carries one already,
// so all renders the handler makes share one negotiation.
func (doer *Responder) Serve(res renderer.Resource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, _ = negotiate.Ensure(r)

		switch h := any(res); r.Method {
		case http.MethodGet, http.MethodHead:
			if g, ok := h.(Getter); ok {
				g.Get(w, r)
				return
			}
		case http.MethodPost:
			if p, ok := h.(Poster); ok {
				p.Post(w, r)
				return
			}
		case http.MethodPut:
			if p, ok := h.(Putter); ok {
				p.Put(w, r)
				return
			}
		case http.MethodPatch:
			if p, ok := h.(Patcher); ok {
				p.Patch(w, r)
				return
			}
		case http.MethodDelete:
			if d, ok := h.(Deleter); ok {
				d.Delete(w, r)
				return
			}
		case http.MethodOptions:
			w.Header().Set("Accept", strings.Join(Methods(res), ","))
			w.Header().Set("Content-Length", "0")
			w.WriteHeader(http.StatusOK)
			return
		}

		w.Header().Set("Allow", strings.Join(Methods(res), ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})
}
