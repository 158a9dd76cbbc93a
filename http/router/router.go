package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/conneg"
	"github.com/xy-planning-network/conneg/http/middleware"
	"github.com/xy-planning-network/conneg/http/resp"
	"github.com/xy-planning-network/conneg/renderer"
)

// assetsMaxAge is the Cache-Control max-age, in seconds, of static assets.
const assetsMaxAge = "max-age=2592000" // 30 days

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests for plain handlers and negotiated resources.
type Router struct {
	Env           conneg.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	responder     *resp.Responder
	r             *mux.Router
}

// New constructs a [*Router] for the given environment,
// serving resources through responder.
//
// If logReq is nil, requests not matching a Route go unlogged.
func New(env conneg.Environment, responder *resp.Responder, logReq middleware.Adapter) *Router {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	if responder == nil {
		responder = resp.NewResponder()
	}

	return &Router{Env: env, logReq: logReq, responder: responder, r: mux.NewRouter()}
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(handler http.HandlerFunc) {
	r.r.PathPrefix("/").Handler(r.chain(handler))
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(
		handler,
		r.logReq,
		middleware.ReportPanic(r.Env),
	)
}

// HandleResource registers res at path for every HTTP method.
//
// The Responder of the [*Router] dispatches requests on their method,
// so OPTIONS, HEAD, and 405 Method Not Allowed need no Routes of their own.
func (r *Router) HandleResource(path string, res renderer.Resource, middlewares ...middleware.Adapter) {
	r.r.Handle(path, r.chain(r.responder.Serve(res), middlewares...))
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append(append([]middleware.Adapter{}, middlewares...), route.Middlewares...)
		r.r.Handle(route.Path, r.chain(route.Handler, mws...)).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeAssets serves the files under dir at prefix, letting clients cache them.
func (r *Router) ServeAssets(prefix, dir string) {
	r.r.PathPrefix(prefix).Handler(middleware.Chain(
		http.StripPrefix(prefix, http.FileServer(http.Dir(dir))),
		cacheControlMiddleware(),
		r.logReq,
	))
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/articles
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		logReq:        r.logReq,
		responder:     r.responder,
		everyReqStack: append([]middleware.Adapter{}, r.everyReqStack...),
	}
}

// chain wraps h in the stack applied to every request, then middlewares,
// recovering panics closest to h.
func (r *Router) chain(h http.Handler, middlewares ...middleware.Adapter) http.Handler {
	mws := append(append([]middleware.Adapter{}, r.everyReqStack...), middlewares...)
	mws = append(mws, middleware.ReportPanic(r.Env))
	return middleware.Chain(h, mws...)
}

// cacheControlMiddleware helps by adding a "Cache-Control" header to the response.
func cacheControlMiddleware() middleware.Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", assetsMaxAge)
			handler.ServeHTTP(w, r)
		})
	}
}
