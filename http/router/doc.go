/*
Package router defines how an HTTP server routes requests in conneg.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as thin wrapper around that package.

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

Negotiated resources are registered by path alone with HandleResource:
the [*resp.Responder] serving them dispatches on the method itself,
answering OPTIONS and 405 Method Not Allowed with the methods the resource implements.

It is often the case that many routes for a web server share identical middleware stacks,
which aid in directing, redirecting, or adding contextual information to a request.
Thus, a [Router] applies the stack registered with OnEveryRequest to every Route and resource.
*/
package router
