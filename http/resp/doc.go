/*
The resp package renders negotiated responses to HTTP requests.

A [Responder] holds application-wide configuration:
the cache of renderer registries, the negotiator, the template parser,
and whether transparent content negotiation (RFC 2295) is enabled.

[Responder.Render] tries the negotiated renderers of a resource in order
and writes the first response produced.
When none produce one, or when the request asked for the list of variants,
a 406 Not Acceptable or a 300 Multiple Choices listing every variant responds instead.
The former takes precedence.

[Responder.Serve] adapts a resource into an http.Handler,
dispatching on the request method to the handlers the resource implements
and answering OPTIONS and HEAD itself.
*/
package resp
