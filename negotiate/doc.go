/*
Package negotiate decides which renderers of a resource are tried for a request,
and in which order.

A [Negotiator] reads three preference signals, strongest first:
an explicit format parameter (default "format") listing formats by name,
the Accept header, and finally the default format the resource declares.
Renderers of a resource's fallback format are always appended last.

The Negotiate header of RFC 2295 is parsed into a [TCN],
which the render pipeline consults to decide between returning the chosen variant
and listing every variant instead.

Every decision is recorded on an [Outcome].
An Outcome lives in the request's context for the duration of handling,
so later steps reuse the candidates rather than negotiating again.
*/
package negotiate
