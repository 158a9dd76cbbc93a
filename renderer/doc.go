/*
Package renderer declares what a resource can produce and indexes those declarations.

A Renderer is a data record (format, name, media types, priority, quality)
paired with a Func producing a Response.
A Func either produces a Response or declines, in which case whoever is driving
renders the next candidate instead:

	func renderCSV(res renderer.Resource, r *http.Request, c renderer.Context, tmpls renderer.Templates) renderer.Result {
		rows, ok := c["rows"].([][]string)
		if !ok {
			return renderer.Declined()
		}
		...
		return renderer.Produced(renderer.NewResponse("text/csv", b.Bytes()))
	}

A Resource lists its Renderers in Renderers.
Composition replaces inheritance: a resource includes a reusable base set
by appending it to its own declarations.

A Registry indexes one resource type's Renderers by format and media type
and orders them by descending priority.
A Cache builds each resource type's Registry once, no matter how many requests race for it,
and hands out the same read-only Registry thereafter.
*/
package renderer
