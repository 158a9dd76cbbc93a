/*
Package renderers declares stock renderers for negotiated resources.

A [Set] builds each renderer around one template.Parser and one logger.Logger:

	| Format | Name               | Media types                                        | Priority |
	|--------|--------------------|----------------------------------------------------|----------|
	| html   | HTML               | text/html, application/xhtml+xml                   | 1        |
	| html   | Markdown           | inherited from HTML                                | 0        |
	| txt    | Plain text         | text/plain                                         | 1        |
	| json   | JSON               | application/json                                   | 0        |
	| js     | JavaScript (JSONP) | text/javascript, application/javascript            | 0        |
	| yaml   | YAML               | application/yaml, application/x-yaml, text/yaml    | 0        |
	| toml   | TOML               | application/toml                                   | 0        |
	| cbor   | CBOR               | application/cbor                                   | 0        |

Template-backed renderers join the template names they are handed with their extension
(.html, .md, .txt) and render the first that exists; with no templates, or none existing, they decline.
Data renderers encode the context after passing it through a resource's [JSONPreprocessor], if any,
and [Simplify].

Resources compose the renderers they need, e.g.:

	func (a Article) Renderers() []renderer.Renderer {
		return append(stock.HTMLView(), stock.JSON())
	}
*/
package renderers
