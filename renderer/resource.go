package renderer

// A Resource declares the Renderers it can respond with.
//
// Every value of one concrete type must declare the same Renderers:
// a Cache reads them once per type.
type Resource interface {
	Renderers() []Renderer
}

// A DefaultFormatter names the format rendered when a request states no preference.
type DefaultFormatter interface {
	DefaultFormat() string
}

// A FallbackFormatter names a format whose Renderers are always tried last.
type FallbackFormatter interface {
	FallbackFormat() string
}

// A FormatParamer names the query or form parameter overriding negotiation.
// Without one, "format" is used.
type FormatParamer interface {
	FormatParam() string
}

// A PriorityOverrider replaces declared priorities by format.
// A non-empty table takes precedence over the configured one.
type PriorityOverrider interface {
	OverridePriority() Overrides
}
