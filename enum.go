package conneg

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// Environment and negotiate.Directive are both Enumerable.
type Enumerable interface {
	String() string
	Valid() error
}
