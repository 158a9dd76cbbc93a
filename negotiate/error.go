package negotiate

import "errors"

var (
	// ErrUnknownDirective reports a Negotiate directive that is not understood.
	ErrUnknownDirective = errors.New("unknown negotiate directive")
)
