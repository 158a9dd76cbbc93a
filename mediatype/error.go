package mediatype

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every ParseError.
var ErrInvalid = errors.New("invalid media range")

// A ParseError reports a single media range that could not be parsed.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mediatype: %s: %q", e.Reason, e.Token)
}

// Unwrap exposes ErrInvalid so callers can errors.Is against it.
func (e *ParseError) Unwrap() error { return ErrInvalid }
