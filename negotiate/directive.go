package negotiate

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/conneg"
)

// A Directive is one value of the Negotiate request header.
type Directive string

const (
	// Trans announces the user agent supports transparent content negotiation.
	Trans Directive = "trans"

	// VList asks for the list of variants.
	VList Directive = "vlist"

	// ServerChoice authorizes the server to choose a variant on the user agent's behalf.
	ServerChoice Directive = "*"
)

var _ conneg.Enumerable = Trans

// String implements fmt.Stringer.
func (d Directive) String() string { return string(d) }

// Valid checks whether d is a Directive this package acts on.
func (d Directive) Valid() error {
	switch d {
	case Trans, VList, ServerChoice:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirective, string(d))
	}
}

// A TCN is how a request takes part in transparent content negotiation.
type TCN struct {
	// Active is set when the request sent any Negotiate header at all.
	Active bool

	// ServerChoice is set when the server may pick a variant itself.
	ServerChoice bool

	// VList is set when the user agent asked for the variant list.
	VList bool

	// Malformed is set when no directive in the header was understood.
	Malformed bool

	// Directives lists the understood directives in the order sent.
	Directives []Directive
}

// ParseNegotiate reads the value of a Negotiate header.
//
// An empty value means the request does not negotiate transparently.
// Directives are comma-separated and case-insensitive;
// ones not understood are skipped, unless none are understood at all,
// in which case the TCN is Active and Malformed.
func ParseNegotiate(header string) TCN {
	if strings.TrimSpace(header) == "" {
		return TCN{}
	}

	tcn := TCN{Active: true}
	for _, tok := range strings.Split(header, ",") {
		d := Directive(strings.ToLower(strings.TrimSpace(tok)))
		if d.Valid() != nil {
			continue
		}

		switch d {
		case ServerChoice:
			tcn.ServerChoice = true
		case VList:
			tcn.VList = true
		}

		tcn.Directives = append(tcn.Directives, d)
	}

	tcn.Malformed = len(tcn.Directives) == 0
	return tcn
}

// Header is the value of the TCN response header:
// "choice" when the server chose, "list" otherwise.
// An inactive TCN has no header.
func (tcn TCN) Header() string {
	switch {
	case !tcn.Active:
		return ""
	case tcn.ServerChoice:
		return "choice"
	default:
		return "list"
	}
}
