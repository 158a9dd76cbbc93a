package renderer

import (
	"net/http"

	"github.com/xy-planning-network/conneg/mediatype"
)

// A Func renders c with the named templates on behalf of res.
//
// A Func returns Declined when it cannot produce output for the templates or data it was handed;
// any internal fault must be reported the same way.
type Func func(res Resource, r *http.Request, c Context, tmpls Templates) Result

// A Renderer declares one way a resource produces a response.
type Renderer struct {
	// Format is the short identifier clients can ask for, e.g., "html".
	Format string

	// Name is shown to humans when listing variants.
	// If empty, Format is used.
	Name string

	// Mimetypes are the media types the Renderer produces, the first one being primary.
	//
	// A nil Mimetypes inherits those of the Renderer for the same Format declared before it.
	Mimetypes []mediatype.MediaType

	// Priority ranks Renderers server-side; higher wins.
	Priority int

	// Quality is advertised in Alternates. A zero Quality is read as 1.
	Quality float64

	Render Func
}

// Mimetypes parses each value with mediatype.Must,
// for use in Renderer declarations.
func Mimetypes(values ...string) []mediatype.MediaType {
	mts := make([]mediatype.MediaType, len(values))
	for i, v := range values {
		mts[i] = mediatype.Must(v)
	}

	return mts
}

// DisplayName returns Name or Format when Name was not declared.
func (rd *Renderer) DisplayName() string {
	if rd.Name == "" {
		return rd.Format
	}

	return rd.Name
}

// MediaTypes implements mediatype.Provider.
func (rd *Renderer) MediaTypes() []mediatype.MediaType { return rd.Mimetypes }

// Primary returns the first declared media type.
func (rd *Renderer) Primary() (mediatype.MediaType, bool) {
	if len(rd.Mimetypes) == 0 {
		return mediatype.MediaType{}, false
	}

	return rd.Mimetypes[0], true
}

// MimetypeValues lists the bare type/subtype of every declared media type.
func (rd *Renderer) MimetypeValues() []string {
	vals := make([]string, len(rd.Mimetypes))
	for i, mt := range rd.Mimetypes {
		vals[i] = mt.Value()
	}

	return vals
}
