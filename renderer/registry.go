package renderer

import (
	"sort"

	"github.com/xy-planning-network/conneg/mediatype"
)

// A Registry indexes the Renderers of one resource type.
//
// A Registry is read-only once built and safe for concurrent use.
type Registry struct {
	renderers  []*Renderer
	byFormat   map[string][]*Renderer
	byMimetype map[string][]*Renderer
}

// Build indexes the Renderers res declares.
//
// Build applies priority overrides, preferring those of res over global,
// resolves inherited media types, stamps every media type with its Renderer's priority,
// and sorts all Renderers by descending priority, keeping declaration order among equals.
// The declarations themselves are left untouched.
func Build(res Resource, global Overrides) *Registry {
	var (
		decls     = res.Renderers()
		overrides = overridesFor(res, global)
		reg       = &Registry{
			renderers:  make([]*Renderer, 0, len(decls)),
			byFormat:   make(map[string][]*Renderer),
			byMimetype: make(map[string][]*Renderer),
		}
	)

	for _, decl := range decls {
		rd := decl
		if p, ok := overrides.Priority(rd.Format); ok {
			rd.Priority = p
		}

		if rd.Quality == 0 {
			rd.Quality = 1
		}

		mts := rd.Mimetypes
		if mts == nil {
			if prev := reg.byFormat[rd.Format]; len(prev) > 0 {
				mts = prev[len(prev)-1].Mimetypes
			}
		}

		rd.Mimetypes = make([]mediatype.MediaType, 0, len(mts))
		for _, mt := range mts {
			rd.Mimetypes = append(rd.Mimetypes, mt.WithPriority(rd.Priority))
		}

		for _, mt := range rd.Mimetypes {
			reg.byMimetype[mt.Value()] = append(reg.byMimetype[mt.Value()], &rd)
		}

		reg.byFormat[rd.Format] = append(reg.byFormat[rd.Format], &rd)
		reg.renderers = append(reg.renderers, &rd)
	}

	sort.SliceStable(reg.renderers, func(i, j int) bool {
		return reg.renderers[i].Priority > reg.renderers[j].Priority
	})

	return reg
}

// Renderers lists every Renderer by descending priority.
// Callers must not modify the returned slice.
func (reg *Registry) Renderers() []*Renderer { return reg.renderers }

// Format lists the Renderers for format in declaration order.
func (reg *Registry) Format(format string) []*Renderer { return reg.byFormat[format] }

// HasFormat reports whether any Renderer declares format.
func (reg *Registry) HasFormat(format string) bool { return len(reg.byFormat[format]) > 0 }

// Mimetype lists the Renderers producing the bare type/subtype value in declaration order.
func (reg *Registry) Mimetype(value string) []*Renderer { return reg.byMimetype[value] }

// Formats lists every declared format, sorted.
func (reg *Registry) Formats() []string {
	formats := make([]string, 0, len(reg.byFormat))
	for f := range reg.byFormat {
		formats = append(formats, f)
	}

	sort.Strings(formats)
	return formats
}

// Len is the number of Renderers.
func (reg *Registry) Len() int { return len(reg.renderers) }
