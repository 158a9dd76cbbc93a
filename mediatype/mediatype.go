package mediatype

import (
	"errors"
	"mime"
	"sort"
	"strconv"
	"strings"
)

// Wildcard matches any concrete type or subtype.
const Wildcard = "*"

// Specificity ranks how narrowly a media range names a media type.
type Specificity int

const (
	// AnyType is */*.
	AnyType Specificity = iota

	// AnySubtype is type/*.
	AnySubtype

	// Exact is type/subtype.
	Exact
)

// A MediaType is a media range together with the quality a client gave it
// or the priority a server declared for it.
//
// A MediaType is a value; nothing in this package mutates one after parsing.
type MediaType struct {
	Type    string
	Subtype string

	// Params holds every parameter except q, keys lower cased.
	// Params do not take part in matching.
	Params map[string]string

	// Quality is the client-stated preference in [0, 1].
	Quality float64

	// Priority is the server-stated preference; higher wins.
	Priority int
}

// Must parses value as Parse does and panics if value is malformed.
//
// Must is meant for static renderer declarations.
func Must(value string) MediaType {
	mt, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return mt
}

// Parse reads a single media range, e.g., "text/html;level=1;q=0.8".
//
// Parse fails with a *ParseError when the type/subtype grammar is broken,
// when q is not a number, or when q falls outside of [0, 1].
func Parse(token string) (MediaType, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return MediaType{}, &ParseError{Token: token, Reason: "empty media range"}
	}

	value, params, err := mime.ParseMediaType(token)
	if err != nil {
		return MediaType{}, &ParseError{Token: token, Reason: err.Error()}
	}

	typ, subtype, ok := strings.Cut(value, "/")
	if !ok || typ == "" || subtype == "" || strings.Contains(subtype, "/") {
		return MediaType{}, &ParseError{Token: token, Reason: "expected type/subtype"}
	}

	if typ == Wildcard && subtype != Wildcard {
		return MediaType{}, &ParseError{Token: token, Reason: "wildcard type with concrete subtype"}
	}

	mt := MediaType{Type: typ, Subtype: subtype, Quality: 1}
	if raw, ok := params["q"]; ok {
		q, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return MediaType{}, &ParseError{Token: token, Reason: "quality is not a number"}
		}

		// NOTE: written this way round so NaN fails too
		if !(q >= 0 && q <= 1) {
			return MediaType{}, &ParseError{Token: token, Reason: "quality outside of [0, 1]"}
		}

		mt.Quality = q
		delete(params, "q")
	}

	if len(params) > 0 {
		mt.Params = params
	}

	return mt, nil
}

// ParseAccept reads every comma-separated media range in an Accept header value.
//
// Ranges that fail to parse are skipped; the returned error joins
// a *ParseError for each of them and is nil when none were skipped.
// Empty list elements are not errors.
func ParseAccept(header string) ([]MediaType, error) {
	var (
		accepts = make([]MediaType, 0)
		errs    = make([]error, 0)
	)

	for _, token := range splitList(header) {
		if strings.TrimSpace(token) == "" {
			continue
		}

		mt, err := Parse(token)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		accepts = append(accepts, mt)
	}

	return accepts, errors.Join(errs...)
}

// WithPriority returns a copy of mt declaring the given server priority.
func (mt MediaType) WithPriority(priority int) MediaType {
	mt.Priority = priority
	return mt
}

// Value is the bare type/subtype, e.g., "text/html".
func (mt MediaType) Value() string { return mt.Type + "/" + mt.Subtype }

// String formats mt so that Parse reads it back into an equal MediaType.
// The q parameter is only written when Quality is not 1.
func (mt MediaType) String() string {
	params := make(map[string]string, len(mt.Params)+1)
	for k, v := range mt.Params {
		params[k] = v
	}

	if mt.Quality != 1 {
		params["q"] = strconv.FormatFloat(mt.Quality, 'f', -1, 64)
	}

	if s := mime.FormatMediaType(mt.Value(), params); s != "" {
		return s
	}

	return mt.Value()
}

// Specificity ranks mt as AnyType, AnySubtype, or Exact.
func (mt MediaType) Specificity() Specificity {
	switch {
	case mt.Type == Wildcard:
		return AnyType
	case mt.Subtype == Wildcard:
		return AnySubtype
	default:
		return Exact
	}
}

// Match reports whether mt and other name a common media type.
// A wildcard on either side matches any concrete value on the other.
func (mt MediaType) Match(other MediaType) bool {
	if mt.Type == Wildcard || other.Type == Wildcard {
		return true
	}

	if mt.Type != other.Type {
		return false
	}

	return mt.Subtype == Wildcard || other.Subtype == Wildcard || mt.Subtype == other.Subtype
}

// Equal reports whether mt and other have the same type, subtype, and params.
// Quality and Priority are ignored.
func (mt MediaType) Equal(other MediaType) bool {
	if mt.Type != other.Type || mt.Subtype != other.Subtype || len(mt.Params) != len(other.Params) {
		return false
	}

	for k, v := range mt.Params {
		if ov, ok := other.Params[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// Compare orders a before b by returning a negative number,
// after b by returning a positive one, and 0 when neither ranks higher.
//
// Higher Quality comes first, then greater Specificity, then higher Priority.
func Compare(a, b MediaType) int {
	switch {
	case a.Quality != b.Quality:
		if a.Quality > b.Quality {
			return -1
		}
		return 1
	case a.Specificity() != b.Specificity():
		return int(b.Specificity()) - int(a.Specificity())
	default:
		return b.Priority - a.Priority
	}
}

// Sort returns a copy of mts ordered by Compare.
// Elements Compare finds equal stay in their original order.
func Sort(mts []MediaType) []MediaType {
	sorted := make([]MediaType, len(mts))
	copy(sorted, mts)
	sort.SliceStable(sorted, func(i, j int) bool { return Compare(sorted[i], sorted[j]) < 0 })
	return sorted
}

// splitList splits a header value on commas outside of quoted strings.
func splitList(header string) []string {
	var (
		parts   = make([]string, 0)
		start   int
		quoted  bool
		escaped bool
	)

	for i := 0; i < len(header); i++ {
		switch c := header[i]; {
		case escaped:
			escaped = false
		case c == '\\' && quoted:
			escaped = true
		case c == '"':
			quoted = !quoted
		case c == ',' && !quoted:
			parts = append(parts, header[start:i])
			start = i + 1
		}
	}

	return append(parts, header[start:])
}
