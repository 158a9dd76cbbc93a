package template

import (
	html "html/template"
	"net/url"

	"github.com/google/uuid"
	"github.com/xy-planning-network/conneg"
)

// AddFn includes the named function in the Parse function map.
func (p *Parse) AddFn(name string, fn any) {
	if p.fns == nil {
		p.fns = make(html.FuncMap)
	}
	p.fns[name] = fn
}

// Env names "env" a function returning e,
// so templates rendered for a resource can vary by deployment.
func Env(e conneg.Environment) (string, func() string) {
	return "env", func() string { return e.String() }
}

// FormatUrl names "formatUrl" a function linking a path to one of its formats
// through the query parameter param, the way variant lists do:
//
//	{{formatUrl "/articles/1" "json"}} → /articles/1?format=json
//
// Any query already on the path is kept.
func FormatUrl(param string) (string, func(path, format string) string) {
	return "formatUrl", func(path, format string) string {
		u, err := url.Parse(path)
		if err != nil {
			return path
		}

		q := u.Query()
		q.Set(param, format)
		u.RawQuery = q.Encode()
		return u.String()
	}
}

// Nonce names "nonce" a function generating a fresh uuid on each call.
func Nonce() (string, func() string) {
	return "nonce", func() string { return uuid.NewString() }
}

// RootUrl names "rootUrl" a function returning u as a string,
// or an empty string when u is nil.
func RootUrl(u *url.URL) (string, func() string) {
	if u == nil {
		return "rootUrl", func() string { return "" }
	}

	s := u.String()
	return "rootUrl", func() string { return s }
}
