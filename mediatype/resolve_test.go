package mediatype_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/conneg/mediatype"
)

type provider struct {
	name string
	mts  []mediatype.MediaType
}

func (p provider) MediaTypes() []mediatype.MediaType { return p.mts }

func newProvider(name string, priority int, mts ...string) provider {
	p := provider{name: name}
	for _, mt := range mts {
		p.mts = append(p.mts, mediatype.Must(mt).WithPriority(priority))
	}
	return p
}

func names(ps []provider) []string {
	s := make([]string, len(ps))
	for i, p := range ps {
		s[i] = p.name
	}
	return s
}

func mustAccept(t *testing.T, header string) []mediatype.MediaType {
	t.Helper()
	accept, err := mediatype.ParseAccept(header)
	require.Nil(t, err)
	return accept
}

func TestResolve(t *testing.T) {
	// NOTE: listed by descending priority, as a registry hands them over
	var (
		html = newProvider("html", 1, "text/html", "application/xhtml+xml")
		json = newProvider("json", 0, "application/json")
		txt  = newProvider("txt", 0, "text/plain")
		all  = []provider{html, json, txt}
	)

	for _, tc := range []struct {
		name     string
		accept   string
		expected []string
	}{
		{"Quality-Beats-Priority", "application/json, text/html;q=0.5", []string{"json", "html"}},
		{"Priority-Breaks-Quality-Tie", "application/json, text/html", []string{"html", "json"}},
		{"Declaration-Breaks-Priority-Tie", "text/plain, application/json", []string{"json", "txt"}},
		{"Specific-Before-Wildcard", "*/*, text/plain", []string{"txt", "html", "json"}},
		{"Subtype-Wildcard", "text/*", []string{"html", "txt"}},
		{"Full-Wildcard", "*/*", []string{"html", "json", "txt"}},
		{"Secondary-Mimetype", "application/xhtml+xml", []string{"html"}},
		{"No-Match", "application/xml", []string{}},
		{"Refused", "text/html;q=0, application/xhtml+xml;q=0, */*", []string{"json", "txt"}},
		{"Refused-One-Of-Two", "text/html;q=0, */*", []string{"html", "json", "txt"}},
		{"Refused-By-Wildcard-Overridden", "*/*;q=0, text/plain", []string{"txt"}},
		{"Zero-Quality-Only", "application/json;q=0", []string{}},
		{"Once-Each", "text/html, application/xhtml+xml, text/*", []string{"html", "txt"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			accept := mustAccept(t, tc.accept)

			// Act
			actual := mediatype.Resolve(accept, all)

			// Assert
			require.Equal(t, tc.expected, names(actual))
		})
	}
}

func TestResolveEqualQualityPermutations(t *testing.T) {
	mimetypes := []string{"text/plain", "application/xml", "text/html", "application/json"}
	accept := mustAccept(t, "text/plain, application/xml, text/html, application/json")

	for _, perm := range permutations(mimetypes) {
		// Arrange
		providers := make([]provider, len(perm))
		for i, mt := range perm {
			providers[i] = newProvider(mt, -i, mt)
		}

		// Act
		actual := mediatype.Resolve(accept, providers)

		// Assert
		require.Equal(t, perm, names(actual))
	}
}

func TestGoverning(t *testing.T) {
	accept := mustAccept(t, "*/*;q=0.1, text/*;q=0.5, text/html;q=0.9, text/html;q=0.3")

	mt, ok := mediatype.Governing(mediatype.Must("text/html"), accept)
	require.True(t, ok)
	require.Equal(t, 0.9, mt.Quality)

	mt, ok = mediatype.Governing(mediatype.Must("text/plain"), accept)
	require.True(t, ok)
	require.Equal(t, 0.5, mt.Quality)

	mt, ok = mediatype.Governing(mediatype.Must("image/png"), accept)
	require.True(t, ok)
	require.Equal(t, 0.1, mt.Quality)

	_, ok = mediatype.Governing(mediatype.Must("image/png"), mustAccept(t, "text/*"))
	require.False(t, ok)
}

func TestRefused(t *testing.T) {
	accept := mustAccept(t, "text/html;q=0, text/*")
	require.True(t, mediatype.Refused(mediatype.Must("text/html"), accept))
	require.False(t, mediatype.Refused(mediatype.Must("text/plain"), accept))
	require.False(t, mediatype.Refused(mediatype.Must("image/png"), accept))
}

func permutations(s []string) [][]string {
	if len(s) <= 1 {
		return [][]string{append([]string{}, s...)}
	}

	perms := make([][]string, 0)
	for i := range s {
		rest := make([]string, 0, len(s)-1)
		rest = append(rest, s[:i]...)
		rest = append(rest, s[i+1:]...)
		for _, p := range permutations(rest) {
			perms = append(perms, append([]string{s[i]}, p...))
		}
	}

	return perms
}
