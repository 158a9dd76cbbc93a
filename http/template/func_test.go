package template

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/conneg"
)

func TestAddFn(t *testing.T) {
	// Arrange
	tcs := []struct {
		name   string
		first  string
		second any
		length int
	}{
		{"zero-first", "", nil, 1},
		{"struct-second", "still nil", struct{}{}, 2},
		{"one-good", "one", func() {}, 3},
		{"two-good", "two", func() {}, 4},
		{"repeat", "one", func() {}, 4},
	}

	p := &Parse{}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			require.NotPanics(t, func() { p.AddFn(tc.first, tc.second) })

			// Assert
			require.Len(t, p.fns, tc.length)
		})
	}
}

func TestEnv(t *testing.T) {
	// Act
	name, fn := Env(conneg.Staging)

	// Assert
	require.Equal(t, "env", name)
	require.Equal(t, "STAGING", fn())
}

func TestFormatUrl(t *testing.T) {
	tcs := []struct {
		name     string
		path     string
		format   string
		expected string
	}{
		{"Path", "/articles/1", "json", "/articles/1?format=json"},
		{"Keeps-Query", "/articles?page=2", "yaml", "/articles?format=yaml&page=2"},
		{"Replaces-Format", "/articles?format=html", "txt", "/articles?format=txt"},
		{"Invalid", "%zz", "json", "%zz"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			name, fn := FormatUrl("format")

			// Assert
			require.Equal(t, "formatUrl", name)
			require.Equal(t, tc.expected, fn(tc.path, tc.format))
		})
	}
}

func TestNonce(t *testing.T) {
	// Act
	name, fn := Nonce()

	// Assert
	require.Equal(t, "nonce", name)
	first, second := fn(), fn()
	require.NotEqual(t, first, second)
	_, err := uuid.Parse(first)
	require.Nil(t, err)
}

func TestRootUrl(t *testing.T) {
	// Arrange
	u, err := url.Parse("https://example.com/app")
	require.Nil(t, err)

	tcs := []struct {
		name     string
		u        *url.URL
		expected string
	}{
		{"nil", nil, ""},
		{"url", u, "https://example.com/app"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			name, fn := RootUrl(tc.u)

			// Assert
			require.Equal(t, "rootUrl", name)
			require.Equal(t, tc.expected, fn())
		})
	}
}
