package negotiate_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/conneg/negotiate"
	"github.com/xy-planning-network/conneg/renderer"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func TestOutcomeStatus(t *testing.T) {
	require.Equal(t, 0, (&negotiate.Outcome{}).Status())
	require.Equal(t, http.StatusMultipleChoices, (&negotiate.Outcome{MultipleChoices: true}).Status())
	require.Equal(t, http.StatusNotAcceptable, (&negotiate.Outcome{NotAcceptable: true}).Status())
	require.Equal(t, http.StatusNotAcceptable, (&negotiate.Outcome{NotAcceptable: true, MultipleChoices: true}).Status())
}

func TestOutcomeProbe(t *testing.T) {
	// Arrange
	rd := &renderer.Renderer{Format: "html"}
	o := &negotiate.Outcome{
		Candidates:      []*renderer.Renderer{rd},
		NotAcceptable:   true,
		MultipleChoices: true,
		TCN:             negotiate.ParseNegotiate("vlist"),
		Chosen:          rd,
	}

	// Act
	p := o.Probe()

	// Assert
	require.True(t, p.Prefetched)
	require.False(t, o.Prefetched)
	require.Equal(t, o.Candidates, p.Candidates)
	require.False(t, p.NotAcceptable)
	require.False(t, p.MultipleChoices)
	require.False(t, p.TCN.Active)
	require.Nil(t, p.Chosen)
}

func TestOutcomeRestart(t *testing.T) {
	tcs := []struct {
		name      string
		negotiate string
		expected  int
	}{
		{"Plain", "", 0},
		{"Vlist", "vlist", 0},
		{"Malformed", "foobar", http.StatusNotAcceptable},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			rd := &renderer.Renderer{Format: "html"}
			o := &negotiate.Outcome{
				Candidates:      []*renderer.Renderer{rd},
				NotAcceptable:   true,
				MultipleChoices: true,
				TCN:             negotiate.ParseNegotiate(tc.negotiate),
				Chosen:          rd,
			}

			// Act
			o.Restart()

			// Assert
			require.Equal(t, tc.expected, o.Status())
			require.Nil(t, o.Chosen)
			require.Equal(t, []*renderer.Renderer{rd}, o.Candidates)
		})
	}
}

func TestContext(t *testing.T) {
	// Arrange
	o := new(negotiate.Outcome)

	// Act
	_, missing := negotiate.FromContext(context.Background())
	actual, ok := negotiate.FromContext(negotiate.NewContext(context.Background(), o))

	// Assert
	require.False(t, missing)
	require.True(t, ok)
	require.Same(t, o, actual)
}

func TestEnsure(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	// Act
	withOutcome, o := negotiate.Ensure(r)
	again, same := negotiate.Ensure(withOutcome)

	// Assert
	require.NotSame(t, r, withOutcome)
	require.Same(t, withOutcome, again)
	require.Same(t, o, same)
	_, ok := negotiate.FromContext(r.Context())
	require.False(t, ok)
}
