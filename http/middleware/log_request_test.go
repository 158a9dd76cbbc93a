package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/conneg"
	"github.com/xy-planning-network/conneg/http/middleware"
	"github.com/xy-planning-network/conneg/logger"
	"github.com/xy-planning-network/conneg/logger/loggertest"
	"github.com/xy-planning-network/conneg/negotiate"
	"github.com/xy-planning-network/conneg/renderer"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	tcs := []struct {
		name     string
		method   string
		ip       string
		url      *url.URL
		expected string
	}{
		{"Zero-Value", http.MethodGet, "", &url.URL{Path: "/"}, "GET /"},
		{"With-IP", http.MethodPost, "192.168.0.0", &url.URL{Path: "/"}, "192.168.0.0 POST /"},
		{
			"With-Query-Params",
			http.MethodPut,
			"",
			&url.URL{Path: "/articles/1", RawQuery: "format=json"},
			"PUT /articles/1?format=json",
		},
		{
			"With-Query-Params-Hid",
			http.MethodGet,
			"",
			&url.URL{Path: "/", RawQuery: "format=json&password=hunter2"},
			"GET /?format=json&password=" + middleware.LogMaskVal,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			l := loggertest.NewMockLogger(ctrl)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.url.String(), nil)
			r = r.WithContext(context.WithValue(r.Context(), conneg.RequestIDKey, "test-id"))
			if tc.ip != "" {
				r = r.WithContext(context.WithValue(r.Context(), conneg.IpAddrKey, tc.ip))
			}

			var lc *logger.LogContext
			l.EXPECT().Info(tc.expected, gomock.Any()).Do(func(_ string, ctx *logger.LogContext) { lc = ctx })

			// Act
			middleware.LogRequest(l)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				wx.WriteHeader(http.StatusCreated)
				fmt.Fprint(wx, "test")
			})).ServeHTTP(w, r)

			// Assert
			require.Equal(t, http.StatusCreated, lc.Data["status"])
			require.Equal(t, len("test"), lc.Data["size"])
			require.Equal(t, "test-id", lc.Data["id"])
			require.Empty(t, lc.Format)
		})
	}
}

func TestLogRequestNegotiated(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	l := loggertest.NewMockLogger(ctrl)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rd := &renderer.Renderer{Format: "json", Name: "JSON"}

	var lc *logger.LogContext
	l.EXPECT().Info("GET /", gomock.Any()).Do(func(_ string, ctx *logger.LogContext) { lc = ctx })

	// Act
	middleware.LogRequest(l)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		o, ok := negotiate.FromContext(rx.Context())
		require.True(t, ok)
		o.Chosen = rd
	})).ServeHTTP(w, r)

	// Assert
	require.Equal(t, "json", lc.Format)
	require.Equal(t, "JSON", lc.Renderer)
	require.Equal(t, http.StatusOK, lc.Data["status"])
}
