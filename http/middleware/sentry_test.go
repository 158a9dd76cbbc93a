package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/conneg"
	"github.com/xy-planning-network/conneg/http/middleware"
)

func TestReportPanic(t *testing.T) {
	// Arrange + Act
	actual := middleware.ReportPanic(conneg.Development)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	h := middleware.ReportPanic(conneg.Production)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	// Act + Assert
	require.NotPanics(t, func() { h.ServeHTTP(w, r) })
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
