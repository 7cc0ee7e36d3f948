package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewServer_StripsTrailingSlashBeforeRouting(t *testing.T) {
	e := newServer(zap.NewNop())
	e.GET("/api/me", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Path())
	})

	for _, path := range []string{"/api/me", "/api/me/"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "/api/me", rec.Body.String(), path)
		assert.Equal(t, version, rec.Header().Get("X-API-Version"), path)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID), path)
	}
}
