package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

// newCORSEcho creates an Echo instance with the KnockBase CORS config and a test route.
func newCORSEcho(frontendURL string) *echo.Echo {
	e := echo.New()
	e.Use(middleware.CORSWithConfig(CORSConfig(frontendURL)))
	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func TestCORS_AllowedOrigins(t *testing.T) {
	tests := []struct {
		name   string
		origin string
	}{
		{"dev frontend", "http://localhost:3000"},
		{"dev vite", "http://localhost:5173"},
		{"production frontend", "https://app.knockbase.io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newCORSEcho("https://app.knockbase.io")

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_BlockedOrigins(t *testing.T) {
	tests := []struct {
		name   string
		origin string
	}{
		{"unknown external site", "https://evil.com"},
		{"similar domain attack", "https://knockbase.io.evil.com"},
		{"different port on localhost", "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newCORSEcho("https://app.knockbase.io")

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			// CORS is enforced by the browser; the server just must not
			// reflect the origin back.
			assert.NotEqual(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	e := newCORSEcho("https://app.knockbase.io")

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://app.knockbase.io")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Authorization,Content-Type")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.knockbase.io", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORSConfig_Values(t *testing.T) {
	cfg := CORSConfig("https://app.knockbase.io")

	assert.Equal(t, []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"https://app.knockbase.io",
	}, cfg.AllowOrigins)
	assert.True(t, cfg.AllowCredentials)

	for _, origin := range cfg.AllowOrigins {
		assert.NotEqual(t, "*", origin,
			"Wildcard origin is not allowed when credentials are enabled")
	}
}

func TestCORSConfig_NoFrontendURL(t *testing.T) {
	cfg := CORSConfig("")
	assert.Len(t, cfg.AllowOrigins, 2)
}
