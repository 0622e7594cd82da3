package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders_DefaultHeaders(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SecurityHeaders(SecurityHeadersConfig{})(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	assert.NoError(t, handler(c))

	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "default-src 'self'")
	assert.Contains(t, csp, "frame-ancestors 'none'")
	assert.Contains(t, csp, "base-uri 'self'")

	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))

	pp := rec.Header().Get("Permissions-Policy")
	assert.Contains(t, pp, "camera=()")
	assert.Contains(t, pp, "geolocation=(self)")
}

func TestSecurityHeaders_CustomCSP(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	customCSP := "default-src 'self'; script-src 'self' https://cdn.example.com"
	handler := SecurityHeaders(SecurityHeadersConfig{
		ContentSecurityPolicy: customCSP,
	})(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	assert.NoError(t, handler(c))
	assert.Equal(t, customCSP, rec.Header().Get("Content-Security-Policy"))
}

func TestSecurityHeaders_CustomReferrerPolicy(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SecurityHeaders(SecurityHeadersConfig{
		ReferrerPolicy: "no-referrer",
	})(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	assert.NoError(t, handler(c))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
}
