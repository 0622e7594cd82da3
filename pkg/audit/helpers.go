package audit

import (
	"github.com/labstack/echo/v4"
)

// GetIPAddress resolves the client IP for an audit entry. Proxy headers take
// precedence over the socket address so entries stay meaningful behind the
// load balancer.
func GetIPAddress(c echo.Context) string {
	if ip := c.Request().Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.Request().Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return c.RealIP()
}

// GetUserAgent returns the requesting client's User-Agent header.
func GetUserAgent(c echo.Context) string {
	return c.Request().UserAgent()
}

// GetRequestContext bundles the request fields the login and registration
// audit helpers record.
func GetRequestContext(c echo.Context) (ipAddress, userAgent string) {
	return GetIPAddress(c), GetUserAgent(c)
}
