package handlers

import (
	"net/http"
	"strconv"

	"github.com/knockbase/knockbase/pkg/audit"
	"github.com/labstack/echo/v4"
)

// AuditHandler handles audit log endpoints
type AuditHandler struct {
	auditService *audit.Service
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *audit.Service) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// GetUserLogs returns audit logs for the current user
func (h *AuditHandler) GetUserLogs(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "unauthorized",
		})
	}

	limit := queryLimit(c, 50, 100)

	logs, err := h.auditService.GetUserLogs(c.Request().Context(), userID, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed_to_fetch_logs",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"logs":  logs,
		"count": len(logs),
	})
}

// GetRecentLogs returns recent audit logs (admin only)
func (h *AuditHandler) GetRecentLogs(c echo.Context) error {
	limit := queryLimit(c, 100, 500)

	logs, err := h.auditService.GetRecentLogs(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed_to_fetch_logs",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"logs":  logs,
		"count": len(logs),
	})
}

func queryLimit(c echo.Context, def, max int) int {
	limit := def
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= max {
			limit = l
		}
	}
	return limit
}
