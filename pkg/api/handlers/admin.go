package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
	"github.com/knockbase/knockbase/pkg/api/errors"
	"github.com/knockbase/knockbase/pkg/audit"
	"github.com/knockbase/knockbase/pkg/models"
	"github.com/knockbase/knockbase/pkg/reconcile"
	"github.com/knockbase/knockbase/pkg/sweeper"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles administrative maintenance endpoints
type AdminHandler struct {
	db          *ent.Client
	engine      *reconcile.Engine
	sweeper     *sweeper.Service
	auditLogger *audit.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *ent.Client, engine *reconcile.Engine, sweepSvc *sweeper.Service, auditLogger *audit.Service) *AdminHandler {
	return &AdminHandler{
		db:          db,
		engine:      engine,
		sweeper:     sweepSvc,
		auditLogger: auditLogger,
	}
}

// Resync godoc
// @Summary Run a consistency resync
// @Description Recompute derived state for every agent and team from the assignment ledgers, overwriting stored statuses that drifted
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} reconcile.ResyncReport "Resync report"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/resync [post]
func (h *AdminHandler) Resync(c echo.Context) error {
	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Minute)
	defer cancel()

	report, err := h.engine.ResyncAll(ctx, 0)
	if err != nil {
		return errors.InternalError(c, err)
	}

	go h.auditLogger.LogResyncRun(context.Background(), &userID, map[string]interface{}{
		"agents_checked":   report.AgentsChecked,
		"teams_checked":    report.TeamsChecked,
		"drifts_corrected": report.DriftsCorrected,
	})

	return c.JSON(http.StatusOK, report)
}

// Sweep godoc
// @Summary Run the activation sweep now
// @Description Activate every pending scheduled assignment whose date has arrived, without waiting for the next cron run
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} sweeper.SweepReport "Sweep report"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/sweep [post]
func (h *AdminHandler) Sweep(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Minute)
	defer cancel()

	report, err := h.sweeper.RunActivationSweep(ctx)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// Stats godoc
// @Summary System statistics
// @Description Zone counts by status, active agent and team counts, and pending scheduled assignments
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.StatsResponse "Current statistics"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	stats := models.StatsResponse{Zones: make(map[string]int)}

	for _, status := range []zone.Status{zone.StatusDraft, zone.StatusActive, zone.StatusScheduled, zone.StatusCompleted} {
		count, err := h.db.Zone.Query().Where(zone.StatusEQ(status)).Count(ctx)
		if err != nil {
			return errors.DatabaseError(c, err)
		}
		stats.Zones[string(status)] = count
	}

	activeAgents, err := h.db.User.Query().
		Where(user.RoleEQ(user.RoleAgent), user.StatusEQ(user.StatusActive), user.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	stats.ActiveAgents = activeAgents

	activeTeams, err := h.db.Team.Query().
		Where(team.StatusEQ(team.StatusActive)).
		Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	stats.ActiveTeams = activeTeams

	pending, err := h.db.ScheduledAssignment.Query().
		Where(scheduledassignment.StatusEQ(scheduledassignment.StatusPending)).
		Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	stats.PendingScheduled = pending

	return c.JSON(http.StatusOK, stats)
}
