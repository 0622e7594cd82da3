package handlers

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/auditlog"
	"github.com/knockbase/knockbase/ent/resident"
	"github.com/knockbase/knockbase/ent/zone"
	"github.com/knockbase/knockbase/pkg/api/errors"
	"github.com/knockbase/knockbase/pkg/audit"
	"github.com/knockbase/knockbase/pkg/export"
	"github.com/knockbase/knockbase/pkg/geo"
	"github.com/knockbase/knockbase/pkg/ledger"
	"github.com/knockbase/knockbase/pkg/models"
	"github.com/knockbase/knockbase/pkg/reconcile"
	"github.com/labstack/echo/v4"
)

// ZoneHandler handles zone endpoints
type ZoneHandler struct {
	db          *ent.Client
	engine      *reconcile.Engine
	geoService  *geo.Service
	exporter    *export.Service
	auditLogger *audit.Service
	validator   *validator.Validate
}

// NewZoneHandler creates a new zone handler
func NewZoneHandler(db *ent.Client, engine *reconcile.Engine, geoService *geo.Service, exporter *export.Service, auditLogger *audit.Service) *ZoneHandler {
	return &ZoneHandler{
		db:          db,
		engine:      engine,
		geoService:  geoService,
		exporter:    exporter,
		auditLogger: auditLogger,
		validator:   validator.New(),
	}
}

// Create godoc
// @Summary Create a zone
// @Description Create a new sales zone, optionally with a boundary polygon
// @Tags Zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateZoneRequest true "Zone data"
// @Success 201 {object} models.ZoneResponse "Zone created"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Boundary overlaps an existing zone"
// @Router /zones [post]
func (h *ZoneHandler) Create(c echo.Context) error {
	var req models.CreateZoneRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if len(req.Boundary) > 0 {
		if conflict := h.checkBoundary(c, ctx, req.Boundary, 0); conflict != nil {
			return conflict
		}
	}

	create := h.db.Zone.Create().
		SetName(req.Name).
		SetDescription(req.Description).
		SetCreatedByUserID(userID)
	if len(req.Boundary) > 0 {
		create = create.SetBoundary(req.Boundary)
	}

	z, err := create.Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	go h.auditLogger.Log(context.Background(), audit.LogEntry{
		UserID:   &userID,
		Action:   auditlog.ActionZoneCreate,
		Severity: auditlog.SeverityInfo,
	})

	return c.JSON(http.StatusCreated, toZoneResponse(z))
}

// List godoc
// @Summary List zones
// @Description List zones with optional status filter
// @Tags Zones
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (draft, active, scheduled, completed)"
// @Success 200 {array} models.ZoneResponse "Zones"
// @Router /zones [get]
func (h *ZoneHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	query := h.db.Zone.Query()
	if status := c.QueryParam("status"); status != "" {
		query = query.Where(zone.StatusEQ(zone.Status(status)))
	}

	zones, err := query.Order(ent.Asc(zone.FieldID)).All(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	responses := make([]*models.ZoneResponse, len(zones))
	for i, z := range zones {
		resp := toZoneResponse(z)
		if resp.Status, err = h.presentStatus(ctx, z); err != nil {
			return errors.DatabaseError(c, err)
		}
		responses[i] = resp
	}

	return c.JSON(http.StatusOK, responses)
}

// Get godoc
// @Summary Get a zone
// @Tags Zones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Success 200 {object} models.ZoneResponse "Zone"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /zones/{id} [get]
func (h *ZoneHandler) Get(c echo.Context) error {
	zoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_zone_id",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	z, err := h.db.Zone.Get(ctx, zoneID)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "zone")
		}
		return errors.DatabaseError(c, err)
	}

	resp := toZoneResponse(z)
	if resp.Status, err = h.presentStatus(ctx, z); err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Update a zone
// @Description Update zone name, description, or boundary
// @Tags Zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Param request body models.UpdateZoneRequest true "Fields to update"
// @Success 200 {object} models.ZoneResponse "Updated zone"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 409 {object} models.ErrorResponse "Boundary overlaps an existing zone"
// @Router /zones/{id} [put]
func (h *ZoneHandler) Update(c echo.Context) error {
	zoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_zone_id",
		})
	}

	var req models.UpdateZoneRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if req.Boundary != nil && len(*req.Boundary) > 0 {
		if conflict := h.checkBoundary(c, ctx, *req.Boundary, zoneID); conflict != nil {
			return conflict
		}
	}

	update := h.db.Zone.UpdateOneID(zoneID)
	if req.Name != nil {
		update = update.SetName(*req.Name)
	}
	if req.Description != nil {
		update = update.SetDescription(*req.Description)
	}
	if req.Boundary != nil {
		update = update.SetBoundary(*req.Boundary)
	}

	z, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "zone")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, toZoneResponse(z))
}

// Assign godoc
// @Summary Assign a zone
// @Description Assign the zone to an agent or a team, immediately or at a future date. Replaces any previous assignment.
// @Tags Zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Param request body models.AssignZoneRequest true "Assignment target"
// @Success 200 {object} reconcile.Result "Assignment applied"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Zone or target not found"
// @Router /zones/{id}/assign [post]
func (h *ZoneHandler) Assign(c echo.Context) error {
	zoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_zone_id",
		})
	}

	var req models.AssignZoneRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if (req.AgentID == nil) == (req.TeamID == nil) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_target",
			Message: "Exactly one of agent_id and team_id must be set",
		})
	}

	var target ledger.Target
	if req.AgentID != nil {
		target = ledger.AgentTarget(*req.AgentID)
	} else {
		target = ledger.TeamTarget(*req.TeamID)
	}

	var effectiveFrom time.Time
	if req.EffectiveFrom != nil {
		effectiveFrom = *req.EffectiveFrom
	}

	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	result, err := h.engine.AssignZone(ctx, zoneID, target, effectiveFrom, &userID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	action := auditlog.ActionZoneAssignAgent
	if target.IsTeam() {
		action = auditlog.ActionZoneAssignTeam
	}
	if effectiveFrom.After(time.Now()) {
		action = auditlog.ActionAssignmentScheduled
	}
	go h.auditLogger.LogZoneAssignment(context.Background(), userID, zoneID, action, map[string]interface{}{
		"target": target.String(),
	})

	return c.JSON(http.StatusOK, result)
}

// Unassign godoc
// @Summary Remove a zone's assignment
// @Description Detach the current agent or team and revert the zone to draft
// @Tags Zones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Success 200 {object} reconcile.Result "Assignment removed"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /zones/{id}/assign [delete]
func (h *ZoneHandler) Unassign(c echo.Context) error {
	zoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_zone_id",
		})
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	result, err := h.engine.RemoveZoneAssignment(ctx, zoneID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	go h.auditLogger.LogZoneAssignment(context.Background(), userID, zoneID, auditlog.ActionZoneUnassign, nil)

	return c.JSON(http.StatusOK, result)
}

// Delete godoc
// @Summary Delete a zone
// @Description Delete the zone with its assignment history and all zone-scoped data, then re-derive every party that ever held it
// @Tags Zones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Success 200 {object} reconcile.Result "Zone deleted"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /zones/{id} [delete]
func (h *ZoneHandler) Delete(c echo.Context) error {
	zoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_zone_id",
		})
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	result, err := h.engine.DeleteZone(ctx, zoneID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	go h.auditLogger.LogZoneDelete(context.Background(), userID, zoneID)

	return c.JSON(http.StatusOK, result)
}

// History godoc
// @Summary Get a zone's assignment history
// @Tags Zones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Success 200 {array} models.AssignmentRecord "Assignment history, newest first"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /zones/{id}/history [get]
func (h *ZoneHandler) History(c echo.Context) error {
	zoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_zone_id",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	exists, err := h.db.Zone.Query().Where(zone.ID(zoneID)).Exist(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	if !exists {
		return errors.NotFoundError(c, "zone")
	}

	rows, err := h.engine.Ledger().HistoryForZone(ctx, zoneID)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	records := make([]models.AssignmentRecord, len(rows))
	for i, r := range rows {
		rec := models.AssignmentRecord{
			ID:            r.ID,
			ZoneID:        r.ZoneID,
			AgentID:       r.AgentID,
			TeamID:        r.TeamID,
			Status:        r.Status.String(),
			EffectiveFrom: r.EffectiveFrom.Format(time.RFC3339),
		}
		if r.EffectiveTo != nil {
			rec.EffectiveTo = r.EffectiveTo.Format(time.RFC3339)
		}
		records[i] = rec
	}

	return c.JSON(http.StatusOK, records)
}

// Export godoc
// @Summary Export a zone's assignment history
// @Description Generate a CSV or Excel file with the zone's full assignment history
// @Tags Zones
// @Produce application/octet-stream
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Param format query string false "File format: csv or excel (default csv)"
// @Success 200 {file} file "Exported file"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /zones/{id}/export [get]
func (h *ZoneHandler) Export(c echo.Context) error {
	zoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_zone_id",
		})
	}

	format := c.QueryParam("format")
	if format == "" {
		format = "csv"
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	path, err := h.exporter.ExportZoneHistory(ctx, zoneID, format)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "export_failed",
			Message: err.Error(),
		})
	}

	return c.Attachment(path, filepath.Base(path))
}

// presentStatus derives the status a zone reads as: an active zone whose
// residents have all been visited presents as completed. The stored status is
// untouched; completion is a view of door-knock progress, not a transition.
func (h *ZoneHandler) presentStatus(ctx context.Context, z *ent.Zone) (string, error) {
	if z.Status != zone.StatusActive {
		return z.Status.String(), nil
	}

	total, err := h.db.Resident.Query().
		Where(resident.ZoneID(z.ID)).
		Count(ctx)
	if err != nil {
		return "", err
	}
	if total == 0 {
		return z.Status.String(), nil
	}

	unvisited, err := h.db.Resident.Query().
		Where(
			resident.ZoneID(z.ID),
			resident.VisitStatusNEQ(resident.VisitStatusVisited),
		).
		Count(ctx)
	if err != nil {
		return "", err
	}
	if unvisited == 0 {
		return zone.StatusCompleted.String(), nil
	}
	return z.Status.String(), nil
}

// checkBoundary validates the polygon and rejects it when it overlaps another
// zone. Returns a non-nil response error on rejection.
func (h *ZoneHandler) checkBoundary(c echo.Context, ctx context.Context, boundary geo.Polygon, excludeZoneID int) error {
	if !geo.ValidateBoundary(boundary) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_boundary",
			Message: "Boundary must be at least 3 [lng, lat] pairs within valid ranges",
		})
	}

	overlaps, err := h.geoService.FindOverlaps(ctx, boundary, excludeZoneID)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	if len(overlaps) > 0 {
		return errors.ConflictError(c, "Boundary overlaps an existing zone: "+overlaps[0].Name)
	}

	return nil
}

func toZoneResponse(z *ent.Zone) *models.ZoneResponse {
	return &models.ZoneResponse{
		ID:              z.ID,
		Name:            z.Name,
		Description:     z.Description,
		Boundary:        z.Boundary,
		Status:          z.Status.String(),
		AssignedAgentID: z.AssignedAgentID,
		TeamID:          z.TeamID,
		CreatedAt:       z.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       z.UpdatedAt.Format(time.RFC3339),
	}
}
