package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/auditlog"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/pkg/api/errors"
	"github.com/knockbase/knockbase/pkg/audit"
	"github.com/knockbase/knockbase/pkg/models"
	"github.com/knockbase/knockbase/pkg/reconcile"
	"github.com/labstack/echo/v4"
)

// TeamHandler handles team endpoints
type TeamHandler struct {
	db          *ent.Client
	engine      *reconcile.Engine
	auditLogger *audit.Service
	validator   *validator.Validate
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(db *ent.Client, engine *reconcile.Engine, auditLogger *audit.Service) *TeamHandler {
	return &TeamHandler{
		db:          db,
		engine:      engine,
		auditLogger: auditLogger,
		validator:   validator.New(),
	}
}

// Create godoc
// @Summary Create a team
// @Description Create a new team with a leader and optional initial members
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateTeamRequest true "Team data"
// @Success 201 {object} models.TeamResponse "Team created"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /teams [post]
func (h *TeamHandler) Create(c echo.Context) error {
	var req models.CreateTeamRequest
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

	t, err := h.db.Team.Create().
		SetName(req.Name).
		SetDescription(req.Description).
		SetLeaderUserID(req.LeaderUserID).
		SetCreatedByUserID(userID).
		Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	// Leader is always on the roster; extra members follow.
	memberIDs := append([]int{req.LeaderUserID}, req.MemberIDs...)
	seen := make(map[int]struct{}, len(memberIDs))
	for _, memberID := range memberIDs {
		if _, dup := seen[memberID]; dup {
			continue
		}
		seen[memberID] = struct{}{}
		if _, err := h.engine.AddTeamMember(ctx, t.ID, memberID, userID); err != nil {
			return errors.DomainError(c, err)
		}
	}

	go h.auditLogger.Log(context.Background(), audit.LogEntry{
		UserID:   &userID,
		Action:   auditlog.ActionTeamCreate,
		Severity: auditlog.SeverityInfo,
	})

	return h.respondWithTeam(c, http.StatusCreated, t.ID)
}

// List godoc
// @Summary List teams
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TeamResponse "Teams"
// @Router /teams [get]
func (h *TeamHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	teams, err := h.db.Team.Query().Order(ent.Asc(team.FieldID)).All(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	responses := make([]*models.TeamResponse, len(teams))
	for i, t := range teams {
		memberIDs, err := h.engine.Ledger().MemberIDsForTeam(ctx, t.ID)
		if err != nil {
			return errors.DatabaseError(c, err)
		}
		responses[i] = toTeamResponse(t, memberIDs)
	}

	return c.JSON(http.StatusOK, responses)
}

// Get godoc
// @Summary Get a team
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} models.TeamResponse "Team"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /teams/{id} [get]
func (h *TeamHandler) Get(c echo.Context) error {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_team_id",
		})
	}

	return h.respondWithTeam(c, http.StatusOK, teamID)
}

// AddMember godoc
// @Summary Add a team member
// @Description Add an agent to the team. The agent immediately inherits the team's zones.
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param request body models.AddTeamMemberRequest true "Agent to add"
// @Success 200 {object} reconcile.Result "Member added"
// @Failure 404 {object} models.ErrorResponse "Team or agent not found"
// @Failure 409 {object} models.ErrorResponse "Already a member"
// @Router /teams/{id}/members [post]
func (h *TeamHandler) AddMember(c echo.Context) error {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_team_id",
		})
	}

	var req models.AddTeamMemberRequest
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

	result, err := h.engine.AddTeamMember(ctx, teamID, req.UserID, userID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	go h.auditLogger.LogTeamMemberChange(context.Background(), userID, teamID, req.UserID, auditlog.ActionTeamMemberAdd)

	return c.JSON(http.StatusOK, result)
}

// RemoveMember godoc
// @Summary Remove a team member
// @Description Remove an agent from the team. Zones reachable only through the team drop off the agent's zone set.
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param userId path int true "Agent user ID"
// @Success 200 {object} reconcile.Result "Member removed"
// @Failure 404 {object} models.ErrorResponse "Not a member"
// @Router /teams/{id}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c echo.Context) error {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_team_id",
		})
	}

	memberID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_user_id",
		})
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	result, err := h.engine.RemoveTeamMember(ctx, teamID, memberID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	go h.auditLogger.LogTeamMemberChange(context.Background(), userID, teamID, memberID, auditlog.ActionTeamMemberRemove)

	return c.JSON(http.StatusOK, result)
}

func (h *TeamHandler) respondWithTeam(c echo.Context, status int, teamID int) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.db.Team.Get(ctx, teamID)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "team")
		}
		return errors.DatabaseError(c, err)
	}

	memberIDs, err := h.engine.Ledger().MemberIDsForTeam(ctx, teamID)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(status, toTeamResponse(t, memberIDs))
}

func toTeamResponse(t *ent.Team, memberIDs []int) *models.TeamResponse {
	if memberIDs == nil {
		memberIDs = []int{}
	}
	return &models.TeamResponse{
		ID:               t.ID,
		Name:             t.Name,
		Description:      t.Description,
		Status:           t.Status.String(),
		AssignmentStatus: t.AssignmentStatus.String(),
		LeaderUserID:     t.LeaderUserID,
		MemberIDs:        memberIDs,
		CreatedAt:        t.CreatedAt.Format(time.RFC3339),
	}
}
