package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knockbase/knockbase/config"
	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/pkg/api/errors"
	"github.com/knockbase/knockbase/pkg/audit"
	"github.com/knockbase/knockbase/pkg/auth"
	"github.com/knockbase/knockbase/pkg/models"
	"github.com/knockbase/knockbase/pkg/phone"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	db          *ent.Client
	config      *config.Config
	auditLogger *audit.Service
	validator   *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *ent.Client, cfg *config.Config, auditLogger *audit.Service) *AuthHandler {
	return &AuthHandler{
		db:          db,
		config:      cfg,
		auditLogger: auditLogger,
		validator:   validator.New(),
	}
}

// Register godoc
// @Summary Register a new agent
// @Description Create a new agent account with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 200 {object} models.AuthResponse "User registered successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	// Normalize phone to E.164 when provided
	var normalizedPhone string
	if req.Phone != "" {
		p, err := phone.NormalizePhone(req.Phone, req.Region)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_phone",
				Message: "Phone number could not be validated",
			})
		}
		normalizedPhone = p
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exists, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Exist(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	if exists {
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "user_exists",
			Message: "User with this email already exists",
		})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "password_hashing_error",
		})
	}

	create := h.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(hashedPassword).
		SetName(req.Name).
		SetRole(user.RoleAgent)
	if normalizedPhone != "" {
		create = create.SetPhone(normalizedPhone)
	}

	newUser, err := create.Save(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "user_creation_error",
		})
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogUserRegister(context.Background(), newUser.ID, ipAddress, userAgent)

	token, err := auth.GenerateJWT(newUser.ID, newUser.Email, newUser.Role.String(), h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "token_generation_error",
		})
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  toUserInfo(newUser),
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().
		Where(user.EmailEQ(req.Email), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	// Best effort, login must not fail on this
	_ = h.db.User.UpdateOneID(u.ID).SetLastLoginAt(time.Now()).Exec(ctx)

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogUserLogin(context.Background(), u.ID, ipAddress, userAgent)

	token, err := auth.GenerateJWT(u.ID, u.Email, u.Role.String(), h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "token_generation_error",
		})
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  toUserInfo(u),
	})
}

// Me godoc
// @Summary Get current user
// @Description Return the authenticated user's profile with derived status
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserInfo "Current user"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		return errors.NotFoundError(c, "user")
	}

	return c.JSON(http.StatusOK, toUserInfo(u))
}

func toUserInfo(u *ent.User) *models.UserInfo {
	info := &models.UserInfo{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Role:             u.Role.String(),
		Status:           u.Status.String(),
		AssignmentStatus: u.AssignmentStatus.String(),
		PrimaryZoneID:    u.PrimaryZoneID,
		ZoneIDs:          u.ZoneIds,
	}
	if u.Phone != nil {
		info.Phone = *u.Phone
	}
	if info.ZoneIDs == nil {
		info.ZoneIDs = []int{}
	}
	return info
}
