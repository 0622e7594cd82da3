package models

import "time"

// RegisterRequest represents an agent registration request
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2"`
	Phone    string `json:"phone,omitempty"`
	Region   string `json:"region,omitempty"` // ISO country code for phone normalization
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// UserInfo represents user information in responses
type UserInfo struct {
	ID               int    `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	Phone            string `json:"phone,omitempty"`
	Role             string `json:"role"`
	Status           string `json:"status"`
	AssignmentStatus string `json:"assignment_status"`
	PrimaryZoneID    *int   `json:"primary_zone_id,omitempty"`
	ZoneIDs          []int  `json:"zone_ids"`
}

// CreateZoneRequest represents a zone creation request
type CreateZoneRequest struct {
	Name        string      `json:"name" validate:"required,min=2,max=200"`
	Description string      `json:"description,omitempty"`
	Boundary    [][]float64 `json:"boundary,omitempty"`
}

// UpdateZoneRequest represents a zone update request
type UpdateZoneRequest struct {
	Name        *string      `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string      `json:"description,omitempty"`
	Boundary    *[][]float64 `json:"boundary,omitempty"`
}

// AssignZoneRequest represents an assignment request. Exactly one of AgentID
// and TeamID must be set. A future EffectiveFrom schedules the assignment
// instead of applying it immediately.
type AssignZoneRequest struct {
	AgentID       *int       `json:"agent_id,omitempty"`
	TeamID        *int       `json:"team_id,omitempty"`
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
}

// ZoneResponse represents a zone in API responses
type ZoneResponse struct {
	ID              int         `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description,omitempty"`
	Boundary        [][]float64 `json:"boundary,omitempty"`
	Status          string      `json:"status"`
	AssignedAgentID *int        `json:"assigned_agent_id,omitempty"`
	TeamID          *int        `json:"team_id,omitempty"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`
}

// AssignmentRecord represents one immediate assignment ledger row
type AssignmentRecord struct {
	ID            int    `json:"id"`
	ZoneID        int    `json:"zone_id"`
	AgentID       *int   `json:"agent_id,omitempty"`
	TeamID        *int   `json:"team_id,omitempty"`
	Status        string `json:"status"`
	EffectiveFrom string `json:"effective_from"`
	EffectiveTo   string `json:"effective_to,omitempty"`
}

// CreateTeamRequest represents a team creation request
type CreateTeamRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=200"`
	Description  string `json:"description,omitempty"`
	LeaderUserID int    `json:"leader_user_id" validate:"required,gt=0"`
	MemberIDs    []int  `json:"member_ids,omitempty"`
}

// AddTeamMemberRequest represents a roster addition request
type AddTeamMemberRequest struct {
	UserID int `json:"user_id" validate:"required,gt=0"`
}

// TeamResponse represents a team in API responses
type TeamResponse struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Status           string `json:"status"`
	AssignmentStatus string `json:"assignment_status"`
	LeaderUserID     int    `json:"leader_user_id"`
	MemberIDs        []int  `json:"member_ids"`
	CreatedAt        string `json:"created_at"`
}

// StatsResponse summarizes current system state for the admin dashboard
type StatsResponse struct {
	Zones            map[string]int `json:"zones"`
	ActiveAgents     int            `json:"active_agents"`
	ActiveTeams      int            `json:"active_teams"`
	PendingScheduled int            `json:"pending_scheduled"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
