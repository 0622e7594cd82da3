package audit

import (
	"context"
	"strconv"
	"time"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/auditlog"
)

// Service handles audit logging
type Service struct {
	db *ent.Client
}

// NewService creates a new audit service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// LogEntry represents an audit log entry
type LogEntry struct {
	UserID       *int
	Action       auditlog.Action
	ResourceType *string
	ResourceID   *string
	IPAddress    *string
	UserAgent    *string
	Metadata     map[string]interface{}
	Severity     auditlog.Severity
	Description  *string
}

// Log creates a new audit log entry
func (s *Service) Log(ctx context.Context, entry LogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	create := s.db.AuditLog.Create().
		SetAction(entry.Action).
		SetSeverity(entry.Severity)

	if entry.UserID != nil {
		create = create.SetUserID(*entry.UserID)
	}
	if entry.ResourceType != nil {
		create = create.SetResourceType(*entry.ResourceType)
	}
	if entry.ResourceID != nil {
		create = create.SetResourceID(*entry.ResourceID)
	}
	if entry.IPAddress != nil {
		create = create.SetIPAddress(*entry.IPAddress)
	}
	if entry.UserAgent != nil {
		create = create.SetUserAgent(*entry.UserAgent)
	}
	if entry.Description != nil {
		create = create.SetDescription(*entry.Description)
	}
	if entry.Metadata != nil {
		create = create.SetMetadata(entry.Metadata)
	}

	_, err := create.Save(ctx)
	return err
}

// LogUserLogin logs a user login event
func (s *Service) LogUserLogin(ctx context.Context, userID int, ipAddress, userAgent string) error {
	desc := "User logged in successfully"
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionUserLogin,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogUserRegister logs a user registration event
func (s *Service) LogUserRegister(ctx context.Context, userID int, ipAddress, userAgent string) error {
	desc := "New user registered"
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionUserRegister,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogZoneAssignment logs a zone assignment to an agent or team. Scheduled
// assignments use ActionAssignmentScheduled instead of the assign actions.
func (s *Service) LogZoneAssignment(ctx context.Context, adminID, zoneID int, action auditlog.Action, metadata map[string]interface{}) error {
	desc := "Zone assignment changed"
	resourceType := "zone"
	resourceID := strconv.Itoa(zoneID)
	return s.Log(ctx, LogEntry{
		UserID:       &adminID,
		Action:       action,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		Metadata:     metadata,
		Severity:     auditlog.SeverityInfo,
		Description:  &desc,
	})
}

// LogZoneDelete logs a zone deletion
func (s *Service) LogZoneDelete(ctx context.Context, adminID, zoneID int) error {
	desc := "Zone deleted with all child data"
	resourceType := "zone"
	resourceID := strconv.Itoa(zoneID)
	return s.Log(ctx, LogEntry{
		UserID:       &adminID,
		Action:       auditlog.ActionZoneDelete,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		Severity:     auditlog.SeverityWarning,
		Description:  &desc,
	})
}

// LogTeamMemberChange logs a team roster change
func (s *Service) LogTeamMemberChange(ctx context.Context, adminID, teamID, agentID int, action auditlog.Action) error {
	desc := "Team roster changed"
	resourceType := "team"
	resourceID := strconv.Itoa(teamID)
	return s.Log(ctx, LogEntry{
		UserID:       &adminID,
		Action:       action,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		Metadata:     map[string]interface{}{"agent_id": agentID},
		Severity:     auditlog.SeverityInfo,
		Description:  &desc,
	})
}

// LogAssignmentActivated logs a sweeper activation. System action, no user.
func (s *Service) LogAssignmentActivated(ctx context.Context, zoneID int, metadata map[string]interface{}) error {
	desc := "Scheduled assignment activated"
	resourceType := "zone"
	resourceID := strconv.Itoa(zoneID)
	return s.Log(ctx, LogEntry{
		Action:       auditlog.ActionAssignmentActivated,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		Metadata:     metadata,
		Severity:     auditlog.SeverityInfo,
		Description:  &desc,
	})
}

// LogResyncRun logs a manual or scheduled consistency resync
func (s *Service) LogResyncRun(ctx context.Context, adminID *int, metadata map[string]interface{}) error {
	desc := "Consistency resync executed"
	return s.Log(ctx, LogEntry{
		UserID:      adminID,
		Action:      auditlog.ActionResyncRun,
		Metadata:    metadata,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// GetUserLogs retrieves audit logs for a specific user
func (s *Service) GetUserLogs(ctx context.Context, userID int, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.AuditLog.Query().
		Where(auditlog.UserIDEQ(userID)).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// GetRecentLogs retrieves recent audit logs (for admin)
func (s *Service) GetRecentLogs(ctx context.Context, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.AuditLog.Query().
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// GetLogsByAction retrieves logs filtered by action
func (s *Service) GetLogsByAction(ctx context.Context, action auditlog.Action, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.AuditLog.Query().
		Where(auditlog.ActionEQ(action)).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
