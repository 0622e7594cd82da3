// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/knockbase/knockbase/ent/activity"
	"github.com/knockbase/knockbase/ent/auditlog"
	"github.com/knockbase/knockbase/ent/lead"
	"github.com/knockbase/knockbase/ent/predicate"
	"github.com/knockbase/knockbase/ent/route"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/teammember"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
	"github.com/knockbase/knockbase/ent/zoneassignment"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdate) SetPasswordHash(v string) *UserUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePasswordHash(v *string) *UserUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *UserUpdate) SetPhone(v string) *UserUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePhone(v *string) *UserUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *UserUpdate) ClearPhone() *UserUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdate) SetRole(v user.Role) *UserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRole(v *user.Role) *UserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserUpdate) SetStatus(v user.Status) *UserUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserUpdate) SetNillableStatus(v *user.Status) *UserUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignmentStatus sets the "assignment_status" field.
func (_u *UserUpdate) SetAssignmentStatus(v user.AssignmentStatus) *UserUpdate {
	_u.mutation.SetAssignmentStatus(v)
	return _u
}

// SetNillableAssignmentStatus sets the "assignment_status" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAssignmentStatus(v *user.AssignmentStatus) *UserUpdate {
	if v != nil {
		_u.SetAssignmentStatus(*v)
	}
	return _u
}

// SetPrimaryZoneID sets the "primary_zone_id" field.
func (_u *UserUpdate) SetPrimaryZoneID(v int) *UserUpdate {
	_u.mutation.ResetPrimaryZoneID()
	_u.mutation.SetPrimaryZoneID(v)
	return _u
}

// SetNillablePrimaryZoneID sets the "primary_zone_id" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePrimaryZoneID(v *int) *UserUpdate {
	if v != nil {
		_u.SetPrimaryZoneID(*v)
	}
	return _u
}

// AddPrimaryZoneID adds value to the "primary_zone_id" field.
func (_u *UserUpdate) AddPrimaryZoneID(v int) *UserUpdate {
	_u.mutation.AddPrimaryZoneID(v)
	return _u
}

// ClearPrimaryZoneID clears the value of the "primary_zone_id" field.
func (_u *UserUpdate) ClearPrimaryZoneID() *UserUpdate {
	_u.mutation.ClearPrimaryZoneID()
	return _u
}

// SetZoneIds sets the "zone_ids" field.
func (_u *UserUpdate) SetZoneIds(v []int) *UserUpdate {
	_u.mutation.SetZoneIds(v)
	return _u
}

// AppendZoneIds appends value to the "zone_ids" field.
func (_u *UserUpdate) AppendZoneIds(v []int) *UserUpdate {
	_u.mutation.AppendZoneIds(v)
	return _u
}

// ClearZoneIds clears the value of the "zone_ids" field.
func (_u *UserUpdate) ClearZoneIds() *UserUpdate {
	_u.mutation.ClearZoneIds()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdate) SetLastLoginAt(v time.Time) *UserUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastLoginAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdate) ClearLastLoginAt() *UserUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *UserUpdate) SetDeletedAt(v time.Time) *UserUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDeletedAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *UserUpdate) ClearDeletedAt() *UserUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddTeamsCreatedIDs adds the "teams_created" edge to the Team entity by IDs.
func (_u *UserUpdate) AddTeamsCreatedIDs(ids ...int) *UserUpdate {
	_u.mutation.AddTeamsCreatedIDs(ids...)
	return _u
}

// AddTeamsCreated adds the "teams_created" edges to the Team entity.
func (_u *UserUpdate) AddTeamsCreated(v ...*Team) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTeamsCreatedIDs(ids...)
}

// AddTeamsLedIDs adds the "teams_led" edge to the Team entity by IDs.
func (_u *UserUpdate) AddTeamsLedIDs(ids ...int) *UserUpdate {
	_u.mutation.AddTeamsLedIDs(ids...)
	return _u
}

// AddTeamsLed adds the "teams_led" edges to the Team entity.
func (_u *UserUpdate) AddTeamsLed(v ...*Team) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTeamsLedIDs(ids...)
}

// AddTeamMembershipIDs adds the "team_memberships" edge to the TeamMember entity by IDs.
func (_u *UserUpdate) AddTeamMembershipIDs(ids ...int) *UserUpdate {
	_u.mutation.AddTeamMembershipIDs(ids...)
	return _u
}

// AddTeamMemberships adds the "team_memberships" edges to the TeamMember entity.
func (_u *UserUpdate) AddTeamMemberships(v ...*TeamMember) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTeamMembershipIDs(ids...)
}

// AddTeamMembersAddedIDs adds the "team_members_added" edge to the TeamMember entity by IDs.
func (_u *UserUpdate) AddTeamMembersAddedIDs(ids ...int) *UserUpdate {
	_u.mutation.AddTeamMembersAddedIDs(ids...)
	return _u
}

// AddTeamMembersAdded adds the "team_members_added" edges to the TeamMember entity.
func (_u *UserUpdate) AddTeamMembersAdded(v ...*TeamMember) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTeamMembersAddedIDs(ids...)
}

// AddZonesCreatedIDs adds the "zones_created" edge to the Zone entity by IDs.
func (_u *UserUpdate) AddZonesCreatedIDs(ids ...int) *UserUpdate {
	_u.mutation.AddZonesCreatedIDs(ids...)
	return _u
}

// AddZonesCreated adds the "zones_created" edges to the Zone entity.
func (_u *UserUpdate) AddZonesCreated(v ...*Zone) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddZonesCreatedIDs(ids...)
}

// AddZonesAssignedIDs adds the "zones_assigned" edge to the Zone entity by IDs.
func (_u *UserUpdate) AddZonesAssignedIDs(ids ...int) *UserUpdate {
	_u.mutation.AddZonesAssignedIDs(ids...)
	return _u
}

// AddZonesAssigned adds the "zones_assigned" edges to the Zone entity.
func (_u *UserUpdate) AddZonesAssigned(v ...*Zone) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddZonesAssignedIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the ZoneAssignment entity by IDs.
func (_u *UserUpdate) AddAssignmentIDs(ids ...int) *UserUpdate {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the ZoneAssignment entity.
func (_u *UserUpdate) AddAssignments(v ...*ZoneAssignment) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddAssignmentsMadeIDs adds the "assignments_made" edge to the ZoneAssignment entity by IDs.
func (_u *UserUpdate) AddAssignmentsMadeIDs(ids ...int) *UserUpdate {
	_u.mutation.AddAssignmentsMadeIDs(ids...)
	return _u
}

// AddAssignmentsMade adds the "assignments_made" edges to the ZoneAssignment entity.
func (_u *UserUpdate) AddAssignmentsMade(v ...*ZoneAssignment) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentsMadeIDs(ids...)
}

// AddScheduledAssignmentIDs adds the "scheduled_assignments" edge to the ScheduledAssignment entity by IDs.
func (_u *UserUpdate) AddScheduledAssignmentIDs(ids ...int) *UserUpdate {
	_u.mutation.AddScheduledAssignmentIDs(ids...)
	return _u
}

// AddScheduledAssignments adds the "scheduled_assignments" edges to the ScheduledAssignment entity.
func (_u *UserUpdate) AddScheduledAssignments(v ...*ScheduledAssignment) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledAssignmentIDs(ids...)
}

// AddScheduledAssignmentsMadeIDs adds the "scheduled_assignments_made" edge to the ScheduledAssignment entity by IDs.
func (_u *UserUpdate) AddScheduledAssignmentsMadeIDs(ids ...int) *UserUpdate {
	_u.mutation.AddScheduledAssignmentsMadeIDs(ids...)
	return _u
}

// AddScheduledAssignmentsMade adds the "scheduled_assignments_made" edges to the ScheduledAssignment entity.
func (_u *UserUpdate) AddScheduledAssignmentsMade(v ...*ScheduledAssignment) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledAssignmentsMadeIDs(ids...)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *UserUpdate) AddLeadIDs(ids ...int) *UserUpdate {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *UserUpdate) AddLeads(v ...*Lead) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *UserUpdate) AddActivityIDs(ids ...int) *UserUpdate {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *UserUpdate) AddActivities(v ...*Activity) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// AddRouteIDs adds the "routes" edge to the Route entity by IDs.
func (_u *UserUpdate) AddRouteIDs(ids ...int) *UserUpdate {
	_u.mutation.AddRouteIDs(ids...)
	return _u
}

// AddRoutes adds the "routes" edges to the Route entity.
func (_u *UserUpdate) AddRoutes(v ...*Route) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRouteIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *UserUpdate) AddAuditLogIDs(ids ...int) *UserUpdate {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *UserUpdate) AddAuditLogs(v ...*AuditLog) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearTeamsCreated clears all "teams_created" edges to the Team entity.
func (_u *UserUpdate) ClearTeamsCreated() *UserUpdate {
	_u.mutation.ClearTeamsCreated()
	return _u
}

// RemoveTeamsCreatedIDs removes the "teams_created" edge to Team entities by IDs.
func (_u *UserUpdate) RemoveTeamsCreatedIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveTeamsCreatedIDs(ids...)
	return _u
}

// RemoveTeamsCreated removes "teams_created" edges to Team entities.
func (_u *UserUpdate) RemoveTeamsCreated(v ...*Team) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTeamsCreatedIDs(ids...)
}

// ClearTeamsLed clears all "teams_led" edges to the Team entity.
func (_u *UserUpdate) ClearTeamsLed() *UserUpdate {
	_u.mutation.ClearTeamsLed()
	return _u
}

// RemoveTeamsLedIDs removes the "teams_led" edge to Team entities by IDs.
func (_u *UserUpdate) RemoveTeamsLedIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveTeamsLedIDs(ids...)
	return _u
}

// RemoveTeamsLed removes "teams_led" edges to Team entities.
func (_u *UserUpdate) RemoveTeamsLed(v ...*Team) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTeamsLedIDs(ids...)
}

// ClearTeamMemberships clears all "team_memberships" edges to the TeamMember entity.
func (_u *UserUpdate) ClearTeamMemberships() *UserUpdate {
	_u.mutation.ClearTeamMemberships()
	return _u
}

// RemoveTeamMembershipIDs removes the "team_memberships" edge to TeamMember entities by IDs.
func (_u *UserUpdate) RemoveTeamMembershipIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveTeamMembershipIDs(ids...)
	return _u
}

// RemoveTeamMemberships removes "team_memberships" edges to TeamMember entities.
func (_u *UserUpdate) RemoveTeamMemberships(v ...*TeamMember) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTeamMembershipIDs(ids...)
}

// ClearTeamMembersAdded clears all "team_members_added" edges to the TeamMember entity.
func (_u *UserUpdate) ClearTeamMembersAdded() *UserUpdate {
	_u.mutation.ClearTeamMembersAdded()
	return _u
}

// RemoveTeamMembersAddedIDs removes the "team_members_added" edge to TeamMember entities by IDs.
func (_u *UserUpdate) RemoveTeamMembersAddedIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveTeamMembersAddedIDs(ids...)
	return _u
}

// RemoveTeamMembersAdded removes "team_members_added" edges to TeamMember entities.
func (_u *UserUpdate) RemoveTeamMembersAdded(v ...*TeamMember) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTeamMembersAddedIDs(ids...)
}

// ClearZonesCreated clears all "zones_created" edges to the Zone entity.
func (_u *UserUpdate) ClearZonesCreated() *UserUpdate {
	_u.mutation.ClearZonesCreated()
	return _u
}

// RemoveZonesCreatedIDs removes the "zones_created" edge to Zone entities by IDs.
func (_u *UserUpdate) RemoveZonesCreatedIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveZonesCreatedIDs(ids...)
	return _u
}

// RemoveZonesCreated removes "zones_created" edges to Zone entities.
func (_u *UserUpdate) RemoveZonesCreated(v ...*Zone) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveZonesCreatedIDs(ids...)
}

// ClearZonesAssigned clears all "zones_assigned" edges to the Zone entity.
func (_u *UserUpdate) ClearZonesAssigned() *UserUpdate {
	_u.mutation.ClearZonesAssigned()
	return _u
}

// RemoveZonesAssignedIDs removes the "zones_assigned" edge to Zone entities by IDs.
func (_u *UserUpdate) RemoveZonesAssignedIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveZonesAssignedIDs(ids...)
	return _u
}

// RemoveZonesAssigned removes "zones_assigned" edges to Zone entities.
func (_u *UserUpdate) RemoveZonesAssigned(v ...*Zone) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveZonesAssignedIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the ZoneAssignment entity.
func (_u *UserUpdate) ClearAssignments() *UserUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to ZoneAssignment entities by IDs.
func (_u *UserUpdate) RemoveAssignmentIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to ZoneAssignment entities.
func (_u *UserUpdate) RemoveAssignments(v ...*ZoneAssignment) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearAssignmentsMade clears all "assignments_made" edges to the ZoneAssignment entity.
func (_u *UserUpdate) ClearAssignmentsMade() *UserUpdate {
	_u.mutation.ClearAssignmentsMade()
	return _u
}

// RemoveAssignmentsMadeIDs removes the "assignments_made" edge to ZoneAssignment entities by IDs.
func (_u *UserUpdate) RemoveAssignmentsMadeIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveAssignmentsMadeIDs(ids...)
	return _u
}

// RemoveAssignmentsMade removes "assignments_made" edges to ZoneAssignment entities.
func (_u *UserUpdate) RemoveAssignmentsMade(v ...*ZoneAssignment) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentsMadeIDs(ids...)
}

// ClearScheduledAssignments clears all "scheduled_assignments" edges to the ScheduledAssignment entity.
func (_u *UserUpdate) ClearScheduledAssignments() *UserUpdate {
	_u.mutation.ClearScheduledAssignments()
	return _u
}

// RemoveScheduledAssignmentIDs removes the "scheduled_assignments" edge to ScheduledAssignment entities by IDs.
func (_u *UserUpdate) RemoveScheduledAssignmentIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveScheduledAssignmentIDs(ids...)
	return _u
}

// RemoveScheduledAssignments removes "scheduled_assignments" edges to ScheduledAssignment entities.
func (_u *UserUpdate) RemoveScheduledAssignments(v ...*ScheduledAssignment) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledAssignmentIDs(ids...)
}

// ClearScheduledAssignmentsMade clears all "scheduled_assignments_made" edges to the ScheduledAssignment entity.
func (_u *UserUpdate) ClearScheduledAssignmentsMade() *UserUpdate {
	_u.mutation.ClearScheduledAssignmentsMade()
	return _u
}

// RemoveScheduledAssignmentsMadeIDs removes the "scheduled_assignments_made" edge to ScheduledAssignment entities by IDs.
func (_u *UserUpdate) RemoveScheduledAssignmentsMadeIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveScheduledAssignmentsMadeIDs(ids...)
	return _u
}

// RemoveScheduledAssignmentsMade removes "scheduled_assignments_made" edges to ScheduledAssignment entities.
func (_u *UserUpdate) RemoveScheduledAssignmentsMade(v ...*ScheduledAssignment) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledAssignmentsMadeIDs(ids...)
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *UserUpdate) ClearLeads() *UserUpdate {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *UserUpdate) RemoveLeadIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *UserUpdate) RemoveLeads(v ...*Lead) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *UserUpdate) ClearActivities() *UserUpdate {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *UserUpdate) RemoveActivityIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *UserUpdate) RemoveActivities(v ...*Activity) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// ClearRoutes clears all "routes" edges to the Route entity.
func (_u *UserUpdate) ClearRoutes() *UserUpdate {
	_u.mutation.ClearRoutes()
	return _u
}

// RemoveRouteIDs removes the "routes" edge to Route entities by IDs.
func (_u *UserUpdate) RemoveRouteIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveRouteIDs(ids...)
	return _u
}

// RemoveRoutes removes "routes" edges to Route entities.
func (_u *UserUpdate) RemoveRoutes(v ...*Route) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRouteIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *UserUpdate) ClearAuditLogs() *UserUpdate {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *UserUpdate) RemoveAuditLogIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *UserUpdate) RemoveAuditLogs(v ...*AuditLog) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := user.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "User.password_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := user.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "User.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentStatus(); ok {
		if err := user.AssignmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "assignment_status", err: fmt.Errorf(`ent: validator failed for field "User.assignment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(user.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(user.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(user.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignmentStatus(); ok {
		_spec.SetField(user.FieldAssignmentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PrimaryZoneID(); ok {
		_spec.SetField(user.FieldPrimaryZoneID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrimaryZoneID(); ok {
		_spec.AddField(user.FieldPrimaryZoneID, field.TypeInt, value)
	}
	if _u.mutation.PrimaryZoneIDCleared() {
		_spec.ClearField(user.FieldPrimaryZoneID, field.TypeInt)
	}
	if value, ok := _u.mutation.ZoneIds(); ok {
		_spec.SetField(user.FieldZoneIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedZoneIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldZoneIds, value)
		})
	}
	if _u.mutation.ZoneIdsCleared() {
		_spec.ClearField(user.FieldZoneIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(user.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(user.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.TeamsCreatedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamsCreatedTable,
			Columns: []string{user.TeamsCreatedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTeamsCreatedIDs(); len(nodes) > 0 && !_u.mutation.TeamsCreatedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamsCreatedTable,
			Columns: []string{user.TeamsCreatedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamsCreatedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamsCreatedTable,
			Columns: []string{user.TeamsCreatedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamsLedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamsLedTable,
			Columns: []string{user.TeamsLedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTeamsLedIDs(); len(nodes) > 0 && !_u.mutation.TeamsLedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamsLedTable,
			Columns: []string{user.TeamsLedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamsLedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamsLedTable,
			Columns: []string{user.TeamsLedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamMembershipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamMembershipsTable,
			Columns: []string{user.TeamMembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teammember.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTeamMembershipsIDs(); len(nodes) > 0 && !_u.mutation.TeamMembershipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamMembershipsTable,
			Columns: []string{user.TeamMembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teammember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamMembershipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamMembershipsTable,
			Columns: []string{user.TeamMembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teammember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamMembersAddedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamMembersAddedTable,
			Columns: []string{user.TeamMembersAddedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teammember.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTeamMembersAddedIDs(); len(nodes) > 0 && !_u.mutation.TeamMembersAddedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamMembersAddedTable,
			Columns: []string{user.TeamMembersAddedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teammember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamMembersAddedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamMembersAddedTable,
			Columns: []string{user.TeamMembersAddedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teammember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ZonesCreatedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ZonesCreatedTable,
			Columns: []string{user.ZonesCreatedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedZonesCreatedIDs(); len(nodes) > 0 && !_u.mutation.ZonesCreatedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ZonesCreatedTable,
			Columns: []string{user.ZonesCreatedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ZonesCreatedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ZonesCreatedTable,
			Columns: []string{user.ZonesCreatedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ZonesAssignedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ZonesAssignedTable,
			Columns: []string{user.ZonesAssignedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedZonesAssignedIDs(); len(nodes) > 0 && !_u.mutation.ZonesAssignedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ZonesAssignedTable,
			Columns: []string{user.ZonesAssignedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ZonesAssignedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ZonesAssignedTable,
			Columns: []string{user.ZonesAssignedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignmentsTable,
			Columns: []string{user.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignmentsTable,
			Columns: []string{user.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignmentsTable,
			Columns: []string{user.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsMadeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignmentsMadeTable,
			Columns: []string{user.AssignmentsMadeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsMadeIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsMadeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignmentsMadeTable,
			Columns: []string{user.AssignmentsMadeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsMadeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignmentsMadeTable,
			Columns: []string{user.AssignmentsMadeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScheduledAssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ScheduledAssignmentsTable,
			Columns: []string{user.ScheduledAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.ScheduledAssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ScheduledAssignmentsTable,
			Columns: []string{user.ScheduledAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledAssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ScheduledAssignmentsTable,
			Columns: []string{user.ScheduledAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScheduledAssignmentsMadeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ScheduledAssignmentsMadeTable,
			Columns: []string{user.ScheduledAssignmentsMadeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledAssignmentsMadeIDs(); len(nodes) > 0 && !_u.mutation.ScheduledAssignmentsMadeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ScheduledAssignmentsMadeTable,
			Columns: []string{user.ScheduledAssignmentsMadeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledAssignmentsMadeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ScheduledAssignmentsMadeTable,
			Columns: []string{user.ScheduledAssignmentsMadeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LeadsTable,
			Columns: []string{user.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LeadsTable,
			Columns: []string{user.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LeadsTable,
			Columns: []string{user.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ActivitiesTable,
			Columns: []string{user.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ActivitiesTable,
			Columns: []string{user.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ActivitiesTable,
			Columns: []string{user.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoutesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.RoutesTable,
			Columns: []string{user.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoutesIDs(); len(nodes) > 0 && !_u.mutation.RoutesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.RoutesTable,
			Columns: []string{user.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoutesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.RoutesTable,
			Columns: []string{user.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AuditLogsTable,
			Columns: []string{user.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AuditLogsTable,
			Columns: []string{user.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AuditLogsTable,
			Columns: []string{user.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdateOne) SetPasswordHash(v string) *UserUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePasswordHash(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *UserUpdateOne) SetPhone(v string) *UserUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePhone(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *UserUpdateOne) ClearPhone() *UserUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdateOne) SetRole(v user.Role) *UserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRole(v *user.Role) *UserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserUpdateOne) SetStatus(v user.Status) *UserUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableStatus(v *user.Status) *UserUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignmentStatus sets the "assignment_status" field.
func (_u *UserUpdateOne) SetAssignmentStatus(v user.AssignmentStatus) *UserUpdateOne {
	_u.mutation.SetAssignmentStatus(v)
	return _u
}

// SetNillableAssignmentStatus sets the "assignment_status" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAssignmentStatus(v *user.AssignmentStatus) *UserUpdateOne {
	if v != nil {
		_u.SetAssignmentStatus(*v)
	}
	return _u
}

// SetPrimaryZoneID sets the "primary_zone_id" field.
func (_u *UserUpdateOne) SetPrimaryZoneID(v int) *UserUpdateOne {
	_u.mutation.ResetPrimaryZoneID()
	_u.mutation.SetPrimaryZoneID(v)
	return _u
}

// SetNillablePrimaryZoneID sets the "primary_zone_id" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePrimaryZoneID(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetPrimaryZoneID(*v)
	}
	return _u
}

// AddPrimaryZoneID adds value to the "primary_zone_id" field.
func (_u *UserUpdateOne) AddPrimaryZoneID(v int) *UserUpdateOne {
	_u.mutation.AddPrimaryZoneID(v)
	return _u
}

// ClearPrimaryZoneID clears the value of the "primary_zone_id" field.
func (_u *UserUpdateOne) ClearPrimaryZoneID() *UserUpdateOne {
	_u.mutation.ClearPrimaryZoneID()
	return _u
}

// SetZoneIds sets the "zone_ids" field.
func (_u *UserUpdateOne) SetZoneIds(v []int) *UserUpdateOne {
	_u.mutation.SetZoneIds(v)
	return _u
}

// AppendZoneIds appends value to the "zone_ids" field.
func (_u *UserUpdateOne) AppendZoneIds(v []int) *UserUpdateOne {
	_u.mutation.AppendZoneIds(v)
	return _u
}

// ClearZoneIds clears the value of the "zone_ids" field.
func (_u *UserUpdateOne) ClearZoneIds() *UserUpdateOne {
	_u.mutation.ClearZoneIds()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdateOne) SetLastLoginAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastLoginAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdateOne) ClearLastLoginAt() *UserUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *UserUpdateOne) SetDeletedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDeletedAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *UserUpdateOne) ClearDeletedAt() *UserUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddTeamsCreatedIDs adds the "teams_created" edge to the Team entity by IDs.
func (_u *UserUpdateOne) AddTeamsCreatedIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddTeamsCreatedIDs(ids...)
	return _u
}

// AddTeamsCreated adds the "teams_created" edges to the Team entity.
func (_u *UserUpdateOne) AddTeamsCreated(v ...*Team) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTeamsCreatedIDs(ids...)
}

// AddTeamsLedIDs adds the "teams_led" edge to the Team entity by IDs.
func (_u *UserUpdateOne) AddTeamsLedIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddTeamsLedIDs(ids...)
	return _u
}

// AddTeamsLed adds the "teams_led" edges to the Team entity.
func (_u *UserUpdateOne) AddTeamsLed(v ...*Team) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTeamsLedIDs(ids...)
}

// AddTeamMembershipIDs adds the "team_memberships" edge to the TeamMember entity by IDs.
func (_u *UserUpdateOne) AddTeamMembershipIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddTeamMembershipIDs(ids...)
	return _u
}

// AddTeamMemberships adds the "team_memberships" edges to the TeamMember entity.
func (_u *UserUpdateOne) AddTeamMemberships(v ...*TeamMember) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTeamMembershipIDs(ids...)
}

// AddTeamMembersAddedIDs adds the "team_members_added" edge to the TeamMember entity by IDs.
func (_u *UserUpdateOne) AddTeamMembersAddedIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddTeamMembersAddedIDs(ids...)
	return _u
}

// AddTeamMembersAdded adds the "team_members_added" edges to the TeamMember entity.
func (_u *UserUpdateOne) AddTeamMembersAdded(v ...*TeamMember) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTeamMembersAddedIDs(ids...)
}

// AddZonesCreatedIDs adds the "zones_created" edge to the Zone entity by IDs.
func (_u *UserUpdateOne) AddZonesCreatedIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddZonesCreatedIDs(ids...)
	return _u
}

// AddZonesCreated adds the "zones_created" edges to the Zone entity.
func (_u *UserUpdateOne) AddZonesCreated(v ...*Zone) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddZonesCreatedIDs(ids...)
}

// AddZonesAssignedIDs adds the "zones_assigned" edge to the Zone entity by IDs.
func (_u *UserUpdateOne) AddZonesAssignedIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddZonesAssignedIDs(ids...)
	return _u
}

// AddZonesAssigned adds the "zones_assigned" edges to the Zone entity.
func (_u *UserUpdateOne) AddZonesAssigned(v ...*Zone) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddZonesAssignedIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the ZoneAssignment entity by IDs.
func (_u *UserUpdateOne) AddAssignmentIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the ZoneAssignment entity.
func (_u *UserUpdateOne) AddAssignments(v ...*ZoneAssignment) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddAssignmentsMadeIDs adds the "assignments_made" edge to the ZoneAssignment entity by IDs.
func (_u *UserUpdateOne) AddAssignmentsMadeIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddAssignmentsMadeIDs(ids...)
	return _u
}

// AddAssignmentsMade adds the "assignments_made" edges to the ZoneAssignment entity.
func (_u *UserUpdateOne) AddAssignmentsMade(v ...*ZoneAssignment) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentsMadeIDs(ids...)
}

// AddScheduledAssignmentIDs adds the "scheduled_assignments" edge to the ScheduledAssignment entity by IDs.
func (_u *UserUpdateOne) AddScheduledAssignmentIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddScheduledAssignmentIDs(ids...)
	return _u
}

// AddScheduledAssignments adds the "scheduled_assignments" edges to the ScheduledAssignment entity.
func (_u *UserUpdateOne) AddScheduledAssignments(v ...*ScheduledAssignment) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledAssignmentIDs(ids...)
}

// AddScheduledAssignmentsMadeIDs adds the "scheduled_assignments_made" edge to the ScheduledAssignment entity by IDs.
func (_u *UserUpdateOne) AddScheduledAssignmentsMadeIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddScheduledAssignmentsMadeIDs(ids...)
	return _u
}

// AddScheduledAssignmentsMade adds the "scheduled_assignments_made" edges to the ScheduledAssignment entity.
func (_u *UserUpdateOne) AddScheduledAssignmentsMade(v ...*ScheduledAssignment) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledAssignmentsMadeIDs(ids...)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *UserUpdateOne) AddLeadIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *UserUpdateOne) AddLeads(v ...*Lead) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *UserUpdateOne) AddActivityIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *UserUpdateOne) AddActivities(v ...*Activity) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// AddRouteIDs adds the "routes" edge to the Route entity by IDs.
func (_u *UserUpdateOne) AddRouteIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddRouteIDs(ids...)
	return _u
}

// AddRoutes adds the "routes" edges to the Route entity.
func (_u *UserUpdateOne) AddRoutes(v ...*Route) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRouteIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *UserUpdateOne) AddAuditLogIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *UserUpdateOne) AddAuditLogs(v ...*AuditLog) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearTeamsCreated clears all "teams_created" edges to the Team entity.
func (_u *UserUpdateOne) ClearTeamsCreated() *UserUpdateOne {
	_u.mutation.ClearTeamsCreated()
	return _u
}

// RemoveTeamsCreatedIDs removes the "teams_created" edge to Team entities by IDs.
func (_u *UserUpdateOne) RemoveTeamsCreatedIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveTeamsCreatedIDs(ids...)
	return _u
}

// RemoveTeamsCreated removes "teams_created" edges to Team entities.
func (_u *UserUpdateOne) RemoveTeamsCreated(v ...*Team) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTeamsCreatedIDs(ids...)
}

// ClearTeamsLed clears all "teams_led" edges to the Team entity.
func (_u *UserUpdateOne) ClearTeamsLed() *UserUpdateOne {
	_u.mutation.ClearTeamsLed()
	return _u
}

// RemoveTeamsLedIDs removes the "teams_led" edge to Team entities by IDs.
func (_u *UserUpdateOne) RemoveTeamsLedIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveTeamsLedIDs(ids...)
	return _u
}

// RemoveTeamsLed removes "teams_led" edges to Team entities.
func (_u *UserUpdateOne) RemoveTeamsLed(v ...*Team) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTeamsLedIDs(ids...)
}

// ClearTeamMemberships clears all "team_memberships" edges to the TeamMember entity.
func (_u *UserUpdateOne) ClearTeamMemberships() *UserUpdateOne {
	_u.mutation.ClearTeamMemberships()
	return _u
}

// RemoveTeamMembershipIDs removes the "team_memberships" edge to TeamMember entities by IDs.
func (_u *UserUpdateOne) RemoveTeamMembershipIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveTeamMembershipIDs(ids...)
	return _u
}

// RemoveTeamMemberships removes "team_memberships" edges to TeamMember entities.
func (_u *UserUpdateOne) RemoveTeamMemberships(v ...*TeamMember) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTeamMembershipIDs(ids...)
}

// ClearTeamMembersAdded clears all "team_members_added" edges to the TeamMember entity.
func (_u *UserUpdateOne) ClearTeamMembersAdded() *UserUpdateOne {
	_u.mutation.ClearTeamMembersAdded()
	return _u
}

// RemoveTeamMembersAddedIDs removes the "team_members_added" edge to TeamMember entities by IDs.
func (_u *UserUpdateOne) RemoveTeamMembersAddedIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveTeamMembersAddedIDs(ids...)
	return _u
}

// RemoveTeamMembersAdded removes "team_members_added" edges to TeamMember entities.
func (_u *UserUpdateOne) RemoveTeamMembersAdded(v ...*TeamMember) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTeamMembersAddedIDs(ids...)
}

// ClearZonesCreated clears all "zones_created" edges to the Zone entity.
func (_u *UserUpdateOne) ClearZonesCreated() *UserUpdateOne {
	_u.mutation.ClearZonesCreated()
	return _u
}

// RemoveZonesCreatedIDs removes the "zones_created" edge to Zone entities by IDs.
func (_u *UserUpdateOne) RemoveZonesCreatedIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveZonesCreatedIDs(ids...)
	return _u
}

// RemoveZonesCreated removes "zones_created" edges to Zone entities.
func (_u *UserUpdateOne) RemoveZonesCreated(v ...*Zone) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveZonesCreatedIDs(ids...)
}

// ClearZonesAssigned clears all "zones_assigned" edges to the Zone entity.
func (_u *UserUpdateOne) ClearZonesAssigned() *UserUpdateOne {
	_u.mutation.ClearZonesAssigned()
	return _u
}

// RemoveZonesAssignedIDs removes the "zones_assigned" edge to Zone entities by IDs.
func (_u *UserUpdateOne) RemoveZonesAssignedIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveZonesAssignedIDs(ids...)
	return _u
}

// RemoveZonesAssigned removes "zones_assigned" edges to Zone entities.
func (_u *UserUpdateOne) RemoveZonesAssigned(v ...*Zone) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveZonesAssignedIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the ZoneAssignment entity.
func (_u *UserUpdateOne) ClearAssignments() *UserUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to ZoneAssignment entities by IDs.
func (_u *UserUpdateOne) RemoveAssignmentIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to ZoneAssignment entities.
func (_u *UserUpdateOne) RemoveAssignments(v ...*ZoneAssignment) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearAssignmentsMade clears all "assignments_made" edges to the ZoneAssignment entity.
func (_u *UserUpdateOne) ClearAssignmentsMade() *UserUpdateOne {
	_u.mutation.ClearAssignmentsMade()
	return _u
}

// RemoveAssignmentsMadeIDs removes the "assignments_made" edge to ZoneAssignment entities by IDs.
func (_u *UserUpdateOne) RemoveAssignmentsMadeIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveAssignmentsMadeIDs(ids...)
	return _u
}

// RemoveAssignmentsMade removes "assignments_made" edges to ZoneAssignment entities.
func (_u *UserUpdateOne) RemoveAssignmentsMade(v ...*ZoneAssignment) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentsMadeIDs(ids...)
}

// ClearScheduledAssignments clears all "scheduled_assignments" edges to the ScheduledAssignment entity.
func (_u *UserUpdateOne) ClearScheduledAssignments() *UserUpdateOne {
	_u.mutation.ClearScheduledAssignments()
	return _u
}

// RemoveScheduledAssignmentIDs removes the "scheduled_assignments" edge to ScheduledAssignment entities by IDs.
func (_u *UserUpdateOne) RemoveScheduledAssignmentIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveScheduledAssignmentIDs(ids...)
	return _u
}

// RemoveScheduledAssignments removes "scheduled_assignments" edges to ScheduledAssignment entities.
func (_u *UserUpdateOne) RemoveScheduledAssignments(v ...*ScheduledAssignment) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledAssignmentIDs(ids...)
}

// ClearScheduledAssignmentsMade clears all "scheduled_assignments_made" edges to the ScheduledAssignment entity.
func (_u *UserUpdateOne) ClearScheduledAssignmentsMade() *UserUpdateOne {
	_u.mutation.ClearScheduledAssignmentsMade()
	return _u
}

// RemoveScheduledAssignmentsMadeIDs removes the "scheduled_assignments_made" edge to ScheduledAssignment entities by IDs.
func (_u *UserUpdateOne) RemoveScheduledAssignmentsMadeIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveScheduledAssignmentsMadeIDs(ids...)
	return _u
}

// RemoveScheduledAssignmentsMade removes "scheduled_assignments_made" edges to ScheduledAssignment entities.
func (_u *UserUpdateOne) RemoveScheduledAssignmentsMade(v ...*ScheduledAssignment) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledAssignmentsMadeIDs(ids...)
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *UserUpdateOne) ClearLeads() *UserUpdateOne {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *UserUpdateOne) RemoveLeadIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *UserUpdateOne) RemoveLeads(v ...*Lead) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *UserUpdateOne) ClearActivities() *UserUpdateOne {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *UserUpdateOne) RemoveActivityIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *UserUpdateOne) RemoveActivities(v ...*Activity) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// ClearRoutes clears all "routes" edges to the Route entity.
func (_u *UserUpdateOne) ClearRoutes() *UserUpdateOne {
	_u.mutation.ClearRoutes()
	return _u
}

// RemoveRouteIDs removes the "routes" edge to Route entities by IDs.
func (_u *UserUpdateOne) RemoveRouteIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveRouteIDs(ids...)
	return _u
}

// RemoveRoutes removes "routes" edges to Route entities.
func (_u *UserUpdateOne) RemoveRoutes(v ...*Route) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRouteIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *UserUpdateOne) ClearAuditLogs() *UserUpdateOne {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *UserUpdateOne) RemoveAuditLogIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *UserUpdateOne) RemoveAuditLogs(v ...*AuditLog) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := user.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "User.password_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := user.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "User.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentStatus(); ok {
		if err := user.AssignmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "assignment_status", err: fmt.Errorf(`ent: validator failed for field "User.assignment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(user.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(user.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(user.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignmentStatus(); ok {
		_spec.SetField(user.FieldAssignmentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PrimaryZoneID(); ok {
		_spec.SetField(user.FieldPrimaryZoneID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrimaryZoneID(); ok {
		_spec.AddField(user.FieldPrimaryZoneID, field.TypeInt, value)
	}
	if _u.mutation.PrimaryZoneIDCleared() {
		_spec.ClearField(user.FieldPrimaryZoneID, field.TypeInt)
	}
	if value, ok := _u.mutation.ZoneIds(); ok {
		_spec.SetField(user.FieldZoneIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedZoneIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldZoneIds, value)
		})
	}
	if _u.mutation.ZoneIdsCleared() {
		_spec.ClearField(user.FieldZoneIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(user.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(user.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.TeamsCreatedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamsCreatedTable,
			Columns: []string{user.TeamsCreatedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTeamsCreatedIDs(); len(nodes) > 0 && !_u.mutation.TeamsCreatedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamsCreatedTable,
			Columns: []string{user.TeamsCreatedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamsCreatedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamsCreatedTable,
			Columns: []string{user.TeamsCreatedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamsLedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamsLedTable,
			Columns: []string{user.TeamsLedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTeamsLedIDs(); len(nodes) > 0 && !_u.mutation.TeamsLedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamsLedTable,
			Columns: []string{user.TeamsLedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamsLedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamsLedTable,
			Columns: []string{user.TeamsLedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamMembershipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamMembershipsTable,
			Columns: []string{user.TeamMembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teammember.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTeamMembershipsIDs(); len(nodes) > 0 && !_u.mutation.TeamMembershipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamMembershipsTable,
			Columns: []string{user.TeamMembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teammember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamMembershipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamMembershipsTable,
			Columns: []string{user.TeamMembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teammember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamMembersAddedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamMembersAddedTable,
			Columns: []string{user.TeamMembersAddedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teammember.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTeamMembersAddedIDs(); len(nodes) > 0 && !_u.mutation.TeamMembersAddedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamMembersAddedTable,
			Columns: []string{user.TeamMembersAddedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teammember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamMembersAddedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TeamMembersAddedTable,
			Columns: []string{user.TeamMembersAddedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teammember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ZonesCreatedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ZonesCreatedTable,
			Columns: []string{user.ZonesCreatedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedZonesCreatedIDs(); len(nodes) > 0 && !_u.mutation.ZonesCreatedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ZonesCreatedTable,
			Columns: []string{user.ZonesCreatedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ZonesCreatedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ZonesCreatedTable,
			Columns: []string{user.ZonesCreatedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ZonesAssignedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ZonesAssignedTable,
			Columns: []string{user.ZonesAssignedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedZonesAssignedIDs(); len(nodes) > 0 && !_u.mutation.ZonesAssignedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ZonesAssignedTable,
			Columns: []string{user.ZonesAssignedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ZonesAssignedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ZonesAssignedTable,
			Columns: []string{user.ZonesAssignedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignmentsTable,
			Columns: []string{user.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignmentsTable,
			Columns: []string{user.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignmentsTable,
			Columns: []string{user.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsMadeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignmentsMadeTable,
			Columns: []string{user.AssignmentsMadeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsMadeIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsMadeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignmentsMadeTable,
			Columns: []string{user.AssignmentsMadeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsMadeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignmentsMadeTable,
			Columns: []string{user.AssignmentsMadeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScheduledAssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ScheduledAssignmentsTable,
			Columns: []string{user.ScheduledAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.ScheduledAssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ScheduledAssignmentsTable,
			Columns: []string{user.ScheduledAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledAssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ScheduledAssignmentsTable,
			Columns: []string{user.ScheduledAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScheduledAssignmentsMadeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ScheduledAssignmentsMadeTable,
			Columns: []string{user.ScheduledAssignmentsMadeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledAssignmentsMadeIDs(); len(nodes) > 0 && !_u.mutation.ScheduledAssignmentsMadeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ScheduledAssignmentsMadeTable,
			Columns: []string{user.ScheduledAssignmentsMadeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledAssignmentsMadeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ScheduledAssignmentsMadeTable,
			Columns: []string{user.ScheduledAssignmentsMadeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LeadsTable,
			Columns: []string{user.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LeadsTable,
			Columns: []string{user.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LeadsTable,
			Columns: []string{user.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ActivitiesTable,
			Columns: []string{user.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ActivitiesTable,
			Columns: []string{user.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ActivitiesTable,
			Columns: []string{user.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoutesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.RoutesTable,
			Columns: []string{user.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoutesIDs(); len(nodes) > 0 && !_u.mutation.RoutesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.RoutesTable,
			Columns: []string{user.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoutesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.RoutesTable,
			Columns: []string{user.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AuditLogsTable,
			Columns: []string{user.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AuditLogsTable,
			Columns: []string{user.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AuditLogsTable,
			Columns: []string{user.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
