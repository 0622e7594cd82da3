// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAssignmentStatus holds the string denoting the assignment_status field in the database.
	FieldAssignmentStatus = "assignment_status"
	// FieldPrimaryZoneID holds the string denoting the primary_zone_id field in the database.
	FieldPrimaryZoneID = "primary_zone_id"
	// FieldZoneIds holds the string denoting the zone_ids field in the database.
	FieldZoneIds = "zone_ids"
	// FieldLastLoginAt holds the string denoting the last_login_at field in the database.
	FieldLastLoginAt = "last_login_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeTeamsCreated holds the string denoting the teams_created edge name in mutations.
	EdgeTeamsCreated = "teams_created"
	// EdgeTeamsLed holds the string denoting the teams_led edge name in mutations.
	EdgeTeamsLed = "teams_led"
	// EdgeTeamMemberships holds the string denoting the team_memberships edge name in mutations.
	EdgeTeamMemberships = "team_memberships"
	// EdgeTeamMembersAdded holds the string denoting the team_members_added edge name in mutations.
	EdgeTeamMembersAdded = "team_members_added"
	// EdgeZonesCreated holds the string denoting the zones_created edge name in mutations.
	EdgeZonesCreated = "zones_created"
	// EdgeZonesAssigned holds the string denoting the zones_assigned edge name in mutations.
	EdgeZonesAssigned = "zones_assigned"
	// EdgeAssignments holds the string denoting the assignments edge name in mutations.
	EdgeAssignments = "assignments"
	// EdgeAssignmentsMade holds the string denoting the assignments_made edge name in mutations.
	EdgeAssignmentsMade = "assignments_made"
	// EdgeScheduledAssignments holds the string denoting the scheduled_assignments edge name in mutations.
	EdgeScheduledAssignments = "scheduled_assignments"
	// EdgeScheduledAssignmentsMade holds the string denoting the scheduled_assignments_made edge name in mutations.
	EdgeScheduledAssignmentsMade = "scheduled_assignments_made"
	// EdgeLeads holds the string denoting the leads edge name in mutations.
	EdgeLeads = "leads"
	// EdgeActivities holds the string denoting the activities edge name in mutations.
	EdgeActivities = "activities"
	// EdgeRoutes holds the string denoting the routes edge name in mutations.
	EdgeRoutes = "routes"
	// EdgeAuditLogs holds the string denoting the audit_logs edge name in mutations.
	EdgeAuditLogs = "audit_logs"
	// Table holds the table name of the user in the database.
	Table = "users"
	// TeamsCreatedTable is the table that holds the teams_created relation/edge.
	TeamsCreatedTable = "teams"
	// TeamsCreatedInverseTable is the table name for the Team entity.
	// It exists in this package in order to avoid circular dependency with the "team" package.
	TeamsCreatedInverseTable = "teams"
	// TeamsCreatedColumn is the table column denoting the teams_created relation/edge.
	TeamsCreatedColumn = "created_by_user_id"
	// TeamsLedTable is the table that holds the teams_led relation/edge.
	TeamsLedTable = "teams"
	// TeamsLedInverseTable is the table name for the Team entity.
	// It exists in this package in order to avoid circular dependency with the "team" package.
	TeamsLedInverseTable = "teams"
	// TeamsLedColumn is the table column denoting the teams_led relation/edge.
	TeamsLedColumn = "leader_user_id"
	// TeamMembershipsTable is the table that holds the team_memberships relation/edge.
	TeamMembershipsTable = "team_members"
	// TeamMembershipsInverseTable is the table name for the TeamMember entity.
	// It exists in this package in order to avoid circular dependency with the "teammember" package.
	TeamMembershipsInverseTable = "team_members"
	// TeamMembershipsColumn is the table column denoting the team_memberships relation/edge.
	TeamMembershipsColumn = "user_id"
	// TeamMembersAddedTable is the table that holds the team_members_added relation/edge.
	TeamMembersAddedTable = "team_members"
	// TeamMembersAddedInverseTable is the table name for the TeamMember entity.
	// It exists in this package in order to avoid circular dependency with the "teammember" package.
	TeamMembersAddedInverseTable = "team_members"
	// TeamMembersAddedColumn is the table column denoting the team_members_added relation/edge.
	TeamMembersAddedColumn = "added_by_user_id"
	// ZonesCreatedTable is the table that holds the zones_created relation/edge.
	ZonesCreatedTable = "zones"
	// ZonesCreatedInverseTable is the table name for the Zone entity.
	// It exists in this package in order to avoid circular dependency with the "zone" package.
	ZonesCreatedInverseTable = "zones"
	// ZonesCreatedColumn is the table column denoting the zones_created relation/edge.
	ZonesCreatedColumn = "created_by_user_id"
	// ZonesAssignedTable is the table that holds the zones_assigned relation/edge.
	ZonesAssignedTable = "zones"
	// ZonesAssignedInverseTable is the table name for the Zone entity.
	// It exists in this package in order to avoid circular dependency with the "zone" package.
	ZonesAssignedInverseTable = "zones"
	// ZonesAssignedColumn is the table column denoting the zones_assigned relation/edge.
	ZonesAssignedColumn = "assigned_agent_id"
	// AssignmentsTable is the table that holds the assignments relation/edge.
	AssignmentsTable = "zone_assignments"
	// AssignmentsInverseTable is the table name for the ZoneAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "zoneassignment" package.
	AssignmentsInverseTable = "zone_assignments"
	// AssignmentsColumn is the table column denoting the assignments relation/edge.
	AssignmentsColumn = "agent_id"
	// AssignmentsMadeTable is the table that holds the assignments_made relation/edge.
	AssignmentsMadeTable = "zone_assignments"
	// AssignmentsMadeInverseTable is the table name for the ZoneAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "zoneassignment" package.
	AssignmentsMadeInverseTable = "zone_assignments"
	// AssignmentsMadeColumn is the table column denoting the assignments_made relation/edge.
	AssignmentsMadeColumn = "assigned_by_user_id"
	// ScheduledAssignmentsTable is the table that holds the scheduled_assignments relation/edge.
	ScheduledAssignmentsTable = "scheduled_assignments"
	// ScheduledAssignmentsInverseTable is the table name for the ScheduledAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "scheduledassignment" package.
	ScheduledAssignmentsInverseTable = "scheduled_assignments"
	// ScheduledAssignmentsColumn is the table column denoting the scheduled_assignments relation/edge.
	ScheduledAssignmentsColumn = "agent_id"
	// ScheduledAssignmentsMadeTable is the table that holds the scheduled_assignments_made relation/edge.
	ScheduledAssignmentsMadeTable = "scheduled_assignments"
	// ScheduledAssignmentsMadeInverseTable is the table name for the ScheduledAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "scheduledassignment" package.
	ScheduledAssignmentsMadeInverseTable = "scheduled_assignments"
	// ScheduledAssignmentsMadeColumn is the table column denoting the scheduled_assignments_made relation/edge.
	ScheduledAssignmentsMadeColumn = "assigned_by_user_id"
	// LeadsTable is the table that holds the leads relation/edge.
	LeadsTable = "leads"
	// LeadsInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadsInverseTable = "leads"
	// LeadsColumn is the table column denoting the leads relation/edge.
	LeadsColumn = "agent_id"
	// ActivitiesTable is the table that holds the activities relation/edge.
	ActivitiesTable = "activities"
	// ActivitiesInverseTable is the table name for the Activity entity.
	// It exists in this package in order to avoid circular dependency with the "activity" package.
	ActivitiesInverseTable = "activities"
	// ActivitiesColumn is the table column denoting the activities relation/edge.
	ActivitiesColumn = "agent_id"
	// RoutesTable is the table that holds the routes relation/edge.
	RoutesTable = "routes"
	// RoutesInverseTable is the table name for the Route entity.
	// It exists in this package in order to avoid circular dependency with the "route" package.
	RoutesInverseTable = "routes"
	// RoutesColumn is the table column denoting the routes relation/edge.
	RoutesColumn = "agent_id"
	// AuditLogsTable is the table that holds the audit_logs relation/edge.
	AuditLogsTable = "audit_logs"
	// AuditLogsInverseTable is the table name for the AuditLog entity.
	// It exists in this package in order to avoid circular dependency with the "auditlog" package.
	AuditLogsInverseTable = "audit_logs"
	// AuditLogsColumn is the table column denoting the audit_logs relation/edge.
	AuditLogsColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldPasswordHash,
	FieldName,
	FieldPhone,
	FieldRole,
	FieldStatus,
	FieldAssignmentStatus,
	FieldPrimaryZoneID,
	FieldZoneIds,
	FieldLastLoginAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	PasswordHashValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Role defines the type for the "role" enum field.
type Role string

// RoleAgent is the default value of the Role enum.
const DefaultRole = RoleAgent

// Role values.
const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleAdmin, RoleAgent:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for role field: %q", r)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusInactive is the default value of the Status enum.
const DefaultStatus = StatusInactive

// Status values.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusInactive:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for status field: %q", s)
	}
}

// AssignmentStatus defines the type for the "assignment_status" enum field.
type AssignmentStatus string

// AssignmentStatusUnassigned is the default value of the AssignmentStatus enum.
const DefaultAssignmentStatus = AssignmentStatusUnassigned

// AssignmentStatus values.
const (
	AssignmentStatusAssigned   AssignmentStatus = "assigned"
	AssignmentStatusUnassigned AssignmentStatus = "unassigned"
)

func (as AssignmentStatus) String() string {
	return string(as)
}

// AssignmentStatusValidator is a validator for the "assignment_status" field enum values. It is called by the builders before save.
func AssignmentStatusValidator(as AssignmentStatus) error {
	switch as {
	case AssignmentStatusAssigned, AssignmentStatusUnassigned:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for assignment_status field: %q", as)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAssignmentStatus orders the results by the assignment_status field.
func ByAssignmentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentStatus, opts...).ToFunc()
}

// ByPrimaryZoneID orders the results by the primary_zone_id field.
func ByPrimaryZoneID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryZoneID, opts...).ToFunc()
}

// ByLastLoginAt orders the results by the last_login_at field.
func ByLastLoginAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLoginAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByTeamsCreatedCount orders the results by teams_created count.
func ByTeamsCreatedCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTeamsCreatedStep(), opts...)
	}
}

// ByTeamsCreated orders the results by teams_created terms.
func ByTeamsCreated(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTeamsCreatedStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTeamsLedCount orders the results by teams_led count.
func ByTeamsLedCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTeamsLedStep(), opts...)
	}
}

// ByTeamsLed orders the results by teams_led terms.
func ByTeamsLed(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTeamsLedStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTeamMembershipsCount orders the results by team_memberships count.
func ByTeamMembershipsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTeamMembershipsStep(), opts...)
	}
}

// ByTeamMemberships orders the results by team_memberships terms.
func ByTeamMemberships(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTeamMembershipsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTeamMembersAddedCount orders the results by team_members_added count.
func ByTeamMembersAddedCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTeamMembersAddedStep(), opts...)
	}
}

// ByTeamMembersAdded orders the results by team_members_added terms.
func ByTeamMembersAdded(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTeamMembersAddedStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByZonesCreatedCount orders the results by zones_created count.
func ByZonesCreatedCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newZonesCreatedStep(), opts...)
	}
}

// ByZonesCreated orders the results by zones_created terms.
func ByZonesCreated(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newZonesCreatedStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByZonesAssignedCount orders the results by zones_assigned count.
func ByZonesAssignedCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newZonesAssignedStep(), opts...)
	}
}

// ByZonesAssigned orders the results by zones_assigned terms.
func ByZonesAssigned(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newZonesAssignedStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAssignmentsCount orders the results by assignments count.
func ByAssignmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssignmentsStep(), opts...)
	}
}

// ByAssignments orders the results by assignments terms.
func ByAssignments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAssignmentsMadeCount orders the results by assignments_made count.
func ByAssignmentsMadeCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssignmentsMadeStep(), opts...)
	}
}

// ByAssignmentsMade orders the results by assignments_made terms.
func ByAssignmentsMade(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignmentsMadeStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByScheduledAssignmentsCount orders the results by scheduled_assignments count.
func ByScheduledAssignmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScheduledAssignmentsStep(), opts...)
	}
}

// ByScheduledAssignments orders the results by scheduled_assignments terms.
func ByScheduledAssignments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScheduledAssignmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByScheduledAssignmentsMadeCount orders the results by scheduled_assignments_made count.
func ByScheduledAssignmentsMadeCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScheduledAssignmentsMadeStep(), opts...)
	}
}

// ByScheduledAssignmentsMade orders the results by scheduled_assignments_made terms.
func ByScheduledAssignmentsMade(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScheduledAssignmentsMadeStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLeadsCount orders the results by leads count.
func ByLeadsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLeadsStep(), opts...)
	}
}

// ByLeads orders the results by leads terms.
func ByLeads(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByActivitiesCount orders the results by activities count.
func ByActivitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newActivitiesStep(), opts...)
	}
}

// ByActivities orders the results by activities terms.
func ByActivities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActivitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRoutesCount orders the results by routes count.
func ByRoutesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRoutesStep(), opts...)
	}
}

// ByRoutes orders the results by routes terms.
func ByRoutes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoutesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuditLogsCount orders the results by audit_logs count.
func ByAuditLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditLogsStep(), opts...)
	}
}

// ByAuditLogs orders the results by audit_logs terms.
func ByAuditLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTeamsCreatedStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TeamsCreatedInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TeamsCreatedTable, TeamsCreatedColumn),
	)
}
func newTeamsLedStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TeamsLedInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TeamsLedTable, TeamsLedColumn),
	)
}
func newTeamMembershipsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TeamMembershipsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TeamMembershipsTable, TeamMembershipsColumn),
	)
}
func newTeamMembersAddedStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TeamMembersAddedInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TeamMembersAddedTable, TeamMembersAddedColumn),
	)
}
func newZonesCreatedStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ZonesCreatedInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ZonesCreatedTable, ZonesCreatedColumn),
	)
}
func newZonesAssignedStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ZonesAssignedInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ZonesAssignedTable, ZonesAssignedColumn),
	)
}
func newAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
	)
}
func newAssignmentsMadeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentsMadeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsMadeTable, AssignmentsMadeColumn),
	)
}
func newScheduledAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScheduledAssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScheduledAssignmentsTable, ScheduledAssignmentsColumn),
	)
}
func newScheduledAssignmentsMadeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScheduledAssignmentsMadeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScheduledAssignmentsMadeTable, ScheduledAssignmentsMadeColumn),
	)
}
func newLeadsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LeadsTable, LeadsColumn),
	)
}
func newActivitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActivitiesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActivitiesTable, ActivitiesColumn),
	)
}
func newRoutesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoutesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RoutesTable, RoutesColumn),
	)
}
func newAuditLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditLogsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
	)
}
