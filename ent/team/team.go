// Code generated by ent, DO NOT EDIT.

package team

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the team type in the database.
	Label = "team"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAssignmentStatus holds the string denoting the assignment_status field in the database.
	FieldAssignmentStatus = "assignment_status"
	// FieldLeaderUserID holds the string denoting the leader_user_id field in the database.
	FieldLeaderUserID = "leader_user_id"
	// FieldCreatedByUserID holds the string denoting the created_by_user_id field in the database.
	FieldCreatedByUserID = "created_by_user_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLeader holds the string denoting the leader edge name in mutations.
	EdgeLeader = "leader"
	// EdgeCreatedBy holds the string denoting the created_by edge name in mutations.
	EdgeCreatedBy = "created_by"
	// EdgeMembers holds the string denoting the members edge name in mutations.
	EdgeMembers = "members"
	// EdgeZones holds the string denoting the zones edge name in mutations.
	EdgeZones = "zones"
	// EdgeAssignments holds the string denoting the assignments edge name in mutations.
	EdgeAssignments = "assignments"
	// EdgeScheduledAssignments holds the string denoting the scheduled_assignments edge name in mutations.
	EdgeScheduledAssignments = "scheduled_assignments"
	// Table holds the table name of the team in the database.
	Table = "teams"
	// LeaderTable is the table that holds the leader relation/edge.
	LeaderTable = "teams"
	// LeaderInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	LeaderInverseTable = "users"
	// LeaderColumn is the table column denoting the leader relation/edge.
	LeaderColumn = "leader_user_id"
	// CreatedByTable is the table that holds the created_by relation/edge.
	CreatedByTable = "teams"
	// CreatedByInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	CreatedByInverseTable = "users"
	// CreatedByColumn is the table column denoting the created_by relation/edge.
	CreatedByColumn = "created_by_user_id"
	// MembersTable is the table that holds the members relation/edge.
	MembersTable = "team_members"
	// MembersInverseTable is the table name for the TeamMember entity.
	// It exists in this package in order to avoid circular dependency with the "teammember" package.
	MembersInverseTable = "team_members"
	// MembersColumn is the table column denoting the members relation/edge.
	MembersColumn = "team_id"
	// ZonesTable is the table that holds the zones relation/edge.
	ZonesTable = "zones"
	// ZonesInverseTable is the table name for the Zone entity.
	// It exists in this package in order to avoid circular dependency with the "zone" package.
	ZonesInverseTable = "zones"
	// ZonesColumn is the table column denoting the zones relation/edge.
	ZonesColumn = "team_id"
	// AssignmentsTable is the table that holds the assignments relation/edge.
	AssignmentsTable = "zone_assignments"
	// AssignmentsInverseTable is the table name for the ZoneAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "zoneassignment" package.
	AssignmentsInverseTable = "zone_assignments"
	// AssignmentsColumn is the table column denoting the assignments relation/edge.
	AssignmentsColumn = "team_id"
	// ScheduledAssignmentsTable is the table that holds the scheduled_assignments relation/edge.
	ScheduledAssignmentsTable = "scheduled_assignments"
	// ScheduledAssignmentsInverseTable is the table name for the ScheduledAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "scheduledassignment" package.
	ScheduledAssignmentsInverseTable = "scheduled_assignments"
	// ScheduledAssignmentsColumn is the table column denoting the scheduled_assignments relation/edge.
	ScheduledAssignmentsColumn = "team_id"
)

// Columns holds all SQL columns for team fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldStatus,
	FieldAssignmentStatus,
	FieldLeaderUserID,
	FieldCreatedByUserID,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// LeaderUserIDValidator is a validator for the "leader_user_id" field. It is called by the builders before save.
	LeaderUserIDValidator func(int) error
	// CreatedByUserIDValidator is a validator for the "created_by_user_id" field. It is called by the builders before save.
	CreatedByUserIDValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

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
		return fmt.Errorf("team: invalid enum value for status field: %q", s)
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
		return fmt.Errorf("team: invalid enum value for assignment_status field: %q", as)
	}
}

// OrderOption defines the ordering options for the Team queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAssignmentStatus orders the results by the assignment_status field.
func ByAssignmentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentStatus, opts...).ToFunc()
}

// ByLeaderUserID orders the results by the leader_user_id field.
func ByLeaderUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaderUserID, opts...).ToFunc()
}

// ByCreatedByUserID orders the results by the created_by_user_id field.
func ByCreatedByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedByUserID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLeaderField orders the results by leader field.
func ByLeaderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeaderStep(), sql.OrderByField(field, opts...))
	}
}

// ByCreatedByField orders the results by created_by field.
func ByCreatedByField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreatedByStep(), sql.OrderByField(field, opts...))
	}
}

// ByMembersCount orders the results by members count.
func ByMembersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMembersStep(), opts...)
	}
}

// ByMembers orders the results by members terms.
func ByMembers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMembersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByZonesCount orders the results by zones count.
func ByZonesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newZonesStep(), opts...)
	}
}

// ByZones orders the results by zones terms.
func ByZones(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newZonesStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newLeaderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeaderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LeaderTable, LeaderColumn),
	)
}
func newCreatedByStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreatedByInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CreatedByTable, CreatedByColumn),
	)
}
func newMembersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MembersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MembersTable, MembersColumn),
	)
}
func newZonesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ZonesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ZonesTable, ZonesColumn),
	)
}
func newAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
	)
}
func newScheduledAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScheduledAssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScheduledAssignmentsTable, ScheduledAssignmentsColumn),
	)
}
