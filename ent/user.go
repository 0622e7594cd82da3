// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/knockbase/knockbase/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User email address
	Email string `json:"email,omitempty"`
	// Bcrypt hashed password
	PasswordHash string `json:"-"`
	// User full name
	Name string `json:"name,omitempty"`
	// Contact phone number in E.164 format
	Phone *string `json:"phone,omitempty"`
	// User role for access control
	Role user.Role `json:"role,omitempty"`
	// Operational status, derived from assignment state
	Status user.Status `json:"status,omitempty"`
	// Whether the agent currently holds any zone assignment
	AssignmentStatus user.AssignmentStatus `json:"assignment_status,omitempty"`
	// Most recently assigned zone
	PrimaryZoneID *int `json:"primary_zone_id,omitempty"`
	// All zones reachable through active or pending assignments, individual or via team
	ZoneIds []int `json:"zone_ids,omitempty"`
	// Last login timestamp
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete timestamp
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// Teams created by this user
	TeamsCreated []*Team `json:"teams_created,omitempty"`
	// Teams where this user is the designated leader
	TeamsLed []*Team `json:"teams_led,omitempty"`
	// TeamMemberships holds the value of the team_memberships edge.
	TeamMemberships []*TeamMember `json:"team_memberships,omitempty"`
	// TeamMembersAdded holds the value of the team_members_added edge.
	TeamMembersAdded []*TeamMember `json:"team_members_added,omitempty"`
	// ZonesCreated holds the value of the zones_created edge.
	ZonesCreated []*Zone `json:"zones_created,omitempty"`
	// Zones currently assigned to this agent individually
	ZonesAssigned []*Zone `json:"zones_assigned,omitempty"`
	// Assignments holds the value of the assignments edge.
	Assignments []*ZoneAssignment `json:"assignments,omitempty"`
	// AssignmentsMade holds the value of the assignments_made edge.
	AssignmentsMade []*ZoneAssignment `json:"assignments_made,omitempty"`
	// ScheduledAssignments holds the value of the scheduled_assignments edge.
	ScheduledAssignments []*ScheduledAssignment `json:"scheduled_assignments,omitempty"`
	// ScheduledAssignmentsMade holds the value of the scheduled_assignments_made edge.
	ScheduledAssignmentsMade []*ScheduledAssignment `json:"scheduled_assignments_made,omitempty"`
	// Leads holds the value of the leads edge.
	Leads []*Lead `json:"leads,omitempty"`
	// Activities holds the value of the activities edge.
	Activities []*Activity `json:"activities,omitempty"`
	// Routes holds the value of the routes edge.
	Routes []*Route `json:"routes,omitempty"`
	// AuditLogs holds the value of the audit_logs edge.
	AuditLogs []*AuditLog `json:"audit_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [14]bool
}

// TeamsCreatedOrErr returns the TeamsCreated value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) TeamsCreatedOrErr() ([]*Team, error) {
	if e.loadedTypes[0] {
		return e.TeamsCreated, nil
	}
	return nil, &NotLoadedError{edge: "teams_created"}
}

// TeamsLedOrErr returns the TeamsLed value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) TeamsLedOrErr() ([]*Team, error) {
	if e.loadedTypes[1] {
		return e.TeamsLed, nil
	}
	return nil, &NotLoadedError{edge: "teams_led"}
}

// TeamMembershipsOrErr returns the TeamMemberships value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) TeamMembershipsOrErr() ([]*TeamMember, error) {
	if e.loadedTypes[2] {
		return e.TeamMemberships, nil
	}
	return nil, &NotLoadedError{edge: "team_memberships"}
}

// TeamMembersAddedOrErr returns the TeamMembersAdded value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) TeamMembersAddedOrErr() ([]*TeamMember, error) {
	if e.loadedTypes[3] {
		return e.TeamMembersAdded, nil
	}
	return nil, &NotLoadedError{edge: "team_members_added"}
}

// ZonesCreatedOrErr returns the ZonesCreated value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ZonesCreatedOrErr() ([]*Zone, error) {
	if e.loadedTypes[4] {
		return e.ZonesCreated, nil
	}
	return nil, &NotLoadedError{edge: "zones_created"}
}

// ZonesAssignedOrErr returns the ZonesAssigned value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ZonesAssignedOrErr() ([]*Zone, error) {
	if e.loadedTypes[5] {
		return e.ZonesAssigned, nil
	}
	return nil, &NotLoadedError{edge: "zones_assigned"}
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) AssignmentsOrErr() ([]*ZoneAssignment, error) {
	if e.loadedTypes[6] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// AssignmentsMadeOrErr returns the AssignmentsMade value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) AssignmentsMadeOrErr() ([]*ZoneAssignment, error) {
	if e.loadedTypes[7] {
		return e.AssignmentsMade, nil
	}
	return nil, &NotLoadedError{edge: "assignments_made"}
}

// ScheduledAssignmentsOrErr returns the ScheduledAssignments value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ScheduledAssignmentsOrErr() ([]*ScheduledAssignment, error) {
	if e.loadedTypes[8] {
		return e.ScheduledAssignments, nil
	}
	return nil, &NotLoadedError{edge: "scheduled_assignments"}
}

// ScheduledAssignmentsMadeOrErr returns the ScheduledAssignmentsMade value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ScheduledAssignmentsMadeOrErr() ([]*ScheduledAssignment, error) {
	if e.loadedTypes[9] {
		return e.ScheduledAssignmentsMade, nil
	}
	return nil, &NotLoadedError{edge: "scheduled_assignments_made"}
}

// LeadsOrErr returns the Leads value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) LeadsOrErr() ([]*Lead, error) {
	if e.loadedTypes[10] {
		return e.Leads, nil
	}
	return nil, &NotLoadedError{edge: "leads"}
}

// ActivitiesOrErr returns the Activities value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ActivitiesOrErr() ([]*Activity, error) {
	if e.loadedTypes[11] {
		return e.Activities, nil
	}
	return nil, &NotLoadedError{edge: "activities"}
}

// RoutesOrErr returns the Routes value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) RoutesOrErr() ([]*Route, error) {
	if e.loadedTypes[12] {
		return e.Routes, nil
	}
	return nil, &NotLoadedError{edge: "routes"}
}

// AuditLogsOrErr returns the AuditLogs value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) AuditLogsOrErr() ([]*AuditLog, error) {
	if e.loadedTypes[13] {
		return e.AuditLogs, nil
	}
	return nil, &NotLoadedError{edge: "audit_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldZoneIds:
			values[i] = new([]byte)
		case user.FieldID, user.FieldPrimaryZoneID:
			values[i] = new(sql.NullInt64)
		case user.FieldEmail, user.FieldPasswordHash, user.FieldName, user.FieldPhone, user.FieldRole, user.FieldStatus, user.FieldAssignmentStatus:
			values[i] = new(sql.NullString)
		case user.FieldLastLoginAt, user.FieldCreatedAt, user.FieldUpdatedAt, user.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case user.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = value.String
			}
		case user.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case user.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case user.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = user.Role(value.String)
			}
		case user.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = user.Status(value.String)
			}
		case user.FieldAssignmentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_status", values[i])
			} else if value.Valid {
				_m.AssignmentStatus = user.AssignmentStatus(value.String)
			}
		case user.FieldPrimaryZoneID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field primary_zone_id", values[i])
			} else if value.Valid {
				_m.PrimaryZoneID = new(int)
				*_m.PrimaryZoneID = int(value.Int64)
			}
		case user.FieldZoneIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field zone_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ZoneIds); err != nil {
					return fmt.Errorf("unmarshal field zone_ids: %w", err)
				}
			}
		case user.FieldLastLoginAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_login_at", values[i])
			} else if value.Valid {
				_m.LastLoginAt = new(time.Time)
				*_m.LastLoginAt = value.Time
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case user.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case user.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTeamsCreated queries the "teams_created" edge of the User entity.
func (_m *User) QueryTeamsCreated() *TeamQuery {
	return NewUserClient(_m.config).QueryTeamsCreated(_m)
}

// QueryTeamsLed queries the "teams_led" edge of the User entity.
func (_m *User) QueryTeamsLed() *TeamQuery {
	return NewUserClient(_m.config).QueryTeamsLed(_m)
}

// QueryTeamMemberships queries the "team_memberships" edge of the User entity.
func (_m *User) QueryTeamMemberships() *TeamMemberQuery {
	return NewUserClient(_m.config).QueryTeamMemberships(_m)
}

// QueryTeamMembersAdded queries the "team_members_added" edge of the User entity.
func (_m *User) QueryTeamMembersAdded() *TeamMemberQuery {
	return NewUserClient(_m.config).QueryTeamMembersAdded(_m)
}

// QueryZonesCreated queries the "zones_created" edge of the User entity.
func (_m *User) QueryZonesCreated() *ZoneQuery {
	return NewUserClient(_m.config).QueryZonesCreated(_m)
}

// QueryZonesAssigned queries the "zones_assigned" edge of the User entity.
func (_m *User) QueryZonesAssigned() *ZoneQuery {
	return NewUserClient(_m.config).QueryZonesAssigned(_m)
}

// QueryAssignments queries the "assignments" edge of the User entity.
func (_m *User) QueryAssignments() *ZoneAssignmentQuery {
	return NewUserClient(_m.config).QueryAssignments(_m)
}

// QueryAssignmentsMade queries the "assignments_made" edge of the User entity.
func (_m *User) QueryAssignmentsMade() *ZoneAssignmentQuery {
	return NewUserClient(_m.config).QueryAssignmentsMade(_m)
}

// QueryScheduledAssignments queries the "scheduled_assignments" edge of the User entity.
func (_m *User) QueryScheduledAssignments() *ScheduledAssignmentQuery {
	return NewUserClient(_m.config).QueryScheduledAssignments(_m)
}

// QueryScheduledAssignmentsMade queries the "scheduled_assignments_made" edge of the User entity.
func (_m *User) QueryScheduledAssignmentsMade() *ScheduledAssignmentQuery {
	return NewUserClient(_m.config).QueryScheduledAssignmentsMade(_m)
}

// QueryLeads queries the "leads" edge of the User entity.
func (_m *User) QueryLeads() *LeadQuery {
	return NewUserClient(_m.config).QueryLeads(_m)
}

// QueryActivities queries the "activities" edge of the User entity.
func (_m *User) QueryActivities() *ActivityQuery {
	return NewUserClient(_m.config).QueryActivities(_m)
}

// QueryRoutes queries the "routes" edge of the User entity.
func (_m *User) QueryRoutes() *RouteQuery {
	return NewUserClient(_m.config).QueryRoutes(_m)
}

// QueryAuditLogs queries the "audit_logs" edge of the User entity.
func (_m *User) QueryAuditLogs() *AuditLogQuery {
	return NewUserClient(_m.config).QueryAuditLogs(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("assignment_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignmentStatus))
	builder.WriteString(", ")
	if v := _m.PrimaryZoneID; v != nil {
		builder.WriteString("primary_zone_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("zone_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ZoneIds))
	builder.WriteString(", ")
	if v := _m.LastLoginAt; v != nil {
		builder.WriteString("last_login_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
