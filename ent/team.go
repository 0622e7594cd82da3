// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/user"
)

// Team is the model entity for the Team schema.
type Team struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Team name
	Name string `json:"name,omitempty"`
	// Description of the team
	Description string `json:"description,omitempty"`
	// Operational status, fully recomputed from the assignment ledgers
	Status team.Status `json:"status,omitempty"`
	// Whether the team currently holds any zone assignment
	AssignmentStatus team.AssignmentStatus `json:"assignment_status,omitempty"`
	// Designated team leader
	LeaderUserID int `json:"leader_user_id,omitempty"`
	// Administrator who created this team
	CreatedByUserID int `json:"created_by_user_id,omitempty"`
	// When the team was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the team was last updated
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TeamQuery when eager-loading is set.
	Edges        TeamEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TeamEdges holds the relations/edges for other nodes in the graph.
type TeamEdges struct {
	// Leader holds the value of the leader edge.
	Leader *User `json:"leader,omitempty"`
	// CreatedBy holds the value of the created_by edge.
	CreatedBy *User `json:"created_by,omitempty"`
	// Members holds the value of the members edge.
	Members []*TeamMember `json:"members,omitempty"`
	// Zones currently assigned to this team
	Zones []*Zone `json:"zones,omitempty"`
	// Assignments holds the value of the assignments edge.
	Assignments []*ZoneAssignment `json:"assignments,omitempty"`
	// ScheduledAssignments holds the value of the scheduled_assignments edge.
	ScheduledAssignments []*ScheduledAssignment `json:"scheduled_assignments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// LeaderOrErr returns the Leader value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TeamEdges) LeaderOrErr() (*User, error) {
	if e.Leader != nil {
		return e.Leader, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "leader"}
}

// CreatedByOrErr returns the CreatedBy value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TeamEdges) CreatedByOrErr() (*User, error) {
	if e.CreatedBy != nil {
		return e.CreatedBy, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "created_by"}
}

// MembersOrErr returns the Members value or an error if the edge
// was not loaded in eager-loading.
func (e TeamEdges) MembersOrErr() ([]*TeamMember, error) {
	if e.loadedTypes[2] {
		return e.Members, nil
	}
	return nil, &NotLoadedError{edge: "members"}
}

// ZonesOrErr returns the Zones value or an error if the edge
// was not loaded in eager-loading.
func (e TeamEdges) ZonesOrErr() ([]*Zone, error) {
	if e.loadedTypes[3] {
		return e.Zones, nil
	}
	return nil, &NotLoadedError{edge: "zones"}
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e TeamEdges) AssignmentsOrErr() ([]*ZoneAssignment, error) {
	if e.loadedTypes[4] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// ScheduledAssignmentsOrErr returns the ScheduledAssignments value or an error if the edge
// was not loaded in eager-loading.
func (e TeamEdges) ScheduledAssignmentsOrErr() ([]*ScheduledAssignment, error) {
	if e.loadedTypes[5] {
		return e.ScheduledAssignments, nil
	}
	return nil, &NotLoadedError{edge: "scheduled_assignments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Team) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case team.FieldID, team.FieldLeaderUserID, team.FieldCreatedByUserID:
			values[i] = new(sql.NullInt64)
		case team.FieldName, team.FieldDescription, team.FieldStatus, team.FieldAssignmentStatus:
			values[i] = new(sql.NullString)
		case team.FieldCreatedAt, team.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Team fields.
func (_m *Team) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case team.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case team.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case team.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case team.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = team.Status(value.String)
			}
		case team.FieldAssignmentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_status", values[i])
			} else if value.Valid {
				_m.AssignmentStatus = team.AssignmentStatus(value.String)
			}
		case team.FieldLeaderUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field leader_user_id", values[i])
			} else if value.Valid {
				_m.LeaderUserID = int(value.Int64)
			}
		case team.FieldCreatedByUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_by_user_id", values[i])
			} else if value.Valid {
				_m.CreatedByUserID = int(value.Int64)
			}
		case team.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case team.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Team.
// This includes values selected through modifiers, order, etc.
func (_m *Team) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLeader queries the "leader" edge of the Team entity.
func (_m *Team) QueryLeader() *UserQuery {
	return NewTeamClient(_m.config).QueryLeader(_m)
}

// QueryCreatedBy queries the "created_by" edge of the Team entity.
func (_m *Team) QueryCreatedBy() *UserQuery {
	return NewTeamClient(_m.config).QueryCreatedBy(_m)
}

// QueryMembers queries the "members" edge of the Team entity.
func (_m *Team) QueryMembers() *TeamMemberQuery {
	return NewTeamClient(_m.config).QueryMembers(_m)
}

// QueryZones queries the "zones" edge of the Team entity.
func (_m *Team) QueryZones() *ZoneQuery {
	return NewTeamClient(_m.config).QueryZones(_m)
}

// QueryAssignments queries the "assignments" edge of the Team entity.
func (_m *Team) QueryAssignments() *ZoneAssignmentQuery {
	return NewTeamClient(_m.config).QueryAssignments(_m)
}

// QueryScheduledAssignments queries the "scheduled_assignments" edge of the Team entity.
func (_m *Team) QueryScheduledAssignments() *ScheduledAssignmentQuery {
	return NewTeamClient(_m.config).QueryScheduledAssignments(_m)
}

// Update returns a builder for updating this Team.
// Note that you need to call Team.Unwrap() before calling this method if this Team
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Team) Update() *TeamUpdateOne {
	return NewTeamClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Team entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Team) Unwrap() *Team {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Team is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Team) String() string {
	var builder strings.Builder
	builder.WriteString("Team(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("assignment_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignmentStatus))
	builder.WriteString(", ")
	builder.WriteString("leader_user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeaderUserID))
	builder.WriteString(", ")
	builder.WriteString("created_by_user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedByUserID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Teams is a parsable slice of Team.
type Teams []*Team
