// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
)

// ScheduledAssignment is the model entity for the ScheduledAssignment schema.
type ScheduledAssignment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ID of the zone to be assigned
	ZoneID int `json:"zone_id,omitempty"`
	// Agent target; null for team assignments
	AgentID *int `json:"agent_id,omitempty"`
	// Team target; null for individual assignments
	TeamID *int `json:"team_id,omitempty"`
	// Administrator who scheduled the assignment
	AssignedByUserID *int `json:"assigned_by_user_id,omitempty"`
	// Requested effective date carried onto the immediate assignment at activation
	EffectiveFrom time.Time `json:"effective_from,omitempty"`
	// When the sweeper should activate this assignment
	ScheduledDate time.Time `json:"scheduled_date,omitempty"`
	// Pending rows are due for activation once scheduled_date passes
	Status scheduledassignment.Status `json:"status,omitempty"`
	// When the sweeper activated this assignment
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScheduledAssignmentQuery when eager-loading is set.
	Edges        ScheduledAssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScheduledAssignmentEdges holds the relations/edges for other nodes in the graph.
type ScheduledAssignmentEdges struct {
	// Zone holds the value of the zone edge.
	Zone *Zone `json:"zone,omitempty"`
	// Agent holds the value of the agent edge.
	Agent *User `json:"agent,omitempty"`
	// Team holds the value of the team edge.
	Team *Team `json:"team,omitempty"`
	// AssignedBy holds the value of the assigned_by edge.
	AssignedBy *User `json:"assigned_by,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ZoneOrErr returns the Zone value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScheduledAssignmentEdges) ZoneOrErr() (*Zone, error) {
	if e.Zone != nil {
		return e.Zone, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: zone.Label}
	}
	return nil, &NotLoadedError{edge: "zone"}
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScheduledAssignmentEdges) AgentOrErr() (*User, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// TeamOrErr returns the Team value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScheduledAssignmentEdges) TeamOrErr() (*Team, error) {
	if e.Team != nil {
		return e.Team, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: team.Label}
	}
	return nil, &NotLoadedError{edge: "team"}
}

// AssignedByOrErr returns the AssignedBy value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScheduledAssignmentEdges) AssignedByOrErr() (*User, error) {
	if e.AssignedBy != nil {
		return e.AssignedBy, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "assigned_by"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledAssignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduledassignment.FieldID, scheduledassignment.FieldZoneID, scheduledassignment.FieldAgentID, scheduledassignment.FieldTeamID, scheduledassignment.FieldAssignedByUserID:
			values[i] = new(sql.NullInt64)
		case scheduledassignment.FieldStatus:
			values[i] = new(sql.NullString)
		case scheduledassignment.FieldEffectiveFrom, scheduledassignment.FieldScheduledDate, scheduledassignment.FieldActivatedAt, scheduledassignment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledAssignment fields.
func (_m *ScheduledAssignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduledassignment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scheduledassignment.FieldZoneID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field zone_id", values[i])
			} else if value.Valid {
				_m.ZoneID = int(value.Int64)
			}
		case scheduledassignment.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(int)
				*_m.AgentID = int(value.Int64)
			}
		case scheduledassignment.FieldTeamID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field team_id", values[i])
			} else if value.Valid {
				_m.TeamID = new(int)
				*_m.TeamID = int(value.Int64)
			}
		case scheduledassignment.FieldAssignedByUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_by_user_id", values[i])
			} else if value.Valid {
				_m.AssignedByUserID = new(int)
				*_m.AssignedByUserID = int(value.Int64)
			}
		case scheduledassignment.FieldEffectiveFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field effective_from", values[i])
			} else if value.Valid {
				_m.EffectiveFrom = value.Time
			}
		case scheduledassignment.FieldScheduledDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_date", values[i])
			} else if value.Valid {
				_m.ScheduledDate = value.Time
			}
		case scheduledassignment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = scheduledassignment.Status(value.String)
			}
		case scheduledassignment.FieldActivatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field activated_at", values[i])
			} else if value.Valid {
				_m.ActivatedAt = new(time.Time)
				*_m.ActivatedAt = value.Time
			}
		case scheduledassignment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledAssignment.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduledAssignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryZone queries the "zone" edge of the ScheduledAssignment entity.
func (_m *ScheduledAssignment) QueryZone() *ZoneQuery {
	return NewScheduledAssignmentClient(_m.config).QueryZone(_m)
}

// QueryAgent queries the "agent" edge of the ScheduledAssignment entity.
func (_m *ScheduledAssignment) QueryAgent() *UserQuery {
	return NewScheduledAssignmentClient(_m.config).QueryAgent(_m)
}

// QueryTeam queries the "team" edge of the ScheduledAssignment entity.
func (_m *ScheduledAssignment) QueryTeam() *TeamQuery {
	return NewScheduledAssignmentClient(_m.config).QueryTeam(_m)
}

// QueryAssignedBy queries the "assigned_by" edge of the ScheduledAssignment entity.
func (_m *ScheduledAssignment) QueryAssignedBy() *UserQuery {
	return NewScheduledAssignmentClient(_m.config).QueryAssignedBy(_m)
}

// Update returns a builder for updating this ScheduledAssignment.
// Note that you need to call ScheduledAssignment.Unwrap() before calling this method if this ScheduledAssignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduledAssignment) Update() *ScheduledAssignmentUpdateOne {
	return NewScheduledAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduledAssignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduledAssignment) Unwrap() *ScheduledAssignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledAssignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduledAssignment) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledAssignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("zone_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ZoneID))
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TeamID; v != nil {
		builder.WriteString("team_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AssignedByUserID; v != nil {
		builder.WriteString("assigned_by_user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("effective_from=")
	builder.WriteString(_m.EffectiveFrom.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("scheduled_date=")
	builder.WriteString(_m.ScheduledDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ActivatedAt; v != nil {
		builder.WriteString("activated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledAssignments is a parsable slice of ScheduledAssignment.
type ScheduledAssignments []*ScheduledAssignment
