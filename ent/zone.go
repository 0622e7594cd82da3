// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
)

// Zone is the model entity for the Zone schema.
type Zone struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Zone name (e.g., 'Maple Heights North', 'Downtown Grid 4')
	Name string `json:"name,omitempty"`
	// Description of the zone coverage
	Description string `json:"description,omitempty"`
	// Polygon boundary as a list of [lng, lat] pairs
	Boundary [][]float64 `json:"boundary,omitempty"`
	// Zone lifecycle status
	Status zone.Status `json:"status,omitempty"`
	// Agent this zone is individually assigned to; never set together with team_id
	AssignedAgentID *int `json:"assigned_agent_id,omitempty"`
	// Team this zone is assigned to; never set together with assigned_agent_id
	TeamID *int `json:"team_id,omitempty"`
	// Administrator who created this zone
	CreatedByUserID int `json:"created_by_user_id,omitempty"`
	// When the zone was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the zone was last updated
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ZoneQuery when eager-loading is set.
	Edges        ZoneEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ZoneEdges holds the relations/edges for other nodes in the graph.
type ZoneEdges struct {
	// CreatedBy holds the value of the created_by edge.
	CreatedBy *User `json:"created_by,omitempty"`
	// AssignedAgent holds the value of the assigned_agent edge.
	AssignedAgent *User `json:"assigned_agent,omitempty"`
	// Team holds the value of the team edge.
	Team *Team `json:"team,omitempty"`
	// Assignments holds the value of the assignments edge.
	Assignments []*ZoneAssignment `json:"assignments,omitempty"`
	// ScheduledAssignments holds the value of the scheduled_assignments edge.
	ScheduledAssignments []*ScheduledAssignment `json:"scheduled_assignments,omitempty"`
	// Residents holds the value of the residents edge.
	Residents []*Resident `json:"residents,omitempty"`
	// Leads holds the value of the leads edge.
	Leads []*Lead `json:"leads,omitempty"`
	// Activities holds the value of the activities edge.
	Activities []*Activity `json:"activities,omitempty"`
	// Routes holds the value of the routes edge.
	Routes []*Route `json:"routes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [9]bool
}

// CreatedByOrErr returns the CreatedBy value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ZoneEdges) CreatedByOrErr() (*User, error) {
	if e.CreatedBy != nil {
		return e.CreatedBy, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "created_by"}
}

// AssignedAgentOrErr returns the AssignedAgent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ZoneEdges) AssignedAgentOrErr() (*User, error) {
	if e.AssignedAgent != nil {
		return e.AssignedAgent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "assigned_agent"}
}

// TeamOrErr returns the Team value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ZoneEdges) TeamOrErr() (*Team, error) {
	if e.Team != nil {
		return e.Team, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: team.Label}
	}
	return nil, &NotLoadedError{edge: "team"}
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e ZoneEdges) AssignmentsOrErr() ([]*ZoneAssignment, error) {
	if e.loadedTypes[3] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// ScheduledAssignmentsOrErr returns the ScheduledAssignments value or an error if the edge
// was not loaded in eager-loading.
func (e ZoneEdges) ScheduledAssignmentsOrErr() ([]*ScheduledAssignment, error) {
	if e.loadedTypes[4] {
		return e.ScheduledAssignments, nil
	}
	return nil, &NotLoadedError{edge: "scheduled_assignments"}
}

// ResidentsOrErr returns the Residents value or an error if the edge
// was not loaded in eager-loading.
func (e ZoneEdges) ResidentsOrErr() ([]*Resident, error) {
	if e.loadedTypes[5] {
		return e.Residents, nil
	}
	return nil, &NotLoadedError{edge: "residents"}
}

// LeadsOrErr returns the Leads value or an error if the edge
// was not loaded in eager-loading.
func (e ZoneEdges) LeadsOrErr() ([]*Lead, error) {
	if e.loadedTypes[6] {
		return e.Leads, nil
	}
	return nil, &NotLoadedError{edge: "leads"}
}

// ActivitiesOrErr returns the Activities value or an error if the edge
// was not loaded in eager-loading.
func (e ZoneEdges) ActivitiesOrErr() ([]*Activity, error) {
	if e.loadedTypes[7] {
		return e.Activities, nil
	}
	return nil, &NotLoadedError{edge: "activities"}
}

// RoutesOrErr returns the Routes value or an error if the edge
// was not loaded in eager-loading.
func (e ZoneEdges) RoutesOrErr() ([]*Route, error) {
	if e.loadedTypes[8] {
		return e.Routes, nil
	}
	return nil, &NotLoadedError{edge: "routes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Zone) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case zone.FieldBoundary:
			values[i] = new([]byte)
		case zone.FieldID, zone.FieldAssignedAgentID, zone.FieldTeamID, zone.FieldCreatedByUserID:
			values[i] = new(sql.NullInt64)
		case zone.FieldName, zone.FieldDescription, zone.FieldStatus:
			values[i] = new(sql.NullString)
		case zone.FieldCreatedAt, zone.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Zone fields.
func (_m *Zone) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case zone.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case zone.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case zone.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case zone.FieldBoundary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field boundary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Boundary); err != nil {
					return fmt.Errorf("unmarshal field boundary: %w", err)
				}
			}
		case zone.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = zone.Status(value.String)
			}
		case zone.FieldAssignedAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_agent_id", values[i])
			} else if value.Valid {
				_m.AssignedAgentID = new(int)
				*_m.AssignedAgentID = int(value.Int64)
			}
		case zone.FieldTeamID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field team_id", values[i])
			} else if value.Valid {
				_m.TeamID = new(int)
				*_m.TeamID = int(value.Int64)
			}
		case zone.FieldCreatedByUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_by_user_id", values[i])
			} else if value.Valid {
				_m.CreatedByUserID = int(value.Int64)
			}
		case zone.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case zone.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Zone.
// This includes values selected through modifiers, order, etc.
func (_m *Zone) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCreatedBy queries the "created_by" edge of the Zone entity.
func (_m *Zone) QueryCreatedBy() *UserQuery {
	return NewZoneClient(_m.config).QueryCreatedBy(_m)
}

// QueryAssignedAgent queries the "assigned_agent" edge of the Zone entity.
func (_m *Zone) QueryAssignedAgent() *UserQuery {
	return NewZoneClient(_m.config).QueryAssignedAgent(_m)
}

// QueryTeam queries the "team" edge of the Zone entity.
func (_m *Zone) QueryTeam() *TeamQuery {
	return NewZoneClient(_m.config).QueryTeam(_m)
}

// QueryAssignments queries the "assignments" edge of the Zone entity.
func (_m *Zone) QueryAssignments() *ZoneAssignmentQuery {
	return NewZoneClient(_m.config).QueryAssignments(_m)
}

// QueryScheduledAssignments queries the "scheduled_assignments" edge of the Zone entity.
func (_m *Zone) QueryScheduledAssignments() *ScheduledAssignmentQuery {
	return NewZoneClient(_m.config).QueryScheduledAssignments(_m)
}

// QueryResidents queries the "residents" edge of the Zone entity.
func (_m *Zone) QueryResidents() *ResidentQuery {
	return NewZoneClient(_m.config).QueryResidents(_m)
}

// QueryLeads queries the "leads" edge of the Zone entity.
func (_m *Zone) QueryLeads() *LeadQuery {
	return NewZoneClient(_m.config).QueryLeads(_m)
}

// QueryActivities queries the "activities" edge of the Zone entity.
func (_m *Zone) QueryActivities() *ActivityQuery {
	return NewZoneClient(_m.config).QueryActivities(_m)
}

// QueryRoutes queries the "routes" edge of the Zone entity.
func (_m *Zone) QueryRoutes() *RouteQuery {
	return NewZoneClient(_m.config).QueryRoutes(_m)
}

// Update returns a builder for updating this Zone.
// Note that you need to call Zone.Unwrap() before calling this method if this Zone
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Zone) Update() *ZoneUpdateOne {
	return NewZoneClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Zone entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Zone) Unwrap() *Zone {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Zone is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Zone) String() string {
	var builder strings.Builder
	builder.WriteString("Zone(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("boundary=")
	builder.WriteString(fmt.Sprintf("%v", _m.Boundary))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.AssignedAgentID; v != nil {
		builder.WriteString("assigned_agent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TeamID; v != nil {
		builder.WriteString("team_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
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

// Zones is a parsable slice of Zone.
type Zones []*Zone
