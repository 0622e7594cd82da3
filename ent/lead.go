// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/knockbase/knockbase/ent/lead"
	"github.com/knockbase/knockbase/ent/resident"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
)

// Lead is the model entity for the Lead schema.
type Lead struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Zone the lead was captured in
	ZoneID int `json:"zone_id,omitempty"`
	// Resident the lead belongs to, if matched
	ResidentID *int `json:"resident_id,omitempty"`
	// Agent who captured the lead
	AgentID *int `json:"agent_id,omitempty"`
	// Lead pipeline status
	Status lead.Status `json:"status,omitempty"`
	// Free-form notes
	Notes string `json:"notes,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeadQuery when eager-loading is set.
	Edges        LeadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeadEdges holds the relations/edges for other nodes in the graph.
type LeadEdges struct {
	// Zone holds the value of the zone edge.
	Zone *Zone `json:"zone,omitempty"`
	// Resident holds the value of the resident edge.
	Resident *Resident `json:"resident,omitempty"`
	// Agent holds the value of the agent edge.
	Agent *User `json:"agent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ZoneOrErr returns the Zone value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeadEdges) ZoneOrErr() (*Zone, error) {
	if e.Zone != nil {
		return e.Zone, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: zone.Label}
	}
	return nil, &NotLoadedError{edge: "zone"}
}

// ResidentOrErr returns the Resident value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeadEdges) ResidentOrErr() (*Resident, error) {
	if e.Resident != nil {
		return e.Resident, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: resident.Label}
	}
	return nil, &NotLoadedError{edge: "resident"}
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeadEdges) AgentOrErr() (*User, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lead) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lead.FieldID, lead.FieldZoneID, lead.FieldResidentID, lead.FieldAgentID:
			values[i] = new(sql.NullInt64)
		case lead.FieldStatus, lead.FieldNotes:
			values[i] = new(sql.NullString)
		case lead.FieldCreatedAt, lead.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lead fields.
func (_m *Lead) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lead.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lead.FieldZoneID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field zone_id", values[i])
			} else if value.Valid {
				_m.ZoneID = int(value.Int64)
			}
		case lead.FieldResidentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field resident_id", values[i])
			} else if value.Valid {
				_m.ResidentID = new(int)
				*_m.ResidentID = int(value.Int64)
			}
		case lead.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(int)
				*_m.AgentID = int(value.Int64)
			}
		case lead.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = lead.Status(value.String)
			}
		case lead.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case lead.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lead.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Lead.
// This includes values selected through modifiers, order, etc.
func (_m *Lead) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryZone queries the "zone" edge of the Lead entity.
func (_m *Lead) QueryZone() *ZoneQuery {
	return NewLeadClient(_m.config).QueryZone(_m)
}

// QueryResident queries the "resident" edge of the Lead entity.
func (_m *Lead) QueryResident() *ResidentQuery {
	return NewLeadClient(_m.config).QueryResident(_m)
}

// QueryAgent queries the "agent" edge of the Lead entity.
func (_m *Lead) QueryAgent() *UserQuery {
	return NewLeadClient(_m.config).QueryAgent(_m)
}

// Update returns a builder for updating this Lead.
// Note that you need to call Lead.Unwrap() before calling this method if this Lead
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lead) Update() *LeadUpdateOne {
	return NewLeadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lead entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lead) Unwrap() *Lead {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lead is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lead) String() string {
	var builder strings.Builder
	builder.WriteString("Lead(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("zone_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ZoneID))
	builder.WriteString(", ")
	if v := _m.ResidentID; v != nil {
		builder.WriteString("resident_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Leads is a parsable slice of Lead.
type Leads []*Lead
