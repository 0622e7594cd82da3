// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/knockbase/knockbase/ent/resident"
	"github.com/knockbase/knockbase/ent/zone"
)

// Resident is the model entity for the Resident schema.
type Resident struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Zone this resident belongs to
	ZoneID int `json:"zone_id,omitempty"`
	// Resident name, if known
	Name string `json:"name,omitempty"`
	// Street address
	Address string `json:"address,omitempty"`
	// Contact phone number in E.164 format
	Phone *string `json:"phone,omitempty"`
	// Door-knock outcome for this household
	VisitStatus resident.VisitStatus `json:"visit_status,omitempty"`
	// Free-form notes from the agent
	Notes string `json:"notes,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResidentQuery when eager-loading is set.
	Edges        ResidentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResidentEdges holds the relations/edges for other nodes in the graph.
type ResidentEdges struct {
	// Zone holds the value of the zone edge.
	Zone *Zone `json:"zone,omitempty"`
	// Leads holds the value of the leads edge.
	Leads []*Lead `json:"leads,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ZoneOrErr returns the Zone value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResidentEdges) ZoneOrErr() (*Zone, error) {
	if e.Zone != nil {
		return e.Zone, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: zone.Label}
	}
	return nil, &NotLoadedError{edge: "zone"}
}

// LeadsOrErr returns the Leads value or an error if the edge
// was not loaded in eager-loading.
func (e ResidentEdges) LeadsOrErr() ([]*Lead, error) {
	if e.loadedTypes[1] {
		return e.Leads, nil
	}
	return nil, &NotLoadedError{edge: "leads"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Resident) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resident.FieldID, resident.FieldZoneID:
			values[i] = new(sql.NullInt64)
		case resident.FieldName, resident.FieldAddress, resident.FieldPhone, resident.FieldVisitStatus, resident.FieldNotes:
			values[i] = new(sql.NullString)
		case resident.FieldCreatedAt, resident.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Resident fields.
func (_m *Resident) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resident.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case resident.FieldZoneID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field zone_id", values[i])
			} else if value.Valid {
				_m.ZoneID = int(value.Int64)
			}
		case resident.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case resident.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case resident.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case resident.FieldVisitStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visit_status", values[i])
			} else if value.Valid {
				_m.VisitStatus = resident.VisitStatus(value.String)
			}
		case resident.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case resident.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case resident.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Resident.
// This includes values selected through modifiers, order, etc.
func (_m *Resident) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryZone queries the "zone" edge of the Resident entity.
func (_m *Resident) QueryZone() *ZoneQuery {
	return NewResidentClient(_m.config).QueryZone(_m)
}

// QueryLeads queries the "leads" edge of the Resident entity.
func (_m *Resident) QueryLeads() *LeadQuery {
	return NewResidentClient(_m.config).QueryLeads(_m)
}

// Update returns a builder for updating this Resident.
// Note that you need to call Resident.Unwrap() before calling this method if this Resident
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Resident) Update() *ResidentUpdateOne {
	return NewResidentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Resident entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Resident) Unwrap() *Resident {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Resident is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Resident) String() string {
	var builder strings.Builder
	builder.WriteString("Resident(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("zone_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ZoneID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("visit_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.VisitStatus))
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

// Residents is a parsable slice of Resident.
type Residents []*Resident
