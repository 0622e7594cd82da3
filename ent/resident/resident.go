// Code generated by ent, DO NOT EDIT.

package resident

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the resident type in the database.
	Label = "resident"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldZoneID holds the string denoting the zone_id field in the database.
	FieldZoneID = "zone_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldVisitStatus holds the string denoting the visit_status field in the database.
	FieldVisitStatus = "visit_status"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeZone holds the string denoting the zone edge name in mutations.
	EdgeZone = "zone"
	// EdgeLeads holds the string denoting the leads edge name in mutations.
	EdgeLeads = "leads"
	// Table holds the table name of the resident in the database.
	Table = "residents"
	// ZoneTable is the table that holds the zone relation/edge.
	ZoneTable = "residents"
	// ZoneInverseTable is the table name for the Zone entity.
	// It exists in this package in order to avoid circular dependency with the "zone" package.
	ZoneInverseTable = "zones"
	// ZoneColumn is the table column denoting the zone relation/edge.
	ZoneColumn = "zone_id"
	// LeadsTable is the table that holds the leads relation/edge.
	LeadsTable = "leads"
	// LeadsInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadsInverseTable = "leads"
	// LeadsColumn is the table column denoting the leads relation/edge.
	LeadsColumn = "resident_id"
)

// Columns holds all SQL columns for resident fields.
var Columns = []string{
	FieldID,
	FieldZoneID,
	FieldName,
	FieldAddress,
	FieldPhone,
	FieldVisitStatus,
	FieldNotes,
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
	// ZoneIDValidator is a validator for the "zone_id" field. It is called by the builders before save.
	ZoneIDValidator func(int) error
	// AddressValidator is a validator for the "address" field. It is called by the builders before save.
	AddressValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// VisitStatus defines the type for the "visit_status" enum field.
type VisitStatus string

// VisitStatusNotVisited is the default value of the VisitStatus enum.
const DefaultVisitStatus = VisitStatusNotVisited

// VisitStatus values.
const (
	VisitStatusNotVisited VisitStatus = "not_visited"
	VisitStatusVisited    VisitStatus = "visited"
	VisitStatusNotHome    VisitStatus = "not_home"
	VisitStatusCallback   VisitStatus = "callback"
)

func (vs VisitStatus) String() string {
	return string(vs)
}

// VisitStatusValidator is a validator for the "visit_status" field enum values. It is called by the builders before save.
func VisitStatusValidator(vs VisitStatus) error {
	switch vs {
	case VisitStatusNotVisited, VisitStatusVisited, VisitStatusNotHome, VisitStatusCallback:
		return nil
	default:
		return fmt.Errorf("resident: invalid enum value for visit_status field: %q", vs)
	}
}

// OrderOption defines the ordering options for the Resident queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByZoneID orders the results by the zone_id field.
func ByZoneID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZoneID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByVisitStatus orders the results by the visit_status field.
func ByVisitStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitStatus, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByZoneField orders the results by zone field.
func ByZoneField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newZoneStep(), sql.OrderByField(field, opts...))
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
func newZoneStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ZoneInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ZoneTable, ZoneColumn),
	)
}
func newLeadsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LeadsTable, LeadsColumn),
	)
}
