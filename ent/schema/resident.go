package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Resident holds the schema definition for the Resident entity: an
// addressable household inside a zone.
type Resident struct {
	ent.Schema
}

// Fields of the Resident.
func (Resident) Fields() []ent.Field {
	return []ent.Field{
		field.Int("zone_id").
			Positive().
			Comment("Zone this resident belongs to"),
		field.String("name").
			Optional().
			Comment("Resident name, if known"),
		field.String("address").
			NotEmpty().
			Comment("Street address"),
		field.String("phone").
			Optional().
			Nillable().
			Comment("Contact phone number in E.164 format"),
		field.Enum("visit_status").
			Values("not_visited", "visited", "not_home", "callback").
			Default("not_visited").
			Comment("Door-knock outcome for this household"),
		field.Text("notes").
			Optional().
			Comment("Free-form notes from the agent"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Resident.
func (Resident) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("zone", Zone.Type).
			Ref("residents").
			Field("zone_id").
			Required().
			Unique(),
		edge.To("leads", Lead.Type),
	}
}

// Indexes of the Resident.
func (Resident) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("zone_id", "visit_status"),
	}
}
