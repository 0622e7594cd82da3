package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity: a sales opportunity
// captured at a resident's door.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.Int("zone_id").
			Positive().
			Comment("Zone the lead was captured in"),
		field.Int("resident_id").
			Optional().
			Nillable().
			Comment("Resident the lead belongs to, if matched"),
		field.Int("agent_id").
			Optional().
			Nillable().
			Comment("Agent who captured the lead"),
		field.Enum("status").
			Values("new", "contacted", "qualified", "won", "lost").
			Default("new").
			Comment("Lead pipeline status"),
		field.Text("notes").
			Optional().
			Comment("Free-form notes"),
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

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("zone", Zone.Type).
			Ref("leads").
			Field("zone_id").
			Required().
			Unique(),
		edge.From("resident", Resident.Type).
			Ref("leads").
			Field("resident_id").
			Unique(),
		edge.From("agent", User.Type).
			Ref("leads").
			Field("agent_id").
			Unique(),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("zone_id", "status"),
		index.Fields("agent_id"),
	}
}
