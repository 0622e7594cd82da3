package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Activity holds the schema definition for the Activity entity: a timestamped
// field event recorded by an agent while working a zone.
type Activity struct {
	ent.Schema
}

// Fields of the Activity.
func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.Int("zone_id").
			Positive().
			Comment("Zone the activity happened in"),
		field.Int("agent_id").
			Positive().
			Comment("Agent who performed the activity"),
		field.Enum("activity_type").
			Values("knock", "callback", "sale", "note").
			Comment("Kind of field activity"),
		field.Text("details").
			Optional().
			Comment("Additional details"),
		field.Time("occurred_at").
			Default(time.Now).
			Comment("When the activity happened"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Activity.
func (Activity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("zone", Zone.Type).
			Ref("activities").
			Field("zone_id").
			Required().
			Unique(),
		edge.From("agent", User.Type).
			Ref("activities").
			Field("agent_id").
			Required().
			Unique(),
	}
}

// Indexes of the Activity.
func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("zone_id", "occurred_at"),
		index.Fields("agent_id", "occurred_at"),
	}
}
