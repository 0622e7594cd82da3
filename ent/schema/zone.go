package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Zone holds the schema definition for the Zone entity.
type Zone struct {
	ent.Schema
}

// Fields of the Zone.
func (Zone) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(200).
			Comment("Zone name (e.g., 'Maple Heights North', 'Downtown Grid 4')"),
		field.Text("description").
			Optional().
			Comment("Description of the zone coverage"),
		field.JSON("boundary", [][]float64{}).
			Optional().
			Comment("Polygon boundary as a list of [lng, lat] pairs"),
		field.Enum("status").
			Values("draft", "active", "scheduled", "completed").
			Default("draft").
			Comment("Zone lifecycle status"),
		field.Int("assigned_agent_id").
			Optional().
			Nillable().
			Comment("Agent this zone is individually assigned to; never set together with team_id"),
		field.Int("team_id").
			Optional().
			Nillable().
			Comment("Team this zone is assigned to; never set together with assigned_agent_id"),
		field.Int("created_by_user_id").
			Positive().
			Comment("Administrator who created this zone"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the zone was created"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the zone was last updated"),
	}
}

// Edges of the Zone.
func (Zone) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("created_by", User.Type).
			Ref("zones_created").
			Field("created_by_user_id").
			Required().
			Unique(),
		edge.From("assigned_agent", User.Type).
			Ref("zones_assigned").
			Field("assigned_agent_id").
			Unique(),
		edge.From("team", Team.Type).
			Ref("zones").
			Field("team_id").
			Unique(),
		edge.To("assignments", ZoneAssignment.Type),
		edge.To("scheduled_assignments", ScheduledAssignment.Type),
		edge.To("residents", Resident.Type),
		edge.To("leads", Lead.Type),
		edge.To("activities", Activity.Type),
		edge.To("routes", Route.Type),
	}
}

// Indexes of the Zone.
func (Zone) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("assigned_agent_id"),
		index.Fields("team_id"),
		index.Fields("created_by_user_id"),
	}
}
