package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Route holds the schema definition for the Route entity: a planned walking
// order through a zone's addresses.
type Route struct {
	ent.Schema
}

// Fields of the Route.
func (Route) Fields() []ent.Field {
	return []ent.Field{
		field.Int("zone_id").
			Positive().
			Comment("Zone this route covers"),
		field.Int("agent_id").
			Optional().
			Nillable().
			Comment("Agent the route was planned for"),
		field.String("name").
			NotEmpty().
			Comment("Route name"),
		field.JSON("waypoints", [][]float64{}).
			Optional().
			Comment("Ordered [lng, lat] waypoints"),
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

// Edges of the Route.
func (Route) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("zone", Zone.Type).
			Ref("routes").
			Field("zone_id").
			Required().
			Unique(),
		edge.From("agent", User.Type).
			Ref("routes").
			Field("agent_id").
			Unique(),
	}
}

// Indexes of the Route.
func (Route) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("zone_id"),
	}
}
