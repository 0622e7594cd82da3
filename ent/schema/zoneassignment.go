package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ZoneAssignment holds the schema definition for the ZoneAssignment entity.
// It is the immediate assignment ledger: one row per assignment of a zone to
// an agent or a team, with a validity window. Rows are terminated, never
// deleted, when the zone is reassigned, so history is retained for audit.
type ZoneAssignment struct {
	ent.Schema
}

// Fields of the ZoneAssignment.
func (ZoneAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("zone_id").
			Positive().
			Comment("ID of the assigned zone"),
		field.Int("agent_id").
			Optional().
			Nillable().
			Comment("Agent target; null for team assignments"),
		field.Int("team_id").
			Optional().
			Nillable().
			Comment("Team target; null for individual assignments"),
		field.Int("assigned_by_user_id").
			Optional().
			Nillable().
			Comment("Administrator who made the assignment (null for sweeper activations)"),
		field.Time("effective_from").
			Default(time.Now).
			Comment("When the assignment takes effect"),
		field.Time("effective_to").
			Optional().
			Nillable().
			Comment("When the assignment was terminated; null while open-ended"),
		field.Enum("status").
			Values("active", "inactive", "completed", "cancelled").
			Default("active").
			Comment("Assignment status; inactive with effective_to set means superseded"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the ZoneAssignment.
func (ZoneAssignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("zone", Zone.Type).
			Ref("assignments").
			Field("zone_id").
			Required().
			Unique(),
		edge.From("agent", User.Type).
			Ref("assignments").
			Field("agent_id").
			Unique(),
		edge.From("team", Team.Type).
			Ref("assignments").
			Field("team_id").
			Unique(),
		edge.From("assigned_by", User.Type).
			Ref("assignments_made").
			Field("assigned_by_user_id").
			Unique(),
	}
}

// Indexes of the ZoneAssignment.
func (ZoneAssignment) Indexes() []ent.Index {
	return []ent.Index{
		// Find the zone's current assignment
		index.Fields("zone_id", "status").
			StorageKey("idx_zone_assignment_zone_status"),

		// Find all zones assigned to an agent
		index.Fields("agent_id", "status").
			StorageKey("idx_zone_assignment_agent_status"),

		// Find all zones assigned to a team
		index.Fields("team_id", "status").
			StorageKey("idx_zone_assignment_team_status"),

		// Assignment history
		index.Fields("effective_from").
			StorageKey("idx_zone_assignment_time"),
	}
}
