package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledAssignment holds the schema definition for the ScheduledAssignment
// entity: a future-dated assignment awaiting activation by the sweeper. A
// pending row already counts toward assigned/active status even though no
// immediate assignment exists yet.
type ScheduledAssignment struct {
	ent.Schema
}

// Fields of the ScheduledAssignment.
func (ScheduledAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("zone_id").
			Positive().
			Comment("ID of the zone to be assigned"),
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
			Comment("Administrator who scheduled the assignment"),
		field.Time("effective_from").
			Comment("Requested effective date carried onto the immediate assignment at activation"),
		field.Time("scheduled_date").
			Comment("When the sweeper should activate this assignment"),
		field.Enum("status").
			Values("pending", "activated", "cancelled", "completed").
			Default("pending").
			Comment("Pending rows are due for activation once scheduled_date passes"),
		field.Time("activated_at").
			Optional().
			Nillable().
			Comment("When the sweeper activated this assignment"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the ScheduledAssignment.
func (ScheduledAssignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("zone", Zone.Type).
			Ref("scheduled_assignments").
			Field("zone_id").
			Required().
			Unique(),
		edge.From("agent", User.Type).
			Ref("scheduled_assignments").
			Field("agent_id").
			Unique(),
		edge.From("team", Team.Type).
			Ref("scheduled_assignments").
			Field("team_id").
			Unique(),
		edge.From("assigned_by", User.Type).
			Ref("scheduled_assignments_made").
			Field("assigned_by_user_id").
			Unique(),
	}
}

// Indexes of the ScheduledAssignment.
func (ScheduledAssignment) Indexes() []ent.Index {
	return []ent.Index{
		// Sweeper query: pending rows due for activation
		index.Fields("status", "scheduled_date").
			StorageKey("idx_scheduled_assignment_due"),

		index.Fields("zone_id", "status").
			StorageKey("idx_scheduled_assignment_zone_status"),

		index.Fields("agent_id", "status").
			StorageKey("idx_scheduled_assignment_agent_status"),

		index.Fields("team_id", "status").
			StorageKey("idx_scheduled_assignment_team_status"),
	}
}
