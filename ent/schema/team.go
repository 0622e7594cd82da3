package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Team holds the schema definition for the Team entity.
type Team struct {
	ent.Schema
}

// Fields of the Team.
func (Team) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(200).
			Comment("Team name"),
		field.Text("description").
			Optional().
			Comment("Description of the team"),
		field.Enum("status").
			Values("active", "inactive").
			Default("inactive").
			Comment("Operational status, fully recomputed from the assignment ledgers"),
		field.Enum("assignment_status").
			Values("assigned", "unassigned").
			Default("unassigned").
			Comment("Whether the team currently holds any zone assignment"),
		field.Int("leader_user_id").
			Positive().
			Comment("Designated team leader"),
		field.Int("created_by_user_id").
			Positive().
			Comment("Administrator who created this team"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the team was created"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the team was last updated"),
	}
}

// Edges of the Team.
func (Team) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("leader", User.Type).
			Ref("teams_led").
			Field("leader_user_id").
			Required().
			Unique(),
		edge.From("created_by", User.Type).
			Ref("teams_created").
			Field("created_by_user_id").
			Required().
			Unique(),
		edge.To("members", TeamMember.Type),
		edge.To("zones", Zone.Type).
			Comment("Zones currently assigned to this team"),
		edge.To("assignments", ZoneAssignment.Type),
		edge.To("scheduled_assignments", ScheduledAssignment.Type),
	}
}

// Indexes of the Team.
func (Team) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_by_user_id"),
	}
}
