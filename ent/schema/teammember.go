package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TeamMember holds the schema definition for the TeamMember entity.
type TeamMember struct {
	ent.Schema
}

// Fields of the TeamMember.
func (TeamMember) Fields() []ent.Field {
	return []ent.Field{
		field.Int("team_id").
			Positive().
			Comment("ID of the team"),
		field.Int("user_id").
			Positive().
			Comment("ID of the agent who is a member"),
		field.Int("added_by_user_id").
			Positive().
			Comment("User who added this member to the team"),
		field.Time("joined_at").
			Default(time.Now).
			Immutable().
			Comment("When the agent joined this team"),
	}
}

// Edges of the TeamMember.
func (TeamMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("team", Team.Type).
			Ref("members").
			Field("team_id").
			Required().
			Unique(),
		edge.From("user", User.Type).
			Ref("team_memberships").
			Field("user_id").
			Required().
			Unique(),
		edge.From("added_by", User.Type).
			Ref("team_members_added").
			Field("added_by_user_id").
			Required().
			Unique(),
	}
}

// Indexes of the TeamMember.
func (TeamMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id", "user_id").Unique(),
		index.Fields("user_id"),
	}
}
