package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address"),
		field.String("password_hash").
			Sensitive().
			NotEmpty().
			Comment("Bcrypt hashed password"),
		field.String("name").
			NotEmpty().
			Comment("User full name"),
		field.String("phone").
			Optional().
			Nillable().
			Comment("Contact phone number in E.164 format"),
		field.Enum("role").
			Values("admin", "agent").
			Default("agent").
			Comment("User role for access control"),
		field.Enum("status").
			Values("active", "inactive").
			Default("inactive").
			Comment("Operational status, derived from assignment state"),
		field.Enum("assignment_status").
			Values("assigned", "unassigned").
			Default("unassigned").
			Comment("Whether the agent currently holds any zone assignment"),
		field.Int("primary_zone_id").
			Optional().
			Nillable().
			Comment("Most recently assigned zone"),
		field.JSON("zone_ids", []int{}).
			Optional().
			Comment("All zones reachable through active or pending assignments, individual or via team"),
		field.Time("last_login_at").
			Optional().
			Nillable().
			Comment("Last login timestamp"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete timestamp"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("teams_created", Team.Type).
			Comment("Teams created by this user"),
		edge.To("teams_led", Team.Type).
			Comment("Teams where this user is the designated leader"),
		edge.To("team_memberships", TeamMember.Type),
		edge.To("team_members_added", TeamMember.Type),
		edge.To("zones_created", Zone.Type),
		edge.To("zones_assigned", Zone.Type).
			Comment("Zones currently assigned to this agent individually"),
		edge.To("assignments", ZoneAssignment.Type),
		edge.To("assignments_made", ZoneAssignment.Type),
		edge.To("scheduled_assignments", ScheduledAssignment.Type),
		edge.To("scheduled_assignments_made", ScheduledAssignment.Type),
		edge.To("leads", Lead.Type),
		edge.To("activities", Activity.Type),
		edge.To("routes", Route.Type),
		edge.To("audit_logs", AuditLog.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("role"),
		index.Fields("status"),
		index.Fields("assignment_status"),
	}
}
