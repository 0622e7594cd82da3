// Code generated by ent, DO NOT EDIT.

package zoneassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/knockbase/knockbase/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldLTE(FieldID, id))
}

// ZoneID applies equality check predicate on the "zone_id" field. It's identical to ZoneIDEQ.
func ZoneID(v int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldZoneID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldAgentID, v))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldTeamID, v))
}

// AssignedByUserID applies equality check predicate on the "assigned_by_user_id" field. It's identical to AssignedByUserIDEQ.
func AssignedByUserID(v int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldAssignedByUserID, v))
}

// EffectiveFrom applies equality check predicate on the "effective_from" field. It's identical to EffectiveFromEQ.
func EffectiveFrom(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldEffectiveFrom, v))
}

// EffectiveTo applies equality check predicate on the "effective_to" field. It's identical to EffectiveToEQ.
func EffectiveTo(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldEffectiveTo, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// ZoneIDEQ applies the EQ predicate on the "zone_id" field.
func ZoneIDEQ(v int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldZoneID, v))
}

// ZoneIDNEQ applies the NEQ predicate on the "zone_id" field.
func ZoneIDNEQ(v int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNEQ(FieldZoneID, v))
}

// ZoneIDIn applies the In predicate on the "zone_id" field.
func ZoneIDIn(vs ...int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldIn(FieldZoneID, vs...))
}

// ZoneIDNotIn applies the NotIn predicate on the "zone_id" field.
func ZoneIDNotIn(vs ...int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNotIn(FieldZoneID, vs...))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNotNull(FieldAgentID))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDIsNil applies the IsNil predicate on the "team_id" field.
func TeamIDIsNil() predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldIsNull(FieldTeamID))
}

// TeamIDNotNil applies the NotNil predicate on the "team_id" field.
func TeamIDNotNil() predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNotNull(FieldTeamID))
}

// AssignedByUserIDEQ applies the EQ predicate on the "assigned_by_user_id" field.
func AssignedByUserIDEQ(v int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldAssignedByUserID, v))
}

// AssignedByUserIDNEQ applies the NEQ predicate on the "assigned_by_user_id" field.
func AssignedByUserIDNEQ(v int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNEQ(FieldAssignedByUserID, v))
}

// AssignedByUserIDIn applies the In predicate on the "assigned_by_user_id" field.
func AssignedByUserIDIn(vs ...int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldIn(FieldAssignedByUserID, vs...))
}

// AssignedByUserIDNotIn applies the NotIn predicate on the "assigned_by_user_id" field.
func AssignedByUserIDNotIn(vs ...int) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNotIn(FieldAssignedByUserID, vs...))
}

// AssignedByUserIDIsNil applies the IsNil predicate on the "assigned_by_user_id" field.
func AssignedByUserIDIsNil() predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldIsNull(FieldAssignedByUserID))
}

// AssignedByUserIDNotNil applies the NotNil predicate on the "assigned_by_user_id" field.
func AssignedByUserIDNotNil() predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNotNull(FieldAssignedByUserID))
}

// EffectiveFromEQ applies the EQ predicate on the "effective_from" field.
func EffectiveFromEQ(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldEffectiveFrom, v))
}

// EffectiveFromNEQ applies the NEQ predicate on the "effective_from" field.
func EffectiveFromNEQ(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNEQ(FieldEffectiveFrom, v))
}

// EffectiveFromIn applies the In predicate on the "effective_from" field.
func EffectiveFromIn(vs ...time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldIn(FieldEffectiveFrom, vs...))
}

// EffectiveFromNotIn applies the NotIn predicate on the "effective_from" field.
func EffectiveFromNotIn(vs ...time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNotIn(FieldEffectiveFrom, vs...))
}

// EffectiveFromGT applies the GT predicate on the "effective_from" field.
func EffectiveFromGT(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldGT(FieldEffectiveFrom, v))
}

// EffectiveFromGTE applies the GTE predicate on the "effective_from" field.
func EffectiveFromGTE(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldGTE(FieldEffectiveFrom, v))
}

// EffectiveFromLT applies the LT predicate on the "effective_from" field.
func EffectiveFromLT(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldLT(FieldEffectiveFrom, v))
}

// EffectiveFromLTE applies the LTE predicate on the "effective_from" field.
func EffectiveFromLTE(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldLTE(FieldEffectiveFrom, v))
}

// EffectiveToEQ applies the EQ predicate on the "effective_to" field.
func EffectiveToEQ(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldEffectiveTo, v))
}

// EffectiveToNEQ applies the NEQ predicate on the "effective_to" field.
func EffectiveToNEQ(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNEQ(FieldEffectiveTo, v))
}

// EffectiveToIn applies the In predicate on the "effective_to" field.
func EffectiveToIn(vs ...time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldIn(FieldEffectiveTo, vs...))
}

// EffectiveToNotIn applies the NotIn predicate on the "effective_to" field.
func EffectiveToNotIn(vs ...time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNotIn(FieldEffectiveTo, vs...))
}

// EffectiveToGT applies the GT predicate on the "effective_to" field.
func EffectiveToGT(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldGT(FieldEffectiveTo, v))
}

// EffectiveToGTE applies the GTE predicate on the "effective_to" field.
func EffectiveToGTE(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldGTE(FieldEffectiveTo, v))
}

// EffectiveToLT applies the LT predicate on the "effective_to" field.
func EffectiveToLT(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldLT(FieldEffectiveTo, v))
}

// EffectiveToLTE applies the LTE predicate on the "effective_to" field.
func EffectiveToLTE(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldLTE(FieldEffectiveTo, v))
}

// EffectiveToIsNil applies the IsNil predicate on the "effective_to" field.
func EffectiveToIsNil() predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldIsNull(FieldEffectiveTo))
}

// EffectiveToNotNil applies the NotNil predicate on the "effective_to" field.
func EffectiveToNotNil() predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNotNull(FieldEffectiveTo))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.FieldLTE(FieldCreatedAt, v))
}

// HasZone applies the HasEdge predicate on the "zone" edge.
func HasZone() predicate.ZoneAssignment {
	return predicate.ZoneAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ZoneTable, ZoneColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasZoneWith applies the HasEdge predicate on the "zone" edge with a given conditions (other predicates).
func HasZoneWith(preds ...predicate.Zone) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(func(s *sql.Selector) {
		step := newZoneStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.ZoneAssignment {
	return predicate.ZoneAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.User) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTeam applies the HasEdge predicate on the "team" edge.
func HasTeam() predicate.ZoneAssignment {
	return predicate.ZoneAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TeamTable, TeamColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTeamWith applies the HasEdge predicate on the "team" edge with a given conditions (other predicates).
func HasTeamWith(preds ...predicate.Team) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(func(s *sql.Selector) {
		step := newTeamStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignedBy applies the HasEdge predicate on the "assigned_by" edge.
func HasAssignedBy() predicate.ZoneAssignment {
	return predicate.ZoneAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssignedByTable, AssignedByColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignedByWith applies the HasEdge predicate on the "assigned_by" edge with a given conditions (other predicates).
func HasAssignedByWith(preds ...predicate.User) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(func(s *sql.Selector) {
		step := newAssignedByStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ZoneAssignment) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ZoneAssignment) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ZoneAssignment) predicate.ZoneAssignment {
	return predicate.ZoneAssignment(sql.NotPredicates(p))
}
