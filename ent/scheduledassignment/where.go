// Code generated by ent, DO NOT EDIT.

package scheduledassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/knockbase/knockbase/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldLTE(FieldID, id))
}

// ZoneID applies equality check predicate on the "zone_id" field. It's identical to ZoneIDEQ.
func ZoneID(v int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldZoneID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldAgentID, v))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldTeamID, v))
}

// AssignedByUserID applies equality check predicate on the "assigned_by_user_id" field. It's identical to AssignedByUserIDEQ.
func AssignedByUserID(v int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldAssignedByUserID, v))
}

// EffectiveFrom applies equality check predicate on the "effective_from" field. It's identical to EffectiveFromEQ.
func EffectiveFrom(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldEffectiveFrom, v))
}

// ScheduledDate applies equality check predicate on the "scheduled_date" field. It's identical to ScheduledDateEQ.
func ScheduledDate(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldScheduledDate, v))
}

// ActivatedAt applies equality check predicate on the "activated_at" field. It's identical to ActivatedAtEQ.
func ActivatedAt(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldActivatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// ZoneIDEQ applies the EQ predicate on the "zone_id" field.
func ZoneIDEQ(v int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldZoneID, v))
}

// ZoneIDNEQ applies the NEQ predicate on the "zone_id" field.
func ZoneIDNEQ(v int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNEQ(FieldZoneID, v))
}

// ZoneIDIn applies the In predicate on the "zone_id" field.
func ZoneIDIn(vs ...int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIn(FieldZoneID, vs...))
}

// ZoneIDNotIn applies the NotIn predicate on the "zone_id" field.
func ZoneIDNotIn(vs ...int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotIn(FieldZoneID, vs...))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotNull(FieldAgentID))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDIsNil applies the IsNil predicate on the "team_id" field.
func TeamIDIsNil() predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIsNull(FieldTeamID))
}

// TeamIDNotNil applies the NotNil predicate on the "team_id" field.
func TeamIDNotNil() predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotNull(FieldTeamID))
}

// AssignedByUserIDEQ applies the EQ predicate on the "assigned_by_user_id" field.
func AssignedByUserIDEQ(v int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldAssignedByUserID, v))
}

// AssignedByUserIDNEQ applies the NEQ predicate on the "assigned_by_user_id" field.
func AssignedByUserIDNEQ(v int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNEQ(FieldAssignedByUserID, v))
}

// AssignedByUserIDIn applies the In predicate on the "assigned_by_user_id" field.
func AssignedByUserIDIn(vs ...int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIn(FieldAssignedByUserID, vs...))
}

// AssignedByUserIDNotIn applies the NotIn predicate on the "assigned_by_user_id" field.
func AssignedByUserIDNotIn(vs ...int) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotIn(FieldAssignedByUserID, vs...))
}

// AssignedByUserIDIsNil applies the IsNil predicate on the "assigned_by_user_id" field.
func AssignedByUserIDIsNil() predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIsNull(FieldAssignedByUserID))
}

// AssignedByUserIDNotNil applies the NotNil predicate on the "assigned_by_user_id" field.
func AssignedByUserIDNotNil() predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotNull(FieldAssignedByUserID))
}

// EffectiveFromEQ applies the EQ predicate on the "effective_from" field.
func EffectiveFromEQ(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldEffectiveFrom, v))
}

// EffectiveFromNEQ applies the NEQ predicate on the "effective_from" field.
func EffectiveFromNEQ(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNEQ(FieldEffectiveFrom, v))
}

// EffectiveFromIn applies the In predicate on the "effective_from" field.
func EffectiveFromIn(vs ...time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIn(FieldEffectiveFrom, vs...))
}

// EffectiveFromNotIn applies the NotIn predicate on the "effective_from" field.
func EffectiveFromNotIn(vs ...time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotIn(FieldEffectiveFrom, vs...))
}

// EffectiveFromGT applies the GT predicate on the "effective_from" field.
func EffectiveFromGT(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldGT(FieldEffectiveFrom, v))
}

// EffectiveFromGTE applies the GTE predicate on the "effective_from" field.
func EffectiveFromGTE(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldGTE(FieldEffectiveFrom, v))
}

// EffectiveFromLT applies the LT predicate on the "effective_from" field.
func EffectiveFromLT(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldLT(FieldEffectiveFrom, v))
}

// EffectiveFromLTE applies the LTE predicate on the "effective_from" field.
func EffectiveFromLTE(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldLTE(FieldEffectiveFrom, v))
}

// ScheduledDateEQ applies the EQ predicate on the "scheduled_date" field.
func ScheduledDateEQ(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldScheduledDate, v))
}

// ScheduledDateNEQ applies the NEQ predicate on the "scheduled_date" field.
func ScheduledDateNEQ(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNEQ(FieldScheduledDate, v))
}

// ScheduledDateIn applies the In predicate on the "scheduled_date" field.
func ScheduledDateIn(vs ...time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIn(FieldScheduledDate, vs...))
}

// ScheduledDateNotIn applies the NotIn predicate on the "scheduled_date" field.
func ScheduledDateNotIn(vs ...time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotIn(FieldScheduledDate, vs...))
}

// ScheduledDateGT applies the GT predicate on the "scheduled_date" field.
func ScheduledDateGT(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldGT(FieldScheduledDate, v))
}

// ScheduledDateGTE applies the GTE predicate on the "scheduled_date" field.
func ScheduledDateGTE(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldGTE(FieldScheduledDate, v))
}

// ScheduledDateLT applies the LT predicate on the "scheduled_date" field.
func ScheduledDateLT(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldLT(FieldScheduledDate, v))
}

// ScheduledDateLTE applies the LTE predicate on the "scheduled_date" field.
func ScheduledDateLTE(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldLTE(FieldScheduledDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotIn(FieldStatus, vs...))
}

// ActivatedAtEQ applies the EQ predicate on the "activated_at" field.
func ActivatedAtEQ(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldActivatedAt, v))
}

// ActivatedAtNEQ applies the NEQ predicate on the "activated_at" field.
func ActivatedAtNEQ(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNEQ(FieldActivatedAt, v))
}

// ActivatedAtIn applies the In predicate on the "activated_at" field.
func ActivatedAtIn(vs ...time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIn(FieldActivatedAt, vs...))
}

// ActivatedAtNotIn applies the NotIn predicate on the "activated_at" field.
func ActivatedAtNotIn(vs ...time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotIn(FieldActivatedAt, vs...))
}

// ActivatedAtGT applies the GT predicate on the "activated_at" field.
func ActivatedAtGT(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldGT(FieldActivatedAt, v))
}

// ActivatedAtGTE applies the GTE predicate on the "activated_at" field.
func ActivatedAtGTE(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldGTE(FieldActivatedAt, v))
}

// ActivatedAtLT applies the LT predicate on the "activated_at" field.
func ActivatedAtLT(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldLT(FieldActivatedAt, v))
}

// ActivatedAtLTE applies the LTE predicate on the "activated_at" field.
func ActivatedAtLTE(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldLTE(FieldActivatedAt, v))
}

// ActivatedAtIsNil applies the IsNil predicate on the "activated_at" field.
func ActivatedAtIsNil() predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIsNull(FieldActivatedAt))
}

// ActivatedAtNotNil applies the NotNil predicate on the "activated_at" field.
func ActivatedAtNotNil() predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotNull(FieldActivatedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.FieldLTE(FieldCreatedAt, v))
}

// HasZone applies the HasEdge predicate on the "zone" edge.
func HasZone() predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ZoneTable, ZoneColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasZoneWith applies the HasEdge predicate on the "zone" edge with a given conditions (other predicates).
func HasZoneWith(preds ...predicate.Zone) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(func(s *sql.Selector) {
		step := newZoneStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.User) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTeam applies the HasEdge predicate on the "team" edge.
func HasTeam() predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TeamTable, TeamColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTeamWith applies the HasEdge predicate on the "team" edge with a given conditions (other predicates).
func HasTeamWith(preds ...predicate.Team) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(func(s *sql.Selector) {
		step := newTeamStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignedBy applies the HasEdge predicate on the "assigned_by" edge.
func HasAssignedBy() predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssignedByTable, AssignedByColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignedByWith applies the HasEdge predicate on the "assigned_by" edge with a given conditions (other predicates).
func HasAssignedByWith(preds ...predicate.User) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(func(s *sql.Selector) {
		step := newAssignedByStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledAssignment) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledAssignment) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledAssignment) predicate.ScheduledAssignment {
	return predicate.ScheduledAssignment(sql.NotPredicates(p))
}
