// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/knockbase/knockbase/ent/predicate"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
)

// ScheduledAssignmentUpdate is the builder for updating ScheduledAssignment entities.
type ScheduledAssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledAssignmentMutation
}

// Where appends a list predicates to the ScheduledAssignmentUpdate builder.
func (_u *ScheduledAssignmentUpdate) Where(ps ...predicate.ScheduledAssignment) *ScheduledAssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetZoneID sets the "zone_id" field.
func (_u *ScheduledAssignmentUpdate) SetZoneID(v int) *ScheduledAssignmentUpdate {
	_u.mutation.SetZoneID(v)
	return _u
}

// SetNillableZoneID sets the "zone_id" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdate) SetNillableZoneID(v *int) *ScheduledAssignmentUpdate {
	if v != nil {
		_u.SetZoneID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ScheduledAssignmentUpdate) SetAgentID(v int) *ScheduledAssignmentUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdate) SetNillableAgentID(v *int) *ScheduledAssignmentUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ScheduledAssignmentUpdate) ClearAgentID() *ScheduledAssignmentUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *ScheduledAssignmentUpdate) SetTeamID(v int) *ScheduledAssignmentUpdate {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdate) SetNillableTeamID(v *int) *ScheduledAssignmentUpdate {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// ClearTeamID clears the value of the "team_id" field.
func (_u *ScheduledAssignmentUpdate) ClearTeamID() *ScheduledAssignmentUpdate {
	_u.mutation.ClearTeamID()
	return _u
}

// SetAssignedByUserID sets the "assigned_by_user_id" field.
func (_u *ScheduledAssignmentUpdate) SetAssignedByUserID(v int) *ScheduledAssignmentUpdate {
	_u.mutation.SetAssignedByUserID(v)
	return _u
}

// SetNillableAssignedByUserID sets the "assigned_by_user_id" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdate) SetNillableAssignedByUserID(v *int) *ScheduledAssignmentUpdate {
	if v != nil {
		_u.SetAssignedByUserID(*v)
	}
	return _u
}

// ClearAssignedByUserID clears the value of the "assigned_by_user_id" field.
func (_u *ScheduledAssignmentUpdate) ClearAssignedByUserID() *ScheduledAssignmentUpdate {
	_u.mutation.ClearAssignedByUserID()
	return _u
}

// SetEffectiveFrom sets the "effective_from" field.
func (_u *ScheduledAssignmentUpdate) SetEffectiveFrom(v time.Time) *ScheduledAssignmentUpdate {
	_u.mutation.SetEffectiveFrom(v)
	return _u
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdate) SetNillableEffectiveFrom(v *time.Time) *ScheduledAssignmentUpdate {
	if v != nil {
		_u.SetEffectiveFrom(*v)
	}
	return _u
}

// SetScheduledDate sets the "scheduled_date" field.
func (_u *ScheduledAssignmentUpdate) SetScheduledDate(v time.Time) *ScheduledAssignmentUpdate {
	_u.mutation.SetScheduledDate(v)
	return _u
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdate) SetNillableScheduledDate(v *time.Time) *ScheduledAssignmentUpdate {
	if v != nil {
		_u.SetScheduledDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledAssignmentUpdate) SetStatus(v scheduledassignment.Status) *ScheduledAssignmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdate) SetNillableStatus(v *scheduledassignment.Status) *ScheduledAssignmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActivatedAt sets the "activated_at" field.
func (_u *ScheduledAssignmentUpdate) SetActivatedAt(v time.Time) *ScheduledAssignmentUpdate {
	_u.mutation.SetActivatedAt(v)
	return _u
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdate) SetNillableActivatedAt(v *time.Time) *ScheduledAssignmentUpdate {
	if v != nil {
		_u.SetActivatedAt(*v)
	}
	return _u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (_u *ScheduledAssignmentUpdate) ClearActivatedAt() *ScheduledAssignmentUpdate {
	_u.mutation.ClearActivatedAt()
	return _u
}

// SetZone sets the "zone" edge to the Zone entity.
func (_u *ScheduledAssignmentUpdate) SetZone(v *Zone) *ScheduledAssignmentUpdate {
	return _u.SetZoneID(v.ID)
}

// SetAgent sets the "agent" edge to the User entity.
func (_u *ScheduledAssignmentUpdate) SetAgent(v *User) *ScheduledAssignmentUpdate {
	return _u.SetAgentID(v.ID)
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *ScheduledAssignmentUpdate) SetTeam(v *Team) *ScheduledAssignmentUpdate {
	return _u.SetTeamID(v.ID)
}

// SetAssignedByID sets the "assigned_by" edge to the User entity by ID.
func (_u *ScheduledAssignmentUpdate) SetAssignedByID(id int) *ScheduledAssignmentUpdate {
	_u.mutation.SetAssignedByID(id)
	return _u
}

// SetNillableAssignedByID sets the "assigned_by" edge to the User entity by ID if the given value is not nil.
func (_u *ScheduledAssignmentUpdate) SetNillableAssignedByID(id *int) *ScheduledAssignmentUpdate {
	if id != nil {
		_u = _u.SetAssignedByID(*id)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" edge to the User entity.
func (_u *ScheduledAssignmentUpdate) SetAssignedBy(v *User) *ScheduledAssignmentUpdate {
	return _u.SetAssignedByID(v.ID)
}

// Mutation returns the ScheduledAssignmentMutation object of the builder.
func (_u *ScheduledAssignmentUpdate) Mutation() *ScheduledAssignmentMutation {
	return _u.mutation
}

// ClearZone clears the "zone" edge to the Zone entity.
func (_u *ScheduledAssignmentUpdate) ClearZone() *ScheduledAssignmentUpdate {
	_u.mutation.ClearZone()
	return _u
}

// ClearAgent clears the "agent" edge to the User entity.
func (_u *ScheduledAssignmentUpdate) ClearAgent() *ScheduledAssignmentUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *ScheduledAssignmentUpdate) ClearTeam() *ScheduledAssignmentUpdate {
	_u.mutation.ClearTeam()
	return _u
}

// ClearAssignedBy clears the "assigned_by" edge to the User entity.
func (_u *ScheduledAssignmentUpdate) ClearAssignedBy() *ScheduledAssignmentUpdate {
	_u.mutation.ClearAssignedBy()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledAssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledAssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledAssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledAssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledAssignmentUpdate) check() error {
	if v, ok := _u.mutation.ZoneID(); ok {
		if err := scheduledassignment.ZoneIDValidator(v); err != nil {
			return &ValidationError{Name: "zone_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledAssignment.zone_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledassignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledAssignment.status": %w`, err)}
		}
	}
	if _u.mutation.ZoneCleared() && len(_u.mutation.ZoneIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledAssignment.zone"`)
	}
	return nil
}

func (_u *ScheduledAssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledassignment.Table, scheduledassignment.Columns, sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EffectiveFrom(); ok {
		_spec.SetField(scheduledassignment.FieldEffectiveFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScheduledDate(); ok {
		_spec.SetField(scheduledassignment.FieldScheduledDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledassignment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActivatedAt(); ok {
		_spec.SetField(scheduledassignment.FieldActivatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivatedAtCleared() {
		_spec.ClearField(scheduledassignment.FieldActivatedAt, field.TypeTime)
	}
	if _u.mutation.ZoneCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.ZoneTable,
			Columns: []string{scheduledassignment.ZoneColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ZoneIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.ZoneTable,
			Columns: []string{scheduledassignment.ZoneColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.AgentTable,
			Columns: []string{scheduledassignment.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.AgentTable,
			Columns: []string{scheduledassignment.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.TeamTable,
			Columns: []string{scheduledassignment.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.TeamTable,
			Columns: []string{scheduledassignment.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.AssignedByTable,
			Columns: []string{scheduledassignment.AssignedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.AssignedByTable,
			Columns: []string{scheduledassignment.AssignedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledAssignmentUpdateOne is the builder for updating a single ScheduledAssignment entity.
type ScheduledAssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledAssignmentMutation
}

// SetZoneID sets the "zone_id" field.
func (_u *ScheduledAssignmentUpdateOne) SetZoneID(v int) *ScheduledAssignmentUpdateOne {
	_u.mutation.SetZoneID(v)
	return _u
}

// SetNillableZoneID sets the "zone_id" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdateOne) SetNillableZoneID(v *int) *ScheduledAssignmentUpdateOne {
	if v != nil {
		_u.SetZoneID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ScheduledAssignmentUpdateOne) SetAgentID(v int) *ScheduledAssignmentUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdateOne) SetNillableAgentID(v *int) *ScheduledAssignmentUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ScheduledAssignmentUpdateOne) ClearAgentID() *ScheduledAssignmentUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *ScheduledAssignmentUpdateOne) SetTeamID(v int) *ScheduledAssignmentUpdateOne {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdateOne) SetNillableTeamID(v *int) *ScheduledAssignmentUpdateOne {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// ClearTeamID clears the value of the "team_id" field.
func (_u *ScheduledAssignmentUpdateOne) ClearTeamID() *ScheduledAssignmentUpdateOne {
	_u.mutation.ClearTeamID()
	return _u
}

// SetAssignedByUserID sets the "assigned_by_user_id" field.
func (_u *ScheduledAssignmentUpdateOne) SetAssignedByUserID(v int) *ScheduledAssignmentUpdateOne {
	_u.mutation.SetAssignedByUserID(v)
	return _u
}

// SetNillableAssignedByUserID sets the "assigned_by_user_id" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdateOne) SetNillableAssignedByUserID(v *int) *ScheduledAssignmentUpdateOne {
	if v != nil {
		_u.SetAssignedByUserID(*v)
	}
	return _u
}

// ClearAssignedByUserID clears the value of the "assigned_by_user_id" field.
func (_u *ScheduledAssignmentUpdateOne) ClearAssignedByUserID() *ScheduledAssignmentUpdateOne {
	_u.mutation.ClearAssignedByUserID()
	return _u
}

// SetEffectiveFrom sets the "effective_from" field.
func (_u *ScheduledAssignmentUpdateOne) SetEffectiveFrom(v time.Time) *ScheduledAssignmentUpdateOne {
	_u.mutation.SetEffectiveFrom(v)
	return _u
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdateOne) SetNillableEffectiveFrom(v *time.Time) *ScheduledAssignmentUpdateOne {
	if v != nil {
		_u.SetEffectiveFrom(*v)
	}
	return _u
}

// SetScheduledDate sets the "scheduled_date" field.
func (_u *ScheduledAssignmentUpdateOne) SetScheduledDate(v time.Time) *ScheduledAssignmentUpdateOne {
	_u.mutation.SetScheduledDate(v)
	return _u
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdateOne) SetNillableScheduledDate(v *time.Time) *ScheduledAssignmentUpdateOne {
	if v != nil {
		_u.SetScheduledDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledAssignmentUpdateOne) SetStatus(v scheduledassignment.Status) *ScheduledAssignmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdateOne) SetNillableStatus(v *scheduledassignment.Status) *ScheduledAssignmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActivatedAt sets the "activated_at" field.
func (_u *ScheduledAssignmentUpdateOne) SetActivatedAt(v time.Time) *ScheduledAssignmentUpdateOne {
	_u.mutation.SetActivatedAt(v)
	return _u
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_u *ScheduledAssignmentUpdateOne) SetNillableActivatedAt(v *time.Time) *ScheduledAssignmentUpdateOne {
	if v != nil {
		_u.SetActivatedAt(*v)
	}
	return _u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (_u *ScheduledAssignmentUpdateOne) ClearActivatedAt() *ScheduledAssignmentUpdateOne {
	_u.mutation.ClearActivatedAt()
	return _u
}

// SetZone sets the "zone" edge to the Zone entity.
func (_u *ScheduledAssignmentUpdateOne) SetZone(v *Zone) *ScheduledAssignmentUpdateOne {
	return _u.SetZoneID(v.ID)
}

// SetAgent sets the "agent" edge to the User entity.
func (_u *ScheduledAssignmentUpdateOne) SetAgent(v *User) *ScheduledAssignmentUpdateOne {
	return _u.SetAgentID(v.ID)
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *ScheduledAssignmentUpdateOne) SetTeam(v *Team) *ScheduledAssignmentUpdateOne {
	return _u.SetTeamID(v.ID)
}

// SetAssignedByID sets the "assigned_by" edge to the User entity by ID.
func (_u *ScheduledAssignmentUpdateOne) SetAssignedByID(id int) *ScheduledAssignmentUpdateOne {
	_u.mutation.SetAssignedByID(id)
	return _u
}

// SetNillableAssignedByID sets the "assigned_by" edge to the User entity by ID if the given value is not nil.
func (_u *ScheduledAssignmentUpdateOne) SetNillableAssignedByID(id *int) *ScheduledAssignmentUpdateOne {
	if id != nil {
		_u = _u.SetAssignedByID(*id)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" edge to the User entity.
func (_u *ScheduledAssignmentUpdateOne) SetAssignedBy(v *User) *ScheduledAssignmentUpdateOne {
	return _u.SetAssignedByID(v.ID)
}

// Mutation returns the ScheduledAssignmentMutation object of the builder.
func (_u *ScheduledAssignmentUpdateOne) Mutation() *ScheduledAssignmentMutation {
	return _u.mutation
}

// ClearZone clears the "zone" edge to the Zone entity.
func (_u *ScheduledAssignmentUpdateOne) ClearZone() *ScheduledAssignmentUpdateOne {
	_u.mutation.ClearZone()
	return _u
}

// ClearAgent clears the "agent" edge to the User entity.
func (_u *ScheduledAssignmentUpdateOne) ClearAgent() *ScheduledAssignmentUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *ScheduledAssignmentUpdateOne) ClearTeam() *ScheduledAssignmentUpdateOne {
	_u.mutation.ClearTeam()
	return _u
}

// ClearAssignedBy clears the "assigned_by" edge to the User entity.
func (_u *ScheduledAssignmentUpdateOne) ClearAssignedBy() *ScheduledAssignmentUpdateOne {
	_u.mutation.ClearAssignedBy()
	return _u
}

// Where appends a list predicates to the ScheduledAssignmentUpdate builder.
func (_u *ScheduledAssignmentUpdateOne) Where(ps ...predicate.ScheduledAssignment) *ScheduledAssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledAssignmentUpdateOne) Select(field string, fields ...string) *ScheduledAssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledAssignment entity.
func (_u *ScheduledAssignmentUpdateOne) Save(ctx context.Context) (*ScheduledAssignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledAssignmentUpdateOne) SaveX(ctx context.Context) *ScheduledAssignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledAssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledAssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledAssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.ZoneID(); ok {
		if err := scheduledassignment.ZoneIDValidator(v); err != nil {
			return &ValidationError{Name: "zone_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledAssignment.zone_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledassignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledAssignment.status": %w`, err)}
		}
	}
	if _u.mutation.ZoneCleared() && len(_u.mutation.ZoneIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledAssignment.zone"`)
	}
	return nil
}

func (_u *ScheduledAssignmentUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledAssignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledassignment.Table, scheduledassignment.Columns, sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledAssignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledassignment.FieldID)
		for _, f := range fields {
			if !scheduledassignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledassignment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EffectiveFrom(); ok {
		_spec.SetField(scheduledassignment.FieldEffectiveFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScheduledDate(); ok {
		_spec.SetField(scheduledassignment.FieldScheduledDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledassignment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActivatedAt(); ok {
		_spec.SetField(scheduledassignment.FieldActivatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivatedAtCleared() {
		_spec.ClearField(scheduledassignment.FieldActivatedAt, field.TypeTime)
	}
	if _u.mutation.ZoneCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.ZoneTable,
			Columns: []string{scheduledassignment.ZoneColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ZoneIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.ZoneTable,
			Columns: []string{scheduledassignment.ZoneColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.AgentTable,
			Columns: []string{scheduledassignment.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.AgentTable,
			Columns: []string{scheduledassignment.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.TeamTable,
			Columns: []string{scheduledassignment.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.TeamTable,
			Columns: []string{scheduledassignment.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.AssignedByTable,
			Columns: []string{scheduledassignment.AssignedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.AssignedByTable,
			Columns: []string{scheduledassignment.AssignedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScheduledAssignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
